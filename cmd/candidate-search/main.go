package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"candidate-search/internal/config"
	"candidate-search/internal/models"
	"candidate-search/internal/orchestrator"
	"candidate-search/internal/utils"
)

var (
	// Global flags
	configPath string
	dbPath     string
	token      string
	verbose    bool
	asJSON     bool
	clearSaved bool

	cfg    models.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "candidate-search",
	Short: "Review GitHub users as hiring candidates",
	Long: `candidate-search fetches a batch of GitHub users, shows them one at a time
and saves the ones you accept to a local database.

Run without arguments to start the interactive review.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, &cfg)
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = newLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *orchestrator.App) error {
			return app.Run(cmd.Context())
		})
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch one batch of candidates and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := utils.SetupSignalHandling(cmd.Context(), logger)
		defer stop()

		return withApp(func(app *orchestrator.App) error {
			start := time.Now()
			candidates, err := app.FetchOnce(ctx)
			if err != nil {
				logger.Error("fetch failed", zap.Error(err))
				return err
			}
			if err := printCandidates(cmd.OutOrStdout(), candidates); err != nil {
				return err
			}
			if !asJSON {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d candidates in %s\n", len(candidates), utils.FormatDuration(time.Since(start)))
			}
			return nil
		})
	},
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Print the accepted candidates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *orchestrator.App) error {
			if clearSaved {
				if err := app.ClearSaved(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Saved candidates cleared.")
				return nil
			}

			candidates, err := app.Saved(cmd.Context())
			if err != nil {
				return err
			}
			if len(candidates) == 0 && !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved candidates.")
				return nil
			}
			return printCandidates(cmd.OutOrStdout(), candidates)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database (default candidates.db)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "GitHub token (overrides GITHUB_TOKEN)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	fetchCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	savedCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	savedCmd.Flags().BoolVar(&clearSaved, "clear", false, "delete the saved candidates")

	rootCmd.AddCommand(fetchCmd, savedCmd)
}

// applyFlags lets explicitly set flags win over file and environment values
func applyFlags(cmd *cobra.Command, cfg *models.Config) {
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if flags.Changed("token") {
		cfg.GitHubToken = token
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
}

// newLogger writes JSON logs to the configured file; the terminal belongs to the UI
func newLogger(cfg models.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{cfg.LogPath}
	zcfg.ErrorOutputPaths = []string{cfg.LogPath}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func withApp(fn func(app *orchestrator.App) error) error {
	app, err := orchestrator.New(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close app", zap.Error(err))
		}
	}()
	return fn(app)
}

func printCandidates(w io.Writer, candidates []models.Candidate) error {
	if asJSON {
		if candidates == nil {
			candidates = []models.Candidate{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}
	return utils.WriteCandidateTable(w, candidates)
}

// run executes the root command and flushes the logger whatever the outcome
func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
