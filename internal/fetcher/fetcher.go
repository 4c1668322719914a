// Package fetcher acquires a batch of review candidates: one listing call,
// then one concurrent detail lookup per listed user.
package fetcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"candidate-search/internal/models"
)

// ErrorMessage is the only failure text shown to the user
const ErrorMessage = "Failed to load candidates. Please try again."

// FetchError is returned for any failure while acquiring candidates.
// The cause is kept for logs; the message never varies.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return ErrorMessage }

func (e *FetchError) Unwrap() error { return e.Err }

// Source is the user directory the fetcher reads from
type Source interface {
	SearchUsers(ctx context.Context) ([]models.Summary, error)
	GetUser(ctx context.Context, login string) (models.Detail, error)
}

// Fetcher turns directory listings into normalized candidates
type Fetcher struct {
	source Source
	policy models.FailurePolicy
	logger *zap.Logger
}

// New creates a new Fetcher. An empty policy means models.FailBatch.
func New(source Source, policy models.FailurePolicy, logger *zap.Logger) *Fetcher {
	if policy == "" {
		policy = models.FailBatch
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		source: source,
		policy: policy,
		logger: logger.Named("fetcher"),
	}
}

// AcquireCandidates lists users and enriches each one with its details.
// The result keeps listing order. Any returned error is a *FetchError.
func (f *Fetcher) AcquireCandidates(ctx context.Context) ([]models.Candidate, error) {
	start := time.Now()

	summaries, err := f.source.SearchUsers(ctx)
	if err != nil {
		f.logger.Warn("listing failed", zap.Error(err))
		return nil, &FetchError{Err: err}
	}

	results := make([]*models.Candidate, len(summaries))

	// last dropped lookup error, kept as the cause when nothing survives
	var (
		mu      sync.Mutex
		lastErr error
	)

	eg, egCtx := errgroup.WithContext(ctx)
	for i, summary := range summaries {
		eg.Go(func() error {
			detail, err := f.source.GetUser(egCtx, summary.Login)
			if err != nil {
				if f.policy == models.DropFailed {
					f.logger.Warn("dropping candidate", zap.String("login", summary.Login), zap.Error(err))
					mu.Lock()
					lastErr = err
					mu.Unlock()
					return nil
				}
				return err
			}
			c := models.NewCandidate(summary, detail)
			results[i] = &c
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		f.logger.Warn("detail lookup failed", zap.Int("count", len(summaries)), zap.Error(err))
		return nil, &FetchError{Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Err: err}
	}

	candidates := make([]models.Candidate, 0, len(results))
	for _, c := range results {
		if c != nil {
			candidates = append(candidates, *c)
		}
	}
	if len(summaries) > 0 && len(candidates) == 0 {
		f.logger.Warn("every detail lookup failed", zap.Int("count", len(summaries)), zap.Error(lastErr))
		return nil, &FetchError{Err: lastErr}
	}

	f.logger.Info("candidates acquired",
		zap.Int("listed", len(summaries)),
		zap.Int("count", len(candidates)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return candidates, nil
}
