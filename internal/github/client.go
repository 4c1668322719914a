package github

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"candidate-search/internal/models"
)

const (
	apiVersion = "2022-11-28"
	userAgent  = "candidate-search"
)

// Client queries the GitHub user directory
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	perPage    int
	since      int64
	sem        *semaphore.Weighted
	logger     *zap.Logger
}

// New creates a new Client. A nil logger disables logging.
func New(config models.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		MaxIdleConns:           int(config.MaxConcurrency),
		MaxIdleConnsPerHost:    int(config.MaxConcurrency),
		MaxConnsPerHost:        int(config.MaxConcurrency),
		IdleConnTimeout:        30 * time.Second,
		ForceAttemptHTTP2:      true,
		MaxResponseHeaderBytes: 1 << 20, // 1MB limit
		ExpectContinueTimeout:  1 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   config.RequestTimeout,
			Transport: transport,
		},
		baseURL: strings.TrimRight(config.GitHubAPIURL, "/"),
		token:   config.GitHubToken,
		perPage: config.PerPage,
		since:   config.Since,
		sem:     semaphore.NewWeighted(config.MaxConcurrency),
		logger:  logger.Named("github"),
	}
}

// Close releases idle connections
func (c *Client) Close() {
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
