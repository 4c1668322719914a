package github

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"candidate-search/internal/models"
)

// maxSince bounds the random starting id of the user listing
const maxSince = 100000000

// SearchUsers lists one page of GitHub users starting after the configured id
func (c *Client) SearchUsers(ctx context.Context) ([]models.Summary, error) {
	since := c.since
	if since < 0 {
		since = rand.Int64N(maxSince) + 1
	}

	q := url.Values{}
	q.Set("since", strconv.FormatInt(since, 10))
	q.Set("per_page", strconv.Itoa(c.perPage))

	body, err := c.get(ctx, "/users?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries, err := ExtractSummaries(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode user list: %w", err)
	}
	return summaries, nil
}

// GetUser looks up the profile details of one user
func (c *Client) GetUser(ctx context.Context, login string) (models.Detail, error) {
	body, err := c.get(ctx, "/users/"+url.PathEscape(login))
	if err != nil {
		return models.Detail{}, fmt.Errorf("failed to get user %s: %w", login, err)
	}

	detail, err := ExtractDetail(body)
	if err != nil {
		return models.Detail{}, fmt.Errorf("failed to decode user %s: %w", login, err)
	}
	return detail, nil
}

// get performs one GET against the API and returns the response body
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	// Acquire semaphore to limit concurrent requests
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)

	requestID := uuid.New().String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("request_id", requestID), zap.String("path", path), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	c.logger.Debug("request done",
		zap.String("request_id", requestID),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, fmt.Errorf("token authentication failed (401 Unauthorized): %s", resp.Status)
		case http.StatusForbidden, http.StatusTooManyRequests:
			return nil, fmt.Errorf("rate limited (%d): %s", resp.StatusCode, resp.Status)
		case http.StatusNotFound:
			return nil, fmt.Errorf("not found (404): %s", resp.Status)
		}
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}
