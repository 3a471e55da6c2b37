// Package google talks to the Gmail and Calendar REST APIs on behalf of a user.
package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"gsync/config"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/service"
	"gsync/internal/errors"
)

const (
	defaultRetryBackoff = 200 * time.Millisecond
	maxErrorBodyBytes   = 4 << 10
	maxResponseBytes    = 32 << 20
)

// Request describes one API call. Query is merged into URL.
type Request struct {
	Method string
	URL    string
	Query  url.Values
}

// Fetcher performs bearer-authenticated API calls. An auth failure triggers one
// credential refresh and, when that yields a token, exactly one retry.
type Fetcher struct {
	client  *http.Client
	backoff time.Duration
	logger  *slog.Logger
}

// NewFetcher builds a Fetcher from the sync configuration.
func NewFetcher(cfg *config.Config, logger *slog.Logger) *Fetcher {
	backoff := defaultRetryBackoff
	if cfg != nil && cfg.Sync != nil && cfg.Sync.RetryBackoff > 0 {
		backoff = cfg.Sync.RetryBackoff
	}

	return NewFetcherWithClient(&http.Client{Timeout: time.Minute}, backoff, logger)
}

// NewFetcherWithClient allows callers to supply the HTTP client and backoff.
func NewFetcherWithClient(client *http.Client, backoff time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{client: client, backoff: backoff, logger: logger}
}

// Call sends req with the credentials' current token and decodes a 2xx JSON
// body into out when out is non-nil. The raw body is returned as well.
func (f *Fetcher) Call(ctx context.Context, req Request, creds *service.Credentials, out any) ([]byte, error) {
	status, body, err := f.do(ctx, req, creds.AccessToken())
	if err != nil {
		return nil, err
	}

	if isAuthFailure(status) {
		token, refreshErr := creds.Refresh(ctx)
		if refreshErr != nil || token == "" {
			f.logger.WarnContext(ctx, "Credential refresh after auth failure did not yield a token",
				slog.Int("status", status),
				slog.String("url", req.URL),
				slog.Any("error", refreshErr),
			)

			return nil, newHTTPError(status, req.URL, body)
		}

		if err := sleepContext(ctx, f.backoff); err != nil {
			return nil, errors.WithStack(err)
		}

		status, body, err = f.do(ctx, req, token)
		if err != nil {
			return nil, err
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, newHTTPError(status, req.URL, body)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, errors.Wrapf(err, "decode response from %s", req.URL)
		}
	}

	return body, nil
}

func (f *Fetcher) do(ctx context.Context, req Request, token string) (int, []byte, error) {
	target, err := url.Parse(req.URL)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "parse url %s", req.URL)
	}
	if len(req.Query) > 0 {
		query := target.Query()
		for key, values := range req.Query {
			for _, v := range values {
				query.Add(key, v)
			}
		}
		target.RawQuery = query.Encode()
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		// Transport failures are worth redelivering; the period stays resumable either way.
		return 0, nil, errors.Retryable(errors.Wrapf(err, "request %s", req.URL))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, errors.Wrapf(err, "read response from %s", req.URL)
	}

	return resp.StatusCode, body, nil
}

func isAuthFailure(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

func newHTTPError(status int, rawURL string, body []byte) error {
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}

	return &domainerrors.HTTPError{Status: status, URL: rawURL, Body: string(body)}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
