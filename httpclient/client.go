// Package httpclient is the only component that talks to the backend. Every
// call resolves to a models.Envelope; transport failures, non-2xx statuses and
// undecodable bodies are all turned into failed envelopes here and never
// escape as Go errors or panics.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"medicare/models"
	"medicare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// TokenSource yields the bearer token to attach to authenticated requests. It
// is consulted on every call, so a token change between calls is picked up.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// Config holds client configuration.
type Config struct {
	BaseURL    string
	Tokens     TokenSource
	HTTPClient *http.Client
	// Timeout is applied only when HTTPClient is nil. Zero means the client
	// relies on the transport's own behaviour.
	Timeout time.Duration
	// RequestsPerMinute throttles outbound calls; zero disables throttling.
	RequestsPerMinute int
	Logger            *zap.Logger
}

// Client performs JSON and multipart requests against the backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger

	mu             sync.RWMutex
	tokens         TokenSource
	onUnauthorized func(token, message string)
}

// New creates a new API client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
		tokens:     cfg.Tokens,
	}
	if cfg.RequestsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute)
	}
	return c
}

// SetTokenSource replaces the token source. The session store registers
// itself here once it has been built on top of this client.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

// OnUnauthorized registers fn to be called when an authenticated request is
// answered with 401. fn receives the token that request carried, which may
// no longer be the current one.
func (c *Client) OnUnauthorized(fn func(token, message string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, authRequired bool) models.Envelope {
	return c.do(ctx, http.MethodGet, path, nil, authRequired)
}

// Post performs a POST request. A *Form body is sent as multipart form data;
// any other body is JSON encoded.
func (c *Client) Post(ctx context.Context, path string, body any, authRequired bool) models.Envelope {
	return c.do(ctx, http.MethodPost, path, body, authRequired)
}

// Put performs a PUT request with the same body rules as Post.
func (c *Client) Put(ctx context.Context, path string, body any, authRequired bool) models.Envelope {
	return c.do(ctx, http.MethodPut, path, body, authRequired)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, authRequired bool) models.Envelope {
	return c.do(ctx, http.MethodDelete, path, nil, authRequired)
}

// Ping reports whether the backend answers at all. Any HTTP response counts
// as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (c *Client) do(ctx context.Context, method, path string, body any, authRequired bool) models.Envelope {
	requestID := uuid.NewString()
	log := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			log.Warn("request throttled", zap.Error(err))
			return transportFailure(err)
		}
	}

	reader, contentType, err := encodeBody(body)
	if err != nil {
		log.Warn("failed to encode request body", zap.Error(err))
		return transportFailure(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return transportFailure(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(utils.RequestIDHeader, requestID)

	var sentToken string
	if authRequired {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
			sentToken = tok
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return transportFailure(err)
	}
	defer resp.Body.Close()

	env := c.handleResponse(resp)
	log.Debug("request completed",
		zap.Int("status", resp.StatusCode),
		zap.Bool("success", env.Success),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized && sentToken != "" {
		c.mu.RLock()
		fn := c.onUnauthorized
		c.mu.RUnlock()
		if fn != nil {
			fn(sentToken, env.Message)
		}
	}
	return env
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *Form:
		return b.encode()
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode request body: %w", err)
		}
		return bytes.NewReader(raw), "application/json", nil
	}
}
