package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainauth "nba-draft-hub/internal/domain/auth"
	"nba-draft-hub/internal/domain/prospects"
	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/metrics"
)

const (
	upstreamName       = "backend"
	defaultBaseURL     = "http://localhost:8080"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the backend.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Recorder   *metrics.Recorder
	Logger     *slog.Logger
}

// Client talks to the token and prospects endpoints. It holds no credentials:
// every authenticated call takes the bearer token as an argument.
type Client struct {
	baseURL    string
	httpClient httpDoer
	recorder   *metrics.Recorder
	logger     *slog.Logger
}

// NewClient constructs a backend client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    base,
		httpClient: doer,
		recorder:   cfg.Recorder,
		logger:     cfg.Logger,
	}
}

// IssueToken calls GET /token with the role and one permissions parameter per permission.
func (c *Client) IssueToken(ctx context.Context, role domainauth.Role, permissions []domainauth.Permission) (string, error) {
	q := url.Values{}
	q.Set("role", string(role))
	for _, p := range permissions {
		q.Add("permissions", string(p))
	}

	var payload tokenResponse
	if err := c.do(ctx, http.MethodGet, "/token", q, "", nil, &payload); err != nil {
		return "", err
	}
	if payload.Token == "" {
		return "", ErrNoToken
	}
	return payload.Token, nil
}

// ListProspects fetches one page of prospects. A bare JSON array (older
// backends without paging) is treated as a single page.
func (c *Client) ListProspects(ctx context.Context, token string, query prospects.Query) (prospects.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(query.Page))
	q.Set("size", strconv.Itoa(query.Size))
	if query.SortBy != "" {
		q.Set("sortBy", query.SortBy)
	}
	if query.Direction != "" {
		q.Set("direction", query.Direction)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/prospects", q, token, nil, &raw); err != nil {
		return prospects.Page{}, err
	}
	return decodeProspectPage(raw)
}

// GetProspect fetches a single prospect.
func (c *Client) GetProspect(ctx context.Context, token string, id int64) (prospects.Prospect, error) {
	var p prospects.Prospect
	if err := c.do(ctx, http.MethodGet, prospectPath(id), nil, token, nil, &p); err != nil {
		return prospects.Prospect{}, err
	}
	return p, nil
}

// CreateProspect posts a new prospect. The backend answers with plain text.
func (c *Client) CreateProspect(ctx context.Context, token string, p prospects.Prospect) error {
	return c.do(ctx, http.MethodPost, "/prospects", nil, token, p, nil)
}

// UpdateProspect replaces the prospect with id.
func (c *Client) UpdateProspect(ctx context.Context, token string, id int64, p prospects.Prospect) error {
	return c.do(ctx, http.MethodPut, prospectPath(id), nil, token, p, nil)
}

// DeleteProspect removes the prospect with id.
func (c *Client) DeleteProspect(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, prospectPath(id), nil, token, nil, nil)
}

func prospectPath(id int64) string {
	return "/prospects/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, token string, body any, out any) (err error) {
	start := time.Now()
	defer func() {
		c.recorder.RecordUpstreamCall(upstreamName, time.Since(start), err)
		if err != nil {
			logging.Warn(logging.FromContext(ctx, c.logger), "backend call failed",
				logging.FieldMethod, method,
				logging.FieldPath, path,
				"error", err,
			)
		}
	}()

	req, err := c.buildRequest(ctx, method, path, q, token, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, method, path string, q url.Values, token string, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}
