package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/domain/teams"
	"nba-draft-hub/internal/providers"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches teams and players from the balldontlie API and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchTeams lists every team. The payload may be a bare array or {"data": [...]}.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	body, err := c.get(ctx, "/teams", nil)
	if err != nil {
		return nil, err
	}
	raw, err := decodeList[teamResponse](body)
	if err != nil {
		return nil, fmt.Errorf("balldontlie: decode teams: %w", err)
	}
	out := make([]teams.Team, 0, len(raw))
	for _, t := range raw {
		out = append(out, mapTeam(t))
	}
	return out, nil
}

// FetchTeam retrieves one team by id.
func (c *Client) FetchTeam(ctx context.Context, id int) (teams.Team, error) {
	body, err := c.get(ctx, "/teams/"+strconv.Itoa(id), nil)
	if err != nil {
		return teams.Team{}, err
	}
	raw, err := decodeSingle[teamResponse](body)
	if err != nil {
		return teams.Team{}, fmt.Errorf("balldontlie: decode team %d: %w", id, err)
	}
	return mapTeam(raw), nil
}

// FetchPlayers retrieves one cursor page of players.
func (c *Client) FetchPlayers(ctx context.Context, q players.Query) (players.Page, error) {
	body, err := c.get(ctx, "/players", playerParams(q))
	if err != nil {
		return players.Page{}, err
	}
	var payload playersResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return players.Page{}, fmt.Errorf("balldontlie: decode players: %w", err)
	}
	return mapPage(payload), nil
}

// FetchPlayer retrieves one player by id.
func (c *Client) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	body, err := c.get(ctx, "/players/"+strconv.Itoa(id), nil)
	if err != nil {
		return players.Player{}, err
	}
	raw, err := decodeSingle[playerResponse](body)
	if err != nil {
		return players.Player{}, fmt.Errorf("balldontlie: decode player %d: %w", id, err)
	}
	return mapPlayer(raw), nil
}

func playerParams(q players.Query) url.Values {
	params := url.Values{}
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Cursor != "" {
		params.Set("cursor", q.Cursor)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.FirstName != "" {
		params.Set("first_name", q.FirstName)
	}
	if q.LastName != "" {
		params.Set("last_name", q.LastName)
	}
	for _, id := range formatIDs(q.TeamIDs) {
		params.Add("team_ids[]", id)
	}
	return params
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return io.ReadAll(resp.Body)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("balldontlie %s: %w", path, providers.ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    strings.TrimSpace(string(body)),
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
}
