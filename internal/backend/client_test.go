package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nba-draft-hub/internal/auth"
	domainauth "nba-draft-hub/internal/domain/auth"
	"nba-draft-hub/internal/domain/prospects"
	"nba-draft-hub/internal/metrics"
	"nba-draft-hub/internal/testutil"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func stubClient(fn roundTripperFunc) *Client {
	return NewClient(Config{BaseURL: "http://backend.test/", HTTPClient: &http.Client{Transport: fn}})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestIssueTokenSendsRoleAndRepeatedPermissions(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	c := NewClient(Config{BaseURL: fb.URL})

	token, err := c.IssueToken(context.Background(), domainauth.RoleWriter, domainauth.PermissionsFor(domainauth.RoleWriter))
	require.NoError(t, err)

	reqs := fb.Requests()
	require.Len(t, reqs, 1)
	require.Equal(t, "/token", reqs[0].Path)
	require.Equal(t, "permissions=READ&permissions=CREATE&permissions=UPDATE&role=WRITER", reqs[0].Query)
	require.Empty(t, reqs[0].Auth, "token endpoint is unauthenticated")

	claims, err := auth.DecodeUntrustedClaims(token)
	require.NoError(t, err)
	require.Equal(t, domainauth.RoleWriter, claims.Role)
	require.Equal(t, domainauth.PermissionsFor(domainauth.RoleWriter), claims.Permissions)
}

func TestIssueTokenEmptyResponse(t *testing.T) {
	c := stubClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	_, err := c.IssueToken(context.Background(), domainauth.RoleVisitor, nil)
	require.ErrorIs(t, err, ErrNoToken)
}

func TestProspectCRUDAgainstFakeBackend(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	rec := metrics.NewRecorder()
	c := NewClient(Config{BaseURL: fb.URL, Recorder: rec})
	ctx := context.Background()

	token, err := c.IssueToken(ctx, domainauth.RoleAdmin, domainauth.PermissionsFor(domainauth.RoleAdmin))
	require.NoError(t, err)

	require.NoError(t, c.CreateProspect(ctx, token, prospects.Prospect{FirstName: "Victor", LastName: "Wembanyama", Position: "C"}))
	require.NoError(t, c.CreateProspect(ctx, token, prospects.Prospect{FirstName: "Scoot", LastName: "Henderson", Position: "G"}))

	page, err := c.ListProspects(ctx, token, prospects.Query{Page: 0, Size: 1, SortBy: "id", Direction: "asc"})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.TotalItems)
	require.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Players, 1)
	require.Equal(t, "Victor", page.Players[0].FirstName)

	got, err := c.GetProspect(ctx, token, page.Players[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Wembanyama", got.LastName)

	got.College = "Metropolitans 92"
	require.NoError(t, c.UpdateProspect(ctx, token, got.ID, got))
	stored, _ := fb.Prospect(got.ID)
	require.Equal(t, "Metropolitans 92", stored.College)

	require.NoError(t, c.DeleteProspect(ctx, token, got.ID))
	_, ok := fb.Prospect(got.ID)
	require.False(t, ok)

	for _, r := range fb.Requests() {
		if strings.HasPrefix(r.Path, "/prospects") {
			require.Equal(t, "Bearer "+token, r.Auth)
		}
	}
	require.Equal(t, 7, rec.UpstreamCalls(upstreamName))
	require.Zero(t, rec.UpstreamErrors(upstreamName))
}

func TestStatusErrorsAreTyped(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	c := NewClient(Config{BaseURL: fb.URL})
	ctx := context.Background()

	_, err := c.ListProspects(ctx, "", prospects.Query{Size: 10})
	require.True(t, IsStatus(err, http.StatusUnauthorized), "got %v", err)

	visitor, err := c.IssueToken(ctx, domainauth.RoleVisitor, domainauth.PermissionsFor(domainauth.RoleVisitor))
	require.NoError(t, err)
	err = c.DeleteProspect(ctx, visitor, 1)
	require.True(t, IsStatus(err, http.StatusForbidden), "got %v", err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Contains(t, apiErr.Body, "Insufficient permissions")

	_, err = c.GetProspect(ctx, visitor, 999)
	require.True(t, IsStatus(err, http.StatusNotFound), "got %v", err)
}

func TestListProspectsAcceptsBareArray(t *testing.T) {
	c := stubClient(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/prospects" || r.URL.Query().Get("size") != "10" {
			t.Fatalf("unexpected request %s", r.URL)
		}
		return jsonResponse(http.StatusOK, `[{"id":1,"firstName":"A"},{"id":2,"firstName":"B"}]`), nil
	})

	page, err := c.ListProspects(context.Background(), "tok", prospects.Query{Size: 10})
	require.NoError(t, err)
	require.Equal(t, prospects.Page{
		Players:     []prospects.Prospect{{ID: 1, FirstName: "A"}, {ID: 2, FirstName: "B"}},
		TotalItems:  2,
		TotalPages:  1,
		CurrentPage: 0,
	}, page)
}

func TestErrorBodyIsTruncated(t *testing.T) {
	c := stubClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, strings.Repeat("x", 2048)), nil
	})
	err := c.CreateProspect(context.Background(), "tok", prospects.Prospect{FirstName: "A", LastName: "B"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Len(t, apiErr.Body, errorBodyLimit)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	boom := errors.New("connection refused")
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	c := NewClient(Config{
		BaseURL:  "http://backend.test",
		Recorder: rec,
		Logger:   logger,
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, boom
		})},
	})

	_, err := c.GetProspect(context.Background(), "tok", 1)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, rec.UpstreamErrors(upstreamName))
	require.Contains(t, buf.String(), "backend call failed")
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	require.Equal(t, defaultBaseURL, c.baseURL)
	hc, ok := c.httpClient.(*http.Client)
	require.True(t, ok)
	require.Equal(t, defaultHTTPTimeout, hc.Timeout)
}
