package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(upstream *httptest.Server) *Client {
	c := NewClient("", "")
	c.baseURL = upstream.URL
	c.httpClient = upstream.Client()
	return c
}

func TestListRepos(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"hello","html_url":"https://github.com/octocat/hello","stargazers_count":3}]`))
	}))
	defer upstream.Close()

	repos, err := newTestClient(upstream).ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "hello", repos[0].Name)
	assert.Equal(t, 3, repos[0].Stars)
}

func TestListRepos_UserNotFound(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	_, err := newTestClient(upstream).ListRepos(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListRepos_UpstreamFailure(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	_, err := newTestClient(upstream).ListRepos(context.Background(), "octocat")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestListRepos_BadPayload(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer upstream.Close()

	_, err := newTestClient(upstream).ListRepos(context.Background(), "octocat")
	assert.ErrorIs(t, err, ErrUnavailable)
}
