// Package github fetches public repository listings from the GitHub API for
// the profile enrichment endpoint.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrUserNotFound = errors.New("github user not found")
	ErrUnavailable  = errors.New("github api unavailable")
)

// Repo is the subset of the GitHub repository payload passed through to
// clients.
type Repo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Watchers    int    `json:"watchers_count"`
	Language    string `json:"language"`
}

// Client calls the GitHub REST API. Credentials are optional; without them
// requests count against the unauthenticated rate limit.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	secret     string
}

func NewClient(clientID, secret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://api.github.com",
		clientID:   clientID,
		secret:     secret,
	}
}

// ListRepos returns the user's five most recently created public
// repositories. A 404 from GitHub maps to ErrUserNotFound; any other
// failure maps to ErrUnavailable. No retries.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	query := url.Values{}
	query.Set("per_page", "5")
	query.Set("sort", "created:asc")
	if c.clientID != "" {
		query.Set("client_id", c.clientID)
		query.Set("client_secret", c.secret)
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "devconnect-api")
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrUserNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, ErrUnavailable
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, ErrUnavailable
	}

	return repos, nil
}
