// Package github creates GitHub API clients for posting pull request comments.
// Clients authenticate with an OAuth2 static token. The token itself is
// resolved by the caller (environment variable or OS keyring) and passed in
// explicitly. GitHub Enterprise Server is supported through a custom API URL.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
)

type (
	Client       = github.Client
	IssueComment = github.IssueComment
	Response     = github.Response
)

const DefaultAPIURL = "https://api.github.com"

// New creates a GitHub API client for github.com.
// An empty token returns an unauthenticated client.
func New(ctx context.Context, token string) *Client {
	return github.NewClient(getHTTPClientForGitHub(ctx, token))
}

// NewWithBaseURL creates a GitHub API client for a GitHub Enterprise Server.
// baseURL is the REST API endpoint, e.g. https://ghes.example.com/api/v3.
func NewWithBaseURL(ctx context.Context, baseURL, token string) (*Client, error) {
	client, err := New(ctx, token).WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("set the GitHub Enterprise Server URL: %w", err)
	}
	return client, nil
}

// NewFromAPIURL selects github.com or GitHub Enterprise Server by apiURL.
// An empty apiURL or DefaultAPIURL means github.com.
func NewFromAPIURL(ctx context.Context, apiURL, token string) (*Client, error) {
	if IsDefaultAPIURL(apiURL) {
		return New(ctx, token), nil
	}
	return NewWithBaseURL(ctx, apiURL, token)
}

func IsDefaultAPIURL(apiURL string) bool {
	return apiURL == "" || strings.TrimSuffix(apiURL, "/") == DefaultAPIURL
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return github.Ptr(v)
}

func getHTTPClientForGitHub(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}
