package github_test

import (
	"context"
	"testing"

	"github.com/nestlint/nestlint/pkg/github"
)

func TestIsDefaultAPIURL(t *testing.T) {
	t.Parallel()
	data := map[string]bool{
		"":                                true,
		"https://api.github.com":          true,
		"https://api.github.com/":         true,
		"https://ghes.example.com/api/v3": false,
	}
	for apiURL, exp := range data {
		t.Run(apiURL, func(t *testing.T) {
			t.Parallel()
			if got := github.IsDefaultAPIURL(apiURL); got != exp {
				t.Errorf("wanted %v, got %v", exp, got)
			}
		})
	}
}

func TestNewFromAPIURL(t *testing.T) {
	t.Parallel()
	data := []struct {
		name       string
		apiURL     string
		expBaseURL string
	}{
		{name: "github.com", apiURL: "", expBaseURL: "https://api.github.com/"},
		{name: "ghes", apiURL: "https://ghes.example.com/api/v3", expBaseURL: "https://ghes.example.com/api/v3/"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			client, err := github.NewFromAPIURL(context.Background(), d.apiURL, "token")
			if err != nil {
				t.Fatal(err)
			}
			if got := client.BaseURL.String(); got != d.expBaseURL {
				t.Errorf("wanted %q, got %q", d.expBaseURL, got)
			}
		})
	}
}
