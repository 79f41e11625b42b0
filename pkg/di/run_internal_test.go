package di

import (
	"errors"
	"testing"

	"github.com/nestlint/nestlint/pkg/controller/run"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/oauth2"
)

type fakeTokenSource struct {
	token string
	err   error
	calls int
}

func (s *fakeTokenSource) Token() (*oauth2.Token, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &oauth2.Token{AccessToken: s.token}, nil
}

func TestResolveToken(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		flags    *Flags
		secrets  *Secrets
		source   *fakeTokenSource
		exp      string
		expCalls int
	}{
		{
			name:    "environment variable",
			flags:   &Flags{KeyringEnabled: true},
			secrets: &Secrets{GitHubToken: "env_token"},
			source:  &fakeTokenSource{token: "keyring_token"},
			exp:     "env_token",
		},
		{
			name:     "keyring",
			flags:    &Flags{KeyringEnabled: true},
			secrets:  &Secrets{},
			source:   &fakeTokenSource{token: "keyring_token"},
			exp:      "keyring_token",
			expCalls: 1,
		},
		{
			name:    "keyring is disabled",
			flags:   &Flags{},
			secrets: &Secrets{},
			source:  &fakeTokenSource{token: "keyring_token"},
			exp:     "",
		},
		{
			name:     "keyring error",
			flags:    &Flags{KeyringEnabled: true},
			secrets:  &Secrets{},
			source:   &fakeTokenSource{err: errors.New("secret not found in keyring")},
			exp:      "",
			expCalls: 1,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got := resolveToken(logrus.NewEntry(logrus.New()), d.flags, d.secrets, d.source)
			if got != d.exp {
				t.Errorf("wanted %q, got %q", d.exp, got)
			}
			if d.source.calls != d.expCalls {
				t.Errorf("keyring calls: wanted %d, got %d", d.expCalls, d.source.calls)
			}
		})
	}
}

func TestBuildParam(t *testing.T) {
	t.Parallel()
	data := []struct {
		name      string
		flags     *Flags
		expFormat string
		isErr     bool
	}{
		{name: "default format", flags: &Flags{}, expFormat: run.FormatText},
		{name: "sarif", flags: &Flags{Format: "sarif"}, expFormat: run.FormatSARIF},
		{name: "unknown format", flags: &Flags{Format: "json"}, isErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			param, err := buildParam(d.flags)
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if param.Format != d.expFormat {
				t.Errorf("wanted %s, got %s", d.expFormat, param.Format)
			}
		})
	}
}

func TestReadConfig(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, ".github/nestlint.yaml", []byte("version: 1\nbase_ref: origin/develop\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := readConfig(fs, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseRef != "origin/develop" {
		t.Errorf("wanted origin/develop, got %s", cfg.BaseRef)
	}

	cfg, err = readConfig(afero.NewMemMapFs(), "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseRef != "" {
		t.Errorf("wanted an empty base_ref, got %s", cfg.BaseRef)
	}
}
