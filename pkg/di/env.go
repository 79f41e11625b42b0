package di

// Secrets holds the token used to post pull request comments.
type Secrets struct {
	GitHubToken string
}

// SetFromEnv reads NESTLINT_GITHUB_TOKEN and falls back to GITHUB_TOKEN.
func (s *Secrets) SetFromEnv(getEnv func(string) string) {
	s.GitHubToken = getEnv("NESTLINT_GITHUB_TOKEN")
	if s.GitHubToken == "" {
		s.GitHubToken = getEnv("GITHUB_TOKEN")
	}
}

// SetEnv populates flags from environment variables.
func SetEnv(flags *Flags, getEnv func(string) string) {
	flags.GitHubRepository = getEnv("GITHUB_REPOSITORY")
	flags.GitHubAPIURL = getEnv("GITHUB_API_URL")
	flags.GitHubEventPath = getEnv("GITHUB_EVENT_PATH")
	trueS := "true"
	flags.IsGitHubActions = getEnv("GITHUB_ACTIONS") == trueS
	flags.KeyringEnabled = getEnv("NESTLINT_KEYRING_ENABLED") == trueS
}
