package config

import "testing"

func envOf(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name            string
		env             map[string]string
		wantDescription string
		wantHasDesc     bool
		wantAuthor      string
		wantToken       string
		wantAPIURL      string
	}{
		{
			name:       "nothing set",
			env:        map[string]string{},
			wantAPIURL: DefaultAPIURL,
		},
		{
			name:        "empty description is still present",
			env:         map[string]string{"PR_DESCRIPTION": ""},
			wantHasDesc: true,
			wantAPIURL:  DefaultAPIURL,
		},
		{
			name: "all inputs",
			env: map[string]string{
				"PR_DESCRIPTION": "fixes bug",
				"PR_AUTHOR":      " octocat ",
				"GITHUB_TOKEN":   "secret",
				"GITHUB_API_URL": "https://ghes.example.com/api/v3",
			},
			wantDescription: "fixes bug",
			wantHasDesc:     true,
			wantAuthor:      "octocat",
			wantToken:       "secret",
			wantAPIURL:      "https://ghes.example.com/api/v3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load(envOf(tt.env))
			if cfg.Description != tt.wantDescription {
				t.Errorf("Description = %q, want %q", cfg.Description, tt.wantDescription)
			}
			if cfg.HasDescription != tt.wantHasDesc {
				t.Errorf("HasDescription = %v, want %v", cfg.HasDescription, tt.wantHasDesc)
			}
			if cfg.Author != tt.wantAuthor {
				t.Errorf("Author = %q, want %q", cfg.Author, tt.wantAuthor)
			}
			if cfg.GitHubToken != tt.wantToken {
				t.Errorf("GitHubToken = %q, want %q", cfg.GitHubToken, tt.wantToken)
			}
			if cfg.APIURL != tt.wantAPIURL {
				t.Errorf("APIURL = %q, want %q", cfg.APIURL, tt.wantAPIURL)
			}
		})
	}
}

func TestConfig_ResolveToken(t *testing.T) {
	var askedHost string
	source := func(host string) (string, string) {
		askedHost = host
		return "gh-token", "oauth_token"
	}

	tests := []struct {
		name       string
		cfg        Config
		source     TokenSource
		wantToken  string
		wantOrigin string
		wantHost   string
	}{
		{
			name:       "GITHUB_TOKEN wins",
			cfg:        Config{GitHubToken: "env-token", APIURL: DefaultAPIURL},
			source:     source,
			wantToken:  "env-token",
			wantOrigin: "GITHUB_TOKEN",
		},
		{
			name:   "no token and no fallback",
			cfg:    Config{APIURL: DefaultAPIURL},
			source: nil,
		},
		{
			name:       "fallback for github.com",
			cfg:        Config{APIURL: DefaultAPIURL},
			source:     source,
			wantToken:  "gh-token",
			wantOrigin: "oauth_token",
			wantHost:   "github.com",
		},
		{
			name:       "fallback for enterprise host",
			cfg:        Config{APIURL: "https://ghes.example.com/api/v3"},
			source:     source,
			wantToken:  "gh-token",
			wantOrigin: "oauth_token",
			wantHost:   "ghes.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			askedHost = ""
			token, origin := tt.cfg.ResolveToken(tt.source)
			if token != tt.wantToken {
				t.Errorf("token = %q, want %q", token, tt.wantToken)
			}
			if origin != tt.wantOrigin {
				t.Errorf("origin = %q, want %q", origin, tt.wantOrigin)
			}
			if askedHost != tt.wantHost {
				t.Errorf("source asked for host %q, want %q", askedHost, tt.wantHost)
			}
		})
	}
}
