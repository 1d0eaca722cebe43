package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/get-convex/cla-gate/internal/models"
)

const DefaultAPIURL = "https://api.github.com/"

// LookupFunc reports the value of an environment variable and whether it is set
type LookupFunc func(key string) (string, bool)

// Config holds the inputs of a single gate invocation
type Config struct {
	Description    string
	HasDescription bool
	Author         string
	GitHubToken    string
	APIURL         string
}

// Load reads the gate inputs through lookup. A nil lookup uses os.LookupEnv.
func Load(lookup LookupFunc) *Config {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	description, ok := lookup("PR_DESCRIPTION")
	return &Config{
		Description:    description,
		HasDescription: ok,
		Author:         strings.TrimSpace(getEnv(lookup, "PR_AUTHOR", "")),
		GitHubToken:    getEnv(lookup, "GITHUB_TOKEN", ""),
		APIURL:         getEnv(lookup, "GITHUB_API_URL", DefaultAPIURL),
	}
}

func getEnv(lookup LookupFunc, key, def string) string {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def
	}
	return v
}

// PullRequest returns the PR fields of the config
func (c *Config) PullRequest() models.PullRequest {
	return models.PullRequest{
		Description:    c.Description,
		Author:         c.Author,
		HasDescription: c.HasDescription,
	}
}

// TokenSource resolves a token for a GitHub host, returning the token and where it came from
type TokenSource func(host string) (string, string)

// ResolveToken returns GITHUB_TOKEN when set, otherwise asks source for a token
// for the API host. A nil source disables the fallback.
func (c *Config) ResolveToken(source TokenSource) (token, origin string) {
	if c.GitHubToken != "" {
		return c.GitHubToken, "GITHUB_TOKEN"
	}
	if source == nil {
		return "", ""
	}
	return source(APIHost(c.APIURL))
}

// APIHost maps a REST API base URL to the GitHub hostname it serves
func APIHost(apiURL string) string {
	u, err := url.Parse(apiURL)
	if err != nil || u.Hostname() == "" {
		return "github.com"
	}
	host := u.Hostname()
	if host == "api.github.com" {
		return "github.com"
	}
	return strings.TrimPrefix(host, "api.")
}
