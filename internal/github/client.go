package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v68/github"

	"github.com/get-convex/cla-gate/internal/models"
)

const (
	acceptHeader = "application/vnd.github+json"
	apiVersion   = "2022-11-28"
	userAgent    = "cla-gate"
)

// Client wraps the GitHub REST client
type Client struct {
	rest          *gogithub.Client
	authenticated bool
}

// NewClient creates a client for the REST API at apiURL.
// An empty token leaves requests unauthenticated.
func NewClient(apiURL, token string) (*Client, error) {
	base, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", apiURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", apiURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	rest := gogithub.NewClient(nil)
	if token != "" {
		rest = rest.WithAuthToken(token)
	}
	rest.BaseURL = base
	rest.UserAgent = userAgent

	return &Client{
		rest:          rest,
		authenticated: token != "",
	}, nil
}

// Authenticated reports whether requests carry a bearer token
func (c *Client) Authenticated() bool {
	return c.authenticated
}

// CheckMembership asks whether username is a member of org with a single request.
//
// Only 204 confirms membership. A 404 is ambiguous (private membership,
// non-member, unknown org or user) and yields MembershipUndetermined with no
// error. Anything else yields MembershipUndetermined with an error.
func (c *Client) CheckMembership(ctx context.Context, org, username string) (models.Membership, error) {
	if username == "" {
		return models.MembershipUndetermined, errors.New("username is required")
	}

	path := fmt.Sprintf("orgs/%s/members/%s", url.PathEscape(org), url.PathEscape(username))
	req, err := c.rest.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return models.MembershipUndetermined, fmt.Errorf("failed to build membership request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	resp, err := c.rest.Do(ctx, req, nil)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return models.MembershipUndetermined, nil
	}
	if err != nil {
		return models.MembershipUndetermined, fmt.Errorf("failed to check membership of %s in %s: %w", username, org, err)
	}
	if resp.StatusCode != http.StatusNoContent {
		return models.MembershipUndetermined, fmt.Errorf("unexpected status %d checking membership of %s in %s", resp.StatusCode, username, org)
	}
	return models.MembershipMember, nil
}
