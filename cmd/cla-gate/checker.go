package main

import (
	"context"
	"fmt"

	"github.com/get-convex/cla-gate/internal/config"
	"github.com/get-convex/cla-gate/internal/github"
	"github.com/get-convex/cla-gate/internal/models"
	"github.com/get-convex/cla-gate/internal/ui"
)

// lazyChecker resolves the token and builds the GitHub client on the first
// lookup, so runs that never reach the membership check touch neither.
// A client setup failure is reported as an undetermined lookup.
type lazyChecker struct {
	cfg      *config.Config
	source   config.TokenSource
	reporter ui.Reporter
}

var _ github.MembershipChecker = (*lazyChecker)(nil)

func (l *lazyChecker) CheckMembership(ctx context.Context, org, username string) (models.Membership, error) {
	token, origin := l.cfg.ResolveToken(l.source)
	if token != "" && origin != "GITHUB_TOKEN" {
		l.reporter.Info(fmt.Sprintf("Using GitHub token from %s", origin))
	}

	client, err := github.NewClient(l.cfg.APIURL, token)
	if err != nil {
		return models.MembershipUndetermined, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	if !client.Authenticated() {
		l.reporter.Info("No GitHub token available, checking organization membership unauthenticated")
	}
	return client.CheckMembership(ctx, org, username)
}
