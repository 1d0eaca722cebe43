package github

import (
	"context"

	"github.com/get-convex/cla-gate/internal/models"
)

// MembershipChecker defines the organization membership lookup
type MembershipChecker interface {
	CheckMembership(ctx context.Context, org, username string) (models.Membership, error)
}

// Ensure Client implements MembershipChecker interface
var _ MembershipChecker = (*Client)(nil)
