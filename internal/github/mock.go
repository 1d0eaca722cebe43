package github

import (
	"context"

	"github.com/get-convex/cla-gate/internal/models"
)

// MockClient implements MembershipChecker for testing
type MockClient struct {
	// Control test behavior
	Membership      models.Membership
	MembershipError error

	// Track method calls
	CheckMembershipCalls int

	// Store call arguments for verification
	LastOrg      string
	LastUsername string
}

// CheckMembership mocks the membership API call
func (m *MockClient) CheckMembership(ctx context.Context, org, username string) (models.Membership, error) {
	m.CheckMembershipCalls++
	m.LastOrg = org
	m.LastUsername = username
	return m.Membership, m.MembershipError
}
