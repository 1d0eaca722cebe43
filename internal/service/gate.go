package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/get-convex/cla-gate/internal/github"
	"github.com/get-convex/cla-gate/internal/models"
	"github.com/get-convex/cla-gate/internal/ui"
)

var claPattern = regexp.MustCompile(`(?m)` + regexp.QuoteMeta(models.CLAText))

// ContainsCLA reports whether description contains the exact CLA sentence
func ContainsCLA(description string) bool {
	return claPattern.MatchString(description)
}

// GateService contains the CLA gate logic
type GateService struct {
	checker  github.MembershipChecker
	reporter ui.Reporter
	org      string
}

// NewGateService creates a new service instance. An empty org falls back to models.Organization.
func NewGateService(checker github.MembershipChecker, reporter ui.Reporter, org string) *GateService {
	if org == "" {
		org = models.Organization
	}
	return &GateService{
		checker:  checker,
		reporter: reporter,
		org:      org,
	}
}

// Run decides whether the pull request passes the CLA gate
func (s *GateService) Run(ctx context.Context, pr models.PullRequest) models.Outcome {
	if !pr.HasDescription {
		s.reporter.Failure("There was no pull request description given")
		return models.OutcomeMissingDescription
	}

	if s.isExempt(ctx, pr.Author) {
		s.reporter.Success(fmt.Sprintf("%s is a member of %s, skipping CLA check", pr.Author, s.org))
		return models.OutcomeExempt
	}

	if !ContainsCLA(pr.Description) {
		s.reporter.Failure("Pull request description does not include the required CLA text. Please add the following text to your PR description:")
		s.reporter.Block(models.CLAText)
		return models.OutcomeRejected
	}

	s.reporter.Success("Pull request description includes the required CLA text")
	return models.OutcomeAccepted
}

// isExempt performs at most one membership lookup. Any failure to confirm
// membership falls through to the CLA text check.
func (s *GateService) isExempt(ctx context.Context, author string) bool {
	if author == "" {
		s.reporter.Warn("PR_AUTHOR is not set, cannot check organization membership")
		return false
	}

	membership, err := s.checker.CheckMembership(ctx, s.org, author)
	if err != nil {
		s.reporter.Warn(fmt.Sprintf("could not determine whether %s is a member of %s: %v", author, s.org, err))
		return false
	}

	switch membership {
	case models.MembershipMember:
		return true
	case models.MembershipNotMember:
		return false
	default:
		s.reporter.Warn(fmt.Sprintf("could not confirm that %s is a member of %s (membership may be private)", author, s.org))
		return false
	}
}
