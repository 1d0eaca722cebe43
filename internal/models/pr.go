package models

// CLAText is the acknowledgement sentence a PR description must contain
const CLAText = "By submitting this pull request, I confirm that you can use, modify, copy, and redistribute this contribution, under the terms of your choice."

// Organization whose members are exempt from the CLA check
const Organization = "get-convex"

// PullRequest represents the PR metadata handed to the gate by CI
type PullRequest struct {
	Description    string `json:"description"`
	Author         string `json:"author"`
	HasDescription bool   `json:"-"`
}

// Membership is the result of an organization membership lookup.
// The zero value is MembershipUndetermined.
type Membership int

const (
	MembershipUndetermined Membership = iota
	MembershipMember
	MembershipNotMember
)

func (m Membership) String() string {
	switch m {
	case MembershipMember:
		return "member"
	case MembershipNotMember:
		return "not-member"
	default:
		return "undetermined"
	}
}

// Outcome is the final verdict of a gate run
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeAccepted
	OutcomeExempt
	OutcomeMissingDescription
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeExempt:
		return "exempt"
	case OutcomeMissingDescription:
		return "missing-description"
	default:
		return "rejected"
	}
}

// ExitCode maps the outcome to the process exit status
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeAccepted, OutcomeExempt:
		return 0
	default:
		return 1
	}
}
