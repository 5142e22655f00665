package domain

import "fmt"

// Decision is a staff verdict on an application under review.
type Decision string

const (
	DecisionAccept   Decision = "accept"
	DecisionRevision Decision = "revision"
	DecisionReject   Decision = "reject"
)

// ParseDecision maps a request string onto a Decision.
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionAccept, DecisionRevision, DecisionReject:
		return Decision(s), nil
	}
	return "", fmt.Errorf("%w: unknown decision %q", ErrInvalidTransition, s)
}

// StatusFor returns the status a decision leads to.
func (d Decision) StatusFor() ApplicationStatus {
	switch d {
	case DecisionAccept:
		return StatusAccepted
	case DecisionRevision:
		return StatusNeedsRevision
	default:
		return StatusRejected
	}
}

// CanEdit reports whether the owning applicant may still change values.
// Derived from status on every read, never stored.
func CanEdit(s ApplicationStatus) bool {
	return s == StatusNew || s == StatusNeedsRevision
}

// Submit is the applicant transition into review. Only editable applications
// may be submitted; validation is the caller's precondition.
func Submit(current ApplicationStatus) (ApplicationStatus, error) {
	if !CanEdit(current) {
		return current, fmt.Errorf("%w: submit from %q", ErrInvalidTransition, current)
	}
	return StatusPendingReview, nil
}

// Decide is the staff transition out of review. Decisions are valid from
// PendingReview only. Repeating the decision that produced the current status
// is an idempotent no-op (changed=false); Accepted and Rejected are otherwise
// terminal, with no reopen path.
func Decide(current ApplicationStatus, d Decision) (next ApplicationStatus, changed bool, err error) {
	target := d.StatusFor()
	if current == target {
		return current, false, nil
	}
	if current != StatusPendingReview {
		return current, false, fmt.Errorf("%w: %q from %q", ErrInvalidTransition, d, current)
	}
	return target, true, nil
}
