package leave

import (
	"strings"

	leaveerrors "github.com/SopitaJW/leave-management/internal/leave/errors"
)

// Internal status enum. The client-facing labels never appear in storage or
// in business logic; translation happens only at the HTTP boundary.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	LabelPending  = "Pending"
	LabelApproved = "Approved"
	LabelRejected = "Rejected"
)

// StatusLabel translates an internal status into its client label.
func StatusLabel(status string) string {
	switch status {
	case StatusPending:
		return LabelPending
	case StatusApproved:
		return LabelApproved
	case StatusRejected:
		return LabelRejected
	default:
		return status
	}
}

// ParseStatus accepts either the client label or the internal form,
// case-insensitively, and returns the internal status.
func ParseStatus(v string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", leaveerrors.ErrInvalidStatus
	}
}

// ParseStatusFilter is ParseStatus with "all" (and empty) meaning no filter.
func ParseStatusFilter(v string) (string, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return "", nil
	}
	return ParseStatus(trimmed)
}

// ParseDecision maps the PUT body's status field onto one of the two terminal
// states. Anything else, including Pending, is not a decision.
func ParseDecision(v string) (string, error) {
	status, err := ParseStatus(v)
	if err != nil {
		return "", leaveerrors.ErrInvalidDecision
	}
	if status != StatusApproved && status != StatusRejected {
		return "", leaveerrors.ErrInvalidDecision
	}
	return status, nil
}
