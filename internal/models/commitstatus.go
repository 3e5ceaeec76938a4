package models

import "time"

// CommitStatusState is the state of an individual or combined CI check.
type CommitStatusState string

const (
	CommitStatusPending CommitStatusState = "pending"
	CommitStatusSuccess CommitStatusState = "success"
	CommitStatusError   CommitStatusState = "error"
	CommitStatusFailure CommitStatusState = "failure"
	CommitStatusWarning CommitStatusState = "warning"
	CommitStatusUnknown CommitStatusState = "unknown"
)

// State normalizes a raw status string to a known state.
func (s CommitStatusState) Normalize() CommitStatusState {
	switch s {
	case CommitStatusPending, CommitStatusSuccess, CommitStatusError,
		CommitStatusFailure, CommitStatusWarning:
		return s
	default:
		return CommitStatusUnknown
	}
}

// CommitStatus represents one CI check attached to a commit.
type CommitStatus struct {
	ID          int64      `json:"id"`
	Status      string     `json:"status"`
	Context     string     `json:"context"`
	Description string     `json:"description,omitempty"`
	TargetURL   string     `json:"target_url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// State returns the normalized state of this check.
func (c *CommitStatus) State() CommitStatusState {
	return CommitStatusState(c.Status).Normalize()
}

// CombinedStatus represents the combined state of all checks for a commit.
type CombinedStatus struct {
	State      string         `json:"state"`
	SHA        string         `json:"sha"`
	TotalCount int            `json:"total_count"`
	Statuses   []CommitStatus `json:"statuses"`
	CommitURL  string         `json:"commit_url,omitempty"`
	URL        string         `json:"url,omitempty"`
}

// OverallState returns the normalized combined state.
func (c *CombinedStatus) OverallState() CommitStatusState {
	return CommitStatusState(c.State).Normalize()
}

// AllPassed reports whether every check succeeded.
func (c *CombinedStatus) AllPassed() bool {
	return c.OverallState() == CommitStatusSuccess
}

// HasPending reports whether any check is still running.
func (c *CombinedStatus) HasPending() bool {
	for _, s := range c.Statuses {
		if s.State() == CommitStatusPending {
			return true
		}
	}
	return false
}

// HasFailed reports whether any check failed or errored.
func (c *CombinedStatus) HasFailed() bool {
	for _, s := range c.Statuses {
		if st := s.State(); st == CommitStatusFailure || st == CommitStatusError {
			return true
		}
	}
	return false
}
