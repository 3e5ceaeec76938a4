package models

import "time"

// PullRequest represents a Gitea pull request.
type PullRequest struct {
	ID        int64      `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	User      *User      `json:"user,omitempty"`
	State     string     `json:"state"`
	Labels    []Label    `json:"labels,omitempty"`
	Milestone *Milestone `json:"milestone,omitempty"`
	Assignees []User     `json:"assignees,omitempty"`
	Head      *PRBranch  `json:"head,omitempty"`
	Base      *PRBranch  `json:"base,omitempty"`
	Mergeable bool       `json:"mergeable,omitempty"`
	Merged    bool       `json:"merged,omitempty"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
	MergedBy  *User      `json:"merged_by,omitempty"`
	Comments  int        `json:"comments,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	// Repository is only populated in search results.
	Repository *Repository `json:"repository,omitempty"`
}

// IsOpen reports whether the pull request is in the open state.
func (p *PullRequest) IsOpen() bool {
	return p.State == "open"
}

// StatusText returns a display label for the pull request state.
func (p *PullRequest) StatusText() string {
	switch {
	case p.Merged:
		return "Merged"
	case p.IsOpen():
		return "Open"
	default:
		return "Closed"
	}
}

// PRBranch identifies one side of a pull request.
type PRBranch struct {
	Ref  string      `json:"ref"`
	SHA  string      `json:"sha,omitempty"`
	Repo *Repository `json:"repo,omitempty"`
}

// MergeMethod is a pull request merge strategy accepted by the merge endpoint.
type MergeMethod string

const (
	MergeMethodMerge           MergeMethod = "merge"
	MergeMethodRebase          MergeMethod = "rebase"
	MergeMethodSquash          MergeMethod = "squash"
	MergeMethodFastForwardOnly MergeMethod = "fast-forward-only"
)

// DisplayName returns a human-readable name for the merge method.
func (m MergeMethod) DisplayName() string {
	switch m {
	case MergeMethodMerge:
		return "Merge commit"
	case MergeMethodRebase:
		return "Rebase"
	case MergeMethodSquash:
		return "Squash"
	case MergeMethodFastForwardOnly:
		return "Fast-forward"
	default:
		return string(m)
	}
}
