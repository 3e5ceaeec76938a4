package models

import (
	"strings"
	"time"
)

// Repository represents a Gitea repository.
type Repository struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	Description     string     `json:"description,omitempty"`
	Owner           *User      `json:"owner,omitempty"`
	Private         bool       `json:"private"`
	Fork            bool       `json:"fork"`
	HTMLURL         string     `json:"html_url,omitempty"`
	CloneURL        string     `json:"clone_url,omitempty"`
	DefaultBranch   string     `json:"default_branch,omitempty"`
	StarsCount      int        `json:"stars_count,omitempty"`
	ForksCount      int        `json:"forks_count,omitempty"`
	OpenIssuesCount int        `json:"open_issues_count,omitempty"`
	OpenPRCounter   int        `json:"open_pr_counter,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// OwnerName returns the owner half of the full name, falling back to the
// owner login when the full name is not in owner/repo form.
func (r *Repository) OwnerName() string {
	if owner, _, ok := strings.Cut(r.FullName, "/"); ok && owner != "" {
		return owner
	}
	if r.Owner != nil {
		return r.Owner.Login
	}
	return ""
}

// RepoName returns the repository half of the full name.
func (r *Repository) RepoName() string {
	if _, repo, ok := strings.Cut(r.FullName, "/"); ok && repo != "" {
		return repo
	}
	return r.Name
}

// RepositorySearchResponse wraps the repository search endpoint response.
type RepositorySearchResponse struct {
	Data []Repository `json:"data"`
	OK   bool         `json:"ok"`
}
