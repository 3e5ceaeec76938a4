package models

// Branch represents a repository branch.
type Branch struct {
	Name      string        `json:"name"`
	Commit    *BranchCommit `json:"commit,omitempty"`
	Protected bool          `json:"protected,omitempty"`
}

// BranchCommit carries the tip commit summary returned with a branch.
type BranchCommit struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}
