package models

// Request bodies sent to the Gitea API. Wire names are snake_case except
// for the merge request's "Do" field, which the server expects capitalized.

// CreateIssueRequest is the body for creating an issue.
type CreateIssueRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UpdateIssueRequest is the body for patching an issue. Nil fields are
// omitted so the server leaves them unchanged.
type UpdateIssueRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
	State *string `json:"state,omitempty"`
}

// CreateCommentRequest is the body for creating or editing a comment.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

// CreatePullRequestRequest is the body for opening a pull request.
type CreatePullRequestRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Head  string `json:"head"`
	Base  string `json:"base"`
}

// UpdatePullRequestRequest is the body for patching a pull request.
type UpdatePullRequestRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
	State *string `json:"state,omitempty"`
}

// MergePullRequestRequest is the body for merging a pull request. The
// server's API takes the merge method under the capitalized key "Do".
type MergePullRequestRequest struct {
	Do                string `json:"Do"`
	MergeMessageField string `json:"merge_message_field,omitempty"`
}
