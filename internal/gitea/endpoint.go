// Package gitea provides a client for the Gitea REST API (/api/v1).
// This package centralizes request construction, authentication headers,
// and error classification for the application.
package gitea

import (
	"fmt"
	"net/http"
)

// Param is one query parameter. Values are pre-stringified and order is
// preserved when the URL is built.
type Param struct {
	Name  string
	Value string
}

// Endpoint is an immutable description of one API call. The path is
// server-relative without the /api/v1 prefix. Endpoints are constructed
// via the factory functions below, one per logical operation, so path
// interpolation and parameter defaults live in exactly one place.
type Endpoint struct {
	Path   string
	Method string
	Params []Param
	Body   any
}

func pageParams(page, limit int) []Param {
	return []Param{
		{Name: "page", Value: fmt.Sprintf("%d", page)},
		{Name: "limit", Value: fmt.Sprintf("%d", limit)},
	}
}

// CurrentUser returns the endpoint for the authenticated user profile.
func CurrentUser() Endpoint {
	return Endpoint{Path: "/user", Method: http.MethodGet}
}

// Repositories lists the authenticated user's repositories.
func Repositories(page, limit int) Endpoint {
	return Endpoint{
		Path:   "/user/repos",
		Method: http.MethodGet,
		Params: pageParams(page, limit),
	}
}

// GetRepository fetches a single repository.
func GetRepository(owner, repo string) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s", owner, repo),
		Method: http.MethodGet,
	}
}

// SearchRepositories searches repositories visible to the user.
func SearchRepositories(query string, page, limit int) Endpoint {
	return Endpoint{
		Path:   "/repos/search",
		Method: http.MethodGet,
		Params: append([]Param{{Name: "q", Value: query}}, pageParams(page, limit)...),
	}
}

// SearchIssues searches issues across repositories.
func SearchIssues(query, state string, page, limit int) Endpoint {
	return Endpoint{
		Path:   "/repos/issues/search",
		Method: http.MethodGet,
		Params: append([]Param{
			{Name: "q", Value: query},
			{Name: "state", Value: state},
			{Name: "type", Value: "issues"},
		}, pageParams(page, limit)...),
	}
}

// SearchPullRequests searches pull requests across repositories.
func SearchPullRequests(query, state string, page, limit int) Endpoint {
	return Endpoint{
		Path:   "/repos/issues/search",
		Method: http.MethodGet,
		Params: append([]Param{
			{Name: "q", Value: query},
			{Name: "state", Value: state},
			{Name: "type", Value: "pulls"},
		}, pageParams(page, limit)...),
	}
}

// WatchRepository subscribes the user to repository notifications.
func WatchRepository(owner, repo string) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/subscription", owner, repo),
		Method: http.MethodPut,
	}
}

// UnwatchRepository removes the user's repository subscription.
func UnwatchRepository(owner, repo string) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/subscription", owner, repo),
		Method: http.MethodDelete,
	}
}

// Branches lists a repository's branches.
func Branches(owner, repo string) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/branches", owner, repo),
		Method: http.MethodGet,
	}
}

// Issues lists a repository's issues.
func Issues(owner, repo, state string, page, limit int) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues", owner, repo),
		Method: http.MethodGet,
		Params: append([]Param{{Name: "state", Value: state}},
			append(pageParams(page, limit), Param{Name: "type", Value: "issues"})...),
	}
}

// GetIssue fetches a single issue by index.
func GetIssue(owner, repo string, index int) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, index),
		Method: http.MethodGet,
	}
}

// CreateIssue opens a new issue.
func CreateIssue(owner, repo string, body any) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues", owner, repo),
		Method: http.MethodPost,
		Body:   body,
	}
}

// UpdateIssue patches an existing issue.
func UpdateIssue(owner, repo string, index int, body any) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, index),
		Method: http.MethodPatch,
		Body:   body,
	}
}

// IssueComments lists the comments on an issue or pull request. Pull
// request comments use the issues endpoint in Gitea.
func IssueComments(owner, repo string, index, page int) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/%d/comments", owner, repo, index),
		Method: http.MethodGet,
		Params: []Param{{Name: "page", Value: fmt.Sprintf("%d", page)}},
	}
}

// CreateIssueComment adds a comment to an issue or pull request.
func CreateIssueComment(owner, repo string, index int, body any) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/%d/comments", owner, repo, index),
		Method: http.MethodPost,
		Body:   body,
	}
}

// EditComment updates an existing comment by ID.
func EditComment(owner, repo string, commentID int64, body any) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/comments/%d", owner, repo, commentID),
		Method: http.MethodPatch,
		Body:   body,
	}
}

// DeleteComment removes a comment by ID.
func DeleteComment(owner, repo string, commentID int64) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/comments/%d", owner, repo, commentID),
		Method: http.MethodDelete,
	}
}

// PullRequests lists a repository's pull requests.
func PullRequests(owner, repo, state string, page, limit int) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/pulls", owner, repo),
		Method: http.MethodGet,
		Params: append([]Param{{Name: "state", Value: state}}, pageParams(page, limit)...),
	}
}

// GetPullRequest fetches a single pull request by index.
func GetPullRequest(owner, repo string, index int) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, index),
		Method: http.MethodGet,
	}
}

// CreatePullRequest opens a new pull request.
func CreatePullRequest(owner, repo string, body any) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/pulls", owner, repo),
		Method: http.MethodPost,
		Body:   body,
	}
}

// UpdatePullRequest patches an existing pull request.
func UpdatePullRequest(owner, repo string, index int, body any) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, index),
		Method: http.MethodPatch,
		Body:   body,
	}
}

// MergePullRequest merges a pull request.
func MergePullRequest(owner, repo string, index int, body any) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/pulls/%d/merge", owner, repo, index),
		Method: http.MethodPost,
		Body:   body,
	}
}

// CommitStatus fetches the combined CI status for a commit.
func CommitStatus(owner, repo, sha string) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/commits/%s/status", owner, repo, sha),
		Method: http.MethodGet,
	}
}

// ActionRuns lists Actions workflow runs for a repository.
func ActionRuns(owner, repo string, page, limit int) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/actions/runs", owner, repo),
		Method: http.MethodGet,
		Params: pageParams(page, limit),
	}
}

// IssueAttachments lists the attachments on an issue.
func IssueAttachments(owner, repo string, index int) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/%d/assets", owner, repo, index),
		Method: http.MethodGet,
	}
}

// UploadIssueAttachment uploads a file to an issue (multipart/form-data).
func UploadIssueAttachment(owner, repo string, index int) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/%d/assets", owner, repo, index),
		Method: http.MethodPost,
	}
}

// DeleteIssueAttachment removes an attachment from an issue.
func DeleteIssueAttachment(owner, repo string, index int, attachmentID int64) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/%d/assets/%d", owner, repo, index, attachmentID),
		Method: http.MethodDelete,
	}
}

// CommentAttachments lists the attachments on a comment.
func CommentAttachments(owner, repo string, commentID int64) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/comments/%d/assets", owner, repo, commentID),
		Method: http.MethodGet,
	}
}

// UploadCommentAttachment uploads a file to a comment (multipart/form-data).
func UploadCommentAttachment(owner, repo string, commentID int64) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/comments/%d/assets", owner, repo, commentID),
		Method: http.MethodPost,
	}
}

// DeleteCommentAttachment removes an attachment from a comment.
func DeleteCommentAttachment(owner, repo string, commentID, attachmentID int64) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/repos/%s/%s/issues/comments/%d/assets/%d", owner, repo, commentID, attachmentID),
		Method: http.MethodDelete,
	}
}

// Notifications lists the user's notification threads.
func Notifications(all bool, page, limit int) Endpoint {
	allValue := "false"
	if all {
		allValue = "true"
	}
	return Endpoint{
		Path:   "/notifications",
		Method: http.MethodGet,
		Params: append([]Param{{Name: "all", Value: allValue}}, pageParams(page, limit)...),
	}
}

// MarkNotificationRead marks one notification thread as read.
func MarkNotificationRead(id string) Endpoint {
	return Endpoint{
		Path:   fmt.Sprintf("/notifications/threads/%s", id),
		Method: http.MethodPatch,
		Params: []Param{{Name: "to-status", Value: "read"}},
	}
}

// MarkAllNotificationsRead marks every notification thread as read.
func MarkAllNotificationsRead() Endpoint {
	return Endpoint{Path: "/notifications", Method: http.MethodPut}
}
