// Package pulls exposes pull request operations.
package pulls

import (
	"context"

	"github.com/ternarybob/gitealink/internal/gitea"
	"github.com/ternarybob/gitealink/internal/models"
)

// Service wraps pull request endpoints.
type Service struct {
	client *gitea.Client
}

// NewService creates a pull request service.
func NewService(client *gitea.Client) *Service {
	return &Service{client: client}
}

// GetPullRequests lists a repository's pull requests.
func (s *Service) GetPullRequests(ctx context.Context, owner, repo, state string, page, limit int) ([]models.PullRequest, error) {
	var pullRequests []models.PullRequest
	if err := s.client.Do(ctx, gitea.PullRequests(owner, repo, state, page, limit), &pullRequests); err != nil {
		return nil, err
	}
	return pullRequests, nil
}

// GetPullRequest fetches a single pull request by index.
func (s *Service) GetPullRequest(ctx context.Context, owner, repo string, index int) (*models.PullRequest, error) {
	var pullRequest models.PullRequest
	if err := s.client.Do(ctx, gitea.GetPullRequest(owner, repo, index), &pullRequest); err != nil {
		return nil, err
	}
	return &pullRequest, nil
}

// CreatePullRequest opens a new pull request from head into base.
func (s *Service) CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (*models.PullRequest, error) {
	request := models.CreatePullRequestRequest{Title: title, Body: body, Head: head, Base: base}
	var pullRequest models.PullRequest
	if err := s.client.Do(ctx, gitea.CreatePullRequest(owner, repo, request), &pullRequest); err != nil {
		return nil, err
	}
	return &pullRequest, nil
}

// UpdatePullRequest patches a pull request. Nil fields are left unchanged.
func (s *Service) UpdatePullRequest(ctx context.Context, owner, repo string, index int, title, body, state *string) (*models.PullRequest, error) {
	request := models.UpdatePullRequestRequest{Title: title, Body: body, State: state}
	var pullRequest models.PullRequest
	if err := s.client.Do(ctx, gitea.UpdatePullRequest(owner, repo, index, request), &pullRequest); err != nil {
		return nil, err
	}
	return &pullRequest, nil
}

// ClosePullRequest closes an open pull request.
func (s *Service) ClosePullRequest(ctx context.Context, owner, repo string, index int) (*models.PullRequest, error) {
	state := "closed"
	return s.UpdatePullRequest(ctx, owner, repo, index, nil, nil, &state)
}

// ReopenPullRequest reopens a closed pull request. Merged pull requests
// cannot be reopened; the server answers with a validation failure.
func (s *Service) ReopenPullRequest(ctx context.Context, owner, repo string, index int) (*models.PullRequest, error) {
	state := "open"
	return s.UpdatePullRequest(ctx, owner, repo, index, nil, nil, &state)
}

// MergePullRequest merges a pull request with the given method and an
// optional merge commit message.
func (s *Service) MergePullRequest(ctx context.Context, owner, repo string, index int, method models.MergeMethod, message string) error {
	request := models.MergePullRequestRequest{Do: string(method), MergeMessageField: message}
	return s.client.DoNoContent(ctx, gitea.MergePullRequest(owner, repo, index, request))
}

// GetCommitStatus fetches the combined CI status for a commit SHA.
func (s *Service) GetCommitStatus(ctx context.Context, owner, repo, sha string) (*models.CombinedStatus, error) {
	var status models.CombinedStatus
	if err := s.client.Do(ctx, gitea.CommitStatus(owner, repo, sha), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetActionRuns lists Actions workflow runs, optionally filtered to one
// head SHA.
func (s *Service) GetActionRuns(ctx context.Context, owner, repo, sha string) ([]models.ActionRun, error) {
	var response models.ActionRunsResponse
	if err := s.client.Do(ctx, gitea.ActionRuns(owner, repo, 1, 50), &response); err != nil {
		return nil, err
	}

	if sha == "" {
		return response.WorkflowRuns, nil
	}

	runs := make([]models.ActionRun, 0, len(response.WorkflowRuns))
	for _, run := range response.WorkflowRuns {
		if run.HeadSHA == sha {
			runs = append(runs, run)
		}
	}
	return runs, nil
}

// GetComments lists the comments on a pull request. Pull request comments
// use the issues endpoint in Gitea.
func (s *Service) GetComments(ctx context.Context, owner, repo string, index, page int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.client.Do(ctx, gitea.IssueComments(owner, repo, index, page), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment adds a comment to a pull request.
func (s *Service) CreateComment(ctx context.Context, owner, repo string, index int, body string) (*models.Comment, error) {
	request := models.CreateCommentRequest{Body: body}
	var comment models.Comment
	if err := s.client.Do(ctx, gitea.CreateIssueComment(owner, repo, index, request), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// EditComment updates an existing comment by ID.
func (s *Service) EditComment(ctx context.Context, owner, repo string, commentID int64, body string) (*models.Comment, error) {
	request := models.CreateCommentRequest{Body: body}
	var comment models.Comment
	if err := s.client.Do(ctx, gitea.EditComment(owner, repo, commentID, request), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment by ID.
func (s *Service) DeleteComment(ctx context.Context, owner, repo string, commentID int64) error {
	return s.client.DoNoContent(ctx, gitea.DeleteComment(owner, repo, commentID))
}

// SearchPullRequests searches pull requests across repositories.
func (s *Service) SearchPullRequests(ctx context.Context, query string, page, limit int) ([]models.PullRequest, error) {
	var pullRequests []models.PullRequest
	if err := s.client.Do(ctx, gitea.SearchPullRequests(query, "all", page, limit), &pullRequests); err != nil {
		return nil, err
	}
	return pullRequests, nil
}
