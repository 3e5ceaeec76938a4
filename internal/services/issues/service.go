// Package issues exposes issue and issue-comment operations.
package issues

import (
	"context"

	"github.com/ternarybob/gitealink/internal/gitea"
	"github.com/ternarybob/gitealink/internal/models"
)

// Service wraps issue endpoints.
type Service struct {
	client *gitea.Client
}

// NewService creates an issue service.
func NewService(client *gitea.Client) *Service {
	return &Service{client: client}
}

// GetIssues lists a repository's issues.
func (s *Service) GetIssues(ctx context.Context, owner, repo, state string, page, limit int) ([]models.Issue, error) {
	var issues []models.Issue
	if err := s.client.Do(ctx, gitea.Issues(owner, repo, state, page, limit), &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// GetIssue fetches a single issue by index.
func (s *Service) GetIssue(ctx context.Context, owner, repo string, index int) (*models.Issue, error) {
	var issue models.Issue
	if err := s.client.Do(ctx, gitea.GetIssue(owner, repo, index), &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CreateIssue opens a new issue.
func (s *Service) CreateIssue(ctx context.Context, owner, repo, title, body string) (*models.Issue, error) {
	request := models.CreateIssueRequest{Title: title, Body: body}
	var issue models.Issue
	if err := s.client.Do(ctx, gitea.CreateIssue(owner, repo, request), &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// UpdateIssue patches an issue. Nil fields are left unchanged.
func (s *Service) UpdateIssue(ctx context.Context, owner, repo string, index int, title, body, state *string) (*models.Issue, error) {
	request := models.UpdateIssueRequest{Title: title, Body: body, State: state}
	var issue models.Issue
	if err := s.client.Do(ctx, gitea.UpdateIssue(owner, repo, index, request), &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CloseIssue closes an open issue.
func (s *Service) CloseIssue(ctx context.Context, owner, repo string, index int) (*models.Issue, error) {
	state := "closed"
	return s.UpdateIssue(ctx, owner, repo, index, nil, nil, &state)
}

// ReopenIssue reopens a closed issue.
func (s *Service) ReopenIssue(ctx context.Context, owner, repo string, index int) (*models.Issue, error) {
	state := "open"
	return s.UpdateIssue(ctx, owner, repo, index, nil, nil, &state)
}

// GetComments lists the comments on an issue.
func (s *Service) GetComments(ctx context.Context, owner, repo string, index, page int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.client.Do(ctx, gitea.IssueComments(owner, repo, index, page), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment adds a comment to an issue.
func (s *Service) CreateComment(ctx context.Context, owner, repo string, index int, body string) (*models.Comment, error) {
	request := models.CreateCommentRequest{Body: body}
	var comment models.Comment
	if err := s.client.Do(ctx, gitea.CreateIssueComment(owner, repo, index, request), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// SearchIssues searches issues across repositories.
func (s *Service) SearchIssues(ctx context.Context, query string, page, limit int) ([]models.Issue, error) {
	var issues []models.Issue
	if err := s.client.Do(ctx, gitea.SearchIssues(query, "all", page, limit), &issues); err != nil {
		return nil, err
	}
	return issues, nil
}
