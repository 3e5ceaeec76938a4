// Package attachments exposes issue and comment attachment operations,
// including multipart file uploads.
package attachments

import (
	"context"

	"github.com/ternarybob/gitealink/internal/gitea"
	"github.com/ternarybob/gitealink/internal/models"
)

// Service wraps attachment endpoints.
type Service struct {
	client *gitea.Client
}

// NewService creates an attachment service.
func NewService(client *gitea.Client) *Service {
	return &Service{client: client}
}

// GetIssueAttachments lists the attachments on an issue.
func (s *Service) GetIssueAttachments(ctx context.Context, owner, repo string, index int) ([]models.Attachment, error) {
	var attachments []models.Attachment
	if err := s.client.Do(ctx, gitea.IssueAttachments(owner, repo, index), &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// UploadIssueAttachment uploads a file to an issue.
func (s *Service) UploadIssueAttachment(ctx context.Context, owner, repo string, index int, data []byte, fileName, mimeType string) (*models.Attachment, error) {
	var attachment models.Attachment
	err := s.client.Upload(ctx, gitea.UploadIssueAttachment(owner, repo, index), data, fileName, mimeType, &attachment)
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// DeleteIssueAttachment removes an attachment from an issue.
func (s *Service) DeleteIssueAttachment(ctx context.Context, owner, repo string, index int, attachmentID int64) error {
	return s.client.DoNoContent(ctx, gitea.DeleteIssueAttachment(owner, repo, index, attachmentID))
}

// GetCommentAttachments lists the attachments on a comment.
func (s *Service) GetCommentAttachments(ctx context.Context, owner, repo string, commentID int64) ([]models.Attachment, error) {
	var attachments []models.Attachment
	if err := s.client.Do(ctx, gitea.CommentAttachments(owner, repo, commentID), &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// UploadCommentAttachment uploads a file to a comment. The server's
// response body is discarded.
func (s *Service) UploadCommentAttachment(ctx context.Context, owner, repo string, commentID int64, data []byte, fileName, mimeType string) error {
	return s.client.UploadNoContent(ctx, gitea.UploadCommentAttachment(owner, repo, commentID), data, fileName, mimeType)
}

// DeleteCommentAttachment removes an attachment from a comment.
func (s *Service) DeleteCommentAttachment(ctx context.Context, owner, repo string, commentID, attachmentID int64) error {
	return s.client.DoNoContent(ctx, gitea.DeleteCommentAttachment(owner, repo, commentID, attachmentID))
}
