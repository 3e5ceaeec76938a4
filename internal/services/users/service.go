// Package users exposes user profile operations.
package users

import (
	"context"

	"github.com/ternarybob/gitealink/internal/gitea"
	"github.com/ternarybob/gitealink/internal/models"
)

// Service wraps user endpoints.
type Service struct {
	client *gitea.Client
}

// NewService creates a user service.
func NewService(client *gitea.Client) *Service {
	return &Service{client: client}
}

// GetCurrentUser fetches the authenticated user's profile.
func (s *Service) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Do(ctx, gitea.CurrentUser(), &user); err != nil {
		return nil, err
	}
	return &user, nil
}
