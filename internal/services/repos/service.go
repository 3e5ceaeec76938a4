// Package repos exposes repository operations.
package repos

import (
	"context"

	"github.com/ternarybob/gitealink/internal/gitea"
	"github.com/ternarybob/gitealink/internal/models"
)

// Service wraps repository endpoints.
type Service struct {
	client *gitea.Client
}

// NewService creates a repository service.
func NewService(client *gitea.Client) *Service {
	return &Service{client: client}
}

// GetRepositories lists the authenticated user's repositories.
func (s *Service) GetRepositories(ctx context.Context, page, limit int) ([]models.Repository, error) {
	var repositories []models.Repository
	if err := s.client.Do(ctx, gitea.Repositories(page, limit), &repositories); err != nil {
		return nil, err
	}
	return repositories, nil
}

// GetRepository fetches a single repository.
func (s *Service) GetRepository(ctx context.Context, owner, repo string) (*models.Repository, error) {
	var repository models.Repository
	if err := s.client.Do(ctx, gitea.GetRepository(owner, repo), &repository); err != nil {
		return nil, err
	}
	return &repository, nil
}

// SearchRepositories searches repositories visible to the user.
func (s *Service) SearchRepositories(ctx context.Context, query string, page, limit int) ([]models.Repository, error) {
	var response models.RepositorySearchResponse
	if err := s.client.Do(ctx, gitea.SearchRepositories(query, page, limit), &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetBranches lists a repository's branches.
func (s *Service) GetBranches(ctx context.Context, owner, repo string) ([]models.Branch, error) {
	var branches []models.Branch
	if err := s.client.Do(ctx, gitea.Branches(owner, repo), &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// Watch subscribes the user to repository notifications.
func (s *Service) Watch(ctx context.Context, owner, repo string) error {
	return s.client.DoNoContent(ctx, gitea.WatchRepository(owner, repo))
}

// Unwatch removes the user's repository subscription.
func (s *Service) Unwatch(ctx context.Context, owner, repo string) error {
	return s.client.DoNoContent(ctx, gitea.UnwatchRepository(owner, repo))
}
