// Package notifications exposes notification thread operations.
package notifications

import (
	"context"

	"github.com/ternarybob/gitealink/internal/gitea"
	"github.com/ternarybob/gitealink/internal/models"
)

// Service wraps notification endpoints.
type Service struct {
	client *gitea.Client
}

// NewService creates a notification service.
func NewService(client *gitea.Client) *Service {
	return &Service{client: client}
}

// GetNotifications lists notification threads. With all=false only unread
// threads are returned.
func (s *Service) GetNotifications(ctx context.Context, all bool, page, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.client.Do(ctx, gitea.Notifications(all, page, limit), &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkAsRead marks one notification thread as read.
func (s *Service) MarkAsRead(ctx context.Context, notificationID string) error {
	return s.client.DoNoContent(ctx, gitea.MarkNotificationRead(notificationID))
}

// MarkAllAsRead marks every notification thread as read.
func (s *Service) MarkAllAsRead(ctx context.Context) error {
	return s.client.DoNoContent(ctx, gitea.MarkAllNotificationsRead())
}
