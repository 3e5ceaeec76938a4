package models

import (
	"strconv"
	"strings"
	"time"
)

// Notification represents a notification thread.
type Notification struct {
	ID         int64                `json:"id"`
	Subject    *NotificationSubject `json:"subject,omitempty"`
	Repository *Repository          `json:"repository,omitempty"`
	Unread     bool                 `json:"unread"`
	Pinned     bool                 `json:"pinned,omitempty"`
	UpdatedAt  *time.Time           `json:"updated_at,omitempty"`
}

// NotificationSubject describes what a notification thread is about.
type NotificationSubject struct {
	Title            string `json:"title"`
	URL              string `json:"url,omitempty"`
	LatestCommentURL string `json:"latest_comment_url,omitempty"`
	Type             string `json:"type"`
	State            string `json:"state,omitempty"`
}

// TypeDisplay returns a display label for the subject type.
func (s *NotificationSubject) TypeDisplay() string {
	switch strings.ToLower(s.Type) {
	case "issue":
		return "Issue"
	case "pull":
		return "Pull Request"
	case "commit":
		return "Commit"
	case "repository":
		return "Repository"
	default:
		return s.Type
	}
}

// IssueOrPRNumber extracts the trailing issue or pull request number from
// the subject URL (".../issues/123" or ".../pulls/123"). Returns 0 when the
// URL does not end in a number.
func (s *NotificationSubject) IssueOrPRNumber() int {
	if s.URL == "" {
		return 0
	}
	parts := strings.Split(strings.TrimSuffix(s.URL, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return n
}
