package models

import "time"

// Comment represents an issue or pull request comment.
// Gitea serves comment attachments under the "assets" key.
type Comment struct {
	ID          int64        `json:"id"`
	Body        string       `json:"body"`
	User        *User        `json:"user,omitempty"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
	Attachments []Attachment `json:"assets,omitempty"`
}

// IsEdited reports whether the comment was updated after creation.
func (c *Comment) IsEdited() bool {
	if c.CreatedAt == nil || c.UpdatedAt == nil {
		return false
	}
	return c.UpdatedAt.After(*c.CreatedAt)
}
