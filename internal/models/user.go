package models

import "time"

// User represents a Gitea user account.
type User struct {
	ID        int64      `json:"id"`
	Login     string     `json:"login"`
	FullName  string     `json:"full_name,omitempty"`
	Email     string     `json:"email,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	IsAdmin   bool       `json:"is_admin,omitempty"`
	Created   *time.Time `json:"created,omitempty"`
}

// DisplayName returns the full name when set, otherwise the login.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Login
}
