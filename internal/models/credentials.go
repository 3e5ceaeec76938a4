package models

import "time"

// Credentials is the persisted (server URL, access token) pair identifying
// a logged-in session. At most one record exists at any time.
type Credentials struct {
	ServerURL   string `json:"server_url"`
	AccessToken string `json:"access_token"`
	CreatedAt   int64  `json:"created_at,omitempty"`
	UpdatedAt   int64  `json:"updated_at,omitempty"`
}

// Touch stamps the record timestamps before persistence.
func (c *Credentials) Touch() {
	now := time.Now().Unix()
	if c.CreatedAt == 0 {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}
