// Package interfaces defines the contracts between the SDK core and its
// collaborators so implementations stay swappable in tests.
package interfaces

import (
	"context"

	"github.com/ternarybob/gitealink/internal/models"
)

// CredentialStore persists the single (server URL, access token) pair for
// the logged-in session. Implementations hold zero or one record.
type CredentialStore interface {
	// Save writes the credentials, replacing any existing record.
	Save(ctx context.Context, credentials *models.Credentials) error

	// Load returns the stored credentials, or (nil, nil) when none exist.
	Load(ctx context.Context) (*models.Credentials, error)

	// Delete removes the stored credentials. Deleting an absent record is
	// not an error.
	Delete(ctx context.Context) error

	// Exists reports whether a credentials record is stored.
	Exists(ctx context.Context) bool
}
