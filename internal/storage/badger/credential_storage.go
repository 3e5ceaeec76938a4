package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitealink/internal/interfaces"
	"github.com/ternarybob/gitealink/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// credentialsKey is the fixed key the single credentials record lives
// under. At most one record exists at any time.
const credentialsKey = "stored_credentials"

// CredentialStorage implements interfaces.CredentialStore on Badger.
type CredentialStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewCredentialStorage creates a CredentialStorage instance.
func NewCredentialStorage(db *BadgerDB, logger arbor.ILogger) interfaces.CredentialStore {
	return &CredentialStorage{
		db:     db,
		logger: logger,
	}
}

func (s *CredentialStorage) Save(ctx context.Context, credentials *models.Credentials) error {
	if credentials.ServerURL == "" || credentials.AccessToken == "" {
		return fmt.Errorf("server URL and access token are required")
	}

	credentials.Touch()

	if err := s.db.Store().Upsert(credentialsKey, credentials); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	return nil
}

func (s *CredentialStorage) Load(ctx context.Context) (*models.Credentials, error) {
	var creds models.Credentials
	if err := s.db.Store().Get(credentialsKey, &creds); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	return &creds, nil
}

func (s *CredentialStorage) Delete(ctx context.Context) error {
	if err := s.db.Store().Delete(credentialsKey, &models.Credentials{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}

func (s *CredentialStorage) Exists(ctx context.Context) bool {
	creds, err := s.Load(ctx)
	return err == nil && creds != nil
}
