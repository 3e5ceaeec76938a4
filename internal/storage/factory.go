package storage

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitealink/internal/common"
	"github.com/ternarybob/gitealink/internal/interfaces"
	"github.com/ternarybob/gitealink/internal/storage/badger"
)

// NewCredentialStore opens the Badger-backed credential store at the
// configured path. The returned BadgerDB owns the connection and must be
// closed by the caller.
func NewCredentialStore(logger arbor.ILogger, config *common.Config) (interfaces.CredentialStore, *badger.BadgerDB, error) {
	db, err := badger.NewBadgerDB(logger, &config.Storage.Badger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open credential storage: %w", err)
	}
	return badger.NewCredentialStorage(db, logger), db, nil
}
