package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-help-crypt/internal/config"
	"github.com/MKhiriev/go-help-crypt/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Credentials is the repository for signed decryption credentials.
	Credentials CredentialRepository

	// OperationLog is the repository for the local operation history.
	OperationLog OperationLogRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a connection to the database selected by cfg.DB.Driver
//     ("sqlite3" creates the database file if it does not yet exist).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(context.Background(), cfg.DB, logger)
	default:
		db, err = NewConnectSQLite(context.Background(), cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Credentials:  NewCredentialRepository(db, logger),
		OperationLog: NewOperationLogRepository(db, logger),
	}, nil
}
