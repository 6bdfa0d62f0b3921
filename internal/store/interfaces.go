package store

import (
	"context"

	"github.com/MKhiriev/go-help-crypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository persists signed decryption credentials keyed by their
// scope so that a wallet signature does not have to be requested again while
// the credential stays valid.
type CredentialRepository interface {
	// SaveCredential stores cred, replacing any previous credential with
	// the same scope key.
	SaveCredential(ctx context.Context, cred models.DecryptionCredential) error
	// GetCredential returns the stored credential for scopeKey, or
	// [ErrCredentialNotFound].
	GetCredential(ctx context.Context, scopeKey string) (models.DecryptionCredential, error)
}

// OperationLogRepository persists the local history of user-initiated
// operations and their outcomes.
type OperationLogRepository interface {
	// AppendEntry stores one log entry.
	AppendEntry(ctx context.Context, entry models.OperationLogEntry) error
	// RecentEntries returns up to limit entries, newest first.
	RecentEntries(ctx context.Context, limit int) ([]models.OperationLogEntry, error)
}
