package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/models"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository]. It executes all credential operations against the
// "credentials" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (scope_key, contract count, etc.).
type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

// credentialRow is the flat TEXT-column representation of a credential.
// Key material is hex-encoded; the contract set is comma-joined hex.
type credentialRow struct {
	scopeKey       string
	publicKey      string
	privateKey     string
	signature      string
	contracts      string
	userAddress    string
	startTimestamp int64
	durationDays   int64
}

func encodeCredentialRow(cred models.DecryptionCredential) credentialRow {
	contracts := make([]string, 0, len(cred.ContractAddresses))
	for _, a := range models.SortedAddresses(cred.ContractAddresses) {
		contracts = append(contracts, a.Hex())
	}

	return credentialRow{
		scopeKey:       cred.StorageKey(),
		publicKey:      hexutil.Encode(cred.PublicKey),
		privateKey:     hexutil.Encode(cred.PrivateKey),
		signature:      hexutil.Encode(cred.Signature),
		contracts:      strings.Join(contracts, ","),
		userAddress:    cred.UserAddress.Hex(),
		startTimestamp: cred.StartTimestamp,
		durationDays:   int64(cred.DurationDays),
	}
}

func (row credentialRow) decode() (models.DecryptionCredential, error) {
	publicKey, err := hexutil.Decode(row.publicKey)
	if err != nil {
		return models.DecryptionCredential{}, fmt.Errorf("decode public key: %w", err)
	}
	privateKey, err := hexutil.Decode(row.privateKey)
	if err != nil {
		return models.DecryptionCredential{}, fmt.Errorf("decode private key: %w", err)
	}
	signature, err := hexutil.Decode(row.signature)
	if err != nil {
		return models.DecryptionCredential{}, fmt.Errorf("decode signature: %w", err)
	}

	var contracts []common.Address
	for _, part := range strings.Split(row.contracts, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !common.IsHexAddress(part) {
			return models.DecryptionCredential{}, fmt.Errorf("decode contract address %q", part)
		}
		contracts = append(contracts, common.HexToAddress(part))
	}

	return models.DecryptionCredential{
		PublicKey:         publicKey,
		PrivateKey:        privateKey,
		Signature:         signature,
		ContractAddresses: contracts,
		UserAddress:       common.HexToAddress(row.userAddress),
		StartTimestamp:    row.startTimestamp,
		DurationDays:      uint64(row.durationDays),
	}, nil
}

// SaveCredential stores cred, replacing any previous credential with the same
// scope key. Returns [ErrCredentialNotSaved] when the statement affects no
// rows.
func (r *credentialRepository) SaveCredential(ctx context.Context, cred models.DecryptionCredential) error {
	log := logger.FromContext(ctx)

	row := encodeCredentialRow(cred)
	query, args, err := buildSaveCredentialQuery(r.DB.builder, row)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.SaveCredential").
			Str("scope_key", row.scopeKey).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.SaveCredential").
			Str("scope_key", row.scopeKey).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute statement for saving credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().
			Str("func", "credentialRepository.SaveCredential").
			Str("scope_key", row.scopeKey).
			Msg("provided credential was not saved")
		return ErrCredentialNotSaved
	}

	return nil
}

// GetCredential returns the stored credential for scopeKey, or
// [ErrCredentialNotFound] when no row matches.
func (r *credentialRepository) GetCredential(ctx context.Context, scopeKey string) (models.DecryptionCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCredentialQuery(r.DB.builder, scopeKey)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.GetCredential").
			Str("scope_key", scopeKey).
			Msg("failed to build query")
		return models.DecryptionCredential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row credentialRow
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&row.scopeKey,
		&row.publicKey,
		&row.privateKey,
		&row.signature,
		&row.contracts,
		&row.userAddress,
		&row.startTimestamp,
		&row.durationDays,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.DecryptionCredential{}, ErrCredentialNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "credentialRepository.GetCredential").
			Str("scope_key", scopeKey).
			Msg("failed to scan credential row")
		return models.DecryptionCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return row.decode()
}
