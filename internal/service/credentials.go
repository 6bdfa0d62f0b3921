package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-help-crypt/internal/adapter"
	"github.com/MKhiriev/go-help-crypt/internal/crypto"
	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/internal/store"
	"github.com/MKhiriev/go-help-crypt/models"
)

// credentialManager implements [CredentialManager] with a two-level cache:
// an in-memory credential for the hot path plus the persistent store so a
// process restart does not cost the user another wallet prompt.
type credentialManager struct {
	keyring crypto.KeyringService
	signer  adapter.Signer
	repo    store.CredentialRepository
	log     *logger.Logger

	days uint64
	now  func() time.Time

	mu     sync.Mutex
	cached *models.DecryptionCredential
}

// NewCredentialManager constructs a [CredentialManager]. days is the
// validity window length of newly signed credentials. signer may be nil for
// a read-only client; LoadOrSign then always fails with
// [ErrCredentialUnavailable].
func NewCredentialManager(
	keyring crypto.KeyringService,
	signer adapter.Signer,
	repo store.CredentialRepository,
	days uint64,
	log *logger.Logger,
) CredentialManager {
	return &credentialManager{
		keyring: keyring,
		signer:  signer,
		repo:    repo,
		log:     log,
		days:    days,
		now:     time.Now,
	}
}

// LoadOrSign implements [CredentialManager].
func (m *credentialManager) LoadOrSign(ctx context.Context, contracts []common.Address, user common.Address) (models.DecryptionCredential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	if m.cached != nil && m.cached.Matches(contracts, user) && m.cached.Valid(now) {
		return *m.cached, nil
	}

	scopeKey := models.CredentialScopeKey(contracts, user)
	stored, err := m.repo.GetCredential(ctx, scopeKey)
	if err == nil && stored.Matches(contracts, user) && stored.Valid(now) {
		m.cached = &stored
		return stored, nil
	}
	if err != nil && !errors.Is(err, store.ErrCredentialNotFound) {
		// хранилище недоступно — не критично, подпишем заново
		m.log.Err(err).
			Str("func", "credentialManager.LoadOrSign").
			Str("scope_key", scopeKey).
			Msg("failed to load stored credential")
	}

	cred, err := m.sign(ctx, contracts, user, now)
	if err != nil {
		return models.DecryptionCredential{}, err
	}

	if saveErr := m.repo.SaveCredential(ctx, cred); saveErr != nil {
		// потеря кэша между перезапусками, но не текущей операции
		m.log.Err(saveErr).
			Str("func", "credentialManager.LoadOrSign").
			Str("scope_key", scopeKey).
			Msg("failed to persist credential")
	}

	m.cached = &cred
	return cred, nil
}

func (m *credentialManager) sign(ctx context.Context, contracts []common.Address, user common.Address, now time.Time) (models.DecryptionCredential, error) {
	if m.signer == nil {
		return models.DecryptionCredential{}, ErrCredentialUnavailable
	}

	publicKey, privateKey, err := m.keyring.GenerateKeypair()
	if err != nil {
		return models.DecryptionCredential{}, fmt.Errorf("generate keypair: %w", err)
	}

	start := now.Unix()
	digest := m.keyring.ScopeDigest(crypto.ScopeRequest{
		PublicKey:         publicKey,
		ContractAddresses: contracts,
		UserAddress:       user,
		StartTimestamp:    start,
		DurationDays:      m.days,
	})

	signature, err := m.signer.SignScope(ctx, digest)
	if err != nil {
		if errors.Is(err, adapter.ErrSignatureDeclined) {
			return models.DecryptionCredential{}, fmt.Errorf("%w: %w", ErrCredentialUnavailable, err)
		}
		return models.DecryptionCredential{}, fmt.Errorf("sign credential scope: %w", err)
	}

	return models.DecryptionCredential{
		PublicKey:         publicKey,
		PrivateKey:        privateKey,
		Signature:         signature,
		ContractAddresses: models.SortedAddresses(contracts),
		UserAddress:       user,
		StartTimestamp:    start,
		DurationDays:      m.days,
	}, nil
}

// Invalidate implements [CredentialManager].
func (m *credentialManager) Invalidate() {
	m.mu.Lock()
	m.cached = nil
	m.mu.Unlock()
}
