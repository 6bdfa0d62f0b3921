// Package service contains the client workflow core: contract resolution,
// deployment checking, the application registry, decryption credential
// management, and the workflow orchestrator that drives the four
// user-initiated pipelines (submit, verify, donate, decrypt).
package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-help-crypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContractResolver maps a chain identifier to the aid contract deployment
// registered for it. Resolution is pure and memoized; a zero address in the
// result means the network has no registered deployment.
type ContractResolver interface {
	Resolve(chainID uint64) models.ContractMeta
}

// ExistenceChecker probes whether contract code exists behind an address.
// Concurrent callers share a single in-flight probe; the checker never runs
// two probes at once and never blocks a caller on another caller's probe.
type ExistenceChecker interface {
	// Check reports whether a contract is deployed at addr. While a probe
	// is in flight, concurrent callers receive the last known result.
	Check(ctx context.Context, addr common.Address) (bool, error)

	// Invalidate drops the cached result, forcing the next Check to probe
	// the ledger again. Call on network or address change.
	Invalidate()
}

// ApplicationRegistry owns the local snapshot of all on-ledger applications.
// The snapshot is only ever replaced wholesale by Refresh, never patched.
type ApplicationRegistry interface {
	// Refresh rebuilds the snapshot from the ledger. When the contract is
	// not configured or not deployed the snapshot is cleared without any
	// per-application ledger contact and a classified error is returned.
	// Any mid-rebuild failure aborts and keeps the previous snapshot.
	Refresh(ctx context.Context) error

	// Applications returns a copy of the current snapshot, ordered by id.
	Applications() []models.Application

	// ApplicantApplications returns the snapshot records submitted by the
	// given account, resolved through the ledger's per-applicant index.
	ApplicantApplications(ctx context.Context, applicant common.Address) ([]models.Application, error)

	// Protocol returns the contract protocol identifier captured by the
	// last successful Refresh, zero before one.
	Protocol() uint64
}

// CredentialManager produces decryption credentials, amortizing the
// interactive wallet signature across calls: a cached credential is reused
// as long as its scope matches exactly and its validity window covers now.
type CredentialManager interface {
	// LoadOrSign returns a credential valid for exactly the given contract
	// set and user, requesting a new wallet signature only on cache miss.
	// A refused signature surfaces as [ErrCredentialUnavailable].
	LoadOrSign(ctx context.Context, contracts []common.Address, user common.Address) (models.DecryptionCredential, error)

	// Invalidate drops the in-memory credential. Call on signer change.
	Invalidate()
}

// WorkflowOrchestrator drives the user-facing pipelines. Operations of the
// same kind are mutually exclusive: a second call while one is running
// returns [ErrOperationInProgress] immediately.
type WorkflowOrchestrator interface {
	// Submit encrypts the sensitive fields and writes a new application to
	// the ledger, then refreshes the registry.
	Submit(ctx context.Context, input SubmitInput) error

	// Verify records a verifier decision for application id.
	Verify(ctx context.Context, id uint64, approved bool) error

	// Donate sends units worth of donation to application id. Units are
	// converted to wei at the fixed platform rate.
	Donate(ctx context.Context, id uint64, units uint64) error

	// Decrypt authorizes and performs decryption of the sensitive fields
	// of application id, merging the result into the decrypted-fields view.
	Decrypt(ctx context.Context, id uint64) (models.DecryptedFields, error)

	// Refresh drops the cached existence result and rebuilds the
	// application snapshot, re-probing the contract code on the way.
	Refresh(ctx context.Context) error

	// Applications returns the current snapshot copy.
	Applications() []models.Application

	// Decrypted returns a copy of the decrypted-fields view, keyed by
	// application id.
	Decrypted() map[uint64]models.DecryptedFields

	// Busy reports which pipelines are currently running.
	Busy() BusyFlags

	// Messages exposes the status-message stream consumed by the
	// presentation layer.
	Messages() <-chan StatusMessage
}
