// Package adapter provides the transport layer between the client core and
// the aid ledger contract.
//
// The primary abstraction is [LedgerAdapter], which decouples the service
// layer from RPC details. The package ships a go-ethereum backed
// implementation ([NewEthLedgerAdapter]); the [Backend] interface it consumes
// is satisfied by *ethclient.Client, which keeps the adapter testable without
// a running node.
//
// Sentinel errors defined in errors.go are wrapped into every failure path so
// callers can classify outcomes with [errors.Is] (e.g. [ErrTransport] for an
// unreachable RPC endpoint, [ErrTxReverted] for a failed write).
package adapter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/MKhiriev/go-help-crypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_adapter_mock.go -package=mock

// LedgerAdapter defines the read/write surface of the aid ledger contract
// consumed by the client core. Implementations are responsible for call
// packing, transaction signing and submission, and mapping transport-level
// failures to the sentinel errors of this package.
type LedgerAdapter interface {
	// CodeAt fetches the bytecode deployed at addr. An empty result means
	// no contract exists there. Returns a wrapped [ErrTransport] when the
	// RPC endpoint cannot be reached.
	CodeAt(ctx context.Context, addr common.Address) ([]byte, error)

	// ApplicationCount reads the scalar application counter.
	ApplicationCount(ctx context.Context, contract common.Address) (uint64, error)

	// GetApplicationInfo reads the public fields of application id and
	// materializes a full [models.Application] record.
	GetApplicationInfo(ctx context.Context, contract common.Address, id uint64) (models.Application, error)

	// GetEncryptedIdentityHash returns the ciphertext handle of the
	// identity digest for application id.
	GetEncryptedIdentityHash(ctx context.Context, contract common.Address, id uint64) (models.CiphertextHandle, error)

	// GetEncryptedReasonHash returns the ciphertext handle of the reason
	// digest for application id.
	GetEncryptedReasonHash(ctx context.Context, contract common.Address, id uint64) (models.CiphertextHandle, error)

	// GetEncryptedAmount returns the ciphertext handle of the true amount
	// for application id.
	GetEncryptedAmount(ctx context.Context, contract common.Address, id uint64) (models.CiphertextHandle, error)

	// GetApplicantApplications lists the application ids submitted by the
	// given account.
	GetApplicantApplications(ctx context.Context, contract common.Address, applicant common.Address) ([]uint64, error)

	// GetVerifier returns the account that verified application id, or the
	// zero address while the application is still pending.
	GetVerifier(ctx context.Context, contract common.Address, id uint64) (common.Address, error)

	// ProtocolID reads the contract's protocol identifier constant.
	ProtocolID(ctx context.Context, contract common.Address) (uint64, error)

	// SubmitApplication sends the submitApplication write carrying three
	// ciphertext handles, their proofs, and the plaintext public amount in
	// a single atomic transaction. Returns the transaction hash.
	SubmitApplication(ctx context.Context, contract common.Address, req models.SubmitRequest) (common.Hash, error)

	// VerifyApplication sends the verifyApplication(id, approved) write.
	VerifyApplication(ctx context.Context, contract common.Address, id uint64, approved bool) (common.Hash, error)

	// Donate sends the value-bearing donate(id) write with value wei
	// attached.
	Donate(ctx context.Context, contract common.Address, id uint64, value *big.Int) (common.Hash, error)

	// WaitMined blocks until the transaction is mined, returning a wrapped
	// [ErrTxReverted] when the receipt reports failure. Respects ctx.
	WaitMined(ctx context.Context, tx common.Hash) error
}

// Signer abstracts the wallet that owns the user's account. Interactive
// implementations (browser wallets, hardware keys) may refuse a request, in
// which case [ErrSignatureDeclined] is returned.
type Signer interface {
	// Address returns the account the signer controls.
	Address() common.Address

	// SignTx signs a ledger transaction for the given chain.
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)

	// SignScope signs the scope digest of a decryption credential. This is
	// the interactive step the credential manager amortizes across decrypt
	// calls.
	SignScope(ctx context.Context, digest []byte) ([]byte, error)
}
