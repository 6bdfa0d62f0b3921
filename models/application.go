package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ApplicationStatus is the ledger-side lifecycle state of an aid application.
// The contract owns the transition rules; the client only reflects the value
// it reads back.
type ApplicationStatus uint8

const (
	// StatusPending is the initial state of every submitted application.
	StatusPending ApplicationStatus = iota

	// StatusVerified means a verifier approved the application and it may
	// receive donations.
	StatusVerified

	// StatusRejected means a verifier declined the application. Terminal.
	StatusRejected

	// StatusFunded means the contract considers the application fully
	// funded. Terminal.
	StatusFunded
)

// Terminal reports whether no further status transitions are possible.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusRejected || s == StatusFunded
}

// String implements fmt.Stringer for log output and API payloads.
func (s ApplicationStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusVerified:
		return "verified"
	case StatusRejected:
		return "rejected"
	case StatusFunded:
		return "funded"
	default:
		return "unknown"
	}
}

// Application is a single aid application as read back from the ledger.
// Sensitive fields (identity, reason, true amount) exist on the ledger only
// as ciphertext handles and are never part of this record.
type Application struct {
	// ID is the dense ledger-assigned identifier in [0, applicationCount).
	ID uint64 `json:"id"`

	// Applicant is the submitting account.
	Applicant common.Address `json:"applicant"`

	// PublicAmount is the plaintext requested amount, visible to everyone.
	PublicAmount uint64 `json:"public_amount"`

	// Timestamp is the ledger timestamp of the submission, unix seconds.
	Timestamp int64 `json:"timestamp"`

	// Status is the lifecycle state read from the ledger.
	Status ApplicationStatus `json:"status"`

	// DonatedAmount is the running donation total in wei.
	DonatedAmount *big.Int `json:"donated_amount"`
}

// DecryptedFields holds the plaintext sensitive fields of one application
// after a credential-authorized decrypt. They live only in process memory,
// keyed by application ID, and are never persisted.
type DecryptedFields struct {
	Identity string `json:"identity,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Amount   uint64 `json:"amount,omitempty"`
}

// CiphertextHandle is an opaque reference to an encrypted value stored on
// the ledger. It is decryptable only through the encryption gateway under a
// valid decryption credential.
type CiphertextHandle common.Hash

// Hex returns the 0x-prefixed hex form of the handle.
func (h CiphertextHandle) Hex() string { return common.Hash(h).Hex() }

// IsZero reports whether the handle is the zero value.
func (h CiphertextHandle) IsZero() bool { return h == CiphertextHandle{} }

// HandleContractPair pairs a ciphertext handle with the contract it belongs
// to, as required by the gateway user-decrypt call.
type HandleContractPair struct {
	Handle          CiphertextHandle
	ContractAddress common.Address
}

// EncryptedPayload is the result of finalising one encrypted-input session:
// one handle per appended value plus a single validity proof covering them.
type EncryptedPayload struct {
	Handles    []CiphertextHandle
	InputProof []byte
}

// SubmitRequest carries everything the submitApplication ledger write needs:
// three ciphertext handles, their proofs, and the plaintext public amount.
type SubmitRequest struct {
	EncIdentity   CiphertextHandle
	IdentityProof []byte
	EncReason     CiphertextHandle
	ReasonProof   []byte
	EncAmount     CiphertextHandle
	AmountProof   []byte
	PublicAmount  uint64
}
