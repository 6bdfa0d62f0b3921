package models

import "time"

// Operation kinds recorded in the operation log.
const (
	OpSubmit  = "application_submit"
	OpVerify  = "application_verify"
	OpDonate  = "donation"
	OpDecrypt = "decrypt"
	OpRefresh = "refresh"
	OpInfo    = "info"
	OpError   = "error"
)

// OperationLogEntry is one record of the local operation history. Entries
// describe user-initiated pipelines and their outcomes; they never contain
// decrypted field values.
type OperationLogEntry struct {
	// ID is a client-assigned UUID.
	ID string `json:"id"`

	// Kind is one of the Op* constants.
	Kind string `json:"kind"`

	// Title is a short human-readable summary.
	Title string `json:"title"`

	// Details carries optional context such as a transaction hash or a
	// classified failure message.
	Details string `json:"details,omitempty"`

	// CreatedAt is when the entry was recorded, UTC.
	CreatedAt time.Time `json:"created_at"`
}
