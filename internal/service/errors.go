package service

import "errors"

var (
	// ErrNotConfigured means the active network has no registered contract
	// deployment. Operations short-circuit without touching the ledger.
	ErrNotConfigured = errors.New("no contract configured for this network")

	// ErrOperationInProgress means an operation of the same kind is already
	// running; the new request is rejected immediately.
	ErrOperationInProgress = errors.New("operation already in progress")

	// ErrSignerRequired means the requested pipeline needs a wallet but the
	// client runs in read-only mode.
	ErrSignerRequired = errors.New("wallet signer required")

	// ErrCredentialUnavailable means no decryption credential could be
	// produced, typically because the user declined the signature request.
	ErrCredentialUnavailable = errors.New("decryption credential unavailable")

	// ErrApplicationNotFound means the requested application id is outside
	// the current snapshot.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrApplicationFinalized means the application is in a terminal status
	// and write operations against it are rejected before the ledger.
	ErrApplicationFinalized = errors.New("application is already finalized")
)
