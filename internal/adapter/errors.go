package adapter

import "errors"

var (
	// ErrNotDeployed marks an address with no contract code behind it.
	ErrNotDeployed = errors.New("no contract code at address")

	// ErrTransport marks an unreachable or misbehaving RPC endpoint.
	ErrTransport = errors.New("ledger transport unavailable")

	// ErrTxReverted marks a write whose receipt reports failure.
	ErrTxReverted = errors.New("transaction reverted")

	// ErrTxTimeout marks a write that was sent but never confirmed before
	// the context expired.
	ErrTxTimeout = errors.New("timed out awaiting confirmation")

	// ErrSignatureDeclined marks an interactive signature request the user
	// refused.
	ErrSignatureDeclined = errors.New("signature request declined")
)
