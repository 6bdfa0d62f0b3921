package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-help-crypt/internal/adapter"
	"github.com/MKhiriev/go-help-crypt/internal/gateway"
)

// OutcomeKind is the coarse classification of an operation result shown to
// the presentation layer.
type OutcomeKind string

const (
	OutcomeOK                    OutcomeKind = "ok"
	OutcomeNotConfigured         OutcomeKind = "not_configured"
	OutcomeNotDeployed           OutcomeKind = "not_deployed"
	OutcomeTransport             OutcomeKind = "transport"
	OutcomeCredentialUnavailable OutcomeKind = "credential_unavailable"
	OutcomeTransactionFailed     OutcomeKind = "transaction_failed"
	OutcomeBusy                  OutcomeKind = "busy"
	OutcomeGeneric               OutcomeKind = "generic"
)

// Outcome is the classified result of one pipeline run. Message is safe to
// show verbatim; Err keeps the cause for logging.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
	Err     error       `json:"-"`
}

// Classify translates any pipeline error into an [Outcome]. Typed sentinels
// from the adapter, gateway, and service packages are matched first; a
// substring classifier catches raw RPC errors the backend cannot type.
func Classify(err error) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeOK, Message: "ok"}
	}

	switch {
	case errors.Is(err, ErrNotConfigured):
		return Outcome{Kind: OutcomeNotConfigured, Message: "Contract is not configured for this network", Err: err}

	case errors.Is(err, adapter.ErrNotDeployed):
		return Outcome{Kind: OutcomeNotDeployed, Message: "Contract is not deployed at the configured address", Err: err}

	case errors.Is(err, ErrOperationInProgress):
		return Outcome{Kind: OutcomeBusy, Message: "An operation of this kind is already in progress", Err: err}

	case errors.Is(err, ErrCredentialUnavailable),
		errors.Is(err, adapter.ErrSignatureDeclined),
		errors.Is(err, gateway.ErrInvalidCredential):
		return Outcome{Kind: OutcomeCredentialUnavailable, Message: "Decryption authorization was not granted", Err: err}

	case errors.Is(err, ErrApplicationFinalized):
		return Outcome{Kind: OutcomeTransactionFailed, Message: "Application is already finalized", Err: err}

	case errors.Is(err, adapter.ErrTxReverted):
		return Outcome{Kind: OutcomeTransactionFailed, Message: "Transaction failed on the ledger", Err: err}

	case errors.Is(err, adapter.ErrTxTimeout):
		return Outcome{Kind: OutcomeTransactionFailed, Message: "Transaction was not confirmed in time", Err: err}

	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, gateway.ErrGatewayUnavailable):
		return Outcome{Kind: OutcomeTransport, Message: "Network is unreachable, check your connection", Err: err}

	case errors.Is(err, ErrSignerRequired):
		return Outcome{Kind: OutcomeGeneric, Message: "A wallet is required for this operation", Err: err}
	}

	if kind, msg, ok := classifyRawMessage(err.Error()); ok {
		return Outcome{Kind: kind, Message: msg, Err: err}
	}

	return Outcome{Kind: OutcomeGeneric, Message: "Operation failed: " + err.Error(), Err: err}
}

// classifyRawMessage recognises well-known substrings in errors that arrive
// untyped from the RPC node or a wallet.
func classifyRawMessage(msg string) (OutcomeKind, string, bool) {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "user rejected"),
		strings.Contains(lower, "user denied"):
		return OutcomeCredentialUnavailable, "Request was rejected in the wallet", true

	case strings.Contains(lower, "insufficient funds"):
		return OutcomeTransactionFailed, "Insufficient funds for this transaction", true

	case strings.Contains(lower, "execution reverted"):
		return OutcomeTransactionFailed, "Transaction failed on the ledger", true

	case strings.Contains(lower, "connection refused"),
		strings.Contains(lower, "no such host"),
		strings.Contains(lower, "i/o timeout"):
		return OutcomeTransport, "Network is unreachable, check your connection", true
	}

	return "", "", false
}
