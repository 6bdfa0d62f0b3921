package gateway

import "errors"

var (
	// ErrGatewayUnavailable marks an unreachable or failing gateway
	// service.
	ErrGatewayUnavailable = errors.New("encryption gateway unavailable")

	// ErrInvalidCredential marks a decrypt attempt with an expired,
	// mis-scoped, or malformed decryption credential.
	ErrInvalidCredential = errors.New("invalid decryption credential")

	// ErrUnknownHandle marks a decrypt request for a handle the gateway
	// has no ciphertext for.
	ErrUnknownHandle = errors.New("unknown ciphertext handle")

	// ErrEmptyInput marks an encrypt-input session finalised without any
	// appended values.
	ErrEmptyInput = errors.New("encrypted input session has no values")
)
