package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidChainConfigs indicates invalid ledger connection settings
	// (for example, a missing RPC URL or a malformed address book).
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
	// ErrInvalidGatewayConfigs indicates invalid gateway settings
	// (for example, relayer mode without a relayer URL).
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid local API settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
