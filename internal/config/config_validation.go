package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the client-specific invariants are checked
// by [ClientConfig.validate] after defaults are applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Chain.RPCURL == "" {
		return ErrInvalidChainConfigs
	}

	if cfg.Gateway.Mode != "relayer" && cfg.Gateway.Mode != "inprocess" {
		return ErrInvalidGatewayConfigs
	}
	if cfg.Gateway.Mode == "relayer" && cfg.Gateway.RelayerURL == "" {
		return ErrInvalidGatewayConfigs
	}

	if cfg.Storage.DB.Driver != "sqlite3" && cfg.Storage.DB.Driver != "pgx" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
