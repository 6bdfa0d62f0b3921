package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Defaults applied by [GetClientConfig] for fields left unset by every
// configuration source.
const (
	DefaultRefreshInterval = 30 * time.Second
	DefaultRequestTimeout  = 30 * time.Second
	DefaultCredentialDays  = 7
	DefaultDBDriver        = "sqlite3"
	DefaultGatewayMode     = "relayer"
)

// ClientChain holds ledger connection settings derived from the shared
// structured config.
type ClientChain struct {
	// RPCURL is the JSON-RPC endpoint of the ledger node.
	RPCURL string
	// ID is the chain identifier the client expects.
	ID uint64
	// Name is the human-readable network name.
	Name string
	// AddressBook maps chain identifiers to deployed contract addresses.
	AddressBook map[uint64]common.Address
}

// ClientWallet holds the signing key configuration.
type ClientWallet struct {
	// PrivateKey is the hex-encoded signing key. Empty means read-only mode.
	PrivateKey string
}

// ClientGateway holds encryption gateway settings for the client.
type ClientGateway struct {
	// Mode selects the gateway backend: "relayer" or "inprocess".
	Mode string
	// RelayerURL is the relayer base URL, required in relayer mode.
	RelayerURL string
	// RequestTimeout is the per-request gateway timeout.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// Driver selects the database driver: "sqlite3" or "pgx".
	Driver string
	// DSN is the connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientServer holds the local API listen settings.
type ClientServer struct {
	// HTTPAddress is the address the local API listens on.
	HTTPAddress string
	// RequestTimeout is the inbound request timeout.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the registry refresh worker runs.
	RefreshInterval time.Duration
}

// ClientApp contains application-level client settings.
type ClientApp struct {
	// Version is the semantic version string of the running application.
	Version string
	// CredentialDays is the decryption credential lifetime in days.
	CredentialDays uint64
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Chain contains ledger connection settings and the address book.
	Chain ClientChain
	// Wallet contains the signing key configuration.
	Wallet ClientWallet
	// Gateway contains encryption gateway settings.
	Gateway ClientGateway
	// Storage contains local storage settings.
	Storage ClientStorage
	// Server contains local API listen settings.
	Server ClientServer
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for unset optional fields,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return buildClientConfig(cfg)
}

func buildClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	addressBook, err := parseAddressBook(cfg.Chain.AddressBook)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChainConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:        cfg.App.Version,
			CredentialDays: cfg.App.CredentialDays,
		},
		Chain: ClientChain{
			RPCURL:      cfg.Chain.RPCURL,
			ID:          cfg.Chain.ID,
			Name:        cfg.Chain.Name,
			AddressBook: addressBook,
		},
		Wallet: ClientWallet{
			PrivateKey: cfg.Wallet.PrivateKey,
		},
		Gateway: ClientGateway{
			Mode:           cfg.Gateway.Mode,
			RelayerURL:     cfg.Gateway.RelayerURL,
			RequestTimeout: cfg.Gateway.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.CredentialDays == 0 {
		cfg.App.CredentialDays = DefaultCredentialDays
	}
	if cfg.Gateway.Mode == "" {
		cfg.Gateway.Mode = DefaultGatewayMode
	}
	if cfg.Gateway.RequestTimeout == 0 {
		cfg.Gateway.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
}

// parseAddressBook decodes "chainID=0xaddress" pairs separated by commas.
// An empty input yields an empty (non-nil) map: a missing address book is a
// runtime condition reported per-operation, not a startup failure.
func parseAddressBook(s string) (map[uint64]common.Address, error) {
	book := make(map[uint64]common.Address)
	if strings.TrimSpace(s) == "" {
		return book, nil
	}

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		idAndAddr := strings.Split(pair, "=")
		if len(idAndAddr) != 2 {
			return nil, fmt.Errorf("need address book entry in a form `chainID=0xaddress`, got %q", pair)
		}

		chainID, err := strconv.ParseUint(strings.TrimSpace(idAndAddr[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain id in %q: %w", pair, err)
		}

		addr := strings.TrimSpace(idAndAddr[1])
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("invalid contract address in %q", pair)
		}

		book[chainID] = common.HexToAddress(addr)
	}

	return book, nil
}
