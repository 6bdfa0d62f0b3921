package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a local API address in format [host]:[port]
//	-rpc-url ledger node JSON-RPC endpoint
//	-chain-id expected chain identifier
//	-chain-name human-readable network name
//	-address-book contract address book ("chainID=0xaddr,...")
//	-wallet-key hex-encoded signing key
//	-gateway-mode gateway backend ("relayer" or "inprocess")
//	-relayer-url relayer service base URL
//	-gateway-timeout gateway request timeout (e.g., "30s")
//	-driver local database driver ("sqlite3" or "pgx")
//	-d local database DSN
//	-refresh-interval background refresh interval (e.g., "30s")
//	-credential-days decryption credential lifetime in days
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var rpcURL string
	var chainID uint64
	var chainName string
	var addressBook string
	var walletKey string
	var gatewayMode string
	var relayerURL string
	var gatewayTimeout time.Duration
	var dbDriver string
	var databaseDSN string
	var refreshInterval time.Duration
	var credentialDays uint64
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&rpcURL, "rpc-url", "", "Ledger node JSON-RPC endpoint")
	flag.Uint64Var(&chainID, "chain-id", 0, "Expected chain identifier")
	flag.StringVar(&chainName, "chain-name", "", "Network name")
	flag.StringVar(&addressBook, "address-book", "", "Contract address book (chainID=0xaddr,...)")
	flag.StringVar(&walletKey, "wallet-key", "", "Hex-encoded signing key")
	flag.StringVar(&gatewayMode, "gateway-mode", "", "Gateway backend (relayer or inprocess)")
	flag.StringVar(&relayerURL, "relayer-url", "", "Relayer service base URL")
	flag.DurationVar(&gatewayTimeout, "gateway-timeout", 0, "Gateway request timeout (e.g., 30s)")
	flag.StringVar(&dbDriver, "driver", "", "Local database driver (sqlite3 or pgx)")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 30s)")
	flag.Uint64Var(&credentialDays, "credential-days", 0, "Credential lifetime in days")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			CredentialDays: credentialDays,
		},
		Chain: Chain{
			RPCURL:      rpcURL,
			ID:          chainID,
			Name:        chainName,
			AddressBook: addressBook,
		},
		Wallet: Wallet{
			PrivateKey: walletKey,
		},
		Gateway: Gateway{
			Mode:           gatewayMode,
			RelayerURL:     relayerURL,
			RequestTimeout: gatewayTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
