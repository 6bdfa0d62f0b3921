package service

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-help-crypt/models"
)

// defaultAddressBook lists the deployments compiled into the client. Entries
// from the configured address book override these.
var defaultAddressBook = map[uint64]common.Address{
	31337: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
}

// defaultChainNames names the networks the client knows about.
var defaultChainNames = map[uint64]string{
	1:        "Ethereum Mainnet",
	31337:    "Hardhat Local",
	11155111: "Sepolia Testnet",
}

// contractResolver is the memoized implementation of [ContractResolver].
// Resolution never touches the network: the answer is a pure function of the
// address book, so each chain id is computed once and cached.
type contractResolver struct {
	book  map[uint64]common.Address
	names map[uint64]string

	mu    sync.Mutex
	cache map[uint64]models.ContractMeta
}

// NewContractResolver builds a [ContractResolver] from the configured
// address book layered over the compiled-in defaults. The configured name,
// when non-empty, labels the given chain id.
func NewContractResolver(book map[uint64]common.Address, chainID uint64, chainName string) ContractResolver {
	merged := make(map[uint64]common.Address, len(defaultAddressBook)+len(book))
	for id, addr := range defaultAddressBook {
		merged[id] = addr
	}
	for id, addr := range book {
		merged[id] = addr
	}

	names := make(map[uint64]string, len(defaultChainNames)+1)
	for id, name := range defaultChainNames {
		names[id] = name
	}
	if chainName != "" {
		names[chainID] = chainName
	}

	return &contractResolver{
		book:  merged,
		names: names,
		cache: make(map[uint64]models.ContractMeta),
	}
}

// Resolve implements [ContractResolver]. An unknown chain id yields metadata
// with the zero address; the caller decides what "not configured" means.
func (r *contractResolver) Resolve(chainID uint64) models.ContractMeta {
	r.mu.Lock()
	defer r.mu.Unlock()

	if meta, ok := r.cache[chainID]; ok {
		return meta
	}

	meta := models.ContractMeta{
		Address:   r.book[chainID],
		ChainID:   chainID,
		ChainName: r.names[chainID],
	}
	r.cache[chainID] = meta

	return meta
}
