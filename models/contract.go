package models

import "github.com/ethereum/go-ethereum/common"

// ContractMeta describes the aid contract deployment resolved for one
// network. A zero Address means no deployment is registered for the network;
// absence is a signal, not an error.
type ContractMeta struct {
	// Address is the deployed contract address, or the zero address when
	// the network has no registered deployment.
	Address common.Address `json:"address"`

	// ChainID is the network the metadata was resolved for.
	ChainID uint64 `json:"chain_id"`

	// ChainName is the human-readable network name, when known.
	ChainName string `json:"chain_name,omitempty"`
}

// Configured reports whether a non-zero contract address is registered.
func (m ContractMeta) Configured() bool {
	return m.Address != (common.Address{})
}
