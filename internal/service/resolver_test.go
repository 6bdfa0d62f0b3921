package service

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestContractResolver_Resolve(t *testing.T) {
	configured := common.HexToAddress("0x1111111111111111111111111111111111111111")
	resolver := NewContractResolver(
		map[uint64]common.Address{11155111: configured},
		11155111,
		"",
	)

	tests := []struct {
		name           string
		chainID        uint64
		wantAddress    common.Address
		wantConfigured bool
	}{
		{
			name:           "compiled-in hardhat deployment",
			chainID:        31337,
			wantAddress:    common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
			wantConfigured: true,
		},
		{
			name:           "configured deployment",
			chainID:        11155111,
			wantAddress:    configured,
			wantConfigured: true,
		},
		{
			name:           "unknown network resolves to zero address",
			chainID:        42,
			wantAddress:    common.Address{},
			wantConfigured: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := resolver.Resolve(tt.chainID)

			assert.Equal(t, tt.wantAddress, meta.Address)
			assert.Equal(t, tt.chainID, meta.ChainID)
			assert.Equal(t, tt.wantConfigured, meta.Configured())
		})
	}
}

// TestContractResolver_ConfigOverridesDefault — книга адресов из конфига
// имеет приоритет над встроенной
func TestContractResolver_ConfigOverridesDefault(t *testing.T) {
	override := common.HexToAddress("0x2222222222222222222222222222222222222222")
	resolver := NewContractResolver(
		map[uint64]common.Address{31337: override},
		31337,
		"Local Devnet",
	)

	meta := resolver.Resolve(31337)

	assert.Equal(t, override, meta.Address)
	assert.Equal(t, "Local Devnet", meta.ChainName)
}

func TestContractResolver_Memoized(t *testing.T) {
	resolver := NewContractResolver(nil, 31337, "")

	first := resolver.Resolve(31337)
	second := resolver.Resolve(31337)

	assert.Equal(t, first, second)
}

func TestContractResolver_DefaultChainNames(t *testing.T) {
	resolver := NewContractResolver(nil, 31337, "")

	assert.Equal(t, "Ethereum Mainnet", resolver.Resolve(1).ChainName)
	assert.Equal(t, "Hardhat Local", resolver.Resolve(31337).ChainName)
	assert.Empty(t, resolver.Resolve(42).ChainName)
}
