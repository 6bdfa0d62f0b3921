package utils

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeccak64_Deterministic(t *testing.T) {
	a := Keccak64("Alice")
	b := Keccak64("Alice")
	require.Equal(t, a, b, "одинаковый вход должен давать одинаковый дайджест")
}

func TestKeccak64_ModularReduction(t *testing.T) {
	// дайджест — это значение keccak256 по модулю 2^64
	for _, text := range []string{"Alice", "medical treatment", ""} {
		sum := crypto.Keccak256([]byte(text))
		want := new(big.Int).Mod(new(big.Int).SetBytes(sum), new(big.Int).Lsh(big.NewInt(1), 64))
		assert.Equal(t, want.Uint64(), Keccak64(text), "вход %q", text)
	}
}

func TestKeccak64_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, Keccak64("Alice"), Keccak64("Bob"))
	assert.NotEqual(t, Keccak64("medical"), Keccak64("medical "))
}

func TestKeccak64_EmptyInput(t *testing.T) {
	// keccak256("") определён, редукция не должна паниковать
	assert.NotPanics(t, func() { Keccak64("") })
	assert.Equal(t, Keccak64(""), Keccak64Bytes(nil))
}

func TestKeccak64Bytes_MatchesStringForm(t *testing.T) {
	assert.Equal(t, Keccak64("medical"), Keccak64Bytes([]byte("medical")))
}
