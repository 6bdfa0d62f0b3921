package utils

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
)

// Keccak64 reduces an arbitrary text field to a fixed-width 64-bit digest:
// keccak256 of the UTF-8 bytes taken modulo 2^64, i.e. the trailing 8 bytes
// of the sum interpreted big-endian. This is the ledger-visible form of the
// encrypted identity and reason fields; the full plaintext never reaches
// the contract.
//
// The reduction is collision-resistant only up to the 64-bit width. That is
// acceptable here: the digest is a commitment for the encrypted value, not a
// lookup key.
func Keccak64(text string) uint64 {
	sum := crypto.Keccak256([]byte(text))
	return binary.BigEndian.Uint64(sum[24:])
}

// Keccak64Bytes is Keccak64 over raw bytes.
func Keccak64Bytes(data []byte) uint64 {
	sum := crypto.Keccak256(data)
	return binary.BigEndian.Uint64(sum[24:])
}
