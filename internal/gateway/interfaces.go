// Package gateway integrates the external encrypted-computation service.
//
// The service performs two jobs the client cannot do itself: it encrypts
// typed input values into ciphertext handles with validity proofs the ledger
// contract accepts, and it decrypts handles for users holding a valid
// decryption credential.
//
// Two implementations ship here: [NewRelayerGateway], a resty HTTP client
// for the hosted relayer, and [NewInProcessGateway], a deterministic local
// implementation used on development chains and in tests.
package gateway

import (
	"bytes"
	"context"
	"encoding/binary"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-help-crypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// EncryptedInput accumulates typed values for one encrypt-input session
// scoped to a (contract, user) pair. Values are appended in order; Encrypt
// finalises the session into one handle per value plus a single proof.
type EncryptedInput interface {
	// AddText appends a text field. The ledger-visible value is the
	// 64-bit keccak reduction of the text; the gateway retains the full
	// plaintext so an authorized decrypt recovers the original string.
	AddText(value string)

	// Add64 appends a 64-bit numeric value.
	Add64(v uint64)

	// Add32 appends a 32-bit numeric value.
	Add32(v uint32)

	// Encrypt finalises the session. Returns one ciphertext handle per
	// appended value and the input proof covering all of them.
	Encrypt(ctx context.Context) (models.EncryptedPayload, error)
}

// Gateway is the encryption-gateway surface the workflow orchestrator
// consumes.
type Gateway interface {
	// CreateEncryptedInput opens an encrypt-input session scoped to the
	// given contract and user.
	CreateEncryptedInput(contract, user common.Address) EncryptedInput

	// UserDecrypt decrypts the given handles under the credential. The
	// credential must be inside its validity window and scoped to every
	// contract appearing in pairs. Returns a mapping from handle to clear
	// value.
	UserDecrypt(ctx context.Context, pairs []models.HandleContractPair, cred models.DecryptionCredential) (map[models.CiphertextHandle]ClearValue, error)
}

// ClearValue is a decrypted plaintext as raw bytes. Text fields come back
// NUL-padded from fixed-width storage; numeric fields come back big-endian.
type ClearValue []byte

// Text decodes the value as a trimmed string: NUL padding and surrounding
// whitespace are removed.
func (v ClearValue) Text() string {
	trimmed := bytes.Trim(v, "\x00")
	return string(bytes.TrimSpace(trimmed))
}

// Uint64 decodes the value as an unsigned integer. Values up to 8 bytes are
// read big-endian; longer values are parsed as a decimal digit string,
// returning 0 when unparseable.
func (v ClearValue) Uint64() uint64 {
	if len(v) <= 8 {
		var buf [8]byte
		copy(buf[8-len(v):], v)
		return binary.BigEndian.Uint64(buf[:])
	}

	n, err := strconv.ParseUint(v.Text(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Uint64Bytes encodes a 64-bit value the way ClearValue.Uint64 reads it.
func Uint64Bytes(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return buf[:]
}

// Uint32Bytes encodes a 32-bit value big-endian.
func Uint32Bytes(v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return buf[:]
}
