package crypto

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/nacl/box"

	"github.com/MKhiriev/go-help-crypt/models"
)

// scopeDomainTag domain-separates credential digests from any other
// message the wallet key might sign.
const scopeDomainTag = "helpcrypt.user-decrypt.v1"

// ScopeRequest describes the scope a decryption credential is valid for.
// All fields participate in the signed digest.
type ScopeRequest struct {
	PublicKey         []byte
	ContractAddresses []common.Address
	UserAddress       common.Address
	StartTimestamp    int64
	DurationDays      uint64
}

// keyringService is the private implementation of [KeyringService].
type keyringService struct{}

// NewKeyringService constructs a [KeyringService] backed by the OS CSPRNG.
func NewKeyringService() KeyringService {
	return &keyringService{}
}

// GenerateKeypair implements [KeyringService]. It generates a fresh NaCl
// box keypair (curve25519, 32 bytes each) from the OS CSPRNG. Returns an
// error if the random read fails.
func (k *keyringService) GenerateKeypair() ([]byte, []byte, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return pub[:], priv[:], nil
}

// ScopeDigest implements [KeyringService]. It computes
//
//	keccak256(tag ‖ publicKey ‖ user ‖ sorted contracts ‖ be64(start) ‖ be64(days))
//
// over the request fields. Contract addresses are sorted before hashing so
// the digest does not depend on caller ordering.
func (k *keyringService) ScopeDigest(req ScopeRequest) []byte {
	var window [16]byte
	binary.BigEndian.PutUint64(window[:8], uint64(req.StartTimestamp))
	binary.BigEndian.PutUint64(window[8:], req.DurationDays)

	parts := [][]byte{
		[]byte(scopeDomainTag),
		req.PublicKey,
		req.UserAddress.Bytes(),
	}
	for _, addr := range models.SortedAddresses(req.ContractAddresses) {
		parts = append(parts, addr.Bytes())
	}
	parts = append(parts, window[:])

	return ethcrypto.Keccak256(parts...)
}
