package models

import (
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DecryptionCredential is a time-bounded, scope-limited authorization that
// permits decryption of ciphertext handles belonging to a fixed set of
// contracts on behalf of one user. It bundles an ephemeral keypair with the
// user's signature over the scope.
//
// A credential is reusable for any number of decrypt calls while it stays
// inside its validity window and the scope matches exactly. It must be
// re-signed when the contract set, the user, or the window changes.
type DecryptionCredential struct {
	// PublicKey and PrivateKey form the ephemeral keypair the gateway
	// encrypts decryption results to. The private key never leaves the
	// client process except through the authorized decrypt call itself.
	PublicKey  []byte `json:"public_key"`
	PrivateKey []byte `json:"private_key"`

	// Signature is the user's signature over the credential scope.
	Signature []byte `json:"signature"`

	// ContractAddresses is the exact, sorted contract set the credential
	// was issued for.
	ContractAddresses []common.Address `json:"contract_addresses"`

	// UserAddress is the account the credential authorizes.
	UserAddress common.Address `json:"user_address"`

	// StartTimestamp is the beginning of the validity window, unix seconds.
	StartTimestamp int64 `json:"start_timestamp"`

	// DurationDays is the length of the validity window in whole days.
	DurationDays uint64 `json:"duration_days"`
}

// Valid reports whether at falls inside the credential's validity window.
func (c *DecryptionCredential) Valid(at time.Time) bool {
	start := time.Unix(c.StartTimestamp, 0)
	end := start.Add(time.Duration(c.DurationDays) * 24 * time.Hour)
	return !at.Before(start) && at.Before(end)
}

// Matches reports whether the credential was issued for exactly the given
// contract set and user. Order of contracts does not matter.
func (c *DecryptionCredential) Matches(contracts []common.Address, user common.Address) bool {
	if c.UserAddress != user || len(c.ContractAddresses) != len(contracts) {
		return false
	}
	want := SortedAddresses(contracts)
	have := SortedAddresses(c.ContractAddresses)
	for i := range want {
		if want[i] != have[i] {
			return false
		}
	}
	return true
}

// StorageKey derives the persistence key for the credential's scope:
// the sorted contract set joined with the user address.
func (c *DecryptionCredential) StorageKey() string {
	return CredentialScopeKey(c.ContractAddresses, c.UserAddress)
}

// CredentialScopeKey builds the canonical storage key for a
// (contract set, user) scope.
func CredentialScopeKey(contracts []common.Address, user common.Address) string {
	sorted := SortedAddresses(contracts)
	parts := make([]string, 0, len(sorted)+1)
	for _, a := range sorted {
		parts = append(parts, strings.ToLower(a.Hex()))
	}
	parts = append(parts, strings.ToLower(user.Hex()))
	return strings.Join(parts, "|")
}

// SortedAddresses returns a lexicographically sorted copy of addrs.
func SortedAddresses(addrs []common.Address) []common.Address {
	out := append([]common.Address(nil), addrs...)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Hex()) < strings.ToLower(out[j].Hex())
	})
	return out
}
