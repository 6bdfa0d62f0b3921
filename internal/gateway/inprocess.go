package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/MKhiriev/go-help-crypt/models"
)

// inProcessGateway is a deterministic [Gateway] for development chains and
// tests. Handles are keccak commitments over (contract, user, counter,
// plaintext); the plaintext itself is held in process memory, so decrypt is
// exact and requires no network. Credential checks are enforced the same way
// the hosted relayer enforces them: validity window, signature presence, and
// exact contract scope.
type inProcessGateway struct {
	mu      sync.Mutex
	counter uint64
	secrets map[models.CiphertextHandle]secretEntry

	// now is swappable for tests of window expiry.
	now func() time.Time
}

type secretEntry struct {
	contract common.Address
	clear    []byte
}

// NewInProcessGateway builds an empty in-process gateway.
func NewInProcessGateway() Gateway {
	return &inProcessGateway{
		secrets: make(map[models.CiphertextHandle]secretEntry),
		now:     time.Now,
	}
}

func (g *inProcessGateway) CreateEncryptedInput(contract, user common.Address) EncryptedInput {
	return &inProcessInput{gw: g, contract: contract, user: user}
}

func (g *inProcessGateway) UserDecrypt(_ context.Context, pairs []models.HandleContractPair, cred models.DecryptionCredential) (map[models.CiphertextHandle]ClearValue, error) {
	if len(cred.Signature) == 0 || len(cred.PublicKey) == 0 {
		return nil, fmt.Errorf("%w: missing signature or public key", ErrInvalidCredential)
	}
	if !cred.Valid(g.now()) {
		return nil, fmt.Errorf("%w: outside validity window", ErrInvalidCredential)
	}

	scoped := make(map[common.Address]bool, len(cred.ContractAddresses))
	for _, a := range cred.ContractAddresses {
		scoped[a] = true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make(map[models.CiphertextHandle]ClearValue, len(pairs))
	for _, p := range pairs {
		if !scoped[p.ContractAddress] {
			return nil, fmt.Errorf("%w: contract %s not in credential scope", ErrInvalidCredential, p.ContractAddress.Hex())
		}
		entry, ok := g.secrets[p.Handle]
		if !ok || entry.contract != p.ContractAddress {
			return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, p.Handle.Hex())
		}
		out[p.Handle] = append(ClearValue(nil), entry.clear...)
	}
	return out, nil
}

// inProcessInput implements [EncryptedInput] against the in-process gateway.
type inProcessInput struct {
	gw       *inProcessGateway
	contract common.Address
	user     common.Address
	values   [][]byte
}

func (in *inProcessInput) AddText(value string) {
	// the retained plaintext is what an authorized decrypt returns; the
	// ledger-visible digest is derived at handle construction
	in.values = append(in.values, []byte(value))
}

func (in *inProcessInput) Add64(v uint64) {
	in.values = append(in.values, Uint64Bytes(v))
}

func (in *inProcessInput) Add32(v uint32) {
	in.values = append(in.values, Uint32Bytes(v))
}

func (in *inProcessInput) Encrypt(_ context.Context) (models.EncryptedPayload, error) {
	if len(in.values) == 0 {
		return models.EncryptedPayload{}, ErrEmptyInput
	}

	in.gw.mu.Lock()
	defer in.gw.mu.Unlock()

	payload := models.EncryptedPayload{
		Handles: make([]models.CiphertextHandle, 0, len(in.values)),
	}
	proof := crypto.NewKeccakState()
	for _, clear := range in.values {
		in.gw.counter++
		seed := append(in.contract.Bytes(), in.user.Bytes()...)
		seed = append(seed, Uint64Bytes(in.gw.counter)...)
		seed = append(seed, clear...)

		var handle models.CiphertextHandle
		copy(handle[:], crypto.Keccak256(seed))

		in.gw.secrets[handle] = secretEntry{contract: in.contract, clear: append([]byte(nil), clear...)}
		payload.Handles = append(payload.Handles, handle)
		proof.Write(handle[:])
	}

	payload.InputProof = proof.Sum(nil)
	return payload, nil
}
