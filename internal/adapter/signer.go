package adapter

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// localKeySigner is a [Signer] backed by a raw secp256k1 private key. It is
// the non-interactive signer used by the CLI client and by local test
// networks; browser-wallet deployments supply their own Signer.
type localKeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewLocalKeySigner builds a Signer from a 0x-prefixed hex private key.
func NewLocalKeySigner(hexKey string) (Signer, error) {
	if len(hexKey) >= 2 && hexKey[:2] == "0x" {
		hexKey = hexKey[2:]
	}

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}

	return &localKeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (s *localKeySigner) Address() common.Address {
	return s.address
}

func (s *localKeySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}

// SignScope signs the credential scope digest with the EIP-191 personal-sign
// prefix, matching what a wallet would produce for the same payload.
func (s *localKeySigner) SignScope(_ context.Context, digest []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(digest), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign credential scope: %w", err)
	}
	return sig, nil
}
