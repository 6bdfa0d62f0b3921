package adapter

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/models"
)

// Backend is the subset of the go-ethereum client the adapter needs.
// *ethclient.Client satisfies it.
type Backend interface {
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

type ethLedgerAdapter struct {
	backend Backend
	signer  Signer
	abi     abi.ABI
	log     *logger.Logger

	// pollInterval is how often WaitMined asks for the receipt.
	pollInterval time.Duration
}

// NewEthLedgerAdapter builds a [LedgerAdapter] over a go-ethereum backend.
// signer may be nil for a read-only adapter; write methods then fail fast.
func NewEthLedgerAdapter(backend Backend, signer Signer, log *logger.Logger) (LedgerAdapter, error) {
	parsed, err := abi.JSON(strings.NewReader(aidLedgerABI))
	if err != nil {
		return nil, fmt.Errorf("parse aid ledger abi: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &ethLedgerAdapter{
		backend:      backend,
		signer:       signer,
		abi:          parsed,
		log:          log,
		pollInterval: time.Second,
	}, nil
}

func (a *ethLedgerAdapter) CodeAt(ctx context.Context, addr common.Address) ([]byte, error) {
	code, err := a.backend.CodeAt(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch code at %s: %v", ErrTransport, addr.Hex(), err)
	}
	return code, nil
}

func (a *ethLedgerAdapter) ApplicationCount(ctx context.Context, contract common.Address) (uint64, error) {
	out, err := a.call(ctx, contract, "applicationCount")
	if err != nil {
		return 0, err
	}
	count := *abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	return count.Uint64(), nil
}

func (a *ethLedgerAdapter) GetApplicationInfo(ctx context.Context, contract common.Address, id uint64) (models.Application, error) {
	out, err := a.call(ctx, contract, "getApplicationInfo", new(big.Int).SetUint64(id))
	if err != nil {
		return models.Application{}, err
	}

	applicant := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	publicAmount := *abi.ConvertType(out[1], new(big.Int)).(*big.Int)
	timestamp := *abi.ConvertType(out[2], new(big.Int)).(*big.Int)
	status := *abi.ConvertType(out[3], new(uint8)).(*uint8)
	donatedAmount := abi.ConvertType(out[4], new(big.Int)).(*big.Int)

	return models.Application{
		ID:            id,
		Applicant:     applicant,
		PublicAmount:  publicAmount.Uint64(),
		Timestamp:     timestamp.Int64(),
		Status:        models.ApplicationStatus(status),
		DonatedAmount: donatedAmount,
	}, nil
}

func (a *ethLedgerAdapter) GetEncryptedIdentityHash(ctx context.Context, contract common.Address, id uint64) (models.CiphertextHandle, error) {
	return a.handleCall(ctx, contract, "getEncryptedIdentityHash", id)
}

func (a *ethLedgerAdapter) GetEncryptedReasonHash(ctx context.Context, contract common.Address, id uint64) (models.CiphertextHandle, error) {
	return a.handleCall(ctx, contract, "getEncryptedReasonHash", id)
}

func (a *ethLedgerAdapter) GetEncryptedAmount(ctx context.Context, contract common.Address, id uint64) (models.CiphertextHandle, error) {
	return a.handleCall(ctx, contract, "getEncryptedAmount", id)
}

func (a *ethLedgerAdapter) GetApplicantApplications(ctx context.Context, contract common.Address, applicant common.Address) ([]uint64, error) {
	out, err := a.call(ctx, contract, "getApplicantApplications", applicant)
	if err != nil {
		return nil, err
	}
	raw := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)

	ids := make([]uint64, 0, len(raw))
	for _, v := range raw {
		ids = append(ids, v.Uint64())
	}
	return ids, nil
}

func (a *ethLedgerAdapter) GetVerifier(ctx context.Context, contract common.Address, id uint64) (common.Address, error) {
	out, err := a.call(ctx, contract, "getVerifier", new(big.Int).SetUint64(id))
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (a *ethLedgerAdapter) ProtocolID(ctx context.Context, contract common.Address) (uint64, error) {
	out, err := a.call(ctx, contract, "protocolId")
	if err != nil {
		return 0, err
	}
	pid := *abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	return pid.Uint64(), nil
}

func (a *ethLedgerAdapter) SubmitApplication(ctx context.Context, contract common.Address, req models.SubmitRequest) (common.Hash, error) {
	return a.transact(ctx, contract, nil, "submitApplication",
		[32]byte(req.EncIdentity), req.IdentityProof,
		[32]byte(req.EncReason), req.ReasonProof,
		[32]byte(req.EncAmount), req.AmountProof,
		new(big.Int).SetUint64(req.PublicAmount),
	)
}

func (a *ethLedgerAdapter) VerifyApplication(ctx context.Context, contract common.Address, id uint64, approved bool) (common.Hash, error) {
	return a.transact(ctx, contract, nil, "verifyApplication", new(big.Int).SetUint64(id), approved)
}

func (a *ethLedgerAdapter) Donate(ctx context.Context, contract common.Address, id uint64, value *big.Int) (common.Hash, error) {
	return a.transact(ctx, contract, value, "donate", new(big.Int).SetUint64(id))
}

func (a *ethLedgerAdapter) WaitMined(ctx context.Context, tx common.Hash) error {
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := a.backend.TransactionReceipt(ctx, tx)
		if err == nil && receipt != nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return fmt.Errorf("%w: tx %s", ErrTxReverted, tx.Hex())
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: tx %s: %v", ErrTxTimeout, tx.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// handleCall performs a view call returning a single bytes32 ciphertext
// handle.
func (a *ethLedgerAdapter) handleCall(ctx context.Context, contract common.Address, method string, id uint64) (models.CiphertextHandle, error) {
	out, err := a.call(ctx, contract, method, new(big.Int).SetUint64(id))
	if err != nil {
		return models.CiphertextHandle{}, err
	}
	raw := *abi.ConvertType(out[0], new([32]byte)).(*[32]byte)
	return models.CiphertextHandle(raw), nil
}

// call packs a view invocation, executes it, and unpacks the raw return
// values. Empty return data is mapped to ErrNotDeployed: that is what an RPC
// node answers when the address has no code behind it.
func (a *ethLedgerAdapter) call(ctx context.Context, contract common.Address, method string, args ...any) ([]any, error) {
	data, err := a.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	msg := ethereum.CallMsg{To: &contract, Data: data}
	ret, err := a.backend.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: call %s: %v", ErrTransport, method, err)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("%w: empty return data for %s", ErrNotDeployed, method)
	}

	out, err := a.abi.Unpack(method, ret)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return out, nil
}

// transact signs and sends a state-changing invocation, returning the tx
// hash. value may be nil for non-payable methods.
func (a *ethLedgerAdapter) transact(ctx context.Context, contract common.Address, value *big.Int, method string, args ...any) (common.Hash, error) {
	if a.signer == nil {
		return common.Hash{}, fmt.Errorf("%w: no signer configured", ErrSignatureDeclined)
	}

	data, err := a.abi.Pack(method, args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack %s: %w", method, err)
	}

	from := a.signer.Address()
	nonce, err := a.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: pending nonce: %v", ErrTransport, err)
	}
	gasPrice, err := a.backend.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: suggest gas price: %v", ErrTransport, err)
	}

	if value == nil {
		value = new(big.Int)
	}
	msg := ethereum.CallMsg{From: from, To: &contract, Value: value, Data: data}
	gasLimit, err := a.backend.EstimateGas(ctx, msg)
	if err != nil {
		// estimation runs the call; a failure here usually means the
		// write would revert
		return common.Hash{}, fmt.Errorf("%w: estimate gas for %s: %v", ErrTxReverted, method, err)
	}

	chainID, err := a.backend.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: chain id: %v", ErrTransport, err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &contract,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := a.signer.SignTx(tx, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %v", ErrSignatureDeclined, err)
	}

	if err = a.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("%w: send %s: %v", ErrTransport, method, err)
	}

	hash := signed.Hash()
	a.log.Debug().Str("method", method).Str("tx", hash.Hex()).Msg("transaction sent")
	return hash, nil
}
