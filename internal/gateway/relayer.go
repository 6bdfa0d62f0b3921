package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-help-crypt/internal/utils"
	"github.com/MKhiriev/go-help-crypt/models"
)

// RelayerConfig holds the connection settings of the hosted relayer.
type RelayerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// relayerGateway talks to the hosted relayer over HTTP. All payloads are
// JSON; binary fields travel base64-encoded, addresses and handles as
// 0x-prefixed hex.
type relayerGateway struct {
	client *resty.Client
}

// NewRelayerGateway builds a [Gateway] over the hosted relayer endpoint.
func NewRelayerGateway(cfg RelayerConfig) Gateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8545"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &relayerGateway{client: cli}
}

func (g *relayerGateway) CreateEncryptedInput(contract, user common.Address) EncryptedInput {
	return &relayerInput{gw: g, contract: contract, user: user}
}

type relayerValue struct {
	// Width is the bit width of the ledger-visible value (32 or 64).
	Width int `json:"width"`
	// Value is the ledger-visible numeric value as 0x-hex.
	Value string `json:"value"`
	// Plaintext is the retained clear form, base64. Present for text
	// fields so authorized decrypts recover the original string.
	Plaintext string `json:"plaintext,omitempty"`
}

type relayerInput struct {
	gw       *relayerGateway
	contract common.Address
	user     common.Address
	values   []relayerValue
}

func (in *relayerInput) AddText(value string) {
	digest := utils.Keccak64(value)
	in.values = append(in.values, relayerValue{
		Width:     64,
		Value:     hexutil.EncodeUint64(digest),
		Plaintext: base64.StdEncoding.EncodeToString([]byte(value)),
	})
}

func (in *relayerInput) Add64(v uint64) {
	in.values = append(in.values, relayerValue{Width: 64, Value: hexutil.EncodeUint64(v)})
}

func (in *relayerInput) Add32(v uint32) {
	in.values = append(in.values, relayerValue{Width: 32, Value: hexutil.EncodeUint64(uint64(v))})
}

type encryptInputRequest struct {
	ContractAddress string         `json:"contract_address"`
	UserAddress     string         `json:"user_address"`
	Values          []relayerValue `json:"values"`
}

type encryptInputResponse struct {
	Handles    []string `json:"handles"`
	InputProof string   `json:"input_proof"`
}

func (in *relayerInput) Encrypt(ctx context.Context) (models.EncryptedPayload, error) {
	if len(in.values) == 0 {
		return models.EncryptedPayload{}, ErrEmptyInput
	}

	req := encryptInputRequest{
		ContractAddress: in.contract.Hex(),
		UserAddress:     in.user.Hex(),
		Values:          in.values,
	}

	resp, err := in.gw.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v1/input")
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("%w: encrypt input request: %v", ErrGatewayUnavailable, err)
	}
	if err = mapGatewayError(resp); err != nil {
		return models.EncryptedPayload{}, err
	}

	var body encryptInputResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("decode encrypt input response: %w", err)
	}
	if len(body.Handles) != len(in.values) {
		return models.EncryptedPayload{}, fmt.Errorf("relayer returned %d handles for %d values", len(body.Handles), len(in.values))
	}

	payload := models.EncryptedPayload{Handles: make([]models.CiphertextHandle, 0, len(body.Handles))}
	for _, h := range body.Handles {
		payload.Handles = append(payload.Handles, models.CiphertextHandle(common.HexToHash(h)))
	}
	payload.InputProof, err = base64.StdEncoding.DecodeString(body.InputProof)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("decode input proof: %w", err)
	}

	return payload, nil
}

type userDecryptRequest struct {
	Pairs []struct {
		Handle          string `json:"handle"`
		ContractAddress string `json:"contract_address"`
	} `json:"pairs"`
	PublicKey         string   `json:"public_key"`
	Signature         string   `json:"signature"`
	ContractAddresses []string `json:"contract_addresses"`
	UserAddress       string   `json:"user_address"`
	StartTimestamp    int64    `json:"start_timestamp"`
	DurationDays      uint64   `json:"duration_days"`
}

type userDecryptResponse struct {
	// Plaintexts maps handle hex to base64 clear bytes.
	Plaintexts map[string]string `json:"plaintexts"`
}

func (g *relayerGateway) UserDecrypt(ctx context.Context, pairs []models.HandleContractPair, cred models.DecryptionCredential) (map[models.CiphertextHandle]ClearValue, error) {
	req := userDecryptRequest{
		PublicKey:      base64.StdEncoding.EncodeToString(cred.PublicKey),
		Signature:      base64.StdEncoding.EncodeToString(cred.Signature),
		UserAddress:    cred.UserAddress.Hex(),
		StartTimestamp: cred.StartTimestamp,
		DurationDays:   cred.DurationDays,
	}
	for _, a := range cred.ContractAddresses {
		req.ContractAddresses = append(req.ContractAddresses, a.Hex())
	}
	for _, p := range pairs {
		req.Pairs = append(req.Pairs, struct {
			Handle          string `json:"handle"`
			ContractAddress string `json:"contract_address"`
		}{Handle: p.Handle.Hex(), ContractAddress: p.ContractAddress.Hex()})
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v1/user-decrypt")
	if err != nil {
		return nil, fmt.Errorf("%w: user decrypt request: %v", ErrGatewayUnavailable, err)
	}
	if err = mapGatewayError(resp); err != nil {
		return nil, err
	}

	var body userDecryptResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode user decrypt response: %w", err)
	}

	out := make(map[models.CiphertextHandle]ClearValue, len(pairs))
	for _, p := range pairs {
		encoded, ok := body.Plaintexts[p.Handle.Hex()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, p.Handle.Hex())
		}
		clear, derr := base64.StdEncoding.DecodeString(encoded)
		if derr != nil {
			return nil, fmt.Errorf("decode plaintext for %s: %w", p.Handle.Hex(), derr)
		}
		out[p.Handle] = clear
	}
	return out, nil
}

// mapGatewayError translates relayer HTTP statuses into the package's
// sentinel errors.
func mapGatewayError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrInvalidCredential, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrUnknownHandle, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrGatewayUnavailable, resp.StatusCode(), body)
	}
}
