package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-help-crypt/internal/adapter"
	"github.com/MKhiriev/go-help-crypt/internal/gateway"
	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/internal/store"
	"github.com/MKhiriev/go-help-crypt/models"
)

// donationWeiPerUnit fixes the platform conversion rate: 1000 donation units
// equal exactly one ether.
const donationWeiPerUnit = 1_000_000_000_000_000 // 1e15 wei

// statusBufferSize bounds the status-message channel; when the consumer lags
// behind, the oldest unread message is dropped.
const statusBufferSize = 64

// SubmitInput carries the fields of a new aid application. Identity, Reason,
// and Amount are encrypted before anything leaves the process; PublicAmount
// is written to the ledger in plaintext.
type SubmitInput struct {
	Identity     string `json:"identity"`
	Reason       string `json:"reason"`
	Amount       uint32 `json:"amount"`
	PublicAmount uint64 `json:"public_amount"`
}

// BusyFlags reports which pipelines are currently running.
type BusyFlags struct {
	Submitting bool `json:"submitting"`
	Verifying  bool `json:"verifying"`
	Donating   bool `json:"donating"`
	Decrypting bool `json:"decrypting"`
	Refreshing bool `json:"refreshing"`
}

// StatusMessage is one progress or outcome notification for the
// presentation layer.
type StatusMessage struct {
	Kind OutcomeKind `json:"kind"`
	Text string      `json:"text"`
	At   time.Time   `json:"at"`
}

// workflowOrchestrator implements [WorkflowOrchestrator]. Same-kind
// operations are serialized by a dedicated mutex per kind; TryLock turns a
// concurrent duplicate into an immediate [ErrOperationInProgress].
type workflowOrchestrator struct {
	ledger      adapter.LedgerAdapter
	gw          gateway.Gateway
	signer      adapter.Signer
	resolver    ContractResolver
	checker     ExistenceChecker
	registry    ApplicationRegistry
	credentials CredentialManager
	oplog       store.OperationLogRepository
	log         *logger.Logger
	chainID     uint64
	now         func() time.Time

	submitMu  sync.Mutex
	verifyMu  sync.Mutex
	donateMu  sync.Mutex
	decryptMu sync.Mutex
	refreshMu sync.Mutex

	submitting atomic.Bool
	verifying  atomic.Bool
	donating   atomic.Bool
	decrypting atomic.Bool
	refreshing atomic.Bool

	mu        sync.RWMutex
	decrypted map[uint64]models.DecryptedFields

	messages chan StatusMessage
}

// NewWorkflowOrchestrator wires the pipelines together. signer may be nil
// for a read-only client: refresh and reads keep working, every write and
// decrypt fails with a classified outcome.
func NewWorkflowOrchestrator(
	ledger adapter.LedgerAdapter,
	gw gateway.Gateway,
	signer adapter.Signer,
	resolver ContractResolver,
	checker ExistenceChecker,
	registry ApplicationRegistry,
	credentials CredentialManager,
	oplog store.OperationLogRepository,
	chainID uint64,
	log *logger.Logger,
) WorkflowOrchestrator {
	return &workflowOrchestrator{
		ledger:      ledger,
		gw:          gw,
		signer:      signer,
		resolver:    resolver,
		checker:     checker,
		registry:    registry,
		credentials: credentials,
		oplog:       oplog,
		log:         log,
		chainID:     chainID,
		now:         time.Now,
		decrypted:   make(map[uint64]models.DecryptedFields),
		messages:    make(chan StatusMessage, statusBufferSize),
	}
}

// ── pipelines ────────────────────────────────────────────────────────────────

// Submit implements [WorkflowOrchestrator].
func (o *workflowOrchestrator) Submit(ctx context.Context, input SubmitInput) error {
	err := o.runExclusive(&o.submitMu, &o.submitting, func() error {
		return o.submit(ctx, input)
	})
	o.reportFailure(ctx, models.OpSubmit, "Submit failed", err)
	return err
}

func (o *workflowOrchestrator) submit(ctx context.Context, input SubmitInput) error {
	if input.Identity == "" || input.Reason == "" {
		return fmt.Errorf("identity and reason are required")
	}

	meta, err := o.prepare(ctx)
	if err != nil {
		return err
	}
	if o.signer == nil {
		return ErrSignerRequired
	}
	user := o.signer.Address()

	o.publish(OutcomeOK, "Encrypting application fields...")

	// каждое поле шифруется отдельной сессией: один handle + один proof
	identity, err := o.encryptText(ctx, meta.Address, user, input.Identity)
	if err != nil {
		return fmt.Errorf("encrypt identity: %w", err)
	}
	reason, err := o.encryptText(ctx, meta.Address, user, input.Reason)
	if err != nil {
		return fmt.Errorf("encrypt reason: %w", err)
	}

	amountInput := o.gw.CreateEncryptedInput(meta.Address, user)
	amountInput.Add32(input.Amount)
	amount, err := amountInput.Encrypt(ctx)
	if err != nil {
		return fmt.Errorf("encrypt amount: %w", err)
	}

	req := models.SubmitRequest{
		EncIdentity:   identity.Handles[0],
		IdentityProof: identity.InputProof,
		EncReason:     reason.Handles[0],
		ReasonProof:   reason.InputProof,
		EncAmount:     amount.Handles[0],
		AmountProof:   amount.InputProof,
		PublicAmount:  input.PublicAmount,
	}

	o.publish(OutcomeOK, "Submitting application to the ledger...")

	tx, err := o.ledger.SubmitApplication(ctx, meta.Address, req)
	if err != nil {
		return fmt.Errorf("submit application: %w", err)
	}
	if err = o.ledger.WaitMined(ctx, tx); err != nil {
		return fmt.Errorf("confirm submit: %w", err)
	}

	if err = o.registry.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after submit: %w", err)
	}

	o.recordOp(ctx, models.OpSubmit, "Application submitted", "tx "+tx.Hex())
	o.publish(OutcomeOK, "Application submitted")

	return nil
}

func (o *workflowOrchestrator) encryptText(ctx context.Context, contract, user common.Address, value string) (models.EncryptedPayload, error) {
	input := o.gw.CreateEncryptedInput(contract, user)
	input.AddText(value)
	return input.Encrypt(ctx)
}

// Verify implements [WorkflowOrchestrator].
func (o *workflowOrchestrator) Verify(ctx context.Context, id uint64, approved bool) error {
	err := o.runExclusive(&o.verifyMu, &o.verifying, func() error {
		return o.verify(ctx, id, approved)
	})
	o.reportFailure(ctx, models.OpVerify, "Verification failed", err)
	return err
}

func (o *workflowOrchestrator) verify(ctx context.Context, id uint64, approved bool) error {
	meta, err := o.prepare(ctx)
	if err != nil {
		return err
	}
	if o.signer == nil {
		return ErrSignerRequired
	}
	app, ok := o.application(id)
	if !ok {
		return ErrApplicationNotFound
	}
	if app.Status.Terminal() {
		return fmt.Errorf("application %d is %s: %w", id, app.Status, ErrApplicationFinalized)
	}

	tx, err := o.ledger.VerifyApplication(ctx, meta.Address, id, approved)
	if err != nil {
		return fmt.Errorf("verify application: %w", err)
	}
	if err = o.ledger.WaitMined(ctx, tx); err != nil {
		return fmt.Errorf("confirm verification: %w", err)
	}

	if err = o.registry.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after verification: %w", err)
	}

	details := "tx " + tx.Hex()
	// верификатор читается для журнала; его отсутствие не валит pipeline
	if verifier, vErr := o.ledger.GetVerifier(ctx, meta.Address, id); vErr == nil {
		details = fmt.Sprintf("tx %s, verifier %s", tx.Hex(), verifier.Hex())
	} else {
		logger.FromContext(ctx).Err(vErr).
			Str("func", "workflowOrchestrator.verify").
			Uint64("app_id", id).
			Msg("failed to read verifier")
	}

	verdict := "approved"
	if !approved {
		verdict = "rejected"
	}
	o.recordOp(ctx, models.OpVerify, fmt.Sprintf("Application %d %s", id, verdict), details)
	o.publish(OutcomeOK, fmt.Sprintf("Application %d %s", id, verdict))

	return nil
}

// Donate implements [WorkflowOrchestrator].
func (o *workflowOrchestrator) Donate(ctx context.Context, id uint64, units uint64) error {
	err := o.runExclusive(&o.donateMu, &o.donating, func() error {
		return o.donate(ctx, id, units)
	})
	o.reportFailure(ctx, models.OpDonate, "Donation failed", err)
	return err
}

func (o *workflowOrchestrator) donate(ctx context.Context, id uint64, units uint64) error {
	if units == 0 {
		return fmt.Errorf("donation amount must be positive")
	}

	meta, err := o.prepare(ctx)
	if err != nil {
		return err
	}
	if o.signer == nil {
		return ErrSignerRequired
	}
	app, ok := o.application(id)
	if !ok {
		return ErrApplicationNotFound
	}
	if app.Status.Terminal() {
		return fmt.Errorf("application %d is %s: %w", id, app.Status, ErrApplicationFinalized)
	}

	value := new(big.Int).Mul(new(big.Int).SetUint64(units), big.NewInt(donationWeiPerUnit))

	tx, err := o.ledger.Donate(ctx, meta.Address, id, value)
	if err != nil {
		return fmt.Errorf("donate: %w", err)
	}
	if err = o.ledger.WaitMined(ctx, tx); err != nil {
		return fmt.Errorf("confirm donation: %w", err)
	}

	if err = o.registry.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after donation: %w", err)
	}

	o.recordOp(ctx, models.OpDonate, fmt.Sprintf("Donated %d units to application %d", units, id), "tx "+tx.Hex())
	o.publish(OutcomeOK, fmt.Sprintf("Donated %d units to application %d", units, id))

	return nil
}

// Decrypt implements [WorkflowOrchestrator].
func (o *workflowOrchestrator) Decrypt(ctx context.Context, id uint64) (models.DecryptedFields, error) {
	var fields models.DecryptedFields
	err := o.runExclusive(&o.decryptMu, &o.decrypting, func() error {
		var decErr error
		fields, decErr = o.decrypt(ctx, id)
		return decErr
	})
	o.reportFailure(ctx, models.OpDecrypt, "Decryption failed", err)
	return fields, err
}

func (o *workflowOrchestrator) decrypt(ctx context.Context, id uint64) (models.DecryptedFields, error) {
	var zero models.DecryptedFields

	meta, err := o.prepare(ctx)
	if err != nil {
		return zero, err
	}
	if o.signer == nil {
		return zero, ErrSignerRequired
	}
	if _, ok := o.application(id); !ok {
		return zero, ErrApplicationNotFound
	}
	user := o.signer.Address()

	identityHandle, err := o.ledger.GetEncryptedIdentityHash(ctx, meta.Address, id)
	if err != nil {
		return zero, fmt.Errorf("read identity handle: %w", err)
	}
	reasonHandle, err := o.ledger.GetEncryptedReasonHash(ctx, meta.Address, id)
	if err != nil {
		return zero, fmt.Errorf("read reason handle: %w", err)
	}
	amountHandle, err := o.ledger.GetEncryptedAmount(ctx, meta.Address, id)
	if err != nil {
		return zero, fmt.Errorf("read amount handle: %w", err)
	}

	cred, err := o.credentials.LoadOrSign(ctx, []common.Address{meta.Address}, user)
	if err != nil {
		// отказ в подписи не трогает расшифрованные поля
		return zero, err
	}

	pairs := []models.HandleContractPair{
		{Handle: identityHandle, ContractAddress: meta.Address},
		{Handle: reasonHandle, ContractAddress: meta.Address},
		{Handle: amountHandle, ContractAddress: meta.Address},
	}

	clear, err := o.gw.UserDecrypt(ctx, pairs, cred)
	if err != nil {
		return zero, fmt.Errorf("user decrypt: %w", err)
	}

	fields := models.DecryptedFields{
		Identity: clear[identityHandle].Text(),
		Reason:   clear[reasonHandle].Text(),
		Amount:   clear[amountHandle].Uint64(),
	}

	o.mu.Lock()
	o.decrypted[id] = fields
	o.mu.Unlock()

	o.recordOp(ctx, models.OpDecrypt, fmt.Sprintf("Decrypted application %d", id), "")
	o.publish(OutcomeOK, fmt.Sprintf("Decrypted application %d", id))

	return fields, nil
}

// Refresh implements [WorkflowOrchestrator].
func (o *workflowOrchestrator) Refresh(ctx context.Context) error {
	err := o.runExclusive(&o.refreshMu, &o.refreshing, func() error {
		// ручной refresh — это и повторная проверка существования: кэш
		// probe сбрасывается, чтобы поздний деплой или сетевой сбой не
		// залипали до перезапуска процесса
		o.checker.Invalidate()
		return o.registry.Refresh(ctx)
	})
	o.reportFailure(ctx, models.OpRefresh, "Refresh failed", err)
	return err
}

// ── views ────────────────────────────────────────────────────────────────────

// Applications implements [WorkflowOrchestrator].
func (o *workflowOrchestrator) Applications() []models.Application {
	return o.registry.Applications()
}

// Decrypted implements [WorkflowOrchestrator].
func (o *workflowOrchestrator) Decrypted() map[uint64]models.DecryptedFields {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make(map[uint64]models.DecryptedFields, len(o.decrypted))
	for id, fields := range o.decrypted {
		out[id] = fields
	}
	return out
}

// Busy implements [WorkflowOrchestrator].
func (o *workflowOrchestrator) Busy() BusyFlags {
	return BusyFlags{
		Submitting: o.submitting.Load(),
		Verifying:  o.verifying.Load(),
		Donating:   o.donating.Load(),
		Decrypting: o.decrypting.Load(),
		Refreshing: o.refreshing.Load(),
	}
}

// Messages implements [WorkflowOrchestrator].
func (o *workflowOrchestrator) Messages() <-chan StatusMessage {
	return o.messages
}

// ── internals ────────────────────────────────────────────────────────────────

func (o *workflowOrchestrator) runExclusive(mu *sync.Mutex, busy *atomic.Bool, fn func() error) error {
	if !mu.TryLock() {
		return ErrOperationInProgress
	}
	defer mu.Unlock()

	busy.Store(true)
	defer busy.Store(false)

	return fn()
}

// prepare resolves the contract for the active network and confirms it is
// deployed. Every pipeline starts here.
func (o *workflowOrchestrator) prepare(ctx context.Context) (models.ContractMeta, error) {
	meta := o.resolver.Resolve(o.chainID)
	if !meta.Configured() {
		return meta, ErrNotConfigured
	}

	deployed, err := o.checker.Check(ctx, meta.Address)
	if err != nil {
		return meta, fmt.Errorf("existence check: %w", err)
	}
	if !deployed {
		return meta, adapter.ErrNotDeployed
	}

	return meta, nil
}

func (o *workflowOrchestrator) application(id uint64) (models.Application, bool) {
	for _, app := range o.registry.Applications() {
		if app.ID == id {
			return app, true
		}
	}
	return models.Application{}, false
}

// publish sends a status message without ever blocking a pipeline: when the
// buffer is full the oldest unread message is dropped.
func (o *workflowOrchestrator) publish(kind OutcomeKind, text string) {
	msg := StatusMessage{Kind: kind, Text: text, At: o.now()}

	for {
		select {
		case o.messages <- msg:
			return
		default:
			select {
			case <-o.messages:
			default:
			}
		}
	}
}

// recordOp appends a persistent operation-log entry. Log failures are not
// allowed to fail the pipeline that produced them.
func (o *workflowOrchestrator) recordOp(ctx context.Context, kind, title, details string) {
	entry := models.OperationLogEntry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Details:   details,
		CreatedAt: o.now().UTC(),
	}
	if err := o.oplog.AppendEntry(ctx, entry); err != nil {
		o.log.Err(err).
			Str("func", "workflowOrchestrator.recordOp").
			Str("kind", kind).
			Msg("failed to append operation log entry")
	}
}

// reportFailure classifies err, publishes the outcome, and records an error
// entry. A same-kind duplicate is only published, not logged.
func (o *workflowOrchestrator) reportFailure(ctx context.Context, kind, title string, err error) {
	if err == nil {
		return
	}

	out := Classify(err)
	o.publish(out.Kind, out.Message)

	log := logger.FromContext(ctx)
	log.Err(err).
		Str("op", kind).
		Str("outcome", string(out.Kind)).
		Msg(title)

	if errors.Is(err, ErrOperationInProgress) {
		return
	}
	o.recordOp(ctx, models.OpError, title, out.Message)
}
