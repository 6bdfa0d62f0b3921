package service_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-help-crypt/internal/adapter"
	"github.com/MKhiriev/go-help-crypt/internal/gateway"
	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/internal/mock"
	"github.com/MKhiriev/go-help-crypt/internal/service"
	"github.com/MKhiriev/go-help-crypt/models"
)

type orchestratorMocks struct {
	ledger      *mock.MockLedgerAdapter
	gw          *mock.MockGateway
	signer      *mock.MockSigner
	resolver    *mock.MockContractResolver
	checker     *mock.MockExistenceChecker
	registry    *mock.MockApplicationRegistry
	credentials *mock.MockCredentialManager
	oplog       *mock.MockOperationLogRepository
}

// newTestOrchestrator — хелпер для создания workflowOrchestrator с моками
func newTestOrchestrator(t *testing.T, ctrl *gomock.Controller) (service.WorkflowOrchestrator, *orchestratorMocks) {
	t.Helper()
	m := &orchestratorMocks{
		ledger:      mock.NewMockLedgerAdapter(ctrl),
		gw:          mock.NewMockGateway(ctrl),
		signer:      mock.NewMockSigner(ctrl),
		resolver:    mock.NewMockContractResolver(ctrl),
		checker:     mock.NewMockExistenceChecker(ctrl),
		registry:    mock.NewMockApplicationRegistry(ctrl),
		credentials: mock.NewMockCredentialManager(ctrl),
		oplog:       mock.NewMockOperationLogRepository(ctrl),
	}

	orch := service.NewWorkflowOrchestrator(
		m.ledger, m.gw, m.signer,
		m.resolver, m.checker, m.registry, m.credentials,
		m.oplog, testChainID, logger.Nop(),
	)

	return orch, m
}

// expectPrepared — контракт зарегистрирован и развёрнут
func expectPrepared(m *orchestratorMocks) models.ContractMeta {
	meta := configuredMeta()
	m.resolver.EXPECT().Resolve(testChainID).Return(meta)
	m.checker.EXPECT().Check(gomock.Any(), meta.Address).Return(true, nil)
	return meta
}

func handle(b byte) models.CiphertextHandle {
	var h common.Hash
	h[31] = b
	return models.CiphertextHandle(h)
}

func expectEncryptedInput(m *orchestratorMocks, ctrl *gomock.Controller, h models.CiphertextHandle, proof []byte) *mock.MockEncryptedInput {
	input := mock.NewMockEncryptedInput(ctrl)
	input.EXPECT().Encrypt(gomock.Any()).Return(models.EncryptedPayload{
		Handles:    []models.CiphertextHandle{h},
		InputProof: proof,
	}, nil)
	m.gw.EXPECT().CreateEncryptedInput(gomock.Any(), gomock.Any()).Return(input)
	return input
}

func TestWorkflowOrchestrator_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	meta := expectPrepared(m)
	m.signer.EXPECT().Address().Return(credUser).AnyTimes()

	identity := expectEncryptedInput(m, ctrl, handle(0x11), []byte{0xA1})
	identity.EXPECT().AddText("Alice")
	reason := expectEncryptedInput(m, ctrl, handle(0x22), []byte{0xA2})
	reason.EXPECT().AddText("medical treatment")
	amount := expectEncryptedInput(m, ctrl, handle(0x33), []byte{0xA3})
	amount.EXPECT().Add32(uint32(5000))

	txHash := common.HexToHash("0xdead")
	m.ledger.EXPECT().
		SubmitApplication(gomock.Any(), meta.Address, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ common.Address, req models.SubmitRequest) (common.Hash, error) {
			// все три handle и proof уходят одной транзакцией
			assert.Equal(t, handle(0x11), req.EncIdentity)
			assert.Equal(t, []byte{0xA1}, req.IdentityProof)
			assert.Equal(t, handle(0x22), req.EncReason)
			assert.Equal(t, []byte{0xA2}, req.ReasonProof)
			assert.Equal(t, handle(0x33), req.EncAmount)
			assert.Equal(t, []byte{0xA3}, req.AmountProof)
			assert.Equal(t, uint64(3000), req.PublicAmount)
			return txHash, nil
		})
	m.ledger.EXPECT().WaitMined(gomock.Any(), txHash).Return(nil)
	m.registry.EXPECT().Refresh(gomock.Any()).Return(nil)
	m.oplog.EXPECT().
		AppendEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.OperationLogEntry) error {
			assert.Equal(t, models.OpSubmit, entry.Kind)
			assert.NotEmpty(t, entry.ID)
			assert.Contains(t, entry.Details, txHash.Hex())
			return nil
		})

	err := orch.Submit(context.Background(), service.SubmitInput{
		Identity:     "Alice",
		Reason:       "medical treatment",
		Amount:       5000,
		PublicAmount: 3000,
	})

	require.NoError(t, err)
}

// TestWorkflowOrchestrator_SubmitEncryptionFailure — ошибка шифрования
// останавливает pipeline до записи в ledger
func TestWorkflowOrchestrator_SubmitEncryptionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	expectPrepared(m)
	m.signer.EXPECT().Address().Return(credUser).AnyTimes()

	encErr := errors.New("gateway rejected input")
	input := mock.NewMockEncryptedInput(ctrl)
	input.EXPECT().AddText("Alice")
	input.EXPECT().Encrypt(gomock.Any()).Return(models.EncryptedPayload{}, encErr)
	m.gw.EXPECT().CreateEncryptedInput(gomock.Any(), gomock.Any()).Return(input)

	// SubmitApplication не ожидается вовсе: до ledger дело не доходит
	m.oplog.EXPECT().
		AppendEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.OperationLogEntry) error {
			assert.Equal(t, models.OpError, entry.Kind)
			return nil
		})

	err := orch.Submit(context.Background(), service.SubmitInput{
		Identity:     "Alice",
		Reason:       "medical treatment",
		Amount:       5000,
		PublicAmount: 3000,
	})

	require.ErrorIs(t, err, encErr)
}

func TestWorkflowOrchestrator_SubmitValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	m.oplog.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := orch.Submit(context.Background(), service.SubmitInput{Reason: "no identity"})

	require.Error(t, err)
}

func TestWorkflowOrchestrator_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	m.resolver.EXPECT().Resolve(testChainID).Return(models.ContractMeta{ChainID: testChainID})
	m.oplog.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := orch.Verify(context.Background(), 0, true)

	require.ErrorIs(t, err, service.ErrNotConfigured)

	// результат классифицирован и опубликован в поток статусов
	select {
	case msg := <-orch.Messages():
		assert.Equal(t, service.OutcomeNotConfigured, msg.Kind)
	case <-time.After(time.Second):
		t.Fatal("no status message published")
	}
}

func TestWorkflowOrchestrator_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	meta := expectPrepared(m)
	m.registry.EXPECT().Applications().Return([]models.Application{testApplication(7)})

	txHash := common.HexToHash("0xbeef")
	m.ledger.EXPECT().VerifyApplication(gomock.Any(), meta.Address, uint64(7), true).Return(txHash, nil)
	m.ledger.EXPECT().WaitMined(gomock.Any(), txHash).Return(nil)
	m.registry.EXPECT().Refresh(gomock.Any()).Return(nil)
	m.ledger.EXPECT().GetVerifier(gomock.Any(), meta.Address, uint64(7)).Return(credUser, nil)
	m.oplog.EXPECT().
		AppendEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.OperationLogEntry) error {
			assert.Equal(t, models.OpVerify, entry.Kind)
			assert.Contains(t, entry.Title, "approved")
			// адрес верификатора попадает в журнал
			assert.Contains(t, entry.Details, credUser.Hex())
			return nil
		})

	err := orch.Verify(context.Background(), 7, true)

	require.NoError(t, err)
}

func TestWorkflowOrchestrator_VerifyUnknownApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	expectPrepared(m)
	m.registry.EXPECT().Applications().Return(nil)
	m.oplog.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := orch.Verify(context.Background(), 99, false)

	require.ErrorIs(t, err, service.ErrApplicationNotFound)
}

// TestWorkflowOrchestrator_DonateConversion — 1000 единиц конвертируются
// ровно в один ether
func TestWorkflowOrchestrator_DonateConversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	meta := expectPrepared(m)
	m.registry.EXPECT().Applications().Return([]models.Application{testApplication(2)})

	txHash := common.HexToHash("0xfeed")
	oneEther := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	m.ledger.EXPECT().
		Donate(gomock.Any(), meta.Address, uint64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ common.Address, _ uint64, value *big.Int) (common.Hash, error) {
			assert.Zero(t, oneEther.Cmp(value))
			return txHash, nil
		})
	m.ledger.EXPECT().WaitMined(gomock.Any(), txHash).Return(nil)
	m.registry.EXPECT().Refresh(gomock.Any()).Return(nil)
	m.oplog.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil)

	err := orch.Donate(context.Background(), 2, 1000)

	require.NoError(t, err)
}

func TestWorkflowOrchestrator_DonateZeroUnits(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	m.oplog.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := orch.Donate(context.Background(), 0, 0)

	require.Error(t, err)
}

func TestWorkflowOrchestrator_Decrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	meta := expectPrepared(m)
	m.signer.EXPECT().Address().Return(credUser).AnyTimes()
	m.registry.EXPECT().Applications().Return([]models.Application{testApplication(4)})

	identityHandle, reasonHandle, amountHandle := handle(0x41), handle(0x42), handle(0x43)
	m.ledger.EXPECT().GetEncryptedIdentityHash(gomock.Any(), meta.Address, uint64(4)).Return(identityHandle, nil)
	m.ledger.EXPECT().GetEncryptedReasonHash(gomock.Any(), meta.Address, uint64(4)).Return(reasonHandle, nil)
	m.ledger.EXPECT().GetEncryptedAmount(gomock.Any(), meta.Address, uint64(4)).Return(amountHandle, nil)

	cred := storedCredential(-time.Hour)
	m.credentials.EXPECT().
		LoadOrSign(gomock.Any(), []common.Address{meta.Address}, credUser).
		Return(cred, nil)

	m.gw.EXPECT().
		UserDecrypt(gomock.Any(), gomock.Any(), cred).
		DoAndReturn(func(_ context.Context, pairs []models.HandleContractPair, _ models.DecryptionCredential) (map[models.CiphertextHandle]gateway.ClearValue, error) {
			// все три handle расшифровываются одним batched-вызовом
			require.Len(t, pairs, 3)
			return map[models.CiphertextHandle]gateway.ClearValue{
				identityHandle: gateway.ClearValue("Alice\x00\x00\x00"),
				reasonHandle:   gateway.ClearValue("medical treatment"),
				amountHandle:   gateway.ClearValue(gateway.Uint64Bytes(5000)),
			}, nil
		})
	m.oplog.EXPECT().
		AppendEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.OperationLogEntry) error {
			assert.Equal(t, models.OpDecrypt, entry.Kind)
			return nil
		})

	fields, err := orch.Decrypt(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "Alice", fields.Identity)
	assert.Equal(t, "medical treatment", fields.Reason)
	assert.Equal(t, uint64(5000), fields.Amount)

	// результат попадает в keyed-представление
	decrypted := orch.Decrypted()
	require.Contains(t, decrypted, uint64(4))
	assert.Equal(t, fields, decrypted[4])
}

// TestWorkflowOrchestrator_DecryptDeclined — отказ в подписи не трогает
// уже расшифрованные поля
func TestWorkflowOrchestrator_DecryptDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	meta := expectPrepared(m)
	m.signer.EXPECT().Address().Return(credUser).AnyTimes()
	m.registry.EXPECT().Applications().Return([]models.Application{testApplication(4)})

	m.ledger.EXPECT().GetEncryptedIdentityHash(gomock.Any(), meta.Address, uint64(4)).Return(handle(0x41), nil)
	m.ledger.EXPECT().GetEncryptedReasonHash(gomock.Any(), meta.Address, uint64(4)).Return(handle(0x42), nil)
	m.ledger.EXPECT().GetEncryptedAmount(gomock.Any(), meta.Address, uint64(4)).Return(handle(0x43), nil)

	m.credentials.EXPECT().
		LoadOrSign(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DecryptionCredential{}, service.ErrCredentialUnavailable)
	m.oplog.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := orch.Decrypt(context.Background(), 4)

	require.ErrorIs(t, err, service.ErrCredentialUnavailable)
	assert.Empty(t, orch.Decrypted())
}

// TestWorkflowOrchestrator_SameKindOperationsExclusive — вторая операция
// того же вида отклоняется сразу, busy-флаг виден снаружи
func TestWorkflowOrchestrator_SameKindOperationsExclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	m.checker.EXPECT().Invalidate()
	m.registry.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			close(started)
			<-release
			return nil
		})

	done := make(chan error, 1)
	go func() {
		done <- orch.Refresh(context.Background())
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("refresh never started")
	}

	assert.True(t, orch.Busy().Refreshing)

	err := orch.Refresh(context.Background())
	require.ErrorIs(t, err, service.ErrOperationInProgress)

	close(release)
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("refresh never finished")
	}

	assert.False(t, orch.Busy().Refreshing)
}

func TestWorkflowOrchestrator_ApplicationsDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	snapshot := []models.Application{testApplication(0), testApplication(1)}
	m.registry.EXPECT().Applications().Return(snapshot)

	assert.Equal(t, snapshot, orch.Applications())
}

// TestWorkflowOrchestrator_SubmitLedgerWriteFailure — отказ самой записи в
// ledger не оставляет следов: ни подтверждения, ни refresh, busy-флаг снят
func TestWorkflowOrchestrator_SubmitLedgerWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	meta := expectPrepared(m)
	m.signer.EXPECT().Address().Return(credUser).AnyTimes()

	identity := expectEncryptedInput(m, ctrl, handle(0x11), []byte{0xA1})
	identity.EXPECT().AddText("Alice")
	reason := expectEncryptedInput(m, ctrl, handle(0x22), []byte{0xA2})
	reason.EXPECT().AddText("medical treatment")
	amount := expectEncryptedInput(m, ctrl, handle(0x33), []byte{0xA3})
	amount.EXPECT().Add32(uint32(5000))

	writeErr := errors.New("insufficient funds for gas")
	m.ledger.EXPECT().
		SubmitApplication(gomock.Any(), meta.Address, gomock.Any()).
		Return(common.Hash{}, writeErr)

	// WaitMined и registry.Refresh не ожидаются: транзакция не состоялась
	m.oplog.EXPECT().
		AppendEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.OperationLogEntry) error {
			assert.Equal(t, models.OpError, entry.Kind)
			return nil
		})

	err := orch.Submit(context.Background(), service.SubmitInput{
		Identity:     "Alice",
		Reason:       "medical treatment",
		Amount:       5000,
		PublicAmount: 3000,
	})

	require.ErrorIs(t, err, writeErr)
	assert.False(t, orch.Busy().Submitting)
}

// TestWorkflowOrchestrator_VerifyFinalizedApplication — терминальный статус
// отклоняет верификацию до обращения к ledger
func TestWorkflowOrchestrator_VerifyFinalizedApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	expectPrepared(m)
	funded := testApplication(3)
	funded.Status = models.StatusFunded
	m.registry.EXPECT().Applications().Return([]models.Application{funded})
	m.oplog.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := orch.Verify(context.Background(), 3, true)

	require.ErrorIs(t, err, service.ErrApplicationFinalized)
	assert.False(t, orch.Busy().Verifying)
}

func TestWorkflowOrchestrator_DonateFinalizedApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch, m := newTestOrchestrator(t, ctrl)

	expectPrepared(m)
	rejected := testApplication(5)
	rejected.Status = models.StatusRejected
	m.registry.EXPECT().Applications().Return([]models.Application{rejected})
	m.oplog.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := orch.Donate(context.Background(), 5, 10)

	require.ErrorIs(t, err, service.ErrApplicationFinalized)
}

// TestWorkflowOrchestrator_RefreshRecoversAfterLateDeployment — ручной
// refresh повторяет probe: контракт, задеплоенный после первой проверки,
// становится видимым без перезапуска процесса
func TestWorkflowOrchestrator_RefreshRecoversAfterLateDeployment(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedgerAdapter(ctrl)
	resolver := mock.NewMockContractResolver(ctrl)
	oplog := mock.NewMockOperationLogRepository(ctrl)

	meta := configuredMeta()
	resolver.EXPECT().Resolve(testChainID).Return(meta).AnyTimes()
	oplog.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	checker := service.NewExistenceChecker(ledger, logger.Nop())
	registry := service.NewApplicationRegistry(resolver, checker, ledger, testChainID, logger.Nop())
	orch := service.NewWorkflowOrchestrator(
		ledger, mock.NewMockGateway(ctrl), nil,
		resolver, checker, registry, mock.NewMockCredentialManager(ctrl),
		oplog, testChainID, logger.Nop(),
	)

	// кода ещё нет: первый refresh фиксирует not deployed
	first := ledger.EXPECT().CodeAt(gomock.Any(), meta.Address).Return(nil, nil)
	require.ErrorIs(t, orch.Refresh(context.Background()), adapter.ErrNotDeployed)
	assert.Empty(t, orch.Applications())

	// контракт задеплоили: повторный refresh обязан сходить в ledger снова
	ledger.EXPECT().CodeAt(gomock.Any(), meta.Address).Return([]byte{0x60, 0x80}, nil).After(first)
	ledger.EXPECT().ApplicationCount(gomock.Any(), meta.Address).Return(uint64(1), nil)
	ledger.EXPECT().GetApplicationInfo(gomock.Any(), meta.Address, uint64(0)).Return(testApplication(0), nil)
	ledger.EXPECT().ProtocolID(gomock.Any(), meta.Address).Return(uint64(10001), nil)

	require.NoError(t, orch.Refresh(context.Background()))
	require.Len(t, orch.Applications(), 1)
}
