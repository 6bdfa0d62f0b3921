package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-help-crypt/internal/adapter"
	"github.com/MKhiriev/go-help-crypt/internal/service"
	"github.com/MKhiriev/go-help-crypt/models"
)

func TestListApplications(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	apps := []models.Application{
		{
			ID:            0,
			Applicant:     common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
			PublicAmount:  3000,
			Status:        models.StatusVerified,
			DonatedAmount: big.NewInt(0),
		},
	}
	decrypted := map[uint64]models.DecryptedFields{
		0: {Identity: "Alice", Reason: "medical treatment", Amount: 5000},
	}
	m.orchestrator.EXPECT().Applications().Return(apps)
	m.orchestrator.EXPECT().Decrypted().Return(decrypted)
	m.orchestrator.EXPECT().Busy().Return(service.BusyFlags{Refreshing: true})

	req := httptest.NewRequest(http.MethodGet, "/api/applications/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp applicationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, "Alice", resp.Decrypted[0].Identity)
	assert.True(t, resp.Busy.Refreshing)
}

// TestListApplications_ApplicantFilter — query-параметр applicant сужает
// выдачу через индекс заявителя
func TestListApplications_ApplicantFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	applicant := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	apps := []models.Application{
		{ID: 2, Applicant: applicant, PublicAmount: 3000, DonatedAmount: big.NewInt(0)},
	}
	m.registry.EXPECT().ApplicantApplications(gomock.Any(), applicant).Return(apps, nil)
	m.orchestrator.EXPECT().Decrypted().Return(nil)
	m.orchestrator.EXPECT().Busy().Return(service.BusyFlags{})

	req := httptest.NewRequest(http.MethodGet, "/api/applications/?applicant="+applicant.Hex(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp applicationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, uint64(2), resp.Applications[0].ID)
}

func TestListApplications_InvalidApplicant(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/applications/?applicant=not-an-address", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListApplications_ApplicantFilterNotDeployed(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	applicant := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	m.registry.EXPECT().
		ApplicantApplications(gomock.Any(), applicant).
		Return(nil, adapter.ErrNotDeployed)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/?applicant="+applicant.Hex(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
}

func TestSubmitApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	input := service.SubmitInput{
		Identity:     "Alice",
		Reason:       "medical treatment",
		Amount:       5000,
		PublicAmount: 3000,
	}
	m.orchestrator.EXPECT().Submit(gomock.Any(), input).Return(nil)

	body, err := json.Marshal(input)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out service.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, service.OutcomeOK, out.Kind)
}

func TestSubmitApplication_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/applications/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestSubmitApplication_Busy — занятый pipeline отдаёт классифицированный
// outcome с кодом 409
func TestSubmitApplication_Busy(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	m.orchestrator.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(service.ErrOperationInProgress)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/", bytes.NewReader([]byte(`{"identity":"Alice"}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var out service.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, service.OutcomeBusy, out.Kind)
}

func TestVerifyApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	m.orchestrator.EXPECT().Verify(gomock.Any(), uint64(7), true).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/7/verify", bytes.NewReader([]byte(`{"approved":true}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyApplication_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/applications/abc/verify", bytes.NewReader([]byte(`{"approved":true}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDonateToApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	m.orchestrator.EXPECT().Donate(gomock.Any(), uint64(2), uint64(1000)).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/2/donate", bytes.NewReader([]byte(`{"units":1000}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDonateToApplication_TransactionFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	m.orchestrator.EXPECT().
		Donate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(adapter.ErrTxReverted)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/2/donate", bytes.NewReader([]byte(`{"units":1000}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var out service.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, service.OutcomeTransactionFailed, out.Kind)
}

func TestDecryptApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	fields := models.DecryptedFields{Identity: "Alice", Reason: "medical treatment", Amount: 5000}
	m.orchestrator.EXPECT().Decrypt(gomock.Any(), uint64(4)).Return(fields, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/4/decrypt", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp decryptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, fields, resp.Fields)
}

// TestDecryptApplication_Declined — отказ в авторизации расшифровки
// отдаётся как 403 с читаемым сообщением
func TestDecryptApplication_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	m.orchestrator.EXPECT().
		Decrypt(gomock.Any(), gomock.Any()).
		Return(models.DecryptedFields{}, service.ErrCredentialUnavailable)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/4/decrypt", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var out service.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, service.OutcomeCredentialUnavailable, out.Kind)
	assert.NotEmpty(t, out.Message)
}

func TestDecryptApplication_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	m.orchestrator.EXPECT().
		Decrypt(gomock.Any(), gomock.Any()).
		Return(models.DecryptedFields{}, service.ErrApplicationNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/99/decrypt", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefresh_NotDeployed(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	m.orchestrator.EXPECT().Refresh(gomock.Any()).Return(adapter.ErrNotDeployed)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusPreconditionFailed, rec.Code)

	var out service.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, service.OutcomeNotDeployed, out.Kind)
}

func TestClassifyForResponse_UnknownError(t *testing.T) {
	out, status := classifyForResponse(errors.New("boom"))

	assert.Equal(t, service.OutcomeGeneric, out.Kind)
	assert.Equal(t, http.StatusInternalServerError, status)
}
