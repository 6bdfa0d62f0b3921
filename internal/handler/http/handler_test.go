package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/internal/mock"
	"github.com/MKhiriev/go-help-crypt/internal/service"
)

type handlerMocks struct {
	orchestrator *mock.MockWorkflowOrchestrator
	resolver     *mock.MockContractResolver
	existence    *mock.MockExistenceChecker
	registry     *mock.MockApplicationRegistry
	oplog        *mock.MockOperationLogRepository
}

// newTestHandler — хелпер для создания Handler с моками сервисного слоя
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *handlerMocks) {
	t.Helper()
	m := &handlerMocks{
		orchestrator: mock.NewMockWorkflowOrchestrator(ctrl),
		resolver:     mock.NewMockContractResolver(ctrl),
		existence:    mock.NewMockExistenceChecker(ctrl),
		registry:     mock.NewMockApplicationRegistry(ctrl),
		oplog:        mock.NewMockOperationLogRepository(ctrl),
	}

	services := &service.Services{
		Resolver:     m.resolver,
		Existence:    m.existence,
		Registry:     m.registry,
		Orchestrator: m.orchestrator,
	}

	return NewHandler(services, m.oplog, "1.0.0", 31337, logger.Nop()), m
}

func TestRoutes_UnknownPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/refresh", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
