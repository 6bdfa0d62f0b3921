package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-help-crypt/models"
)

func TestOperationLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	entries := []models.OperationLogEntry{
		{
			ID:        "e1",
			Kind:      models.OpSubmit,
			Title:     "Application submitted",
			Details:   "tx 0xdead",
			CreatedAt: time.Unix(1717000000, 0).UTC(),
		},
	}
	m.oplog.EXPECT().RecentEntries(gomock.Any(), defaultLogLimit).Return(entries, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/log", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp operationLogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, models.OpSubmit, resp.Entries[0].Kind)
}

func TestOperationLog_CustomLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	m.oplog.EXPECT().RecentEntries(gomock.Any(), 10).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/log?limit=10", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// пустая история сериализуется как [], а не null
	var resp operationLogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Entries)
	assert.Empty(t, resp.Entries)
}

func TestOperationLog_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/log?limit=-5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOperationLog_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	m.oplog.EXPECT().RecentEntries(gomock.Any(), gomock.Any()).Return(nil, errors.New("database is locked"))

	req := httptest.NewRequest(http.MethodGet, "/api/log", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
