package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/models"
)

const defaultLogLimit = 50

type operationLogResponse struct {
	Entries []models.OperationLogEntry `json:"entries"`
}

func (h *Handler) operationLog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := defaultLogLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.oplog.RecentEntries(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.operationLog").Msg("error reading operation log")
		http.Error(w, "error reading operation log", http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []models.OperationLogEntry{}
	}

	writeJSON(w, http.StatusOK, operationLogResponse{Entries: entries})
}
