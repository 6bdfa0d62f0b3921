package http

import (
	"net/http"

	"github.com/MKhiriev/go-help-crypt/internal/service"
	"github.com/MKhiriev/go-help-crypt/models"
)

type statusResponse struct {
	Version  string              `json:"version"`
	Contract models.ContractMeta `json:"contract"`
	Deployed bool                `json:"deployed"`
	Protocol uint64              `json:"protocol_id"`
	Busy     service.BusyFlags   `json:"busy"`
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	meta := h.services.Resolver.Resolve(h.chainID)

	deployed := false
	if meta.Configured() {
		// результат probe закэширован, сюда дорого не ходим
		deployed, _ = h.services.Existence.Check(r.Context(), meta.Address)
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Version:  h.version,
		Contract: meta,
		Deployed: deployed,
		Protocol: h.services.Registry.Protocol(),
		Busy:     h.services.Orchestrator.Busy(),
	})
}
