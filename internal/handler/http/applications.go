package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/internal/service"
	"github.com/MKhiriev/go-help-crypt/models"
)

type applicationsResponse struct {
	Applications []models.Application              `json:"applications"`
	Decrypted    map[uint64]models.DecryptedFields `json:"decrypted"`
	Busy         service.BusyFlags                 `json:"busy"`
}

type verifyRequest struct {
	Approved bool `json:"approved"`
}

type donateRequest struct {
	Units uint64 `json:"units"`
}

type decryptResponse struct {
	Kind    service.OutcomeKind    `json:"kind"`
	Message string                 `json:"message"`
	Fields  models.DecryptedFields `json:"fields"`
}

func (h *Handler) listApplications(w http.ResponseWriter, r *http.Request) {
	orch := h.services.Orchestrator

	var apps []models.Application
	if raw := r.URL.Query().Get("applicant"); raw != "" {
		if !common.IsHexAddress(raw) {
			http.Error(w, "invalid applicant address", http.StatusBadRequest)
			return
		}

		filtered, err := h.services.Registry.ApplicantApplications(r.Context(), common.HexToAddress(raw))
		if err != nil {
			h.writeOutcome(w, err)
			return
		}
		apps = filtered
	} else {
		apps = orch.Applications()
	}

	writeJSON(w, http.StatusOK, applicationsResponse{
		Applications: apps,
		Decrypted:    orch.Decrypted(),
		Busy:         orch.Busy(),
	})
}

func (h *Handler) submitApplication(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input service.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.submitApplication").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.Orchestrator.Submit(r.Context(), input)
	h.writeOutcome(w, err)
}

func (h *Handler) verifyApplication(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := applicationID(w, r)
	if !ok {
		return
	}

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.verifyApplication").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.Orchestrator.Verify(r.Context(), id, req.Approved)
	h.writeOutcome(w, err)
}

func (h *Handler) donateToApplication(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := applicationID(w, r)
	if !ok {
		return
	}

	var req donateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.donateToApplication").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.Orchestrator.Donate(r.Context(), id, req.Units)
	h.writeOutcome(w, err)
}

func (h *Handler) decryptApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := applicationID(w, r)
	if !ok {
		return
	}

	fields, err := h.services.Orchestrator.Decrypt(r.Context(), id)
	if err != nil {
		h.writeOutcome(w, err)
		return
	}

	writeJSON(w, http.StatusOK, decryptResponse{
		Kind:    service.OutcomeOK,
		Message: "ok",
		Fields:  fields,
	})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	err := h.services.Orchestrator.Refresh(r.Context())
	h.writeOutcome(w, err)
}

// applicationID parses the {id} url param; on failure the 400 is already
// written and ok is false.
func applicationID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		http.Error(w, "invalid application id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeOutcome classifies err and writes the outcome JSON with the mapped
// HTTP status. A nil err produces the 200 "ok" outcome.
func (h *Handler) writeOutcome(w http.ResponseWriter, err error) {
	out, status := classifyForResponse(err)
	writeJSON(w, status, out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
