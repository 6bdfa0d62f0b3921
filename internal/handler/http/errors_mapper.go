package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-help-crypt/internal/service"
)

// outcomeStatusMap translates classified outcome kinds into HTTP status
// codes. The outcome JSON body is written regardless of the status, so the
// frontend always has a human-readable message to show.
var outcomeStatusMap = map[service.OutcomeKind]int{
	service.OutcomeOK:                    http.StatusOK,
	service.OutcomeNotConfigured:         http.StatusPreconditionFailed,
	service.OutcomeNotDeployed:           http.StatusPreconditionFailed,
	service.OutcomeBusy:                  http.StatusConflict,
	service.OutcomeCredentialUnavailable: http.StatusForbidden,
	service.OutcomeTransactionFailed:     http.StatusUnprocessableEntity,
	service.OutcomeTransport:             http.StatusBadGateway,
	service.OutcomeGeneric:               http.StatusInternalServerError,
}

func classifyForResponse(err error) (service.Outcome, int) {
	if errors.Is(err, service.ErrApplicationNotFound) {
		return service.Outcome{
			Kind:    service.OutcomeGeneric,
			Message: "Application not found",
			Err:     err,
		}, http.StatusNotFound
	}

	out := service.Classify(err)
	status, ok := outcomeStatusMap[out.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	return out, status
}
