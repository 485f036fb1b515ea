package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ledger-gate/internal/bridge"
	"github.com/MKhiriev/ledger-gate/internal/ratelimit"
	"github.com/MKhiriev/ledger-gate/internal/service"
	"github.com/MKhiriev/ledger-gate/internal/utils"
	"github.com/MKhiriev/ledger-gate/models"
)

var errorStatusMap = map[error]int{
	ErrUnresolvableClient:    http.StatusBadRequest,
	ErrInvalidQueryParameter: http.StatusBadRequest,
	ErrInvalidJSONBody:       http.StatusBadRequest,
	ErrTrackerUnavailable:    http.StatusInternalServerError,

	ratelimit.ErrLimitExceeded: http.StatusTooManyRequests,

	service.ErrValidationInvalidVoteState: http.StatusBadRequest,
	service.ErrValidationInvalidAlgorithm: http.StatusBadRequest,
	service.ErrValidationNegativeQuantity: http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:      http.StatusInternalServerError,

	bridge.ErrBadRequest:      http.StatusBadRequest,
	bridge.ErrNotFound:        http.StatusNotFound,
	bridge.ErrConflict:        http.StatusConflict,
	bridge.ErrNodeInternal:    http.StatusInternalServerError,
	bridge.ErrNodeUnavailable: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError translates err into its HTTP status and writes the structured
// error body every endpoint shares.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error(), Code: status}, status)
}
