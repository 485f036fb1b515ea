package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/utils"
	"github.com/MKhiriev/ledger-gate/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) sendEventRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignedEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid event request body")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	response, err := h.services.EventsService.SendEventRequest(ctx, req)
	if err != nil {
		log.Err(err).Msg("event request was not accepted")
		writeError(w, err)
		return
	}

	log.Debug().Str("request_id", response.RequestID).Msg("event request accepted")

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getEventRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requestID := chi.URLParam(r, "request-id")

	request, err := h.services.EventsService.GetEventRequest(ctx, requestID)
	if err != nil {
		log.Err(err).Str("request_id", requestID).Msg("event request lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, request, http.StatusOK)
}

func (h *Handler) getEventRequestState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requestID := chi.URLParam(r, "request-id")

	state, err := h.services.EventsService.GetEventRequestState(ctx, requestID)
	if err != nil {
		log.Err(err).Str("request_id", requestID).Msg("event request state lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}
