package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/utils"
	"github.com/MKhiriev/ledger-gate/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getSubjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	quantity, err := queryInt64(r, "quantity")
	if err != nil {
		log.Err(err).Msg("bad subjects listing query")
		writeError(w, err)
		return
	}

	query := models.SubjectQuery{
		SubjectType:  r.URL.Query().Get("subject_type"),
		GovernanceID: r.URL.Query().Get("governanceid"),
		From:         r.URL.Query().Get("from"),
		Quantity:     quantity,
	}

	subjects, err := h.services.SubjectsService.GetSubjects(ctx, query)
	if err != nil {
		log.Err(err).Msg("subjects listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, subjects, http.StatusOK)
}

func (h *Handler) getSubject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subjectID := chi.URLParam(r, "subject-id")

	subject, err := h.services.SubjectsService.GetSubject(ctx, subjectID)
	if err != nil {
		log.Err(err).Str("subject_id", subjectID).Msg("subject lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, subject, http.StatusOK)
}

func (h *Handler) getValidationProof(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subjectID := chi.URLParam(r, "subject-id")

	proof, err := h.services.SubjectsService.GetValidationProof(ctx, subjectID)
	if err != nil {
		log.Err(err).Str("subject_id", subjectID).Msg("validation proof lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, proof, http.StatusOK)
}

func (h *Handler) getEventsOfSubject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subjectID := chi.URLParam(r, "subject-id")

	from, err := queryInt64(r, "from")
	if err != nil {
		log.Err(err).Msg("bad subject events query")
		writeError(w, err)
		return
	}
	quantity, err := queryInt64(r, "quantity")
	if err != nil {
		log.Err(err).Msg("bad subject events query")
		writeError(w, err)
		return
	}

	events, err := h.services.SubjectsService.GetEventsOfSubject(ctx, subjectID, models.EventQuery{From: from, Quantity: quantity})
	if err != nil {
		log.Err(err).Str("subject_id", subjectID).Msg("subject events listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

func (h *Handler) getEventOfSubject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subjectID := chi.URLParam(r, "subject-id")

	sn, err := strconv.ParseUint(chi.URLParam(r, "sn"), 10, 64)
	if err != nil {
		log.Err(err).Msg("bad event sequence number")
		writeError(w, fmt.Errorf("%w: sequence number must be a non-negative integer", ErrInvalidQueryParameter))
		return
	}

	event, err := h.services.SubjectsService.GetEventOfSubject(ctx, subjectID, sn)
	if err != nil {
		log.Err(err).Str("subject_id", subjectID).Uint64("sn", sn).Msg("subject event lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}
