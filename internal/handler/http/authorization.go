package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/utils"
	"github.com/MKhiriev/ledger-gate/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllowedSubjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	quantity, err := queryInt64(r, "quantity")
	if err != nil {
		log.Err(err).Msg("bad allowed subjects query")
		writeError(w, err)
		return
	}

	query := models.PageQuery{
		From:     r.URL.Query().Get("from"),
		Quantity: quantity,
	}

	allowed, err := h.services.AuthorizationService.GetAllowedSubjects(ctx, query)
	if err != nil {
		log.Err(err).Msg("allowed subjects listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, allowed, http.StatusOK)
}

func (h *Handler) authorizeSubject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subjectID := chi.URLParam(r, "subject-id")

	var auth models.AuthorizeSubject
	if err := json.NewDecoder(r.Body).Decode(&auth); err != nil {
		log.Err(err).Msg("invalid authorization body")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	result, err := h.services.AuthorizationService.AuthorizeSubject(ctx, subjectID, auth)
	if err != nil {
		log.Err(err).Str("subject_id", subjectID).Msg("subject authorization failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("subject_id", subjectID).Msg("subject authorized")

	utils.WriteJSON(w, result, http.StatusOK)
}
