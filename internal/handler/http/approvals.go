package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/utils"
	"github.com/MKhiriev/ledger-gate/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getApprovals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	quantity, err := queryInt64(r, "quantity")
	if err != nil {
		log.Err(err).Msg("bad approvals listing query")
		writeError(w, err)
		return
	}

	query := models.ApprovalQuery{
		Status:   r.URL.Query().Get("status"),
		From:     r.URL.Query().Get("from"),
		Quantity: quantity,
	}

	approvals, err := h.services.ApprovalsService.GetApprovals(ctx, query)
	if err != nil {
		log.Err(err).Msg("approvals listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, approvals, http.StatusOK)
}

func (h *Handler) getApproval(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	approval, err := h.services.ApprovalsService.GetApproval(ctx, id)
	if err != nil {
		log.Err(err).Str("approval_id", id).Msg("approval lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, approval, http.StatusOK)
}

func (h *Handler) voteApproval(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var vote models.ApprovalVote
	if err := json.NewDecoder(r.Body).Decode(&vote); err != nil {
		log.Err(err).Msg("invalid approval vote body")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	approval, err := h.services.ApprovalsService.VoteApproval(ctx, id, vote)
	if err != nil {
		log.Err(err).Str("approval_id", id).Str("vote", vote.State).Msg("approval vote failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("approval_id", id).Str("state", approval.State).Msg("approval vote recorded")

	utils.WriteJSON(w, approval, http.StatusOK)
}
