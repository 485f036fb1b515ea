package http

import (
	"net/http"

	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/utils"
	"github.com/MKhiriev/ledger-gate/models"
)

func (h *Handler) registerKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := models.KeysQuery{Algorithm: r.URL.Query().Get("algorithm")}

	publicKey, err := h.services.NodeService.RegisterKeys(ctx, query)
	if err != nil {
		log.Err(err).Str("algorithm", query.Algorithm).Msg("key registration failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, publicKey, http.StatusOK)
}

func (h *Handler) getControllerID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	controllerID, err := h.services.NodeService.GetControllerID(ctx)
	if err != nil {
		log.Err(err).Msg("controller id lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, controllerID, http.StatusOK)
}

func (h *Handler) getPeerID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	peerID, err := h.services.NodeService.GetPeerID(ctx)
	if err != nil {
		log.Err(err).Msg("peer id lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, peerID, http.StatusOK)
}
