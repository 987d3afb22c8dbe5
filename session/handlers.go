package session

import (
	"net/http"

	"biffguide/middleware"
	"biffguide/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler exposes session lifecycle endpoints.
type Handler struct {
	Manager *Manager
}

// POST /api/session
func (h *Handler) Start(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s := h.Manager.Start()

	token, err := middleware.MintSessionToken(s.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to mint session token")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"session_id": s.ID,
		"token":      token,
	})
}
