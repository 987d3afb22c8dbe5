package checklist

import (
	"encoding/json"
	"net/http"

	"biffguide/middleware"
	"biffguide/utils"

	"github.com/julienschmidt/httprouter"
)

// StoreResolver maps a session ID to its checklist store; the session
// manager implements it.
type StoreResolver interface {
	ChecklistFor(sessionID string) (*Store, error)
}

// Handler serves the packing-checklist endpoints.
type Handler struct {
	Sessions StoreResolver
}

func (h *Handler) resolveStore(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	sid, err := middleware.SessionID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	store, err := h.Sessions.ChecklistFor(sid)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Session expired")
		return nil, false
	}
	return store, true
}

func respondWithState(w http.ResponseWriter, store *Store) {
	checked, total := store.Progress()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"categories": store.Snapshot(),
		"checked":    checked,
		"total":      total,
	})
}

// GET /api/checklist
func (h *Handler) GetChecklist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := h.resolveStore(w, r)
	if !ok {
		return
	}
	respondWithState(w, store)
}

// PUT /api/checklist/:category/:item
func (h *Handler) ToggleItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	store, ok := h.resolveStore(w, r)
	if !ok {
		return
	}

	var input struct {
		Checked bool `json:"checked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	// Unknown keys mean the client and template diverged; report loudly.
	if err := store.Toggle(ps.ByName("category"), ps.ByName("item"), input.Checked); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondWithState(w, store)
}

// POST /api/checklist/check-all
func (h *Handler) CheckAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := h.resolveStore(w, r)
	if !ok {
		return
	}
	store.CheckAll()
	respondWithState(w, store)
}

// POST /api/checklist/reset
func (h *Handler) ResetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := h.resolveStore(w, r)
	if !ok {
		return
	}
	store.ResetAll()
	respondWithState(w, store)
}
