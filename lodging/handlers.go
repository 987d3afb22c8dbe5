package lodging

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"time"

	"biffguide/gemini"
	"biffguide/gencache"
	"biffguide/middleware"
	"biffguide/models"
	"biffguide/session"
	"biffguide/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the lodging tab: search plus session-scoped favorites and
// price alerts.
type Handler struct {
	Gen      gemini.TextGenerator
	Cache    *gencache.Cache
	Sessions *session.Manager
}

func NewHandler(gen gemini.TextGenerator, sessions *session.Manager) *Handler {
	return &Handler{
		Gen:      gen,
		Cache:    gencache.New(time.Hour),
		Sessions: sessions,
	}
}

func (h *Handler) resolveSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sid, err := middleware.SessionID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	s, err := h.Sessions.Get(sid)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Session expired")
		return nil, false
	}
	return s, true
}

func sortAccommodations(list []models.Accommodation, order string) {
	switch order {
	case "price_asc":
		sort.SliceStable(list, func(i, j int) bool { return list[i].PricePerNight < list[j].PricePerNight })
	case "price_desc":
		sort.SliceStable(list, func(i, j int) bool { return list[i].PricePerNight > list[j].PricePerNight })
	case "rating":
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	}
}

// POST /api/lodging/search?sort=price_asc
func (h *Handler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, ok := h.resolveSession(w, r); !ok {
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	cached, err := h.Cache.GetOrCompute(req.CacheKey(), func() (interface{}, error) {
		return Generate(ctx, h.Gen, req)
	})
	if err != nil {
		log.Printf("lodging generation error: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch accommodations; please try again")
		return
	}

	// Copy before sorting so the cached order stays canonical.
	accommodations := append([]models.Accommodation(nil), cached.([]models.Accommodation)...)
	sortAccommodations(accommodations, r.URL.Query().Get("sort"))

	nights := req.Nights()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"accommodations": accommodations,
		"nights":         nights,
		"count":          len(accommodations),
	})
}

// POST /api/lodging/favorites/:id
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	id := ps.ByName("id")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing accommodation id")
		return
	}
	favorited := s.ToggleFavorite(id)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"id": id, "favorited": favorited})
}

// GET /api/lodging/favorites
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, ok := h.resolveSession(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"favorites": s.Favorites()})
}

// POST /api/lodging/price-alerts
func (h *Handler) AddPriceAlert(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	var input struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		PricePerNight int    `json:"price_per_night"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ID == "" || input.PricePerNight <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	alert := models.PriceAlert{
		AccommodationID: input.ID,
		Name:            input.Name,
		TargetPrice:     input.PricePerNight * 9 / 10, // watch for 10% below current
		CreatedDate:     time.Now().Format("2006-01-02"),
	}
	s.AddPriceAlert(alert)
	utils.RespondWithJSON(w, http.StatusCreated, alert)
}

// GET /api/lodging/price-alerts
func (h *Handler) GetPriceAlerts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, ok := h.resolveSession(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"alerts": s.PriceAlerts()})
}
