package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"biffguide/db"
	"biffguide/gemini"
	"biffguide/gencache"
	"biffguide/middleware"
	"biffguide/models"
	"biffguide/session"
	"biffguide/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Handler serves itinerary generation, the saved-itinerary CRUD and PDF
// export.
type Handler struct {
	Gen      gemini.TextGenerator
	Cache    *gencache.Cache
	Sessions *session.Manager
}

func NewHandler(gen gemini.TextGenerator, sessions *session.Manager) *Handler {
	return &Handler{
		Gen:      gen,
		Cache:    gencache.New(30 * time.Minute),
		Sessions: sessions,
	}
}

func (h *Handler) resolveSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid, err := middleware.SessionID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	if _, err := h.Sessions.Get(sid); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Session expired")
		return "", false
	}
	return sid, true
}

// POST /api/itinerary/generate
func (h *Handler) GenerateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, ok := h.resolveSession(w, r); !ok {
		return
	}

	var req GenerateRequest
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
		log.Printf("itinerary generation error: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to generate an itinerary; please try again")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"plan":     cached.(models.Plan),
		"traveler": req.Traveler(),
	})
}

// POST /api/itinerary/saved
func (h *Handler) SaveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	var input struct {
		Plan     models.Plan         `json:"plan"`
		Traveler models.TravelerInfo `json:"traveler"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || len(input.Plan.Itinerary) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	saved := models.SavedItinerary{
		SavedID:     utils.GenerateRandomString(13),
		SessionID:   sid,
		Name:        fmt.Sprintf("%s의 %d일 일정", input.Traveler.Name, input.Traveler.Days),
		CreatedDate: time.Now().Format("2006-01-02 15:04"),
		Plan:        input.Plan,
		Traveler:    input.Traveler,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.SavedItinerariesCollection.InsertOne(ctx, saved); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving itinerary")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, saved)
}

// GET /api/itinerary/saved
func (h *Handler) GetSavedItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.SavedItinerariesCollection.Find(ctx, bson.M{"sessionId": sid})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}
	defer cursor.Close(ctx)

	var saved []models.SavedItinerary
	if err := cursor.All(ctx, &saved); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error decoding itineraries")
		return
	}
	if saved == nil {
		saved = []models.SavedItinerary{}
	}
	utils.RespondWithJSON(w, http.StatusOK, saved)
}

func (h *Handler) findSaved(ctx context.Context, sid, savedID string) (models.SavedItinerary, error) {
	var saved models.SavedItinerary
	err := db.SavedItinerariesCollection.FindOne(ctx, bson.M{
		"savedid":   savedID,
		"sessionId": sid,
	}).Decode(&saved)
	return saved, err
}

// GET /api/itinerary/saved/:id
func (h *Handler) GetSavedItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sid, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	saved, err := h.findSaved(ctx, sid, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, saved)
}

// DELETE /api/itinerary/saved/:id
func (h *Handler) DeleteSavedItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sid, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.SavedItinerariesCollection.DeleteOne(ctx, bson.M{
		"savedid":   ps.ByName("id"),
		"sessionId": sid,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Itinerary deleted"})
}

// GET /api/itinerary/saved/:id/pdf
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sid, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	saved, err := h.findSaved(ctx, sid, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	data, err := BuildPDF(saved.Plan, saved.Traveler)
	if err != nil {
		log.Printf("PDF render error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+saved.SavedID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
