package festival

import (
	"net/http"

	"biffguide/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/festival/info
func GetInfo(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Info)
}

// GET /api/festival/transport
func GetTransport(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, TransportInfo)
}

// GET /api/festival/restaurants
func GetRestaurants(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"restaurants": Restaurants,
		"by_cinema":   CinemaRestaurants,
	})
}

// GET /api/festival/restaurants/:venue
func GetRestaurantsByVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venue := ps.ByName("venue")
	picks, ok := CinemaRestaurants[venue]
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Unknown venue")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"venue": venue, "restaurants": picks})
}

// GET /api/festival/weather
func GetWeather(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, WeatherInfo)
}

// GET /api/festival/lodging-tips
func GetLodgingTips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"defaults": DefaultLodgings,
		"tips":     LodgingTips,
	})
}
