package festival

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestGetInfo(t *testing.T) {
	w := httptest.NewRecorder()
	GetInfo(w, httptest.NewRequest(http.MethodGet, "/api/festival/info", nil), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got EventInfo
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Dates != Info.Dates || len(got.Venues) != len(Info.Venues) {
		t.Errorf("payload does not match Info: %+v", got)
	}
	if got.TicketPrices["일반"] != "7,000원" {
		t.Errorf("ticket price = %q", got.TicketPrices["일반"])
	}
}

func TestGetRestaurantsByVenue(t *testing.T) {
	ps := httprouter.Params{{Key: "venue", Value: "영화의전당"}}
	w := httptest.NewRecorder()
	GetRestaurantsByVenue(w, httptest.NewRequest(http.MethodGet, "/api/festival/restaurants/x", nil), ps)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Venue       string   `json:"venue"`
		Restaurants []string `json:"restaurants"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Venue != "영화의전당" || len(resp.Restaurants) == 0 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestGetRestaurantsByUnknownVenue(t *testing.T) {
	ps := httprouter.Params{{Key: "venue", Value: "없는 상영관"}}
	w := httptest.NewRecorder()
	GetRestaurantsByVenue(w, httptest.NewRequest(http.MethodGet, "/api/festival/restaurants/x", nil), ps)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestEveryVenueHasRestaurantPicks(t *testing.T) {
	for _, venue := range Info.Venues {
		if len(CinemaRestaurants[venue]) == 0 {
			t.Errorf("venue %q has no restaurant picks", venue)
		}
	}
}
