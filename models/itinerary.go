package models

// Activity is one timed entry of a day plan.
type Activity struct {
	Time        string `json:"time" bson:"time"`
	Activity    string `json:"activity" bson:"activity"`
	Location    string `json:"location" bson:"location"`
	Duration    string `json:"duration" bson:"duration"`
	Cost        string `json:"cost" bson:"cost"`
	Description string `json:"description" bson:"description"`
	Tips        string `json:"tips,omitempty" bson:"tips,omitempty"`
	Transport   string `json:"transport" bson:"transport"`
	Category    string `json:"category" bson:"category"`
}

// DayPlan is one festival day of the generated itinerary.
type DayPlan struct {
	Day         int        `json:"day" bson:"day"`
	Date        string     `json:"date" bson:"date"`
	Theme       string     `json:"theme" bson:"theme"`
	Schedule    []Activity `json:"schedule" bson:"schedule"`
	DailyBudget int        `json:"daily_budget" bson:"daily_budget"`
	Highlights  []string   `json:"highlights" bson:"highlights"`
}

// MoviePick is a screening the model recommends around the itinerary.
type MoviePick struct {
	Title  string `json:"title" bson:"title"`
	Time   string `json:"time" bson:"time"`
	Venue  string `json:"venue" bson:"venue"`
	Reason string `json:"reason" bson:"reason"`
}

// EmergencyContact as emitted by the model.
type EmergencyContact struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Purpose string `json:"purpose" bson:"purpose"`
}

// Plan is the full document the itinerary generator asks the model for.
type Plan struct {
	Itinerary         []DayPlan          `json:"itinerary" bson:"itinerary"`
	TotalBudget       int                `json:"total_budget" bson:"total_budget"`
	TravelTips        []string           `json:"travel_tips" bson:"travel_tips"`
	RecommendedMovies []MoviePick        `json:"recommended_movies" bson:"recommended_movies"`
	PackingChecklist  []string           `json:"packing_checklist" bson:"packing_checklist"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts" bson:"emergency_contacts"`
}

// TravelerInfo is the metadata stamped onto saved itineraries and the PDF.
type TravelerInfo struct {
	Name      string `json:"name" bson:"name"`
	Days      int    `json:"days" bson:"days"`
	Budget    string `json:"budget" bson:"budget"`
	Style     string `json:"style" bson:"style"`
	Companion string `json:"companion" bson:"companion"`
}

// SavedItinerary is a generated plan a visitor chose to keep.
type SavedItinerary struct {
	SavedID     string       `json:"savedid" bson:"savedid"`
	SessionID   string       `json:"-" bson:"sessionId"`
	Name        string       `json:"name" bson:"name"`
	CreatedDate string       `json:"created_date" bson:"created_date"`
	Plan        Plan         `json:"data" bson:"data"`
	Traveler    TravelerInfo `json:"user_info" bson:"user_info"`
}
