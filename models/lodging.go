package models

// BookingSite is one third-party booking offer attached to an accommodation.
type BookingSite struct {
	Site  string `json:"site"`
	Price int    `json:"price"`
	URL   string `json:"url"`
}

// Accommodation is the typed shape the lodging generator asks the model to
// emit. Only Name and PricePerNight are required; everything else keeps its
// zero value when the model leaves it out.
type Accommodation struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Type              string            `json:"type"`
	Location          string            `json:"location"`
	DistanceToCinema  map[string]string `json:"distance_to_cinema"`
	PricePerNight     int               `json:"price_per_night"`
	OriginalPrice     int               `json:"original_price"`
	DiscountRate      int               `json:"discount_rate"`
	Rating            float64           `json:"rating"`
	ReviewCount       int               `json:"review_count"`
	Amenities         []string          `json:"amenities"`
	RoomType          string            `json:"room_type"`
	Address           string            `json:"address"`
	Phone             string            `json:"phone"`
	BookingSites      []BookingSite     `json:"booking_sites"`
	Images            []string          `json:"images"`
	CheckInTime       string            `json:"check_in_time"`
	CheckOutTime      string            `json:"check_out_time"`
	Cancellation      string            `json:"cancellation"`
	BreakfastIncluded bool              `json:"breakfast_included"`
	NearAttractions   []string          `json:"near_attractions"`
}

// PriceAlert is a session-scoped watch on one accommodation's nightly price.
type PriceAlert struct {
	AccommodationID string `json:"id"`
	Name            string `json:"name"`
	TargetPrice     int    `json:"target_price"`
	CreatedDate     string `json:"date"`
}
