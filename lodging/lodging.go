// Package lodging turns a filtered search into a model-generated list of
// typed accommodation records, memoized per input tuple.
package lodging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"biffguide/gemini"
	"biffguide/models"
	"biffguide/prompt"
	"biffguide/utils"
)

const dateLayout = "2006-01-02"

// Searches are only meaningful around the festival window.
var (
	windowOpen, _  = time.Parse(dateLayout, "2024-10-01")
	windowClose, _ = time.Parse(dateLayout, "2024-10-16")
)

// SearchRequest is the lodging search form.
type SearchRequest struct {
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Location   string `json:"location"`
	PriceRange string `json:"price_range"`
}

// Validate checks the date pair and normalizes empty filters to "전체".
func (r *SearchRequest) Validate() error {
	in, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return fmt.Errorf("invalid check-in date %q", r.CheckIn)
	}
	out, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return fmt.Errorf("invalid check-out date %q", r.CheckOut)
	}
	if !in.Before(out) {
		return fmt.Errorf("check-out must be after check-in")
	}
	if in.Before(windowOpen) || out.After(windowClose) {
		return fmt.Errorf("dates must fall within %s ~ %s",
			windowOpen.Format(dateLayout), windowClose.Format(dateLayout))
	}
	if r.Location == "" {
		r.Location = "전체"
	}
	if r.PriceRange == "" {
		r.PriceRange = "전체"
	}
	return nil
}

// Nights is the stay length; Validate must have passed.
func (r *SearchRequest) Nights() int {
	in, _ := time.Parse(dateLayout, r.CheckIn)
	out, _ := time.Parse(dateLayout, r.CheckOut)
	return int(out.Sub(in).Hours() / 24)
}

// CacheKey canonicalizes the input tuple for the one-hour result window.
func (r *SearchRequest) CacheKey() string {
	return utils.CanonicalKey("lodging", r.CheckIn, r.CheckOut, r.Location, r.PriceRange)
}

// ParseAccommodations strips optional code fences and decodes the model's
// document into typed records. Records missing the required name or price
// are dropped; an empty result after filtering is an error so the caller
// can invite a retry.
func ParseAccommodations(raw string) ([]models.Accommodation, error) {
	var doc struct {
		Accommodations []models.Accommodation `json:"accommodations"`
	}
	if err := json.Unmarshal([]byte(gemini.CleanJSON(raw)), &doc); err != nil {
		return nil, fmt.Errorf("malformed accommodation JSON: %w", err)
	}

	valid := doc.Accommodations[:0]
	for _, a := range doc.Accommodations {
		if a.Name == "" || a.PricePerNight <= 0 {
			continue
		}
		if a.OriginalPrice == 0 {
			a.OriginalPrice = a.PricePerNight
		}
		if a.CheckInTime == "" {
			a.CheckInTime = "15:00"
		}
		if a.CheckOutTime == "" {
			a.CheckOutTime = "11:00"
		}
		valid = append(valid, a)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no usable accommodations in model output")
	}
	return valid, nil
}

// Generate runs the prompt → gateway → parse pipeline for one request.
func Generate(ctx context.Context, gen gemini.TextGenerator, req SearchRequest) ([]models.Accommodation, error) {
	raw, err := gen.GenerateText(ctx, prompt.Lodging(prompt.LodgingRequest{
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Location:   req.Location,
		PriceRange: req.PriceRange,
	}))
	if err != nil {
		return nil, err
	}
	return ParseAccommodations(raw)
}
