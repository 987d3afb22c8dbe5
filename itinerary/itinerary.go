// Package itinerary generates multi-day festival plans through the model,
// keeps the ones a visitor saves, and renders them as PDF.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"biffguide/gemini"
	"biffguide/models"
	"biffguide/prompt"
	"biffguide/utils"
)

// GenerateRequest is the itinerary form.
type GenerateRequest struct {
	Days         int      `json:"days"`
	Interests    []string `json:"interests"`
	Budget       string   `json:"budget"`
	Style        string   `json:"style"`
	Companion    string   `json:"companion"`
	TravelerName string   `json:"traveler_name"`
}

// Validate mirrors the form constraints: 2-7 days, at least one interest.
func (r *GenerateRequest) Validate() error {
	if r.Days < 2 || r.Days > 7 {
		return fmt.Errorf("days must be between 2 and 7")
	}
	if len(r.Interests) == 0 {
		return fmt.Errorf("select at least one interest")
	}
	if r.TravelerName == "" {
		r.TravelerName = "BIFF 여행자"
	}
	return nil
}

// CacheKey canonicalizes the generation inputs for the 30-minute window.
// Traveler name and companion don't influence the generated plan, so they
// stay out of the key.
func (r *GenerateRequest) CacheKey() string {
	return utils.CanonicalKey("itinerary",
		fmt.Sprintf("%d", r.Days), strings.Join(r.Interests, ","), r.Budget, r.Style)
}

// Traveler builds the metadata stamped on saves and PDFs.
func (r *GenerateRequest) Traveler() models.TravelerInfo {
	return models.TravelerInfo{
		Name:      r.TravelerName,
		Days:      r.Days,
		Budget:    r.Budget,
		Style:     r.Style,
		Companion: r.Companion,
	}
}

// ParsePlan strips optional code fences and decodes the model's itinerary
// document. A plan without days is an error; the caller invites a retry.
func ParsePlan(raw string) (models.Plan, error) {
	var plan models.Plan
	if err := json.Unmarshal([]byte(gemini.CleanJSON(raw)), &plan); err != nil {
		return models.Plan{}, fmt.Errorf("malformed itinerary JSON: %w", err)
	}
	if len(plan.Itinerary) == 0 {
		return models.Plan{}, fmt.Errorf("model output contains no day plans")
	}
	return plan, nil
}

// Generate runs the prompt → gateway → parse pipeline for one request.
func Generate(ctx context.Context, gen gemini.TextGenerator, req GenerateRequest) (models.Plan, error) {
	raw, err := gen.GenerateText(ctx, prompt.Itinerary(prompt.ItineraryRequest{
		Days:      req.Days,
		Interests: req.Interests,
		Budget:    req.Budget,
		Style:     req.Style,
	}))
	if err != nil {
		return models.Plan{}, err
	}
	return ParsePlan(raw)
}
