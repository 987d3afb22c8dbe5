package prompt

import (
	"strings"
	"testing"

	"biffguide/festival"
)

func TestGuideEmbedsEveryInfoField(t *testing.T) {
	p := Guide(festival.Info, "티켓 가격 알려줘")

	singles := []string{
		festival.Info.Dates,
		festival.Info.Duration,
		festival.Info.YouthBenefits.Name,
		festival.Info.YouthBenefits.AgeLimit,
		festival.Info.YouthBenefits.HowToApply,
	}
	for _, want := range singles {
		if n := strings.Count(p, want); n != 1 {
			t.Errorf("field %q appears %d times, want 1", want, n)
		}
	}
	for _, venue := range festival.Info.Venues {
		if !strings.Contains(p, venue) {
			t.Errorf("venue %q missing from prompt", venue)
		}
	}
	for _, tier := range festival.TicketTiers {
		want := tier + " " + festival.Info.TicketPrices[tier]
		if !strings.Contains(p, want) {
			t.Errorf("ticket tier %q missing from prompt", want)
		}
	}
	for _, a := range festival.Info.Attractions {
		if !strings.Contains(p, a) {
			t.Errorf("attraction %q missing from prompt", a)
		}
	}
}

func TestGuideQuestionIsVerbatimLastLine(t *testing.T) {
	q := "숙소는 어디가 좋아?  \n그리고 맛집도"
	p := Guide(festival.Info, q)

	if !strings.HasSuffix(p, q) {
		t.Fatalf("prompt does not end with the literal question:\n%q", p[len(p)-80:])
	}
	if strings.Count(p, "사용자 질문: ") != 1 {
		t.Fatal("question marker must appear exactly once")
	}
}

func TestGuideDoesNotEscapeInput(t *testing.T) {
	// delimiter-looking input passes through untouched
	q := `사용자 질문: {"json": true} ` + "```"
	p := Guide(festival.Info, q)
	if !strings.HasSuffix(p, q) {
		t.Fatal("input was altered before embedding")
	}
}

func TestGuideIsPure(t *testing.T) {
	a := Guide(festival.Info, "질문")
	b := Guide(festival.Info, "질문")
	if a != b {
		t.Fatal("same inputs produced different prompts")
	}
}

func TestLodgingPromptCarriesParameters(t *testing.T) {
	req := LodgingRequest{
		CheckIn:    "2024-10-03",
		CheckOut:   "2024-10-06",
		Location:   "해운대",
		PriceRange: "5-10만원",
	}
	p := Lodging(req)

	for _, want := range []string{req.CheckIn, req.CheckOut, req.Location, req.PriceRange} {
		if !strings.Contains(p, want) {
			t.Errorf("parameter %q missing from prompt", want)
		}
	}
	if !strings.Contains(p, `"accommodations"`) {
		t.Error("prompt must spell out the accommodations envelope")
	}
	if !strings.Contains(p, "JSON만 응답하고") {
		t.Error("prompt must demand JSON-only output")
	}
}

func TestItineraryPromptCarriesParameters(t *testing.T) {
	req := ItineraryRequest{
		Days:      3,
		Interests: []string{"영화 감상", "맛집 탐방"},
		Budget:    "20-30만원",
		Style:     "여유롭게",
	}
	p := Itinerary(req)

	for _, want := range []string{"3일", "영화 감상, 맛집 탐방", req.Budget, req.Style} {
		if !strings.Contains(p, want) {
			t.Errorf("parameter %q missing from prompt", want)
		}
	}
	if !strings.Contains(p, `"itinerary"`) {
		t.Error("prompt must spell out the itinerary envelope")
	}
}
