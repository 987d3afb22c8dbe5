package lodging

import (
	"context"
	"errors"
	"strings"
	"testing"

	"biffguide/models"
)

func TestSearchRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     SearchRequest
		wantErr bool
	}{
		{"valid", SearchRequest{CheckIn: "2024-10-03", CheckOut: "2024-10-06"}, false},
		{"bad check-in", SearchRequest{CheckIn: "10/03/2024", CheckOut: "2024-10-06"}, true},
		{"bad check-out", SearchRequest{CheckIn: "2024-10-03", CheckOut: "soon"}, true},
		{"reversed", SearchRequest{CheckIn: "2024-10-06", CheckOut: "2024-10-03"}, true},
		{"zero nights", SearchRequest{CheckIn: "2024-10-03", CheckOut: "2024-10-03"}, true},
		{"before window", SearchRequest{CheckIn: "2024-09-20", CheckOut: "2024-10-03"}, true},
		{"after window", SearchRequest{CheckIn: "2024-10-10", CheckOut: "2024-10-20"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDefaultsFilters(t *testing.T) {
	req := SearchRequest{CheckIn: "2024-10-03", CheckOut: "2024-10-06"}
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	if req.Location != "전체" || req.PriceRange != "전체" {
		t.Errorf("empty filters not defaulted: location=%q price=%q", req.Location, req.PriceRange)
	}
}

func TestNights(t *testing.T) {
	req := SearchRequest{CheckIn: "2024-10-03", CheckOut: "2024-10-06"}
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	if n := req.Nights(); n != 3 {
		t.Errorf("Nights() = %d, want 3", n)
	}
}

func TestCacheKeySeparatesInputs(t *testing.T) {
	a := SearchRequest{CheckIn: "2024-10-03", CheckOut: "2024-10-06", Location: "해운대", PriceRange: "전체"}
	b := a
	b.Location = "서면"
	if a.CacheKey() == b.CacheKey() {
		t.Error("different locations collapsed into one cache key")
	}
	if a.CacheKey() != a.CacheKey() {
		t.Error("cache key is not stable")
	}
}

const accommodationDoc = `{
	"accommodations": [
		{"id": "h1", "name": "센텀 호텔", "price_per_night": 90000, "rating": 4.5},
		{"id": "h2", "name": "", "price_per_night": 50000},
		{"id": "h3", "name": "해운대 게스트하우스", "price_per_night": 0},
		{"id": "h4", "name": "서면 모텔", "price_per_night": 60000,
		 "original_price": 80000, "check_in_time": "14:00", "rating": 4.0}
	]
}`

func TestParseAccommodationsFiltersAndDefaults(t *testing.T) {
	list, err := ParseAccommodations(accommodationDoc)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d records, want 2 (nameless and priceless dropped)", len(list))
	}

	first := list[0]
	if first.OriginalPrice != first.PricePerNight {
		t.Errorf("missing original_price not defaulted to nightly price: %d", first.OriginalPrice)
	}
	if first.CheckInTime != "15:00" || first.CheckOutTime != "11:00" {
		t.Errorf("check-in/out defaults wrong: %q / %q", first.CheckInTime, first.CheckOutTime)
	}

	second := list[1]
	if second.OriginalPrice != 80000 || second.CheckInTime != "14:00" {
		t.Error("supplied values were overwritten by defaults")
	}
}

func TestParseAccommodationsFencedEqualsUnfenced(t *testing.T) {
	plain, err := ParseAccommodations(accommodationDoc)
	if err != nil {
		t.Fatal(err)
	}
	fenced, err := ParseAccommodations("```json\n" + accommodationDoc + "\n```")
	if err != nil {
		t.Fatal(err)
	}
	if len(plain) != len(fenced) || plain[0].Name != fenced[0].Name {
		t.Error("fenced and unfenced payloads parsed differently")
	}
}

func TestParseAccommodationsRejectsGarbage(t *testing.T) {
	if _, err := ParseAccommodations(accommodationDoc[:40]); err == nil {
		t.Error("truncated JSON accepted")
	}
	if _, err := ParseAccommodations("숙소를 찾지 못했어요"); err == nil {
		t.Error("prose response accepted")
	}
	if _, err := ParseAccommodations(`{"accommodations": []}`); err == nil {
		t.Error("empty accommodation list accepted")
	}
	if _, err := ParseAccommodations(`{"accommodations": [{"name": "", "price_per_night": 0}]}`); err == nil {
		t.Error("all-filtered list accepted")
	}
}

type fakeGen struct {
	reply string
	err   error
	calls int
}

func (f *fakeGen) GenerateText(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestGeneratePropagatesGatewayError(t *testing.T) {
	boom := errors.New("quota exceeded")
	_, err := Generate(context.Background(), &fakeGen{err: boom}, SearchRequest{
		CheckIn: "2024-10-03", CheckOut: "2024-10-06", Location: "전체", PriceRange: "전체",
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want gateway error", err)
	}
}

func TestGenerateParsesReply(t *testing.T) {
	gen := &fakeGen{reply: "```json\n" + accommodationDoc + "\n```"}
	list, err := Generate(context.Background(), gen, SearchRequest{
		CheckIn: "2024-10-03", CheckOut: "2024-10-06", Location: "해운대", PriceRange: "전체",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || gen.calls != 1 {
		t.Errorf("list=%d calls=%d", len(list), gen.calls)
	}
}

func TestSortAccommodations(t *testing.T) {
	base := []models.Accommodation{
		{Name: "a", PricePerNight: 90000, Rating: 4.2},
		{Name: "b", PricePerNight: 50000, Rating: 4.8},
		{Name: "c", PricePerNight: 70000, Rating: 4.5},
	}

	byPrice := append([]models.Accommodation(nil), base...)
	sortAccommodations(byPrice, "price_asc")
	if byPrice[0].Name != "b" || byPrice[2].Name != "a" {
		t.Errorf("price_asc order wrong: %v", names(byPrice))
	}

	byRating := append([]models.Accommodation(nil), base...)
	sortAccommodations(byRating, "rating")
	if byRating[0].Name != "b" || byRating[2].Name != "a" {
		t.Errorf("rating order wrong: %v", names(byRating))
	}

	untouched := append([]models.Accommodation(nil), base...)
	sortAccommodations(untouched, "")
	if names(untouched) != names(base) {
		t.Error("unknown order reshuffled the list")
	}
}

func names(list []models.Accommodation) string {
	var b strings.Builder
	for _, a := range list {
		b.WriteString(a.Name)
	}
	return b.String()
}
