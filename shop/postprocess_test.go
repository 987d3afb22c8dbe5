package shop

import (
	"strings"
	"testing"
)

func TestAppendProductCardsNoTrigger(t *testing.T) {
	answer := "영화의전당은 센텀시티역에서 가까워요."
	got := AppendProductCards(answer, "영화의전당 가는 법 알려줘")
	if got != answer {
		t.Fatal("answer without trigger keywords must pass through unchanged")
	}
}

func TestAppendProductCardsCarrierScenario(t *testing.T) {
	answer := "BIFF 단기 여행이라면 기내용이 편해요."
	got := AppendProductCards(answer, "캐리어 추천해줘")

	if !strings.HasPrefix(got, answer) {
		t.Fatal("original answer must be preserved verbatim at the front")
	}
	if !strings.Contains(got, "**🛍️ 추천 상품들:**") {
		t.Fatal("recommendation heading missing")
	}
	if n := strings.Count(got, `<div class="product-card">`); n != 2 {
		t.Fatalf("got %d product cards, want exactly 2", n)
	}

	// both cards come from the carrier category, affiliate links intact
	for _, p := range Catalog["캐리어"][:2] {
		if !strings.Contains(got, p.Name) {
			t.Errorf("product %q missing from output", p.Name)
		}
		if !strings.Contains(got, AffiliateURL(p.Keyword)) {
			t.Errorf("affiliate link for %q missing from output", p.Keyword)
		}
	}
	if strings.Contains(got, Catalog["캐리어"][2].Name) {
		t.Error("third carrier product leaked past the per-category cap")
	}
}

func TestAppendProductCardsMultipleCategories(t *testing.T) {
	got := AppendProductCards("답변", "카메라랑 여행 준비물 뭐 사야 해?")

	if n := strings.Count(got, `<div class="product-card">`); n != 4 {
		t.Fatalf("got %d cards, want 2 per matched category (4)", n)
	}
	// category labels appear in catalog display order
	cam := strings.Index(got, "**카메라**")
	goods := strings.Index(got, "**여행용품**")
	if cam == -1 || goods == -1 || cam > goods {
		t.Errorf("category labels missing or out of order: 카메라@%d 여행용품@%d", cam, goods)
	}
}

func TestAppendProductCardsDeterministic(t *testing.T) {
	a := AppendProductCards("답변", "캐리어와 카메라 추천")
	b := AppendProductCards("답변", "캐리어와 카메라 추천")
	if a != b {
		t.Fatal("same answer and question produced different output")
	}
}

func TestAppendProductCardsDisclosure(t *testing.T) {
	got := AppendProductCards("답변", "가방 추천해줘")
	if !strings.Contains(got, "파트너스 활동으로 일정 수수료") {
		t.Error("affiliate disclosure missing from card output")
	}
}
