package shop

import "strings"

// triggerRules maps a question keyword to the catalog category it pulls in.
// Adding a category is a data change here, not a logic change.
var triggerRules = map[string]string{
	"캐리어": "캐리어",
	"가방":  "캐리어",
	"카메라": "카메라",
	"준비물": "여행용품",
	"용품":  "여행용품",
	"쇼핑":  "여행용품",
}

const cardsPerCategory = 2

// AppendProductCards scans the user question for trigger keywords and, for
// each matching catalog category, appends up to two product cards to the
// answer. No match returns the answer unchanged. Deterministic for a fixed
// catalog, so repeated calls on the same pair are byte-identical.
func AppendProductCards(answer, question string) string {
	q := strings.ToLower(question)

	matched := map[string]bool{}
	for keyword, category := range triggerRules {
		if strings.Contains(q, keyword) {
			matched[category] = true
		}
	}
	if len(matched) == 0 {
		return answer
	}

	var b strings.Builder
	b.WriteString(answer)
	b.WriteString("\n\n**🛍️ 추천 상품들:**\n")
	for _, category := range Categories {
		if !matched[category] {
			continue
		}
		b.WriteString("\n**" + category + "**\n")
		products := Catalog[category]
		for i, p := range products {
			if i == cardsPerCategory {
				break
			}
			b.WriteString(Card(p))
		}
	}
	return b.String()
}
