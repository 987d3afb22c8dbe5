package shop

import "fmt"

// Card renders the HTML fragment the UI drops into an answer. Kept as a
// string template so the post-processor output is byte-stable for a fixed
// catalog.
func Card(p Product) string {
	link := AffiliateURL(p.Keyword)
	return fmt.Sprintf(`
<div class="product-card">
    <h4>🛍️ %s</h4>
    <p>%s</p>
    <p class="price">💰 %s</p>
    <a href="%s" target="_blank" rel="noopener">🛒 쿠팡에서 보기</a>
    <p class="disclosure">* 파트너스 활동으로 일정 수수료를 받을 수 있습니다</p>
</div>
`, p.Name, p.Desc, p.Price, link)
}
