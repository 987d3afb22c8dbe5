package festival

// EventInfo holds the festival facts baked into every guide prompt. Created
// once at startup, never mutated.
type EventInfo struct {
	Dates         string            `json:"dates"`
	Duration      string            `json:"duration"`
	Venues        []string          `json:"venues"`
	TicketPrices  map[string]string `json:"ticket_prices"`
	Attractions   []string          `json:"attractions"`
	YouthBenefits YouthPass         `json:"youth_benefits"`
	OfficialSite  string            `json:"official_site"`
}

// YouthPass describes the municipal youth discount program.
type YouthPass struct {
	Name       string   `json:"name"`
	AgeLimit   string   `json:"age_limit"`
	Benefits   []string `json:"benefits"`
	HowToApply string   `json:"how_to_apply"`
	InfoURL    string   `json:"info_url"`
}

// Ticket price tier names, used by the prompt builder so each tier is
// embedded exactly once in a fixed order.
var TicketTiers = []string{"일반", "학생/경로", "갈라/특별상영"}

var Info = EventInfo{
	Dates:    "2024년 10월 2일(수) ~ 10월 11일(금)",
	Duration: "10일간",
	Venues:   []string{"영화의전당", "롯데시네마 센텀시티", "CGV 센텀시티", "부산시네마센터"},
	TicketPrices: map[string]string{
		"일반":      "7,000원",
		"학생/경로":   "5,000원",
		"갈라/특별상영": "15,000원",
	},
	Attractions: []string{
		"🎬 영화의전당 - BIFF 메인 상영관",
		"🌟 BIFF 광장 - 핸드프린팅 광장",
		"🏖️ 해운대 해수욕장 - 부산 대표 해변",
		"🎨 감천문화마을 - 컬러풀한 포토존",
		"🌉 광안대교 - 부산 야경 명소",
		"🐟 자갈치시장 - 부산 대표 수산시장",
	},
	YouthBenefits: YouthPass{
		Name:     "부산 청년패스",
		AgeLimit: "만 18~34세",
		Benefits: []string{
			"🎬 영화관람료 할인 (CGV, 롯데시네마 등)",
			"🚇 대중교통 할인 (지하철, 버스)",
			"🍽️ 음식점 할인 (참여 업체)",
			"🏛️ 문화시설 할인 (박물관, 미술관 등)",
			"🛍️ 쇼핑 할인 (참여 매장)",
			"☕ 카페 할인 (참여 카페)",
		},
		HowToApply: "부산시 홈페이지 또는 모바일 앱에서 신청",
		InfoURL:    "https://www.busan.go.kr/mayor/news/1691217",
	},
	OfficialSite: "https://www.biff.kr",
}

// Metro lines and fares around the festival venues.
var TransportInfo = struct {
	Lines     []string          `json:"lines"`
	Fares     map[string]string `json:"fares"`
	ToCinemas map[string]string `json:"to_cinemas"`
}{
	Lines: []string{
		"🟠 1호선: 다대포해수욕장 ↔ 노포",
		"🟢 2호선: 장산 ↔ 양산",
		"🟤 3호선: 수영 ↔ 대저",
		"🔵 4호선: 미남 ↔ 안평",
	},
	Fares: map[string]string{
		"지하철":     "1,370원",
		"버스":      "1,200원",
		"청년패스 할인": "20% 할인",
	},
	ToCinemas: map[string]string{
		"영화의전당":       "지하철 2호선 센텀시티역 3번 출구",
		"롯데시네마 센텀시티":  "지하철 2호선 센텀시티역 4번 출구",
		"CGV 센텀시티":    "지하철 2호선 센텀시티역 1번 출구",
		"부산시네마센터":     "지하철 1호선 중앙역 7번 출구",
	},
}

// Restaurant is one entry of the static food guide.
type Restaurant struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Location  string `json:"location"`
	Specialty string `json:"specialty"`
	Price     string `json:"price"`
	Rating    string `json:"rating"`
}

var Restaurants = []Restaurant{
	{Name: "자갈치시장 회센터", Type: "해산물", Location: "자갈치시장", Specialty: "활어회, 해산물탕", Price: "2-4만원", Rating: "⭐⭐⭐⭐⭐"},
	{Name: "할매 돼지국밥", Type: "부산향토음식", Location: "서면", Specialty: "돼지국밥, 수육", Price: "8천-1만원", Rating: "⭐⭐⭐⭐⭐"},
	{Name: "밀면 전문점", Type: "부산향토음식", Location: "남포동", Specialty: "밀면, 만두", Price: "7천-9천원", Rating: "⭐⭐⭐⭐"},
	{Name: "해운대 횟집", Type: "해산물", Location: "해운대", Specialty: "광어회, 대게", Price: "3-5만원", Rating: "⭐⭐⭐⭐"},
}

// CinemaRestaurants maps each screening venue to nearby picks.
var CinemaRestaurants = map[string][]string{
	"영화의전당":      {"부산 전통 한정식", "센텀 이탈리안", "해운대 초밥"},
	"롯데시네마 센텀시티": {"센텀 갈비집", "일식 전문점", "카페 브런치"},
	"CGV 센텀시티":   {"중국집", "패밀리 레스토랑", "치킨 전문점"},
	"부산시네마센터":    {"남포동 밀면", "자갈치 회센터", "부산 돼지국밥"},
}

// October weather notes for the festival window.
var WeatherInfo = struct {
	Overview []string `json:"overview"`
	Clothing []string `json:"clothing"`
	Bring    []string `json:"bring"`
}{
	Overview: []string{
		"🌡️ 평균 기온: 15-22°C",
		"🍂 계절: 가을, 선선한 날씨",
		"☔ 강수: 간헐적 비, 우산 준비 권장",
		"💨 바람: 약간 바람, 얇은 외투 추천",
		"🏊‍♀️ 해수욕: 수온이 낮아 수영보다는 산책 추천",
	},
	Clothing: []string{"🧥 가벼운 외투나 자켓", "👕 긴팔 + 가디건 조합", "🧥 저녁용 얇은 겉옷"},
	Bring:    []string{"☂️ 우산 (간헐적 비 대비)", "🧥 얇은 외투", "💧 물티슈, 수건"},
}

// DefaultLodging is the static recommendation list shown before any search.
type DefaultLodging struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Price    string `json:"price"`
	Rating   string `json:"rating"`
	Distance string `json:"distance"`
}

var DefaultLodgings = []DefaultLodging{
	{Name: "센텀시티 프리미엄 호텔", Type: "호텔", Location: "센텀시티", Price: "12만원/박", Rating: "⭐⭐⭐⭐⭐", Distance: "영화의전당 도보 3분"},
	{Name: "해운대 오션뷰 호텔", Type: "호텔", Location: "해운대", Price: "15만원/박", Rating: "⭐⭐⭐⭐⭐", Distance: "해운대역 도보 5분"},
	{Name: "서면 비즈니스 호텔", Type: "호텔", Location: "서면", Price: "8만원/박", Rating: "⭐⭐⭐⭐", Distance: "서면역 도보 2분"},
	{Name: "남포동 게스트하우스", Type: "게스트하우스", Location: "남포동", Price: "3만원/박", Rating: "⭐⭐⭐⭐", Distance: "자갈치역 도보 5분"},
}

// LodgingTips rounds out the lodging tab.
var LodgingTips = []string{
	"🎬 영화관 접근성: 센텀시티 지역이 영화관 밀집도가 높아 편리합니다",
	"💰 가격 비교: 여러 예약 사이트를 비교해보세요 (부킹닷컴, 아고다, 야놀자 등)",
	"📅 조기 예약: BIFF 기간은 성수기이므로 미리 예약하는 것이 좋습니다",
	"🚇 교통편: 지하철역 근처 숙소를 선택하면 이동이 편리합니다",
	"🔔 가격 알림: 원하는 숙소의 가격 알림을 설정해두세요",
	"⭐ 리뷰 확인: 최근 리뷰를 확인하여 숙소 상태를 파악하세요",
}
