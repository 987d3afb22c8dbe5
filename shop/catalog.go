package shop

// Product is one shoppable travel item. Immutable catalog data; cards and
// affiliate links are derived from it.
type Product struct {
	Name    string `json:"name"`
	Desc    string `json:"desc"`
	Price   string `json:"price"`
	Keyword string `json:"keyword"`
}

// Catalog categories in display order.
var Categories = []string{"캐리어", "카메라", "여행용품"}

var Catalog = map[string][]Product{
	"캐리어": {
		{Name: "20인치 기내용 캐리어", Desc: "BIFF 단기 여행용", Price: "10-15만원", Keyword: "20인치 캐리어"},
		{Name: "24인치 중형 캐리어", Desc: "3-4일 여행 최적", Price: "15-20만원", Keyword: "24인치 캐리어"},
		{Name: "28인치 대형 캐리어", Desc: "장기 여행용", Price: "20-30만원", Keyword: "28인치 캐리어"},
	},
	"카메라": {
		{Name: "미러리스 카메라", Desc: "BIFF 인증샷 필수", Price: "80-150만원", Keyword: "미러리스 카메라"},
		{Name: "인스탁스 즉석카메라", Desc: "추억 남기기", Price: "8-12만원", Keyword: "인스탁스 카메라"},
		{Name: "액션캠", Desc: "여행 브이로그용", Price: "30-50만원", Keyword: "액션캠 고프로"},
	},
	"여행용품": {
		{Name: "보조배터리 20000mAh", Desc: "하루종일 외출용", Price: "3-5만원", Keyword: "여행용 보조배터리"},
		{Name: "여행용 목베개", Desc: "장거리 이동시", Price: "1-3만원", Keyword: "여행 목베개"},
		{Name: "여행용 세면도구 세트", Desc: "휴대용 완벽 세트", Price: "2-4만원", Keyword: "여행용 세면도구"},
		{Name: "멀티 어댑터", Desc: "전세계 사용 가능", Price: "2-4만원", Keyword: "여행용 멀티어댑터"},
	},
}
