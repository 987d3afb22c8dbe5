// Prompt builders for the Gemini gateway. All pure: same inputs, same string.
// User input is appended verbatim, never escaped; the model treats the whole
// block as instruction text.
package prompt

import (
	"fmt"
	"strings"

	"biffguide/festival"
)

// Guide renders the travel-guide persona prompt around a free-text question.
// Every festival.Info field value appears exactly once; the literal question
// is the last line.
func Guide(info festival.EventInfo, question string) string {
	var b strings.Builder

	b.WriteString("당신은 부산국제영화제(BIFF) 29회 전문 여행 가이드 챗봇입니다.\n\n")

	b.WriteString("BIFF 29회 정보:\n")
	fmt.Fprintf(&b, "- 일정: %s\n", info.Dates)
	fmt.Fprintf(&b, "- 기간: %s\n", info.Duration)
	fmt.Fprintf(&b, "- 주요 상영관: %s\n", strings.Join(info.Venues, ", "))
	prices := make([]string, 0, len(festival.TicketTiers))
	for _, tier := range festival.TicketTiers {
		prices = append(prices, tier+" "+info.TicketPrices[tier])
	}
	fmt.Fprintf(&b, "- 티켓 가격: %s\n\n", strings.Join(prices, ", "))

	fmt.Fprintf(&b, "%s 혜택:\n", info.YouthBenefits.Name)
	fmt.Fprintf(&b, "- 대상: %s\n", info.YouthBenefits.AgeLimit)
	fmt.Fprintf(&b, "- 혜택: %s\n", strings.Join(info.YouthBenefits.Benefits, ", "))
	fmt.Fprintf(&b, "- 신청방법: %s\n\n", info.YouthBenefits.HowToApply)

	b.WriteString("부산 주요 명소:\n")
	b.WriteString(strings.Join(info.Attractions, "\n"))
	b.WriteString("\n\n")

	b.WriteString("답변 스타일:\n")
	b.WriteString("- 친근하고 도움이 되는 톤\n")
	b.WriteString("- 구체적이고 실용적인 정보 제공\n")
	b.WriteString("- 이모지 적절히 사용\n")
	b.WriteString("- 한국어로 답변\n")
	b.WriteString("- 청년 관련 질문시 청년패스 혜택 안내\n")
	b.WriteString("- 여행용품 관련 질문시 구체적인 상품 추천\n\n")

	b.WriteString("사용자 질문: ")
	b.WriteString(question)
	return b.String()
}

// LodgingRequest carries the lodging search parameters into the prompt.
type LodgingRequest struct {
	CheckIn    string
	CheckOut   string
	Location   string
	PriceRange string
}

// Lodging builds the data-shaped prompt asking for accommodation JSON. The
// document shape is spelled out field by field; the model is told to answer
// with JSON only.
func Lodging(req LodgingRequest) string {
	return fmt.Sprintf(`부산의 숙소 정보를 JSON 형식으로 생성해주세요.
체크인: %s, 체크아웃: %s

필터 조건:
- 지역: %s
- 가격대: %s

다음 JSON 형식으로 응답해주세요:

{
    "accommodations": [
        {
            "id": "hotel_id",
            "name": "숙소명",
            "type": "호텔/모텔/게스트하우스/펜션",
            "location": "구체적위치",
            "distance_to_cinema": {
                "영화의전당": "도보 5분",
                "롯데시네마 센텀시티": "지하철 10분",
                "CGV 센텀시티": "도보 3분",
                "부산시네마센터": "지하철 20분"
            },
            "price_per_night": 가격(원),
            "original_price": 원래가격(원),
            "discount_rate": 할인율,
            "rating": 평점(4.5),
            "review_count": 리뷰수,
            "amenities": ["WiFi", "주차", "조식", "수영장"],
            "room_type": "객실타입",
            "address": "상세주소",
            "phone": "전화번호",
            "booking_sites": [
                {
                    "site": "예약사이트명",
                    "price": 가격(원),
                    "url": "예약링크(가상)"
                }
            ],
            "images": ["이미지URL(가상)"],
            "check_in_time": "15:00",
            "check_out_time": "11:00",
            "cancellation": "무료취소 가능",
            "breakfast_included": true,
            "near_attractions": ["해운대해수욕장", "광안대교"]
        }
    ]
}

부산 숙소 특징:
- 해운대, 서면, 남포동, 센텀시티 지역별 특색
- 영화관 접근성 고려
- 가격대별 다양한 옵션 (3만원~30만원)
- 부산 관광지 근처 위치

총 10-12개의 숙소를 생성해주세요.
JSON만 응답하고 다른 텍스트는 포함하지 마세요.`, req.CheckIn, req.CheckOut, req.Location, req.PriceRange)
}

// ItineraryRequest carries the itinerary generation parameters.
type ItineraryRequest struct {
	Days      int
	Interests []string
	Budget    string
	Style     string
}

// Itinerary builds the data-shaped prompt for a multi-day festival schedule.
func Itinerary(req ItineraryRequest) string {
	return fmt.Sprintf(`부산 BIFF 29회 여행 일정을 JSON 형식으로 생성해주세요.

여행 조건:
- 여행 기간: %d일
- 관심사: %s
- 예산: %s
- 여행 스타일: %s
- BIFF 기간: 2024년 10월 2일-11일

다음 JSON 형식으로 응답해주세요:

{
    "itinerary": [
        {
            "day": 1,
            "date": "2024-10-03",
            "theme": "BIFF 개막 & 센텀시티 탐방",
            "schedule": [
                {
                    "time": "09:00",
                    "activity": "활동명",
                    "location": "장소명",
                    "duration": "소요시간(분)",
                    "cost": "예상비용(원)",
                    "description": "상세설명",
                    "tips": "팁",
                    "transport": "교통수단",
                    "category": "영화/관광/식사/쇼핑"
                }
            ],
            "daily_budget": 총일일예산(원),
            "highlights": ["하이라이트1", "하이라이트2"]
        }
    ],
    "total_budget": 총예산(원),
    "travel_tips": ["팁1", "팁2", "팁3"],
    "recommended_movies": [
        {
            "title": "영화제목",
            "time": "상영시간",
            "venue": "상영관",
            "reason": "추천이유"
        }
    ],
    "packing_checklist": ["준비물1", "준비물2"],
    "emergency_contacts": [
        {
            "name": "연락처명",
            "phone": "전화번호",
            "purpose": "용도"
        }
    ]
}

부산 BIFF 여행 특징:
- 영화 상영 일정과 관광 일정 조화
- 센텀시티, 해운대, 남포동, 서면 주요 지역
- 부산 향토음식 체험 포함
- 대중교통 이용 최적화
- 청년패스 할인 활용

%d일 일정을 상세히 생성해주세요.
JSON만 응답하고 다른 텍스트는 포함하지 마세요.`,
		req.Days, strings.Join(req.Interests, ", "), req.Budget, req.Style, req.Days)
}
