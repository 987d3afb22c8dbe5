// Package checklist holds the packing-list template and the per-session
// checked state derived from it.
package checklist

import (
	"fmt"
	"sync"
)

// CategoryOrder fixes the display order; Template holds the items per
// category. The template never changes during a run, so the total item
// count is a session constant.
var CategoryOrder = []string{
	"👜 기본용 짐",
	"👕 의류",
	"🧴 세면용품",
	"🎬 BIFF 특화",
	"🏖️ 부산 특화",
	"💊 상비약",
}

var Template = map[string][]string{
	"👜 기본용 짐": {
		"캐리어/여행가방", "여권/신분증", "항공권/기차표", "숙소 예약 확인서",
		"현금/카드", "휴대폰 충전기", "보조배터리", "여행용 어댑터",
	},
	"👕 의류": {
		"속옷 (여행일수+1벌)", "양말 (여행일수+1켤레)", "편한 운동화", "슬리퍼",
		"가벼운 외투/카디건", "긴팔 티셔츠", "반팔 티셔츠", "바지/치마", "잠옷",
	},
	"🧴 세면용품": {
		"칫솔/치약", "샴푸/린스", "바디워시", "세안용품",
		"수건", "화장품/스킨케어", "선크림", "립밤",
	},
	"🎬 BIFF 특화": {
		"영화 티켓 예매 확인", "상영 시간표 저장", "카메라/스마트폰", "휴대용 방석",
		"목베개", "간식/물", "우산 (10월 날씨 대비)", "마스크",
	},
	"🏖️ 부산 특화": {
		"수영복 (해운대 방문시)", "비치타올", "선글라스", "모자",
		"편한 걷기 신발", "배낭/크로스백", "부산 지하철 앱", "번역 앱",
	},
	"💊 상비약": {
		"감기약", "소화제", "진통제", "밴드", "멀미약", "개인 복용 약물",
	},
}

// Store keeps one session's checkbox state. Keys always come from Template;
// anything else is a caller bug and is reported, never swallowed.
type Store struct {
	mu      sync.Mutex
	checked map[string]map[string]bool
}

// NewStore initializes every template pair to unchecked.
func NewStore() *Store {
	s := &Store{checked: make(map[string]map[string]bool, len(Template))}
	for category, items := range Template {
		m := make(map[string]bool, len(items))
		for _, item := range items {
			m[item] = false
		}
		s.checked[category] = m
	}
	return s
}

// Toggle sets one pair. Unknown category or item is a contract violation:
// the template and the toggle call sites come from the same source.
func (s *Store) Toggle(category, item string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.checked[category]
	if !ok {
		return fmt.Errorf("checklist: unknown category %q", category)
	}
	if _, ok := items[item]; !ok {
		return fmt.Errorf("checklist: unknown item %q in category %q", item, category)
	}
	items[item] = value
	return nil
}

// CheckAll marks every pair checked.
func (s *Store) CheckAll() { s.setAll(true) }

// ResetAll marks every pair unchecked.
func (s *Store) ResetAll() { s.setAll(false) }

func (s *Store) setAll(value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, items := range s.checked {
		for item := range items {
			items[item] = value
		}
	}
}

// Progress reports (checked, total). Total equals the template's item count
// for the whole session.
func (s *Store) Progress() (checked, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, items := range s.checked {
		for _, v := range items {
			total++
			if v {
				checked++
			}
		}
	}
	return checked, total
}

// Snapshot returns the per-category state in template order, for rendering.
func (s *Store) Snapshot() []CategoryState {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CategoryState, 0, len(CategoryOrder))
	for _, category := range CategoryOrder {
		cs := CategoryState{Category: category}
		for _, item := range Template[category] {
			cs.Items = append(cs.Items, ItemState{
				Item:    item,
				Checked: s.checked[category][item],
			})
		}
		out = append(out, cs)
	}
	return out
}

// ItemState is one checkbox of the rendered checklist.
type ItemState struct {
	Item    string `json:"item"`
	Checked bool   `json:"checked"`
}

// CategoryState groups the items of one template category.
type CategoryState struct {
	Category string      `json:"category"`
	Items    []ItemState `json:"items"`
}
