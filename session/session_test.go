package session

import (
	"testing"
	"time"

	"biffguide/models"
)

func TestStartAndGet(t *testing.T) {
	m := NewManager()
	s := m.Start()
	if s.ID == "" {
		t.Fatal("empty session ID")
	}
	if s.Checklist == nil {
		t.Fatal("session started without a checklist")
	}
	if checked, _ := s.Checklist.Progress(); checked != 0 {
		t.Errorf("fresh session checklist has %d checked items", checked)
	}

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Error("Get returned a different session object")
	}
}

func TestGetUnknownID(t *testing.T) {
	m := NewManager()
	if _, err := m.Get("nope"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	m := NewManager()
	a := m.Start()
	b := m.Start()
	if a.ID == b.ID {
		t.Fatal("two sessions share one ID")
	}

	if err := a.Checklist.Toggle("💊 상비약", "감기약", true); err != nil {
		t.Fatal(err)
	}
	if checked, _ := b.Checklist.Progress(); checked != 0 {
		t.Error("toggle in one session leaked into another")
	}
}

func TestToggleFavorite(t *testing.T) {
	m := NewManager()
	s := m.Start()

	if !s.ToggleFavorite("h1") {
		t.Error("first toggle should favorite")
	}
	if got := s.Favorites(); len(got) != 1 || got[0] != "h1" {
		t.Errorf("Favorites() = %v", got)
	}
	if s.ToggleFavorite("h1") {
		t.Error("second toggle should unfavorite")
	}
	if got := s.Favorites(); len(got) != 0 {
		t.Errorf("Favorites() = %v after unfavorite", got)
	}
}

func TestPriceAlertsKeepOrder(t *testing.T) {
	s := NewManager().Start()
	s.AddPriceAlert(models.PriceAlert{AccommodationID: "h1", TargetPrice: 81000})
	s.AddPriceAlert(models.PriceAlert{AccommodationID: "h2", TargetPrice: 45000})

	alerts := s.PriceAlerts()
	if len(alerts) != 2 || alerts[0].AccommodationID != "h1" {
		t.Errorf("alerts = %+v", alerts)
	}
}

func TestSweepDropsIdleSessions(t *testing.T) {
	m := NewManager()
	idle := m.Start()
	active := m.Start()

	// age the idle session past the TTL
	idle.mu.Lock()
	idle.lastSeen = time.Now().Add(-2 * idleTTL)
	idle.mu.Unlock()

	m.sweep(time.Now())

	if _, err := m.Get(idle.ID); err != ErrNotFound {
		t.Error("idle session survived the sweep")
	}
	if _, err := m.Get(active.ID); err != nil {
		t.Errorf("active session swept: %v", err)
	}
}

func TestGetRefreshesIdleTimer(t *testing.T) {
	m := NewManager()
	s := m.Start()

	s.mu.Lock()
	s.lastSeen = time.Now().Add(-2 * idleTTL)
	s.mu.Unlock()

	// a lookup right before the sweep keeps the session alive
	if _, err := m.Get(s.ID); err != nil {
		t.Fatal(err)
	}
	m.sweep(time.Now())
	if _, err := m.Get(s.ID); err != nil {
		t.Errorf("recently used session swept: %v", err)
	}
}

func TestChecklistFor(t *testing.T) {
	m := NewManager()
	s := m.Start()

	store, err := m.ChecklistFor(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if store != s.Checklist {
		t.Error("ChecklistFor returned a different store")
	}
	if _, err := m.ChecklistFor("nope"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
