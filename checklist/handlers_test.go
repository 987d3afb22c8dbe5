package checklist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"biffguide/globals"

	"github.com/julienschmidt/httprouter"
)

type fakeResolver struct {
	store *Store
}

func (f *fakeResolver) ChecklistFor(sid string) (*Store, error) {
	if sid != "sid-1" {
		return nil, errors.New("session not found")
	}
	return f.store, nil
}

func newTestHandler() (*Handler, *Store) {
	store := NewStore()
	return &Handler{Sessions: &fakeResolver{store: store}}, store
}

func sessionRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(r.Context(), globals.SessionIDKey, "sid-1")
	return r.WithContext(ctx)
}

type stateResponse struct {
	Categories []CategoryState `json:"categories"`
	Checked    int             `json:"checked"`
	Total      int             `json:"total"`
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) stateResponse {
	t.Helper()
	var resp stateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestGetChecklist(t *testing.T) {
	h, _ := newTestHandler()

	w := httptest.NewRecorder()
	h.GetChecklist(w, sessionRequest(http.MethodGet, "/api/checklist", ""), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	resp := decodeState(t, w)
	if len(resp.Categories) != len(CategoryOrder) {
		t.Errorf("got %d categories, want %d", len(resp.Categories), len(CategoryOrder))
	}
	if resp.Checked != 0 || resp.Total != templateTotal() {
		t.Errorf("checked/total = %d/%d", resp.Checked, resp.Total)
	}
}

func TestToggleItemEndpoint(t *testing.T) {
	h, store := newTestHandler()

	category := "👜 기본용 짐"
	item := "캐리어/여행가방"
	ps := httprouter.Params{
		{Key: "category", Value: category},
		{Key: "item", Value: item},
	}
	target := "/api/checklist/" + url.PathEscape(category) + "/" + url.PathEscape(item)

	w := httptest.NewRecorder()
	h.ToggleItem(w, sessionRequest(http.MethodPut, target, `{"checked":true}`), ps)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if resp := decodeState(t, w); resp.Checked != 1 {
		t.Errorf("checked = %d after toggle", resp.Checked)
	}
	if checked, _ := store.Progress(); checked != 1 {
		t.Errorf("store checked = %d", checked)
	}
}

func TestToggleItemUnknownKeyIs400(t *testing.T) {
	h, _ := newTestHandler()

	ps := httprouter.Params{
		{Key: "category", Value: "없는 카테고리"},
		{Key: "item", Value: "칫솔/치약"},
	}
	w := httptest.NewRecorder()
	h.ToggleItem(w, sessionRequest(http.MethodPut, "/api/checklist/x/y", `{"checked":true}`), ps)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "없는 카테고리") {
		t.Error("error body does not name the offending category")
	}
}

func TestCheckAllAndResetEndpoints(t *testing.T) {
	h, _ := newTestHandler()

	w := httptest.NewRecorder()
	h.CheckAll(w, sessionRequest(http.MethodPost, "/api/checklist/check-all", ""), nil)
	if resp := decodeState(t, w); resp.Checked != resp.Total {
		t.Errorf("after check-all: %d/%d", resp.Checked, resp.Total)
	}

	w = httptest.NewRecorder()
	h.ResetAll(w, sessionRequest(http.MethodPost, "/api/checklist/reset", ""), nil)
	if resp := decodeState(t, w); resp.Checked != 0 {
		t.Errorf("after reset: checked = %d", resp.Checked)
	}
}

func TestMissingSessionIsUnauthorized(t *testing.T) {
	h, _ := newTestHandler()

	w := httptest.NewRecorder()
	h.GetChecklist(w, httptest.NewRequest(http.MethodGet, "/api/checklist", nil), nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
