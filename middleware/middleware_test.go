package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestMintAndVerifyRoundTrip(t *testing.T) {
	token, err := MintSessionToken("sid-123")
	if err != nil {
		t.Fatal(err)
	}

	var gotSID string
	handler := WithSession(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotSID, _ = SessionID(r)
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/chat/messages", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotSID != "sid-123" {
		t.Errorf("session id = %q", gotSID)
	}
}

func TestWithSessionRejectsBadTokens(t *testing.T) {
	handler := WithSession(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Error("handler reached with invalid credentials")
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/chat/messages", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			handler(w, r, nil)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestSessionIDWithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := SessionID(r); err == nil {
		t.Error("expected an error for a request that skipped WithSession")
	}
}
