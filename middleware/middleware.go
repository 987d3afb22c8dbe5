package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"biffguide/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// Claims carried by the anonymous session token.
type Claims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

const tokenLifetime = 24 * time.Hour

// MintSessionToken signs a token for a freshly started session.
func MintSessionToken(sessionID string) (string, error) {
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.SessionSecret)
}

// WithSession requires a valid session token and stores the session ID in
// the request context. Handlers resolve the live session from there.
func WithSession(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}
		if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
			http.Error(w, "Invalid token format", http.StatusUnauthorized)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
			return globals.SessionSecret, nil
		})
		if err != nil || !token.Valid || claims.SessionID == "" {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.SessionIDKey, claims.SessionID)
		next(w, r.WithContext(ctx), ps)
	}
}

// SessionID pulls the validated session ID back out of the context.
func SessionID(r *http.Request) (string, error) {
	id, ok := r.Context().Value(globals.SessionIDKey).(string)
	if !ok || id == "" {
		return "", fmt.Errorf("no session in request context")
	}
	return id, nil
}
