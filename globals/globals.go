package globals

import (
	"context"
	"os"
)

// SessionSecret signs the anonymous session tokens handed out by
// POST /api/session.
var SessionSecret = []byte(envOr("SESSION_SECRET", "biff-session-secret"))

// Context keys
type ContextKey string

const SessionIDKey ContextKey = "sessionId"

var Ctx = context.Background()

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
