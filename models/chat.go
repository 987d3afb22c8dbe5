package models

// Role values for a transcript entry.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry of the session transcript. The transcript is
// append-only; entries are never edited, only truncated back to the greeting
// by a clear.
type ChatMessage struct {
	SessionID string `json:"-" bson:"sessionId"`
	Role      string `json:"role" bson:"role"`
	Content   string `json:"content" bson:"content"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}
