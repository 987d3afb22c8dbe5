package rdx

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"biffguide/db"
	"biffguide/globals"
	"biffguide/models"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// transcriptTTL tracks the session idle window; every append refreshes it so
// the transcript lives exactly as long as the session does.
const transcriptTTL = time.Hour

func transcriptKey(sessionID string) string {
	return "chat:" + sessionID + ":messages"
}

// Transcript stores session chat logs as Redis lists.
type Transcript struct {
	conn *redis.Client
}

func NewTranscript() *Transcript {
	return &Transcript{conn: Conn}
}

// Append pushes one message onto the session's list and refreshes its TTL.
func (t *Transcript) Append(ctx context.Context, sessionID string, msg models.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	key := transcriptKey(sessionID)
	pipe := t.conn.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, transcriptTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// Messages returns the whole transcript in append order.
func (t *Transcript) Messages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	key := transcriptKey(sessionID)
	raw, err := t.conn.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	msgs := make([]models.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var m models.ChatMessage
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			log.Println("transcript unmarshal error:", err)
			continue
		}
		msgs = append(msgs, m)
	}
	t.conn.Expire(ctx, key, transcriptTTL)
	return msgs, nil
}

// Clear truncates the transcript back to its first entry (the greeting).
func (t *Transcript) Clear(ctx context.Context, sessionID string) error {
	key := transcriptKey(sessionID)
	if err := t.conn.LTrim(ctx, key, 0, 0).Err(); err != nil {
		return err
	}
	return t.conn.Expire(ctx, key, transcriptTTL).Err()
}

// Drop removes the transcript entirely (session swept).
func (t *Transcript) Drop(ctx context.Context, sessionID string) error {
	return t.conn.Del(ctx, transcriptKey(sessionID)).Err()
}

// FlushChatMessages archives near-expiry transcripts from Redis to MongoDB
// in bulk. Runs forever; start in a goroutine.
func FlushChatMessages() {
	ticker := time.NewTicker(30 * time.Second)
	for range ticker.C {
		keys, err := Conn.Keys(globals.Ctx, "chat:*:messages").Result()
		if err != nil {
			log.Println("Redis scan error:", err)
			continue
		}
		for _, key := range keys {
			// Check TTL to determine if the session is about to expire.
			ttl, err := Conn.TTL(globals.Ctx, key).Result()
			if err != nil {
				log.Println("Redis TTL error for key", key, ":", err)
				continue
			}
			if ttl > 10*time.Second {
				continue // skip live sessions
			}

			msgs, err := Conn.LRange(globals.Ctx, key, 0, -1).Result()
			if err != nil {
				log.Println("Redis LRange error:", err)
				continue
			}
			if len(msgs) == 0 {
				continue
			}

			sessionID := strings.TrimSuffix(strings.TrimPrefix(key, "chat:"), ":messages")
			var messagesBulk []interface{}
			for _, mStr := range msgs {
				var m models.ChatMessage
				if err := json.Unmarshal([]byte(mStr), &m); err != nil {
					log.Println("JSON unmarshal error:", err)
					continue
				}
				m.SessionID = sessionID
				messagesBulk = append(messagesBulk, m)
			}
			if len(messagesBulk) > 0 {
				_, err := db.MessagesCollection.InsertMany(globals.Ctx, messagesBulk)
				if err != nil {
					log.Println("MongoDB InsertMany error:", err)
					continue
				}
				Conn.Del(globals.Ctx, key)
			}
		}
	}
}
