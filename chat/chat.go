// Package chat implements the guide conversation: an append-only session
// transcript plus one model call per user message.
package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"biffguide/festival"
	"biffguide/gemini"
	"biffguide/middleware"
	"biffguide/models"
	"biffguide/prompt"
	"biffguide/session"
	"biffguide/shop"
	"biffguide/utils"

	"github.com/julienschmidt/httprouter"
)

// Greeting seeds every transcript and survives a clear.
const Greeting = "안녕하세요! 🎬 부산국제영화제 29회 여행 가이드입니다.\n\n**📅 2024.10.2(수) ~ 10.11(금)**\n\nBIFF 일정, 부산 여행, 맛집, 숙소, 여행용품 등 무엇이든 물어보세요! 😊\n\n💡 **청년 여러분!** 만 18~34세라면 부산 청년패스로 할인 혜택을 받으세요!"

// QuickQuestions are the one-tap prompts offered by the UI.
var QuickQuestions = []string{
	"BIFF 일정 알려줘",
	"부산 청년패스 혜택",
	"부산 3박4일 일정 짜줘",
	"해운대 맛집 추천",
	"영화제 티켓 가격",
	"여행 준비물 추천",
}

// TranscriptStore is the transcript backend; rdx.Transcript in production,
// an in-memory fake in tests.
type TranscriptStore interface {
	Append(ctx context.Context, sessionID string, msg models.ChatMessage) error
	Messages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	Clear(ctx context.Context, sessionID string) error
}

// Handler wires the gateway, transcript store and session registry into the
// chat endpoints.
type Handler struct {
	Gen        gemini.TextGenerator
	Transcript TranscriptStore
	Sessions   *session.Manager
}

func (h *Handler) resolveSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid, err := middleware.SessionID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	if _, err := h.Sessions.Get(sid); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Session expired")
		return "", false
	}
	return sid, true
}

// ensureSeeded returns the transcript, pushing the greeting first if the
// list is empty. The greeting is always element zero, which is what Clear
// relies on.
func (h *Handler) ensureSeeded(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	msgs, err := h.Transcript.Messages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		greet := models.ChatMessage{
			Role:      models.RoleAssistant,
			Content:   Greeting,
			Timestamp: time.Now().UnixMilli(),
		}
		if err := h.Transcript.Append(ctx, sessionID, greet); err != nil {
			return nil, err
		}
		msgs = append(msgs, greet)
	}
	return msgs, nil
}

// GET /api/chat/messages
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	msgs, err := h.ensureSeeded(r.Context(), sid)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching transcript")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"messages": msgs})
}

// POST /api/chat/messages
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || strings.TrimSpace(input.Text) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx := r.Context()
	if _, err := h.ensureSeeded(ctx, sid); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching transcript")
		return
	}

	// The user message is appended before the model call and stays in the
	// transcript even if the call fails; the failure is surfaced to this
	// request only.
	userMsg := models.ChatMessage{
		Role:      models.RoleUser,
		Content:   input.Text,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := h.Transcript.Append(ctx, sid, userMsg); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error storing message")
		return
	}

	answer, err := h.Gen.GenerateText(ctx, prompt.Guide(festival.Info, input.Text))
	if err != nil {
		log.Printf("gateway error: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to generate a response; please try again")
		return
	}

	answer = shop.AppendProductCards(answer, input.Text)

	botMsg := models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   answer,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := h.Transcript.Append(ctx, sid, botMsg); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error storing message")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reply": botMsg})
}

// DELETE /api/chat/messages
func (h *Handler) ClearChat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	if _, err := h.ensureSeeded(r.Context(), sid); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching transcript")
		return
	}
	if err := h.Transcript.Clear(r.Context(), sid); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error clearing transcript")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Chat cleared"})
}

// GET /api/chat/quick-questions
func (h *Handler) GetQuickQuestions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"questions": QuickQuestions})
}
