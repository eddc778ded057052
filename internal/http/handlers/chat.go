// Package handlers contains the HTTP endpoints for the scheduling agent.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/avalondental/scheduling-agent/internal/conversation"
	"github.com/avalondental/scheduling-agent/pkg/logging"
)

const maxChatBodyBytes = 64 * 1024

// ChatHandler serves one conversational turn. The client owns the transcript
// and resubmits it every turn; the server holds no session state.
type ChatHandler struct {
	agent  *conversation.Agent
	logger *logging.Logger
}

// NewChatHandler creates the chat endpoint handler.
func NewChatHandler(agent *conversation.Agent, logger *logging.Logger) *ChatHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatHandler{agent: agent, logger: logger}
}

// ChatTurn is one prior message in the transcript.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the POST /chat payload.
type ChatRequest struct {
	ConversationID string     `json:"conversation_id,omitempty"`
	Message        string     `json:"message"`
	History        []ChatTurn `json:"history,omitempty"`
}

// ChatResponse is the POST /chat reply.
type ChatResponse struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
	Outcome        string `json:"outcome"`
}

// HandleChat processes one user message against the supplied history.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	body := http.MaxBytesReader(w, r.Body, maxChatBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if req.ConversationID == "" {
		req.ConversationID = uuid.NewString()
	}

	history := make([]conversation.ChatMessage, 0, len(req.History))
	for _, t := range req.History {
		if t.Role != conversation.ChatRoleUser && t.Role != conversation.ChatRoleAssistant {
			continue
		}
		history = append(history, conversation.ChatMessage{Role: t.Role, Content: t.Content})
	}

	result, err := h.agent.Respond(r.Context(), history, req.Message)
	if err != nil {
		h.logger.Error("chat turn failed", "error", err, "conversation_id", req.ConversationID)
		// The agent already produced a user-safe reply for remote failures.
		writeJSON(w, http.StatusBadGateway, ChatResponse{
			ConversationID: req.ConversationID,
			Reply:          result.Reply,
			Outcome:        string(result.Outcome),
		})
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		ConversationID: req.ConversationID,
		Reply:          result.Reply,
		Outcome:        string(result.Outcome),
	})
}
