// File: cinequest/handlers/assistant.go
package handlers

import (
	"errors"
	"net/http"

	"cinequest/services/agent"
	"cinequest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the conversational assistant over HTTP.
type AssistantHandler struct {
	Svc agent.Service
}

func NewAssistantHandler(svc agent.Service) *AssistantHandler {
	return &AssistantHandler{Svc: svc}
}

// CreateSessionHandler handles POST /api/assistant/sessions.
func (h *AssistantHandler) CreateSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sess, err := h.Svc.CreateSession(c.Request.Context())
	if err != nil {
		logger.Error("Failed to create assistant session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sess.ID,
		"context":   sess.Context,
		"messages":  sess.Messages,
	})
}

// ChatHandler handles POST /api/assistant/chat.
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
		Text      string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid chat request", err.Error())
		return
	}

	result, err := h.Svc.Chat(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrTurnInFlight):
			utils.JSONError(c, http.StatusConflict, "turn already in flight", err.Error())
		case errors.Is(err, agent.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
		default:
			logger.Error("Chat turn failed", zap.String("sessionID", req.SessionID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "chat turn failed", "")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// SyncContextHandler handles PUT /api/assistant/context. Clients call it
// when the user navigates by hand so the session context stays current.
func (h *AssistantHandler) SyncContextHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
		agent.ContextUpdate
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid context update", err.Error())
		return
	}

	sess, err := h.Svc.SyncContext(c.Request.Context(), req.SessionID, req.ContextUpdate)
	if err != nil {
		if errors.Is(err, agent.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
			return
		}
		logger.Error("Context sync failed", zap.String("sessionID", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "context sync failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"context": sess.Context})
}

// TranscriptHandler handles GET /api/assistant/transcript/:sessionID.
func (h *AssistantHandler) TranscriptHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	messages, err := h.Svc.Transcript(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, agent.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load transcript", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "messages": messages})
}
