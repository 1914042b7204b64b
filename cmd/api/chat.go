package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hazardwatch/internal/archive"
	"hazardwatch/internal/providers/genai"
	"hazardwatch/internal/types"
)

// ChatInput defines the request body for the chat endpoint
type ChatInput struct {
	Message string `json:"message"`
}

// SaveChatInput defines the request body for saving a chat session.
// Messages are opaque; the frontend owns their shape.
type SaveChatInput struct {
	UserID   string            `json:"user_id"`
	Messages []json.RawMessage `json:"messages"`
}

// handleChat godoc
// @Summary Free-form chat with the disaster-response assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatInput true "User message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/chat [post]
func (app *App) handleChat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty message"})
		return
	}

	reply, err := app.assistantService.Chat(c.Request.Context(), input.Message)
	if err != nil {
		if errors.Is(err, genai.ErrNoCandidates) {
			c.JSON(http.StatusOK, gin.H{"reply": "No reply from AI"})
			return
		}
		app.logger.Error("chat request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"reply": "AI error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// handleSaveChat godoc
// @Summary Save a chat session to the archive
// @Tags chat
// @Accept json
// @Produce json
// @Param request body SaveChatInput true "Chat session"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/chat/save [post]
func (app *App) handleSaveChat(c *gin.Context) {
	var input SaveChatInput
	if err := c.ShouldBindJSON(&input); err != nil || len(input.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No chat messages provided"})
		return
	}

	userID := input.UserID
	if userID == "" {
		userID = uuid.NewString()
	}

	transcript := types.ChatTranscript{
		UserID:    userID,
		Timestamp: newTimestampToken(),
		Messages:  input.Messages,
	}

	key := archive.ChatKey(transcript.ChatID())
	if err := app.archive.SaveJSON(c.Request.Context(), key, transcript); err != nil {
		app.metrics.ArchiveErrors.Inc()
		app.logger.Error("failed to archive chat", "chat_id", transcript.ChatID(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Chat saved successfully",
		"chat_id": transcript.ChatID(),
	})
}

// handleDownloadChat godoc
// @Summary Download an archived chat session
// @Tags chat
// @Produce json
// @Param chat_id path string true "Chat identifier"
// @Success 200 {object} types.ChatTranscript
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/chat/download/{chat_id} [get]
func (app *App) handleDownloadChat(c *gin.Context) {
	chatID := c.Param("chat_id")

	data, err := app.archive.Download(c.Request.Context(), archive.ChatKey(chatID))
	if err != nil {
		if errors.Is(err, archive.ErrObjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		app.logger.Error("failed to download chat", "chat_id", chatID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}

// handleDeleteChat godoc
// @Summary Delete an archived chat session
// @Tags chat
// @Produce json
// @Param chat_id path string true "Chat identifier"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/chat/delete/{chat_id} [delete]
func (app *App) handleDeleteChat(c *gin.Context) {
	chatID := c.Param("chat_id")

	if err := app.archive.Delete(c.Request.Context(), archive.ChatKey(chatID)); err != nil {
		if errors.Is(err, archive.ErrObjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		app.logger.Error("failed to delete chat", "chat_id", chatID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Chat %s deleted successfully", chatID)})
}

// newTimestampToken returns an opaque 32-char token for chat keys
func newTimestampToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
