package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hazardwatch/internal/providers/genai"
)

// ExplainInput defines the request body for the explain endpoint
type ExplainInput struct {
	ID string `json:"id"`
}

// handleExplain godoc
// @Summary Explain why a point received its risk level
// @Description Ask the AI endpoint for a short justification of a previously analyzed point plus two practical community actions
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body ExplainInput true "Point identifier"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/explain [post]
func (app *App) handleExplain(c *gin.Context) {
	var input ExplainInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = ExplainInput{}
	}

	point, ok := app.points.FindByID(input.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Point not found"})
		return
	}

	explanation, err := app.assistantService.Explain(c.Request.Context(), point)
	if err != nil {
		if errors.Is(err, genai.ErrNoCandidates) {
			c.JSON(http.StatusOK, gin.H{"explanation": "No explanation from AI"})
			return
		}
		app.logger.Error("explain request failed", "id", input.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"explanation": "AI error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"explanation": explanation})
}
