package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hazardwatch/internal/archive"
	"hazardwatch/internal/types"
)

// AnalyzeInput defines the request body for the analyze endpoint
type AnalyzeInput struct {
	Location string `json:"location"` // "lat,lon" in decimal degrees
}

// AnalyzeResponse is the Point-shaped payload returned to the caller and
// archived under reports/{id}.json. The id matches the stored point.
type AnalyzeResponse struct {
	ID           string              `json:"id"`
	Location     string              `json:"location"`
	LocationName string              `json:"location_name"`
	Data         types.WeatherRecord `json:"data"`
	RiskReport   types.RiskReport    `json:"risk_report"`
}

// handleAnalyze godoc
// @Summary Analyze disaster risk for a coordinate
// @Description Fetch current weather for the point, score it via the AI endpoint (or the deterministic heuristic on failure), resolve a place name, and archive the report
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeInput true "Coordinate as 'lat,lon'"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/analyze [post]
func (app *App) handleAnalyze(c *gin.Context) {
	var input AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing location parameter"})
		return
	}

	coords, err := types.ParseLocation(input.Location)
	if err != nil {
		if errors.Is(err, types.ErrCoordinatesOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates. Latitude must be -90 to 90, longitude -180 to 180."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location format. Use 'lat,lon'."})
		return
	}

	app.metrics.AnalyzeRequests.Inc()
	ctx := c.Request.Context()

	// Weather first; auth rejection or unknown location is fatal here
	record, err := app.weatherService.Fetch(ctx, coords)
	if err != nil {
		app.logger.Error("failed to fetch weather",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Internal server error: %s", err)})
		return
	}

	// Risk scoring and geocoding never fail; both degrade internally
	report := app.riskService.Assess(ctx, record)
	locationName := app.locationService.ResolveName(ctx, coords)

	point := types.Point{
		ID:           uuid.NewString(),
		Lat:          coords.Latitude,
		Lon:          coords.Longitude,
		LocationName: locationName,
		Data:         record,
		RiskReport:   report,
	}
	app.points.Append(point)

	response := AnalyzeResponse{
		ID:           point.ID,
		Location:     formatLocation(coords),
		LocationName: locationName,
		Data:         record,
		RiskReport:   report,
	}

	if err := app.archive.SaveJSON(ctx, archive.ReportKey(point.ID), response); err != nil {
		app.metrics.ArchiveErrors.Inc()
		app.logger.Error("failed to archive report", "id", point.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Internal server error: %s", err)})
		return
	}

	app.logger.Info("analysis complete",
		"id", point.ID,
		"location_name", locationName,
		"risk_level", report.Level,
		"risk_score", report.Score,
	)
	c.JSON(http.StatusOK, response)
}

// handleGetPoints godoc
// @Summary List all analyzed points
// @Description Return every point analyzed during this process lifetime, in call order
// @Tags analysis
// @Produce json
// @Success 200 {array} types.Point
// @Router /api/points [get]
func (app *App) handleGetPoints(c *gin.Context) {
	c.JSON(http.StatusOK, app.points.List())
}

func formatLocation(coords types.Coordinates) string {
	return strconv.FormatFloat(coords.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(coords.Longitude, 'f', -1, 64)
}
