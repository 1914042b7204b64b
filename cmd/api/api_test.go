package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hazardwatch/internal/archive"
	"hazardwatch/internal/observability"
	"hazardwatch/internal/providers/genai"
	"hazardwatch/internal/providers/openweather"
	"hazardwatch/internal/store"
	"hazardwatch/internal/types"
)

// fakeWeatherService returns a canned record or error
type fakeWeatherService struct {
	record types.WeatherRecord
	err    error
}

func (f *fakeWeatherService) Fetch(_ context.Context, _ types.Coordinates) (types.WeatherRecord, error) {
	return f.record, f.err
}

type fakeLocationService struct {
	name string
}

func (f *fakeLocationService) ResolveName(_ context.Context, _ types.Coordinates) string {
	return f.name
}

type fakeRiskService struct {
	report types.RiskReport
}

func (f *fakeRiskService) Assess(_ context.Context, _ types.WeatherRecord) types.RiskReport {
	return f.report
}

type fakeAssistantService struct {
	reply       string
	explanation string
	err         error
}

func (f *fakeAssistantService) Chat(_ context.Context, _ string) (string, error) {
	return f.reply, f.err
}

func (f *fakeAssistantService) Explain(_ context.Context, _ types.Point) (string, error) {
	return f.explanation, f.err
}

// memoryArchive is an in-memory archive.Store for handler tests
type memoryArchive struct {
	objects map[string][]byte
	saveErr error
}

func newMemoryArchive() *memoryArchive {
	return &memoryArchive{objects: map[string][]byte{}}
}

func (m *memoryArchive) SaveJSON(_ context.Context, key string, v any) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memoryArchive) Download(_ context.Context, key string) ([]byte, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, archive.ErrObjectNotFound
	}
	return data, nil
}

func (m *memoryArchive) Delete(_ context.Context, key string) error {
	if _, ok := m.objects[key]; !ok {
		return archive.ErrObjectNotFound
	}
	delete(m.objects, key)
	return nil
}

func newTestApp(t *testing.T) (*App, *memoryArchive) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	arc := newMemoryArchive()
	app := &App{
		router:  gin.New(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: observability.NewMetricsForTesting(),
		weatherService: &fakeWeatherService{
			record: types.WeatherRecord{Temperature: 22.5, Humidity: 55, WindSpeed: 3.2, Rainfall: 0},
		},
		locationService: &fakeLocationService{name: "Austin, Texas, US"},
		riskService: &fakeRiskService{
			report: types.RiskReport{Level: types.RiskLevelLow, Score: 10, Recommendation: "Conditions are stable. Normal monitoring is sufficient."},
		},
		assistantService: &fakeAssistantService{reply: "Stay calm.", explanation: "Low risk because conditions are mild."},
		points:           store.NewPointStore(),
		archive:          arc,
	}
	app.registerRoutes()
	return app, arc
}

func doJSON(app *App, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func TestHandlePing(t *testing.T) {
	app, _ := newTestApp(t)

	w := doJSON(app, http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestHandleAnalyze_Success(t *testing.T) {
	app, arc := newTestApp(t)

	w := doJSON(app, http.MethodPost, "/api/analyze", gin.H{"location": "30.2672,-97.7431"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "30.2672,-97.7431", resp.Location)
	assert.Equal(t, "Austin, Texas, US", resp.LocationName)
	assert.Equal(t, types.RiskLevelLow, resp.RiskReport.Level)

	// stored point and archived report share the response id
	point, ok := app.points.FindByID(resp.ID)
	require.True(t, ok)
	assert.Equal(t, 30.2672, point.Lat)
	assert.Equal(t, -97.7431, point.Lon)

	_, archived := arc.objects[archive.ReportKey(resp.ID)]
	assert.True(t, archived)
}

func TestHandleAnalyze_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      any
		wantError string
	}{
		{"missing body", nil, "Missing location parameter"},
		{"empty location", gin.H{"location": ""}, "Missing location parameter"},
		{"latitude out of range", gin.H{"location": "91,0"}, "Invalid coordinates. Latitude must be -90 to 90, longitude -180 to 180."},
		{"longitude out of range", gin.H{"location": "45,190"}, "Invalid coordinates. Latitude must be -90 to 90, longitude -180 to 180."},
		{"not numeric", gin.H{"location": "abc,def"}, "Invalid location format. Use 'lat,lon'."},
		{"single token", gin.H{"location": "45"}, "Invalid location format. Use 'lat,lon'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)

			w := doJSON(app, http.MethodPost, "/api/analyze", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp["error"])
		})
	}
}

func TestHandleAnalyze_WeatherFailure(t *testing.T) {
	app, _ := newTestApp(t)
	app.weatherService = &fakeWeatherService{err: openweather.ErrAuthentication}

	w := doJSON(app, http.MethodPost, "/api/analyze", gin.H{"location": "10,20"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp["error"], "Internal server error: "))
	assert.Zero(t, app.points.Len())
}

func TestHandleAnalyze_ArchiveFailure(t *testing.T) {
	app, arc := newTestApp(t)
	arc.saveErr = errors.New("bucket unavailable")

	w := doJSON(app, http.MethodPost, "/api/analyze", gin.H{"location": "10,20"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleGetPoints(t *testing.T) {
	app, _ := newTestApp(t)

	w := doJSON(app, http.MethodGet, "/api/points", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	first := doJSON(app, http.MethodPost, "/api/analyze", gin.H{"location": "1,2"})
	require.Equal(t, http.StatusOK, first.Code)
	second := doJSON(app, http.MethodPost, "/api/analyze", gin.H{"location": "3,4"})
	require.Equal(t, http.StatusOK, second.Code)

	w = doJSON(app, http.MethodGet, "/api/points", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var points []types.Point
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &points))
	require.Len(t, points, 2)
	assert.Equal(t, 1.0, points[0].Lat)
	assert.Equal(t, 3.0, points[1].Lat)
}

func TestHandleExplain(t *testing.T) {
	app, _ := newTestApp(t)

	// unknown id
	w := doJSON(app, http.MethodPost, "/api/explain", gin.H{"id": "nope"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Point not found"}`, w.Body.String())

	// analyze a point, then explain it
	aw := doJSON(app, http.MethodPost, "/api/analyze", gin.H{"location": "5,6"})
	require.Equal(t, http.StatusOK, aw.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(aw.Body.Bytes(), &resp))

	w = doJSON(app, http.MethodPost, "/api/explain", gin.H{"id": resp.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"explanation":"Low risk because conditions are mild."}`, w.Body.String())
}

func TestHandleExplain_AIOutcomes(t *testing.T) {
	app, _ := newTestApp(t)

	aw := doJSON(app, http.MethodPost, "/api/analyze", gin.H{"location": "5,6"})
	require.Equal(t, http.StatusOK, aw.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(aw.Body.Bytes(), &resp))

	app.assistantService = &fakeAssistantService{err: genai.ErrNoCandidates}
	w := doJSON(app, http.MethodPost, "/api/explain", gin.H{"id": resp.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"explanation":"No explanation from AI"}`, w.Body.String())

	app.assistantService = &fakeAssistantService{err: errors.New("upstream down")}
	w = doJSON(app, http.MethodPost, "/api/explain", gin.H{"id": resp.ID})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"explanation":"AI error"}`, w.Body.String())
}

func TestHandleChat(t *testing.T) {
	app, _ := newTestApp(t)

	w := doJSON(app, http.MethodPost, "/api/chat", gin.H{"message": "What should I pack?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"Stay calm."}`, w.Body.String())

	w = doJSON(app, http.MethodPost, "/api/chat", gin.H{"message": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Empty message"}`, w.Body.String())

	app.assistantService = &fakeAssistantService{err: genai.ErrNoCandidates}
	w = doJSON(app, http.MethodPost, "/api/chat", gin.H{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"No reply from AI"}`, w.Body.String())

	app.assistantService = &fakeAssistantService{err: errors.New("upstream down")}
	w = doJSON(app, http.MethodPost, "/api/chat", gin.H{"message": "hello"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"reply":"AI error"}`, w.Body.String())
}

func TestChatSaveDownloadDelete(t *testing.T) {
	app, _ := newTestApp(t)

	messages := []gin.H{
		{"role": "user", "content": "hi"},
		{"role": "assistant", "content": "hello"},
	}

	// save
	w := doJSON(app, http.MethodPost, "/api/chat/save", gin.H{"user_id": "u1", "messages": messages})
	require.Equal(t, http.StatusOK, w.Code)

	var saved map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "Chat saved successfully", saved["message"])
	chatID := saved["chat_id"]
	require.NotEmpty(t, chatID)
	assert.True(t, strings.HasPrefix(chatID, "u1_"))

	// download round-trips the transcript
	w = doJSON(app, http.MethodGet, "/api/chat/download/"+chatID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var transcript types.ChatTranscript
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transcript))
	assert.Equal(t, "u1", transcript.UserID)
	assert.Len(t, transcript.Messages, 2)

	// delete, then the chat is gone
	w = doJSON(app, http.MethodDelete, "/api/chat/delete/"+chatID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Chat `+chatID+` deleted successfully"}`, w.Body.String())

	w = doJSON(app, http.MethodGet, "/api/chat/download/"+chatID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Chat not found"}`, w.Body.String())
}

func TestChatSave_NoMessages(t *testing.T) {
	app, _ := newTestApp(t)

	w := doJSON(app, http.MethodPost, "/api/chat/save", gin.H{"user_id": "u1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No chat messages provided"}`, w.Body.String())

	w = doJSON(app, http.MethodPost, "/api/chat/save", gin.H{"user_id": "u1", "messages": []gin.H{}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No chat messages provided"}`, w.Body.String())
}

func TestChatSave_GeneratedUserID(t *testing.T) {
	app, _ := newTestApp(t)

	w := doJSON(app, http.MethodPost, "/api/chat/save", gin.H{"messages": []gin.H{{"role": "user", "content": "hi"}}})
	require.Equal(t, http.StatusOK, w.Code)

	var saved map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Contains(t, saved["chat_id"], "_")
}

func TestChatDelete_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	w := doJSON(app, http.MethodDelete, "/api/chat/delete/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Chat not found"}`, w.Body.String())
}
