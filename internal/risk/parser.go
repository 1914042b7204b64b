package risk

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"hazardwatch/internal/types"
)

// ParseOutcome tags how a report was recovered from AI text
type ParseOutcome int

const (
	// OutcomeParsed means the text was a well-formed three-field JSON object
	OutcomeParsed ParseOutcome = iota
	// OutcomeExtracted means the report was recovered by scanning loose text
	OutcomeExtracted
	// OutcomeFailed means the text carried nothing usable
	OutcomeFailed
)

var scoreDigitsRe = regexp.MustCompile(`\d{1,3}`)

// parseReportText recovers a RiskReport from AI output. Stage one strips
// code-fence markers and strict-parses the three-field JSON object. Stage two
// scans the raw text: "high"/"low" substrings pick the level (Medium when
// neither appears) and the first run of 1-3 digits becomes the score (50 when
// none), with the trimmed text as the recommendation.
func parseReportText(text string) (types.RiskReport, ParseOutcome) {
	cleaned := strings.TrimSpace(
		strings.ReplaceAll(strings.ReplaceAll(text, "```json", ""), "```", ""),
	)
	if cleaned == "" {
		return types.RiskReport{}, OutcomeFailed
	}

	var raw struct {
		Level          string          `json:"risk_level"`
		Score          json.RawMessage `json:"risk_score"`
		Recommendation string          `json:"recommendation"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err == nil {
		level, levelOK := normalizeLevel(raw.Level)
		score, scoreOK := coerceScore(raw.Score)
		if levelOK && scoreOK {
			return types.RiskReport{
				Level:          level,
				Score:          clampScore(score),
				Recommendation: raw.Recommendation,
			}, OutcomeParsed
		}
	}

	lower := strings.ToLower(text)
	level := types.RiskLevelMedium
	if strings.Contains(lower, "high") {
		level = types.RiskLevelHigh
	} else if strings.Contains(lower, "low") {
		level = types.RiskLevelLow
	}

	score := 50
	if m := scoreDigitsRe.FindString(text); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			score = n
		}
	}

	return types.RiskReport{
		Level:          level,
		Score:          clampScore(score),
		Recommendation: strings.TrimSpace(text),
	}, OutcomeExtracted
}

// normalizeLevel maps a free-form level string onto the enum, case-insensitively
func normalizeLevel(s string) (types.RiskLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return types.RiskLevelLow, true
	case "medium":
		return types.RiskLevelMedium, true
	case "high":
		return types.RiskLevelHigh, true
	default:
		return "", false
	}
}

// coerceScore accepts an integer, a float, or a number-looking string
func coerceScore(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n), true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return int(f), true
		}
	}

	return 0, false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
