package risk

import (
	"testing"

	"hazardwatch/internal/types"
)

func TestParseReportText_StrictJSON(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    types.RiskReport
		outcome ParseOutcome
	}{
		{
			name: "clean json",
			text: `{"risk_level":"High","risk_score":82,"recommendation":"evacuate low areas"}`,
			want: types.RiskReport{
				Level:          types.RiskLevelHigh,
				Score:          82,
				Recommendation: "evacuate low areas",
			},
			outcome: OutcomeParsed,
		},
		{
			name: "score as digit string",
			text: `{"risk_level":"High","risk_score":"72","recommendation":"evacuate low areas"}`,
			want: types.RiskReport{
				Level:          types.RiskLevelHigh,
				Score:          72,
				Recommendation: "evacuate low areas",
			},
			outcome: OutcomeParsed,
		},
		{
			name: "score as float",
			text: `{"risk_level":"Medium","risk_score":45.7,"recommendation":"stay alert"}`,
			want: types.RiskReport{
				Level:          types.RiskLevelMedium,
				Score:          45,
				Recommendation: "stay alert",
			},
			outcome: OutcomeParsed,
		},
		{
			name: "code fences stripped",
			text: "```json\n{\"risk_level\":\"Low\",\"risk_score\":10,\"recommendation\":\"all clear\"}\n```",
			want: types.RiskReport{
				Level:          types.RiskLevelLow,
				Score:          10,
				Recommendation: "all clear",
			},
			outcome: OutcomeParsed,
		},
		{
			name: "lowercase level normalized",
			text: `{"risk_level":"high","risk_score":90,"recommendation":"act now"}`,
			want: types.RiskReport{
				Level:          types.RiskLevelHigh,
				Score:          90,
				Recommendation: "act now",
			},
			outcome: OutcomeParsed,
		},
		{
			name: "score above range clamped",
			text: `{"risk_level":"High","risk_score":250,"recommendation":"act now"}`,
			want: types.RiskReport{
				Level:          types.RiskLevelHigh,
				Score:          100,
				Recommendation: "act now",
			},
			outcome: OutcomeParsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome := parseReportText(tt.text)
			if outcome != tt.outcome {
				t.Fatalf("parseReportText() outcome = %d, want %d", outcome, tt.outcome)
			}
			if got != tt.want {
				t.Errorf("parseReportText() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseReportText_LooseText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLevel types.RiskLevel
		wantScore int
	}{
		{
			name:      "high with number",
			text:      "The risk here is HIGH, around 85 out of 100.",
			wantLevel: types.RiskLevelHigh,
			wantScore: 85,
		},
		{
			name:      "low with number",
			text:      "Conditions look low risk, maybe 12.",
			wantLevel: types.RiskLevelLow,
			wantScore: 12,
		},
		{
			name:      "neither keyword defaults to medium",
			text:      "Moderate conditions expected over the next 24 hours.",
			wantLevel: types.RiskLevelMedium,
			wantScore: 24,
		},
		{
			name:      "no digits defaults to fifty",
			text:      "Elevated risk but hard to quantify.",
			wantLevel: types.RiskLevelMedium,
			wantScore: 50,
		},
		{
			name:      "high beats low when both appear",
			text:      "Could be low, but flooding makes it high.",
			wantLevel: types.RiskLevelHigh,
			wantScore: 50,
		},
		{
			name:      "malformed json falls through to scan",
			text:      `{"risk_level":"High","risk_score":`,
			wantLevel: types.RiskLevelHigh,
			wantScore: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome := parseReportText(tt.text)
			if outcome != OutcomeExtracted {
				t.Fatalf("parseReportText() outcome = %d, want OutcomeExtracted", outcome)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("parseReportText() level = %s, want %s", got.Level, tt.wantLevel)
			}
			if got.Score != tt.wantScore {
				t.Errorf("parseReportText() score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Recommendation == "" {
				t.Error("parseReportText() recommendation is empty")
			}
		})
	}
}

func TestParseReportText_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "```json```", "``` ```"} {
		if _, outcome := parseReportText(text); outcome != OutcomeFailed {
			t.Errorf("parseReportText(%q) outcome = %d, want OutcomeFailed", text, outcome)
		}
	}
}
