package risk

import (
	"hazardwatch/internal/types"
)

// Recommendations attached to heuristic verdicts, keyed by level
const (
	recommendationHigh   = "Take immediate precautions and monitor conditions closely"
	recommendationMedium = "Stay alert and be prepared for changing conditions"
	recommendationLow    = "Conditions are generally safe, continue normal activities"
)

// heuristicReport computes a deterministic verdict from the weather record
// alone. It is the AI-independent fallback and must stay pure: the same
// record always yields the same report.
//
// Scoring: temperature >35 or <5 adds 30, else >30 or <10 adds 15;
// humidity >80 adds 20, else <20 adds 15; rainfall >10 adds 25, else >5
// adds 10; wind >15 adds 20, else >10 adds 10. The sum is clamped to
// [0, 100] and cut at 60/30 into High/Medium/Low.
func heuristicReport(record types.WeatherRecord) types.RiskReport {
	score := 0

	switch {
	case record.Temperature > 35 || record.Temperature < 5:
		score += 30
	case record.Temperature > 30 || record.Temperature < 10:
		score += 15
	}

	switch {
	case record.Humidity > 80:
		score += 20
	case record.Humidity < 20:
		score += 15
	}

	switch {
	case record.Rainfall > 10:
		score += 25
	case record.Rainfall > 5:
		score += 10
	}

	switch {
	case record.WindSpeed > 15:
		score += 20
	case record.WindSpeed > 10:
		score += 10
	}

	score = clampScore(score)

	switch {
	case score >= 60:
		return types.RiskReport{
			Level:          types.RiskLevelHigh,
			Score:          score,
			Recommendation: recommendationHigh,
		}
	case score >= 30:
		return types.RiskReport{
			Level:          types.RiskLevelMedium,
			Score:          score,
			Recommendation: recommendationMedium,
		}
	default:
		return types.RiskReport{
			Level:          types.RiskLevelLow,
			Score:          score,
			Recommendation: recommendationLow,
		}
	}
}
