package types

// RiskLevel is the qualitative verdict of a risk assessment
type RiskLevel string

const (
	RiskLevelLow     RiskLevel = "Low"
	RiskLevelMedium  RiskLevel = "Medium"
	RiskLevelHigh    RiskLevel = "High"
	RiskLevelUnknown RiskLevel = "Unknown"
)

// RiskReport is the structured verdict produced by the risk service.
// Score is always an integer in [0, 100].
type RiskReport struct {
	Level          RiskLevel `json:"risk_level"`
	Score          int       `json:"risk_score"`
	Recommendation string    `json:"recommendation"`
}
