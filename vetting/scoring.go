package vetting

import "fmt"

type RiskLevel string

const (
	LevelLow        RiskLevel = "Low Risk"
	LevelSuspicious RiskLevel = "Suspicious"
	LevelHigh       RiskLevel = "High Risk"
)

// RiskReport is the final verdict returned to the caller.
type RiskReport struct {
	Risk    int       `json:"risk"`
	Level   RiskLevel `json:"level"`
	Details []string  `json:"details"`
}

// Aggregate merges the three findings into a report.
// TLS, then registration age, then lexical patterns; details follow the same order.
func Aggregate(tlsF TLSFinding, age AgeFinding, patterns PatternFinding) RiskReport {
	score := 0
	details := make([]string, 0, 2+len(patterns.Messages))

	// TLS
	if !tlsF.Valid {
		score += WeightNoValidTLS
		details = append(details, GlyphFailure+" No valid SSL certificate detected.")
	} else {
		details = append(details, fmt.Sprintf("%s Valid SSL certificate. Expiry: %s", GlyphSuccess, tlsF.Expiry))
	}

	// Domain age
	switch {
	case age.AgeDays == nil:
		details = append(details, GlyphInfo+" WHOIS data not publicly available.")
	case *age.AgeDays < DomainVeryNewDays:
		score += WeightDomainVeryNew
		details = append(details, GlyphFailure+" Domain is very new (<30 days).")
	case *age.AgeDays < DomainRecentDays:
		score += WeightDomainRecent
		details = append(details, GlyphWarning+" Domain is relatively new (<6 months).")
	default:
		details = append(details, GlyphSuccess+" Domain is old and established.")
	}

	// Patterns
	score += patterns.Risk
	details = append(details, patterns.Messages...)

	return RiskReport{
		Risk:    score,
		Level:   LevelFor(score),
		Details: details,
	}
}

// LevelFor classifies a score using the default thresholds.
func LevelFor(score int) RiskLevel {
	return DefaultScoringThresholds().Classify(score)
}

// Classify maps a score onto a level.
func (t ScoringThresholds) Classify(score int) RiskLevel {
	switch {
	case score >= t.HighRiskMin:
		return LevelHigh
	case score >= t.SuspiciousMin:
		return LevelSuspicious
	default:
		return LevelLow
	}
}
