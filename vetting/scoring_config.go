package vetting

// Risk weights. Every contribution is added, never subtracted.
const (
	WeightNoValidTLS         = 40 // handshake failed or certificate rejected
	WeightDomainVeryNew      = 40 // registered less than DomainVeryNewDays ago
	WeightDomainRecent       = 20 // registered less than DomainRecentDays ago
	WeightSuspiciousKeyword  = 20 // per keyword found in the domain
	WeightTooManySubdomains  = 15
	WeightExcessiveDigits    = 15
	WeightSuspiciousTLD      = 20 // per matching suffix
	DomainVeryNewDays        = 30
	DomainRecentDays         = 180
	MaxDotsBeforeSubdomains  = 2
	MinDigitRunForSuspicious = 3
)

// SuspiciousKeywords are matched as substrings of the lowercased domain, in this order.
var SuspiciousKeywords = []string{"login", "verify", "secure", "update", "account"}

// SuspiciousTLDs are matched as suffixes of the lowercased domain, in this order.
var SuspiciousTLDs = []string{".xyz", ".top", ".tk", ".cf", ".gq"}

// ScoringThresholds defines where the risk levels begin.
// A score equal to a threshold lands in the higher level.
type ScoringThresholds struct {
	SuspiciousMin int `json:"suspicious_min"` // Default: 30
	HighRiskMin   int `json:"high_risk_min"`  // Default: 60
	// Low: below SuspiciousMin
}

// DefaultScoringThresholds returns default thresholds
func DefaultScoringThresholds() ScoringThresholds {
	return ScoringThresholds{
		SuspiciousMin: 30,
		HighRiskMin:   60,
	}
}

// Message glyphs. They are part of the message text the UI keys on.
const (
	GlyphSuccess = "✔"
	GlyphWarning = "⚠"
	GlyphFailure = "❌"
	GlyphInfo    = "ℹ"
)
