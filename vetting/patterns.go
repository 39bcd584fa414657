package vetting

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternFinding is the outcome of the lexical checks on a domain.
type PatternFinding struct {
	Risk     int      `json:"risk"`
	Messages []string `json:"messages"`
}

var digitRunRe = regexp.MustCompile(fmt.Sprintf(`\d{%d,}`, MinDigitRunForSuspicious))

// AnalyzePatterns applies the phishing heuristics to a domain name.
// Each rule is independent; all matching rules contribute.
func AnalyzePatterns(domain string) PatternFinding {
	lower := strings.ToLower(domain)
	f := PatternFinding{Messages: []string{}}

	// Keywords
	for _, word := range SuspiciousKeywords {
		if strings.Contains(lower, word) {
			f.Risk += WeightSuspiciousKeyword
			f.Messages = append(f.Messages, fmt.Sprintf("%s Suspicious word in domain: %s", GlyphWarning, word))
		}
	}

	// Subdomain depth
	if strings.Count(lower, ".") > MaxDotsBeforeSubdomains {
		f.Risk += WeightTooManySubdomains
		f.Messages = append(f.Messages, GlyphWarning+" Too many subdomains detected.")
	}

	// Digit runs
	if digitRunRe.MatchString(lower) {
		f.Risk += WeightExcessiveDigits
		f.Messages = append(f.Messages, GlyphWarning+" Excessive numbers in domain.")
	}

	// TLD
	for _, tld := range SuspiciousTLDs {
		if strings.HasSuffix(lower, tld) {
			f.Risk += WeightSuspiciousTLD
			f.Messages = append(f.Messages, fmt.Sprintf("%s Suspicious TLD detected: %s", GlyphWarning, tld))
		}
	}

	return f
}
