package ai

import (
	"fmt"
	"strings"

	"url-risk-checker/vetting"
)

// SystemPrompt keeps the model to explaining, never re-scoring.
const SystemPrompt = `You are "Link Safety Assistant". You explain automated link risk reports to non-technical users.

RULES:
- Only use the report you are given. NEVER invent findings.
- NEVER change or dispute the score or the level.
- Keep it to 2-4 short sentences in plain language.
- End with one concrete piece of advice (for example: do not enter passwords on this site).`

// ExplainPrompt renders a report as the user turn.
func ExplainPrompt(url string, report vetting.RiskReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Link: %s\n", url)
	fmt.Fprintf(&b, "Risk score: %d\n", report.Risk)
	fmt.Fprintf(&b, "Risk level: %s\n", report.Level)
	b.WriteString("Findings:\n")
	for _, d := range report.Details {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	b.WriteString("\nExplain what this means for someone about to open the link.")
	return b.String()
}
