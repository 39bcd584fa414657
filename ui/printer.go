package ui

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"url-risk-checker/vetting"
)

// PrintReport renders a risk report as a level badge followed by a findings table.
func PrintReport(domain string, report vetting.RiskReport) {
	pterm.DefaultSection.Println(domain)

	switch report.Level {
	case vetting.LevelHigh:
		pterm.Error.Println(string(report.Level) + " (score " + strconv.Itoa(report.Risk) + ")")
	case vetting.LevelSuspicious:
		pterm.Warning.Println(string(report.Level) + " (score " + strconv.Itoa(report.Risk) + ")")
	default:
		pterm.Success.Println(string(report.Level) + " (score " + strconv.Itoa(report.Risk) + ")")
	}

	data := [][]string{{"", "Finding"}}
	for _, d := range report.Details {
		glyph, text := SplitGlyph(d)
		data = append(data, []string{styleGlyph(glyph), text})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// SplitGlyph separates the leading severity glyph from a detail message.
func SplitGlyph(detail string) (string, string) {
	for _, g := range []string{vetting.GlyphFailure, vetting.GlyphWarning, vetting.GlyphInfo, vetting.GlyphSuccess} {
		if strings.HasPrefix(detail, g) {
			return g, strings.TrimSpace(strings.TrimPrefix(detail, g))
		}
	}
	return "", detail
}

func styleGlyph(g string) string {
	switch g {
	case vetting.GlyphFailure:
		return pterm.FgRed.Sprint(g)
	case vetting.GlyphWarning:
		return pterm.FgYellow.Sprint(g)
	case vetting.GlyphInfo:
		return pterm.FgBlue.Sprint(g)
	case vetting.GlyphSuccess:
		return pterm.FgGreen.Sprint(g)
	}
	return g
}

func StartSpinner(text string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.Start(text)
	return spinner
}
