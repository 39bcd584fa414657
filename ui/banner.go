package ui

import "github.com/pterm/pterm"

func PrintBanner() {
	pterm.DefaultHeader.WithFullWidth().Println("phishcheck - link risk checker")
	pterm.FgGray.Println("Advisory only. A low score is not a guarantee that a link is safe.")
	pterm.Println()
}
