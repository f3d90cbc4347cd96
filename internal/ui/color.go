// Package ui holds the colours and tables shared by the console commands
package ui

import "github.com/pterm/pterm"

// DarkTheme switches every colour to its light variant.
var DarkTheme bool

func themed(onLight, onDark pterm.Color, a any) string {
	if DarkTheme {
		return onDark.Sprint(a)
	}

	return onLight.Sprint(a)
}

// Green marks earned, unlocked and finished items.
func Green(a any) string {
	return themed(pterm.FgGreen, pterm.FgLightGreen, a)
}

// Red marks locked and stopped items.
func Red(a any) string {
	return themed(pterm.FgRed, pterm.FgLightRed, a)
}

// Blue is used for report headings.
func Blue(a any) string {
	return themed(pterm.FgBlue, pterm.FgLightBlue, a)
}
