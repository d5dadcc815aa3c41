package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pennypad/internal/entry"
)

const keyFaceWidth = 5

// renderKeypad draws the fixed 4x3 button grid. It is a pure function
// of the layout and the optional flashed key; all state stays in the
// sheet that owns it.
func renderKeypad(flash *entry.Key) string {
	grid := entry.Layout()
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for _, k := range row {
			style := keyDigitStyle
			if k.Kind != entry.KeyDigit {
				style = keyOpStyle
			}
			if flash != nil && *flash == k {
				style = keyFlashStyle
			}
			cells = append(cells, style.Width(keyFaceWidth).Render(k.Label()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
