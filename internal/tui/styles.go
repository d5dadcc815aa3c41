package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerHintStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Background(colorMantle)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorSurface0).
			Padding(0, 2)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	// Session log table
	titleStyle       = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	cursorStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(colorOverlay1)
	incomeStyle      = lipgloss.NewStyle().Foreground(colorIncome)
	expenseStyle     = lipgloss.NewStyle().Foreground(colorExpense)

	// Trigger control shown while the sheet is collapsed
	triggerStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBrand).
			Bold(true).
			Padding(0, 2)

	// Entry sheet
	sheetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 2)

	amountStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	amountSymbolStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Bold(true)

	// Keypad key faces
	keyDigitStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Foreground(colorText).
			Align(lipgloss.Center)

	keyOpStyle = keyDigitStyle.
			Foreground(colorPeach)

	keyFlashStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Foreground(colorBase).
			Background(colorAccent).
			Bold(true).
			Align(lipgloss.Center)

	// Detail form
	fieldLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	fieldValueStyle = lipgloss.NewStyle().Foreground(colorText)
	fieldFocusStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	fieldHintStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)
)
