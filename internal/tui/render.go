package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (a App) View() string {
	if a.quitting {
		return "Goodbye\n"
	}

	header := a.renderHeader()
	statusLine := a.renderStatus()
	footer := a.renderFooter()

	body := fitHeight(a.renderBody(), a.bodyHeight())
	frame := strings.Join([]string{header, body, statusLine, footer}, "\n")

	if h := a.sheet.visibleHeight(); h > 0 {
		sheetView := clipLines(a.sheet.render(a.width, a.bodyHeight(), a.cfg.UI.CurrencySymbol), h)
		x := (a.width - maxLineWidth(splitLines(sheetView))) / 2
		if x < 0 {
			x = 0
		}
		// bottom-anchored: the sheet's top edge rises out of the status bar
		y := 1 + a.bodyHeight() - h
		frame = overlayAt(frame, sheetView, x, y, a.width, a.height)
	}
	return frame
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (a App) renderHeader() string {
	name := headerAppStyle.Render("pennypad")
	hint := headerHintStyle.Render("quick entry pad")
	content := name + "  " + hint
	if a.width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(a.width).Render(content)
}

func (a App) renderStatus() string {
	style := statusBarStyle
	if a.statusErr {
		style = statusErrStyle
	}
	flat := strings.ReplaceAll(a.status, "\n", " ")
	if a.width <= 0 {
		return style.Render(flat)
	}
	return style.Width(a.width).Render(flat)
}

func (a App) helpBindings() []key.Binding {
	switch {
	case a.sheet.open && a.sheet.formFocused:
		return a.keys.formHelp()
	case a.sheet.open:
		return a.keys.amountHelp()
	default:
		return a.keys.rootHelp()
	}
}

func (a App) renderFooter() string {
	// every character carries the footer background
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, 6)
	for _, binding := range a.helpBindings() {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if a.width <= 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}

// ---------------------------------------------------------------------------
// Session log
// ---------------------------------------------------------------------------

func (a App) renderBody() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("This session"))
	b.WriteString("\n")
	if len(a.records) == 0 {
		b.WriteString(mutedStyle.Render("No entries yet."))
	} else {
		b.WriteString(a.renderLog())
	}
	b.WriteString("\n\n")
	trigger := triggerStyle.Render("+ Add transaction")
	if a.sheet.open {
		trigger = mutedStyle.Render("+ Add transaction")
	}
	b.WriteString(trigger)
	return b.String()
}

func (a App) renderLog() string {
	dateW, nameW, catW, amountW := 12, 24, 16, 12
	header := tableHeaderStyle.Render(
		"  " + padRight("DATE", dateW) + padRight("NAME", nameW) + padRight("CATEGORY", catW) + "AMOUNT")

	lines := []string{header}
	for i, rec := range a.records {
		prefix := "  "
		if i == a.cursor {
			prefix = cursorStyle.Render("> ")
		}
		name := rec.Name
		if name == "" {
			name = mutedStyle.Render("(unnamed)")
		}
		amtStyle := expenseStyle
		if rec.Amount.Sign() >= 0 {
			amtStyle = incomeStyle
		}
		amount := amtStyle.Render(fmt.Sprintf("%*s", amountW, a.cfg.UI.CurrencySymbol+rec.Amount.StringFixed(2)))
		line := prefix +
			padRight(rec.Date.Format(a.cfg.UI.DateFormat), dateW) +
			padRight(truncate(name, nameW-2), nameW) +
			padRight(rec.Category.String(), catW) +
			amount
		lines = append(lines, truncate(line, maxInt(1, a.width-2)))
	}
	return strings.Join(lines, "\n")
}
