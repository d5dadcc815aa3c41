package tui

import (
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pennypad/internal/config"
	"github.com/jask/pennypad/internal/entry"
)

// sheet is the entry surface: the amount display, the keypad, and (when
// expanded to full height) the detail form. Two booleans carry the
// logical state — open and fullScreen — and flip synchronously on key
// events; only the rendered height chases them through the spring.
type sheet struct {
	open        bool
	fullScreen  bool
	formFocused bool

	amount *entry.Amount
	form   form

	flash   entry.Key
	flashOn bool

	spring    harmonica.Spring
	pos       float64 // rendered height in rows
	vel       float64
	animating bool
}

func newSheet(cfg config.Config) sheet {
	return sheet{
		amount: entry.NewAmount(),
		form:   newForm(cfg.UI.DateFormat),
		spring: harmonica.NewSpring(harmonica.FPS(animFPS), cfg.Animation.Frequency, cfg.Animation.Damping),
	}
}

// visibleHeight is the number of sheet rows currently on screen.
func (s sheet) visibleHeight() int {
	if s.pos < 0.5 {
		return 0
	}
	return int(s.pos + 0.5)
}

// render draws the full sheet box. fullHeight bounds the box when the
// sheet occupies the whole body; the caller clips to the animated
// height afterwards.
func (s sheet) render(width, fullHeight int, symbol string) string {
	inner := maxInt(29, minInt(44, width-8))

	var b strings.Builder
	b.WriteString(titleStyle.Render("New Entry"))
	b.WriteString("\n\n")
	b.WriteString(s.renderAmount(inner, symbol))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, renderKeypad(s.flashKey())))
	if s.fullScreen {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(strings.Repeat("─", inner)))
		b.WriteString("\n")
		b.WriteString(s.renderForm(inner))
		b.WriteString("\n\n")
		b.WriteString(fieldHintStyle.Render("enter save entry"))
	} else {
		b.WriteString("\n")
		b.WriteString(fieldHintStyle.Render("enter add details"))
	}

	content := lipgloss.NewStyle().Width(inner).Render(b.String())
	if s.fullScreen && fullHeight > 2 {
		content = fitHeight(content, fullHeight-2)
	}
	return sheetStyle.Render(content)
}

func (s sheet) flashKey() *entry.Key {
	if !s.flashOn {
		return nil
	}
	k := s.flash
	return &k
}

func (s sheet) renderAmount(width int, symbol string) string {
	text := amountSymbolStyle.Render(symbol) + amountStyle.Render(s.amount.Text())
	marker := " "
	if !s.formFocused {
		marker = cursorStyle.Render("▌")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, marker+text)
}

func (s sheet) renderForm(width int) string {
	f := s.form
	rows := []string{
		s.fieldRow(fieldName, "Name", f.name.View()),
		s.fieldRow(fieldType, "Type", cycleValue(f.typ.String(), s.formFocused && f.focus == fieldType)),
		s.fieldRow(fieldCategory, "Category", s.categoryValue()),
		s.fieldRow(fieldDate, "Date", f.date.View()),
	}
	for i, row := range rows {
		rows[i] = truncate(row, width)
	}
	return strings.Join(rows, "\n")
}

func (s sheet) fieldRow(field formField, label, value string) string {
	marker := "  "
	style := fieldLabelStyle
	if s.formFocused && s.form.focus == field {
		marker = cursorStyle.Render("> ")
		style = fieldFocusStyle
	}
	return marker + style.Render(padRight(label, 9)) + fieldValueStyle.Render(value)
}

func (s sheet) categoryValue() string {
	value := cycleValue(s.form.category.String(), s.formFocused && s.form.focus == fieldCategory)
	if s.form.catQuery != "" {
		value += fieldHintStyle.Render("  /" + s.form.catQuery)
	}
	return value
}

func cycleValue(v string, focused bool) string {
	if !focused {
		return v
	}
	return mutedStyle.Render("‹ ") + v + mutedStyle.Render(" ›")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
