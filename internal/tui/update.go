package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pennypad/internal/entry"
	"github.com/jask/pennypad/internal/transaction"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if !a.sheet.animating {
			// keep a settled sheet glued to the new geometry
			a.sheet.pos = a.sheetTarget()
		}
		return a, nil
	case frameMsg:
		return a.stepSpring()
	case flashExpiredMsg:
		a.sheet.flashOn = false
		return a, nil
	case tea.KeyMsg:
		if a.sheet.open {
			return a.updateSheet(msg)
		}
		return a.updateRoot(msg)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Root scope: session log + trigger
// ---------------------------------------------------------------------------

func (a App) updateRoot(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(msg, a.keys.Open):
		return a.openSheet()
	case key.Matches(msg, a.keys.UpDown):
		switch msg.String() {
		case "down", "j":
			if a.cursor < len(a.records)-1 {
				a.cursor++
			}
		case "up", "k":
			if a.cursor > 0 {
				a.cursor--
			}
		}
		return a, nil
	}
	return a, nil
}

func (a App) openSheet() (tea.Model, tea.Cmd) {
	a.sheet.open = true
	a.sheet.fullScreen = false
	a.sheet.formFocused = false
	a.sheet.amount.Reset()
	a.sheet.form.reset(a.now())
	a.setStatus("New entry")
	a.log.Debug().Msg("sheet opened")
	return a, a.animate()
}

// ---------------------------------------------------------------------------
// Sheet scope
// ---------------------------------------------------------------------------

func (a App) updateSheet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return a, tea.Quit
	}
	if key.Matches(msg, a.keys.Close) {
		return a.closeSheet("Entry discarded")
	}
	if a.sheet.formFocused {
		return a.updateForm(msg)
	}
	return a.updateKeypad(msg)
}

func (a App) updateKeypad(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Delete):
		return a.pressKey(entry.Delete)
	case key.Matches(msg, a.keys.Details):
		return a.expandDetails()
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if k, ok := entry.KeyForRune(msg.Runes[0]); ok {
			return a.pressKey(k)
		}
	}
	return a, nil
}

func (a App) pressKey(k entry.Key) (tea.Model, tea.Cmd) {
	a.sheet.amount.Apply(k)
	a.sheet.flash = k
	a.sheet.flashOn = true
	a.log.Debug().Str("key", k.Label()).Str("amount", a.sheet.amount.Text()).Msg("keypad")
	return a, flashTick()
}

func (a App) expandDetails() (tea.Model, tea.Cmd) {
	wasFull := a.sheet.fullScreen
	a.sheet.fullScreen = true
	a.sheet.formFocused = true
	a.sheet.form.setFocus(fieldName)
	if wasFull {
		return a, nil
	}
	a.log.Debug().Msg("sheet expanded to full height")
	return a, a.animate()
}

func (a App) closeSheet(status string) (tea.Model, tea.Cmd) {
	a.sheet.open = false
	// closing always leaves full-screen mode behind
	a.sheet.fullScreen = false
	a.sheet.formFocused = false
	a.sheet.amount.Reset()
	a.sheet.form.reset(a.now())
	a.setStatus(status)
	a.log.Debug().Msg("sheet closed")
	return a, a.animate()
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return a.submit()
	case "up":
		if a.sheet.form.focusPrev() {
			a.sheet.formFocused = false
		}
		return a, nil
	case "down", "tab":
		a.sheet.form.focusNext()
		return a, nil
	}
	var cmd tea.Cmd
	a.sheet.form, cmd = a.sheet.form.update(msg)
	return a, cmd
}

func (a App) submit() (tea.Model, tea.Cmd) {
	if a.sheet.amount.IsZero() {
		a.setError(errors.New("amount is zero"))
		return a, nil
	}
	draft, err := a.sheet.form.draft()
	if err != nil {
		a.setError(err)
		return a, nil
	}

	rec := transaction.NewRecord(a.sheet.amount.Value(), draft, a.now())
	a.records = append(a.records, rec)
	a.cursor = len(a.records) - 1

	label := rec.Name
	if label == "" {
		label = rec.Category.String()
	}
	a.log.Info().
		Str("id", rec.ID).
		Str("amount", rec.Amount.String()).
		Str("category", rec.Category.String()).
		Msg("entry added")

	model, cmd := a.closeSheet(fmt.Sprintf("Added %s  %s%s", label, a.cfg.UI.CurrencySymbol, rec.Amount.Abs()))
	return model, cmd
}
