package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/pennypad/internal/transaction"
)

func TestFullEntryFlow(t *testing.T) {
	a := newTestApp(t, true)

	// open the sheet and key in 42.50
	a = press(t, a, "a", "4", "2", ".", "5", "0")
	require.Equal(t, "42.50", a.sheet.amount.Text())

	// expand details, name the entry
	a = press(t, a, "enter", "Lunch")
	require.True(t, a.sheet.fullScreen)

	// type: toggle expense -> income
	a = press(t, a, "down", "right")

	// category: fuzzy-typed
	a = press(t, a, "down", "ent")
	require.Equal(t, transaction.CategoryEntertainment, a.sheet.form.category)

	// date defaults to today; submit
	a = press(t, a, "enter")

	require.Len(t, a.records, 1)
	rec := a.records[0]
	require.Equal(t, "Lunch", rec.Name)
	require.Equal(t, transaction.TypeIncome, rec.Type)
	require.Equal(t, transaction.CategoryEntertainment, rec.Category)
	require.Equal(t, "42.5", rec.Amount.String())
	require.Equal(t, "27/08/2026", rec.Date.Format("02/01/2006"))
	require.NotEmpty(t, rec.ID)

	require.False(t, a.sheet.open, "submit should close the sheet")
	require.False(t, a.statusErr)
	require.Contains(t, a.status, "Added Lunch")
}

func TestSubmitRejectsZeroAmount(t *testing.T) {
	a := press(t, newTestApp(t, true), "a", "enter", "enter")
	require.Empty(t, a.records)
	require.True(t, a.statusErr)
	require.True(t, a.sheet.open, "sheet should stay open on a rejected submit")
}

func TestSubmitRejectsBadDate(t *testing.T) {
	a := press(t, newTestApp(t, true), "a", "5", "enter")
	// walk down to the date field and mangle it
	a = press(t, a, "down", "down", "down")
	require.Equal(t, fieldDate, a.sheet.form.focus)
	for i := 0; i < 12; i++ {
		a = press(t, a, "backspace")
	}
	a = press(t, a, "nonsense", "enter")

	require.Empty(t, a.records)
	require.True(t, a.statusErr)
	require.Contains(t, a.status, "date")
	require.True(t, a.sheet.open)
}

func TestDefaultTypeIsExpenseAndSigned(t *testing.T) {
	a := press(t, newTestApp(t, true), "a", "9", "enter", "Coffee", "enter")
	require.Len(t, a.records, 1)
	require.Equal(t, transaction.TypeExpense, a.records[0].Type)
	require.Equal(t, "-9", a.records[0].Amount.String())
}

func TestLogCursorNavigation(t *testing.T) {
	a := newTestApp(t, true)
	for _, amt := range []string{"1", "2", "3"} {
		a = press(t, a, "a", amt, "enter", "enter")
	}
	require.Len(t, a.records, 3)
	require.Equal(t, 2, a.cursor, "cursor should follow the newest record")

	a = press(t, a, "k", "k", "k")
	require.Equal(t, 0, a.cursor)
	a = press(t, a, "j")
	require.Equal(t, 1, a.cursor)
}

func TestFormFocusReturnsToKeypad(t *testing.T) {
	a := press(t, newTestApp(t, true), "a", "enter")
	require.True(t, a.sheet.formFocused)

	a = press(t, a, "up") // up from the name field hands keys back to the keypad
	require.False(t, a.sheet.formFocused)
	require.True(t, a.sheet.fullScreen, "leaving the form should not collapse the sheet")

	a = press(t, a, "7")
	require.Equal(t, "7", a.sheet.amount.Text())
}

func TestViewShowsSheetChrome(t *testing.T) {
	a := press(t, newTestApp(t, true), "a")
	view := a.View()
	require.Contains(t, view, "New Entry")
	require.Contains(t, view, "pennypad")

	a = press(t, a, "enter")
	view = a.View()
	require.Contains(t, view, "Name")
	require.Contains(t, view, "Category")
}

func TestViewEmptySession(t *testing.T) {
	a := newTestApp(t, true)
	view := a.View()
	require.Contains(t, view, "No entries yet")
	require.Contains(t, view, "Add transaction")
	require.False(t, strings.Contains(view, "New Entry"))
}
