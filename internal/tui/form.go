package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pennypad/internal/transaction"
)

// formField identifies the focused detail field, top to bottom.
type formField int

const (
	fieldName formField = iota
	fieldType
	fieldCategory
	fieldDate
	fieldCount
)

// form holds the transaction-detail fields shown when the sheet is
// expanded to full height. Fields carry no cross-field logic; the only
// validation is the date parse on submit.
type form struct {
	name       textinput.Model
	date       textinput.Model
	typ        transaction.Type
	category   transaction.Category
	catQuery   string
	focus      formField
	dateFormat string
}

func newForm(dateFormat string) form {
	name := textinput.New()
	name.Placeholder = "Name"
	name.Prompt = ""
	name.CharLimit = 48
	name.Width = 24

	date := textinput.New()
	date.Placeholder = strings.ToLower(dateFormat)
	date.Prompt = ""
	date.CharLimit = len(dateFormat) + 4
	date.Width = 14

	return form{
		name:       name,
		date:       date,
		dateFormat: dateFormat,
	}
}

// reset clears all fields and dates the entry to now.
func (f *form) reset(now time.Time) {
	f.name.SetValue("")
	f.date.SetValue(now.Format(f.dateFormat))
	f.typ = transaction.TypeExpense
	f.category = transaction.CategoryNone
	f.catQuery = ""
	f.setFocus(fieldName)
}

func (f *form) setFocus(field formField) {
	f.focus = field
	f.name.Blur()
	f.date.Blur()
	switch field {
	case fieldName:
		f.name.Focus()
	case fieldDate:
		f.date.Focus()
	}
	if field != fieldCategory {
		f.catQuery = ""
	}
}

// focusNext moves focus down one field, stopping at the last.
func (f *form) focusNext() {
	if f.focus < fieldCount-1 {
		f.setFocus(f.focus + 1)
	}
}

// focusPrev moves focus up one field and reports whether focus left the
// form entirely (the caller then hands keys back to the keypad).
func (f *form) focusPrev() bool {
	if f.focus == fieldName {
		return true
	}
	f.setFocus(f.focus - 1)
	return false
}

// update routes a key to the focused field.
func (f form) update(msg tea.KeyMsg) (form, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldDate:
		f.date, cmd = f.date.Update(msg)
	case fieldType:
		switch msg.String() {
		case "left", "right", " ":
			f.typ = cycleType(f.typ)
		}
	case fieldCategory:
		f = f.updateCategory(msg)
	}
	return f, cmd
}

func (f form) updateCategory(msg tea.KeyMsg) form {
	switch msg.String() {
	case "left":
		f.catQuery = ""
		f.category = cycleCategory(f.category, -1)
		return f
	case "right":
		f.catQuery = ""
		f.category = cycleCategory(f.category, 1)
		return f
	case "backspace", "ctrl+h":
		if f.catQuery != "" {
			f.catQuery = f.catQuery[:len(f.catQuery)-1]
		}
		if best, ok := bestCategory(f.catQuery); ok {
			f.category = best
		}
		return f
	}
	if msg.Type == tea.KeyRunes {
		f.catQuery += string(msg.Runes)
		if best, ok := bestCategory(f.catQuery); ok {
			f.category = best
		}
	}
	return f
}

// draft assembles the detail fields, validating only the date.
func (f form) draft() (transaction.Draft, error) {
	date, err := time.Parse(f.dateFormat, strings.TrimSpace(f.date.Value()))
	if err != nil {
		return transaction.Draft{}, fmt.Errorf("date %q: expected %s", f.date.Value(), strings.ToLower(f.dateFormat))
	}
	return transaction.Draft{
		Name:     strings.TrimSpace(f.name.Value()),
		Type:     f.typ,
		Category: f.category,
		Date:     date,
	}, nil
}

func cycleType(t transaction.Type) transaction.Type {
	if t == transaction.TypeExpense {
		return transaction.TypeIncome
	}
	return transaction.TypeExpense
}

func cycleCategory(c transaction.Category, delta int) transaction.Category {
	cats := transaction.Categories()
	idx := 0
	for i, cat := range cats {
		if cat == c {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(cats)) % len(cats)
	return cats[idx]
}

// ---------------------------------------------------------------------------
// Fuzzy category matching
// ---------------------------------------------------------------------------

// rankCategories orders the closed category set by how well each name
// matches the query: prefix matches first, then by edit distance so
// small typos still land ("helth" finds Health).
func rankCategories(query string) []transaction.Category {
	cats := transaction.Categories()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return cats
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return categoryScore(q, cats[i]) < categoryScore(q, cats[j])
	})
	return cats
}

func categoryScore(q string, c transaction.Category) int {
	name := strings.ToLower(c.String())
	if strings.HasPrefix(name, q) {
		return 0
	}
	return levenshtein.ComputeDistance(q, name)
}

// bestCategory returns the top-ranked category for a non-empty query.
func bestCategory(query string) (transaction.Category, bool) {
	if strings.TrimSpace(query) == "" {
		return transaction.CategoryNone, false
	}
	return rankCategories(query)[0], true
}
