package tui

import (
	"testing"
	"time"

	"github.com/jask/pennypad/internal/transaction"
)

func TestRankCategoriesPrefixWins(t *testing.T) {
	tests := []struct {
		query string
		want  transaction.Category
	}{
		{"ent", transaction.CategoryEntertainment},
		{"f", transaction.CategoryFood},
		{"cl", transaction.CategoryClothing},
		{"tra", transaction.CategoryTransportation},
		{"hea", transaction.CategoryHealth},
		{"o", transaction.CategoryOther},
	}
	for _, tt := range tests {
		got, ok := bestCategory(tt.query)
		if !ok || got != tt.want {
			t.Errorf("bestCategory(%q): got %v ok=%v, want %v", tt.query, got, ok, tt.want)
		}
	}
}

func TestRankCategoriesToleratesTypos(t *testing.T) {
	got, ok := bestCategory("helth")
	if !ok || got != transaction.CategoryHealth {
		t.Fatalf("bestCategory(%q): got %v, want Health", "helth", got)
	}
}

func TestBestCategoryEmptyQuery(t *testing.T) {
	if _, ok := bestCategory("  "); ok {
		t.Fatal("blank query should not pick a category")
	}
}

func TestRankCategoriesEmptyQueryKeepsDisplayOrder(t *testing.T) {
	got := rankCategories("")
	want := transaction.Categories()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCycleCategoryWraps(t *testing.T) {
	cats := transaction.Categories()
	if got := cycleCategory(cats[0], -1); got != cats[len(cats)-1] {
		t.Errorf("cycling back from first: got %v, want %v", got, cats[len(cats)-1])
	}
	if got := cycleCategory(cats[len(cats)-1], 1); got != cats[0] {
		t.Errorf("cycling forward from last: got %v, want %v", got, cats[0])
	}
}

func TestFormDraftValidatesDate(t *testing.T) {
	f := newForm("02/01/2006")
	f.reset(time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC))

	draft, err := f.draft()
	if err != nil {
		t.Fatalf("default date should parse: %v", err)
	}
	if got := draft.Date.Format("02/01/2006"); got != "27/08/2026" {
		t.Errorf("date: got %q, want %q", got, "27/08/2026")
	}

	f.date.SetValue("31/13/2026")
	if _, err := f.draft(); err == nil {
		t.Fatal("impossible date should fail to parse")
	}
}

func TestFormFocusBounds(t *testing.T) {
	f := newForm("02/01/2006")
	f.reset(time.Now())
	if f.focus != fieldName {
		t.Fatalf("reset should focus name, got %v", f.focus)
	}
	if !f.focusPrev() {
		t.Fatal("up from the first field should report leaving the form")
	}
	for i := 0; i < 10; i++ {
		f.focusNext()
	}
	if f.focus != fieldDate {
		t.Fatalf("focus should stop at the last field, got %v", f.focus)
	}
}
