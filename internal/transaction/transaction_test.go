package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewRecordSignsByType(t *testing.T) {
	now := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("12.50")

	exp := NewRecord(amount, Draft{Name: "Coffee", Type: TypeExpense, Category: CategoryFood, Date: now}, now)
	if got := exp.Amount.String(); got != "-12.5" {
		t.Errorf("expense amount: got %s, want -12.5", got)
	}

	inc := NewRecord(amount, Draft{Name: "Refund", Type: TypeIncome, Date: now}, now)
	if got := inc.Amount.String(); got != "12.5" {
		t.Errorf("income amount: got %s, want 12.5", got)
	}
}

func TestNewRecordAssignsID(t *testing.T) {
	now := time.Now()
	a := NewRecord(decimal.New(1, 0), Draft{Date: now}, now)
	b := NewRecord(decimal.New(1, 0), Draft{Date: now}, now)
	if a.ID == "" || b.ID == "" {
		t.Fatal("record IDs should not be empty")
	}
	if a.ID == b.ID {
		t.Fatal("record IDs should be unique")
	}
}

func TestCategoriesCoverEveryName(t *testing.T) {
	want := []string{"None", "Food", "Entertainment", "Clothing", "Transportation", "Health", "Other"}
	cats := Categories()
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for i, c := range cats {
		if c.String() != want[i] {
			t.Errorf("category %d: got %q, want %q", i, c.String(), want[i])
		}
	}
}

func TestTypeStrings(t *testing.T) {
	if TypeExpense.String() != "Expense" || TypeIncome.String() != "Income" {
		t.Fatalf("unexpected type names: %q, %q", TypeExpense, TypeIncome)
	}
}
