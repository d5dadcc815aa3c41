// Package transaction defines the values assembled by the entry sheet:
// the closed type and category enumerations, the in-progress draft, and
// the record appended to the session log on submit. Nothing here is
// persisted; records live only as long as the process.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type classifies an entry as money in or money out.
type Type int

const (
	TypeExpense Type = iota
	TypeIncome
)

func (t Type) String() string {
	switch t {
	case TypeIncome:
		return "Income"
	default:
		return "Expense"
	}
}

// Types returns the closed set of transaction types, in display order.
func Types() []Type {
	return []Type{TypeExpense, TypeIncome}
}

// Category is the selectable spending category.
type Category int

const (
	CategoryNone Category = iota
	CategoryFood
	CategoryEntertainment
	CategoryClothing
	CategoryTransportation
	CategoryHealth
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryFood:
		return "Food"
	case CategoryEntertainment:
		return "Entertainment"
	case CategoryClothing:
		return "Clothing"
	case CategoryTransportation:
		return "Transportation"
	case CategoryHealth:
		return "Health"
	case CategoryOther:
		return "Other"
	default:
		return "None"
	}
}

// Categories returns the closed set of categories, in display order.
func Categories() []Category {
	return []Category{
		CategoryNone, CategoryFood, CategoryEntertainment, CategoryClothing,
		CategoryTransportation, CategoryHealth, CategoryOther,
	}
}

// Draft is the detail half of an in-progress entry; the amount lives in
// the keypad state machine until submit.
type Draft struct {
	Name     string
	Type     Type
	Category Category
	Date     time.Time
}

// Record is a submitted entry. Amount is signed: expenses negative,
// income positive.
type Record struct {
	ID        string
	Name      string
	Type      Type
	Category  Category
	Date      time.Time
	Amount    decimal.Decimal
	EnteredAt time.Time
}

// NewRecord stamps a draft and an unsigned amount into a record,
// applying the sign convention for the draft's type.
func NewRecord(amount decimal.Decimal, d Draft, now time.Time) Record {
	signed := amount
	if d.Type == TypeExpense {
		signed = amount.Neg()
	}
	return Record{
		ID:        uuid.NewString(),
		Name:      d.Name,
		Type:      d.Type,
		Category:  d.Category,
		Date:      d.Date,
		Amount:    signed,
		EnteredAt: now,
	}
}
