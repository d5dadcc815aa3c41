// Package entry implements the numeric-entry state machine behind the
// keypad: a display string mutated by discrete digit, decimal-point and
// delete events, normalised so it always reads as a non-negative
// decimal number.
package entry

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const zeroText = "0"

// Amount holds the text being entered on the keypad. The text contains
// at most one decimal point, is never empty, and collapses back to "0"
// whenever a delete would leave it empty, unparseable, or zero-valued.
type Amount struct {
	text string
}

// NewAmount returns an amount displaying "0".
func NewAmount() *Amount {
	return &Amount{text: zeroText}
}

// Text returns the current display string, without currency symbol.
func (a *Amount) Text() string {
	return a.text
}

// Reset returns the amount to its initial "0" state.
func (a *Amount) Reset() {
	a.text = zeroText
}

// Apply routes a keypad key to the matching mutation.
func (a *Amount) Apply(k Key) {
	switch k.Kind {
	case KeyDigit:
		a.ApplyDigit(k.Digit)
	case KeyDecimal:
		a.ApplyDecimal()
	case KeyDelete:
		a.ApplyDelete()
	}
}

// ApplyDigit appends digit d. While the text still reads as a bare
// zero (no decimal point entered) the digit replaces it instead, so
// leading zeros collapse: 0,0,5 yields "5". Digits outside 0-9 are
// ignored. There is no length cap.
func (a *Amount) ApplyDigit(d int) {
	if d < 0 || d > 9 {
		return
	}
	if a.isBareZero() {
		a.text = strconv.Itoa(d)
		return
	}
	a.text += strconv.Itoa(d)
}

// ApplyDecimal appends a decimal point. It is a no-op when the text is
// empty or already carries one.
func (a *Amount) ApplyDecimal() {
	if a.text == "" || strings.Contains(a.text, ".") {
		return
	}
	a.text += "."
}

// ApplyDelete removes the last character. A result that no longer
// parses as a number, or that parses to zero, resets to "0". The reset
// also swallows a trailing bare "0." back to "0", dropping the decimal
// point with it.
func (a *Amount) ApplyDelete() {
	if a.text == "" {
		return
	}
	a.text = a.text[:len(a.text)-1]
	// Trailing decimal points ("12.") are valid intermediates here,
	// which ParseFloat accepts and decimal parsing would not.
	v, err := strconv.ParseFloat(a.text, 64)
	if err != nil || v == 0 {
		a.text = zeroText
	}
}

// Value converts the current text to a decimal for committing. A
// trailing decimal point is dropped first.
func (a *Amount) Value() decimal.Decimal {
	text := strings.TrimSuffix(a.text, ".")
	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// IsZero reports whether the entered value is numerically zero.
func (a *Amount) IsZero() bool {
	return a.Value().IsZero()
}

func (a *Amount) isBareZero() bool {
	if strings.Contains(a.text, ".") {
		return false
	}
	v, err := strconv.ParseFloat(a.text, 64)
	return err == nil && v == 0
}
