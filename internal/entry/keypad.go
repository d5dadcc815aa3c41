package entry

import "strconv"

// KeyKind discriminates the keypad key union: digit keys carry a
// payload, the decimal point and delete keys do not.
type KeyKind int

const (
	KeyDigit KeyKind = iota
	KeyDecimal
	KeyDelete
)

// Key is one button on the keypad.
type Key struct {
	Kind  KeyKind
	Digit int // 0-9, set when Kind is KeyDigit
}

// Digit returns the key for digit n.
func Digit(n int) Key {
	return Key{Kind: KeyDigit, Digit: n}
}

// Decimal and Delete are the two operation keys.
var (
	Decimal = Key{Kind: KeyDecimal}
	Delete  = Key{Kind: KeyDelete}
)

// Label returns the glyph shown on the key face.
func (k Key) Label() string {
	switch k.Kind {
	case KeyDecimal:
		return "."
	case KeyDelete:
		return "⌫"
	default:
		return strconv.Itoa(k.Digit)
	}
}

// Layout returns the fixed 4x3 keypad grid, top row first.
func Layout() [][]Key {
	return [][]Key{
		{Digit(1), Digit(2), Digit(3)},
		{Digit(4), Digit(5), Digit(6)},
		{Digit(7), Digit(8), Digit(9)},
		{Decimal, Digit(0), Delete},
	}
}

// KeyForRune maps a typed character to a keypad key. Delete arrives as
// a control key, not a rune, so only digits and the point map here.
func KeyForRune(r rune) (Key, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Digit(int(r - '0')), true
	case r == '.':
		return Decimal, true
	default:
		return Key{}, false
	}
}
