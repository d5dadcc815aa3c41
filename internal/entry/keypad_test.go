package entry

import "testing"

func TestLayoutShape(t *testing.T) {
	grid := Layout()
	if len(grid) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(grid))
	}
	for i, row := range grid {
		if len(row) != 3 {
			t.Fatalf("row %d: expected 3 keys, got %d", i, len(row))
		}
	}
	seen := map[string]bool{}
	for _, row := range grid {
		for _, k := range row {
			seen[k.Label()] = true
		}
	}
	for _, label := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "⌫"} {
		if !seen[label] {
			t.Errorf("layout missing key %q", label)
		}
	}
}

func TestKeyForRune(t *testing.T) {
	k, ok := KeyForRune('7')
	if !ok || k.Kind != KeyDigit || k.Digit != 7 {
		t.Fatalf("'7' mapped to %+v ok=%v", k, ok)
	}
	k, ok = KeyForRune('.')
	if !ok || k.Kind != KeyDecimal {
		t.Fatalf("'.' mapped to %+v ok=%v", k, ok)
	}
	if _, ok := KeyForRune('x'); ok {
		t.Fatal("'x' should not map to a key")
	}
}
