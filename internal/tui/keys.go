package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open    key.Binding
	Quit    key.Binding
	UpDown  key.Binding
	Digits  key.Binding
	Decimal key.Binding
	Delete  key.Binding
	Details key.Binding
	Fields  key.Binding
	Cycle   key.Binding
	Submit  key.Binding
	Close   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Open:    key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("j/k", "navigate")),
		Digits:  key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "digits")),
		Decimal: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "decimal")),
		Delete:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete")),
		Details: key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "details")),
		Fields:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "field")),
		Cycle:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// Help rows per scope; the footer renders whichever applies.

func (k keyMap) rootHelp() []key.Binding {
	return []key.Binding{k.Open, k.UpDown, k.Quit}
}

func (k keyMap) amountHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Decimal, k.Delete, k.Details, k.Close}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Fields, k.Cycle, k.Submit, k.Close}
}
