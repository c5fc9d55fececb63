package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the table.
type keyMap struct {
	Chip10   key.Binding
	Chip50   key.Binding
	Chip100  key.Binding
	Chip500  key.Binding
	ClearBet key.Binding
	Deal     key.Binding
	Hit      key.Binding
	Stand    key.Binding
	Double   key.Binding
	Split    key.Binding
	NewHand  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Chip10:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "bet $10")),
		Chip50:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "bet $50")),
		Chip100:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "bet $100")),
		Chip500:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "bet $500")),
		ClearBet: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear bet")),
		Deal:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "deal")),
		Hit:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hit")),
		Stand:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stand")),
		Double:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "double down")),
		Split:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "split")),
		NewHand:  key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "new hand")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hit, k.Stand, k.Double, k.Split, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Chip10, k.Chip50, k.Chip100, k.Chip500, k.ClearBet, k.Deal},
		{k.Hit, k.Stand, k.Double, k.Split, k.NewHand},
		{k.Help, k.Quit},
	}
}
