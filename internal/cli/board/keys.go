package board

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/dotoo/internal/config"
)

// keyMap binds the configured key mappings to board actions
type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Lift   key.Binding
	Drop   key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "prev column")),
		Right:  key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		Up:     key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "prev task")),
		Down:   key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "next task")),
		Lift:   key.NewBinding(key.WithKeys(km.Lift), key.WithHelp(keyName(km.Lift), "lift")),
		Drop:   key.NewBinding(key.WithKeys(km.Drop), key.WithHelp(keyName(km.Drop), "drop")),
		Cancel: key.NewBinding(key.WithKeys(km.Cancel), key.WithHelp(keyName(km.Cancel), "cancel")),
		Help:   key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:   key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Lift, k.Drop, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Lift, k.Drop, k.Cancel},
		{k.Help, k.Quit},
	}
}
