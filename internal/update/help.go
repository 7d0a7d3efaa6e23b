package update

import "github.com/charmbracelet/bubbles/key"

type GlobalKeyMap struct {
	Submit key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func (k GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Up, k.Down, k.Quit}
}

func (k GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func DefaultKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Up:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		Down:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
