package ui

import "github.com/charmbracelet/bubbles/key"

// listKeys are active while no dialog is open.
type listKeys struct {
	Add     key.Binding
	Open    key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Options key.Binding
	Up      key.Binding
	Down    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Open, k.Options, k.Help, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Open, k.Edit, k.Delete, k.Options},
		{k.Help, k.Quit},
	}
}

// composeKeys are active in the add/edit dialog.
type composeKeys struct {
	Next    key.Binding
	Date    key.Binding
	Time    key.Binding
	Alarm   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func (k composeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Date, k.Time, k.Alarm, k.Confirm, k.Cancel}
}

func (k composeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Confirm, k.Cancel},
		{k.Date, k.Time, k.Alarm},
		{k.Quit},
	}
}

// confirmKeys are active in the delete confirmation.
type confirmKeys struct {
	Yes  key.Binding
	No   key.Binding
	Quit key.Binding
}

func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yes, k.No, k.Quit}}
}

// menuKeys are active in the row options menu.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Close  key.Binding
}

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Close}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type keyMap struct {
	list    listKeys
	compose composeKeys
	confirm confirmKeys
	menu    menuKeys
}

func defaultKeyMap() keyMap {
	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	return keyMap{
		list: listKeys{
			Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
			Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
			Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
			Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
			Options: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "options")),
			Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
			Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		compose: composeKeys{
			Next:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
			Date:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "date")),
			Time:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "time")),
			Alarm:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "alarm")),
			Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			Quit:    quit,
		},
		confirm: confirmKeys{
			Yes:  key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "delete")),
			No:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "keep")),
			Quit: quit,
		},
		menu: menuKeys{
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
			Close:  key.NewBinding(key.WithKeys("esc", "o"), key.WithHelp("esc", "close")),
		},
	}
}

// pickerKeys documents the date and time prompts, which handle their own keys.
type pickerKeys struct{}

var pickerBindings = []key.Binding{
	key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "step")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

func (pickerKeys) ShortHelp() []key.Binding { return pickerBindings }

func (pickerKeys) FullHelp() [][]key.Binding { return [][]key.Binding{pickerBindings} }
