package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/todolist-go/internal/presenter"
	"github.com/nibzard/todolist-go/internal/screen"
)

const (
	defaultWidth = 80
	emptyText    = "No tasks yet. Press a to add one."
)

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)

	switch m.ctrl.Presentation() {
	case screen.PresentEmpty:
		b.WriteString(emptyStyle.Render(emptyText))
		b.WriteString("\n")
	default:
		b.WriteString(m.presenter.Render(m.cursor, m.viewWidth()))
	}
	b.WriteString("\n")

	switch {
	case m.datePicker != nil:
		writeDialog(&b, m.datePicker.View())
	case m.timePicker != nil:
		writeDialog(&b, m.timePicker.View())
	case m.composing():
		writeDialog(&b, m.composeView())
	case m.ctrl.Mode() == screen.ConfirmingDelete:
		writeDialog(&b, m.confirmView())
	case m.menuOpen:
		writeDialog(&b, m.menuView())
	}

	if m.toast != nil {
		style := toastStyle
		if m.toast.alert {
			style = alertStyle
		}
		b.WriteString(style.Render(m.toast.text))
		b.WriteString("\n\n")
	}

	writeFooter(&b, m.help, m.activeKeys())
	return b.String()
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// activeKeys returns the bindings shown in the footer.
func (m *Model) activeKeys() help.KeyMap {
	switch {
	case m.datePicker != nil, m.timePicker != nil:
		return pickerKeys{}
	case m.composing():
		return m.keys.compose
	case m.ctrl.Mode() == screen.ConfirmingDelete:
		return m.keys.confirm
	case m.menuOpen:
		return m.keys.menu
	}
	return m.keys.list
}

func (m *Model) composeView() string {
	var b strings.Builder
	heading := "New task"
	if m.ctrl.Mode() == screen.ComposingEdit {
		heading = "Edit task"
	}
	b.WriteString(dialogTitleStyle.Render(heading) + "\n\n")

	d := m.ctrl.Draft()
	when := presenter.RowViewModel{
		Day:   d.Day,
		Date:  d.Date,
		Month: d.Month,
		Year:  d.Year,
		Time:  d.Time,
	}.Schedule()
	b.WriteString(labelStyle.Render("When") + when + "\n")
	b.WriteString(labelStyle.Render("Title") + m.title.View() + "\n")
	b.WriteString(labelStyle.Render("Description") + m.description.View())
	return b.String()
}

func (m *Model) confirmView() string {
	title := ""
	if i := m.ctrl.Target(); i >= 0 {
		if row, err := m.presenter.BindRow(i); err == nil {
			title = row.Title
		}
	}
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render("Delete task") + "\n\n")
	if title != "" {
		b.WriteString("Delete " + lipgloss.NewStyle().Bold(true).Render(title) + "?")
	} else {
		b.WriteString("Are you sure you want to delete this task?")
	}
	return b.String()
}

func (m *Model) menuView() string {
	var b strings.Builder
	for i, opt := range m.presenter.Options() {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == m.menuCursor {
			b.WriteString(menuCursorStyle.Render("> " + string(opt)))
			continue
		}
		b.WriteString(menuItemStyle.Render(string(opt)))
	}
	return b.String()
}

func writeTitle(b *strings.Builder) {
	b.WriteString(appTitleStyle.Render("To-Do List"))
	b.WriteString("\n\n")
}

func writeDialog(b *strings.Builder, body string) {
	b.WriteString(dialogStyle.Render(body))
	b.WriteString("\n\n")
}

func writeFooter(b *strings.Builder, h help.Model, keys help.KeyMap) {
	b.WriteString(h.View(keys))
	b.WriteString("\n")
}
