package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todolist-go/internal/platform"
)

// TimePicker prompts for a 24-hour wall-clock time.
type TimePicker struct {
	input textinput.Model
	err   string
}

// NewTimePicker returns a focused prompt prefilled with the given time.
func NewTimePicker(hour, minute int) TimePicker {
	in := textinput.New()
	in.Placeholder = "H:MM"
	in.CharLimit = 5
	in.Width = 6
	in.SetValue(FormatClock(hour, minute))
	in.Focus()
	return TimePicker{input: in}
}

// Value returns the text currently entered.
func (p TimePicker) Value() string {
	return p.input.Value()
}

// Err returns the inline validation error, if any.
func (p TimePicker) Err() string {
	return p.err
}

func (p TimePicker) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message. Enter delivers a TimePickedMsg, esc a
// PickCanceledMsg, up/down step the time by one minute.
func (p TimePicker) Update(msg tea.Msg) (TimePicker, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			h, m, err := platform.ParseClock(p.input.Value())
			if err != nil {
				p.err = "enter a time as H:MM (0:00 to 23:59)"
				return p, nil
			}
			value := FormatClock(h, m)
			return p, func() tea.Msg { return TimePickedMsg{Time: value} }
		case "esc":
			return p, func() tea.Msg { return PickCanceledMsg{} }
		case "up", "down":
			h, m, err := platform.ParseClock(p.input.Value())
			if err != nil {
				p.err = "enter a time as H:MM (0:00 to 23:59)"
				return p, nil
			}
			total := h*60 + m + 1
			if key.String() == "down" {
				total = h*60 + m - 1
			}
			total = (total + 24*60) % (24 * 60)
			p.input.SetValue(FormatClock(total/60, total%60))
			p.input.CursorEnd()
			p.err = ""
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p TimePicker) View() string {
	var b strings.Builder
	b.WriteString(promptTitleStyle.Render("Set time") + "\n\n")
	b.WriteString(p.input.View() + "\n")
	if p.err != "" {
		b.WriteString(promptErrStyle.Render(p.err) + "\n")
	}
	b.WriteString("\n" + promptHintStyle.Render("up/down change minute · enter set · esc cancel"))
	return b.String()
}
