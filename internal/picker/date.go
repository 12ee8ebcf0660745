package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DatePicker prompts for a calendar date.
type DatePicker struct {
	input textinput.Model
	err   string
}

// NewDatePicker returns a focused prompt prefilled with the given date.
func NewDatePicker(year int, month time.Month, day int) DatePicker {
	in := textinput.New()
	in.Placeholder = "YYYY-MM-DD"
	in.CharLimit = len(DateLayout)
	in.Width = len(DateLayout) + 1
	in.SetValue(time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(DateLayout))
	in.Focus()
	return DatePicker{input: in}
}

// Value returns the text currently entered.
func (p DatePicker) Value() string {
	return p.input.Value()
}

// Err returns the inline validation error, if any.
func (p DatePicker) Err() string {
	return p.err
}

func (p DatePicker) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message. Enter delivers a DatePickedMsg, esc a
// PickCanceledMsg, up/down step the date by one day.
func (p DatePicker) Update(msg tea.Msg) (DatePicker, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			d, err := p.parse()
			if err != nil {
				p.err = err.Error()
				return p, nil
			}
			result := DescribeDate(d)
			return p, func() tea.Msg { return DatePickedMsg{Result: result} }
		case "esc":
			return p, func() tea.Msg { return PickCanceledMsg{} }
		case "up", "down":
			d, err := p.parse()
			if err != nil {
				p.err = err.Error()
				return p, nil
			}
			step := 1
			if key.String() == "down" {
				step = -1
			}
			p.input.SetValue(d.AddDate(0, 0, step).Format(DateLayout))
			p.input.CursorEnd()
			p.err = ""
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p DatePicker) parse() (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(p.input.Value()), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("enter a date as YYYY-MM-DD")
	}
	return d, nil
}

func (p DatePicker) View() string {
	var b strings.Builder
	b.WriteString(promptTitleStyle.Render("Set date") + "\n\n")
	b.WriteString(p.input.View() + "\n")
	if p.err != "" {
		b.WriteString(promptErrStyle.Render(p.err) + "\n")
	}
	b.WriteString("\n" + promptHintStyle.Render("up/down change day · enter set · esc cancel"))
	return b.String()
}
