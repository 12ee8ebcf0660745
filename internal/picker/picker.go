// Package picker provides the modal date and time prompts of the compose
// dialog. Prompts deliver their result as a tea.Msg so the caller re-enters
// its state machine from the update loop.
package picker

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DateLayout is the text form accepted by the date prompt.
const DateLayout = "2006-01-02"

// DateResult is the display form of a picked date.
type DateResult struct {
	Day   string
	Date  string
	Month string
	Year  string
}

// DescribeDate returns short English weekday and month names for t.
func DescribeDate(t time.Time) DateResult {
	return DateResult{
		Day:   t.Weekday().String()[:3],
		Date:  strconv.Itoa(t.Day()),
		Month: t.Month().String()[:3],
		Year:  strconv.Itoa(t.Year()),
	}
}

// FormatClock renders a 24-hour time as "H:MM".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%d:%02d", hour, minute)
}

// DatePickedMsg carries the result of a date prompt.
type DatePickedMsg struct {
	Result DateResult
}

// TimePickedMsg carries the result of a time prompt in "H:MM" form.
type TimePickedMsg struct {
	Time string
}

// PickCanceledMsg reports a dismissed prompt.
type PickCanceledMsg struct{}

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true)
	promptHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	promptErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)
