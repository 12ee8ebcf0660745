package picker

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestDescribeDate(t *testing.T) {
	got := DescribeDate(time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC))
	want := DateResult{Day: "Wed", Date: "3", Month: "Jan", Year: "2024"}
	if got != want {
		t.Errorf("DescribeDate: got %+v, want %+v", got, want)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		h, m int
		want string
	}{
		{9, 0, "9:00"},
		{0, 5, "0:05"},
		{23, 59, "23:59"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.h, tt.m); got != tt.want {
			t.Errorf("FormatClock(%d, %d): got %q, want %q", tt.h, tt.m, got, tt.want)
		}
	}
}

func TestDatePickerEnter(t *testing.T) {
	p := NewDatePicker(2024, time.January, 3)
	if p.Value() != "2024-01-03" {
		t.Fatalf("Value: got %q", p.Value())
	}
	p, cmd := p.Update(key("enter"))
	msg, ok := run(t, cmd).(DatePickedMsg)
	if !ok {
		t.Fatalf("got %T, want DatePickedMsg", msg)
	}
	want := DateResult{Day: "Wed", Date: "3", Month: "Jan", Year: "2024"}
	if msg.Result != want {
		t.Errorf("Result: got %+v, want %+v", msg.Result, want)
	}
}

func TestDatePickerStepsAcrossMonths(t *testing.T) {
	p := NewDatePicker(2024, time.January, 31)
	p, _ = p.Update(key("up"))
	if p.Value() != "2024-02-01" {
		t.Errorf("up: got %q, want 2024-02-01", p.Value())
	}
	p, _ = p.Update(key("down"))
	p, _ = p.Update(key("down"))
	if p.Value() != "2024-01-30" {
		t.Errorf("down: got %q, want 2024-01-30", p.Value())
	}
}

func TestDatePickerRejectsGarbage(t *testing.T) {
	p := NewDatePicker(2024, time.January, 3)
	for i := 0; i < 10; i++ {
		p, _ = p.Update(key("backspace"))
	}
	p, _ = p.Update(key("soon"))
	p, cmd := p.Update(key("enter"))
	if cmd != nil {
		t.Errorf("invalid date delivered a result")
	}
	if p.Err() == "" {
		t.Error("missing inline error")
	}
}

func TestDatePickerEsc(t *testing.T) {
	p := NewDatePicker(2024, time.January, 3)
	_, cmd := p.Update(key("esc"))
	if _, ok := run(t, cmd).(PickCanceledMsg); !ok {
		t.Error("esc: want PickCanceledMsg")
	}
}

func TestTimePicker(t *testing.T) {
	p := NewTimePicker(9, 5)
	if p.Value() != "9:05" {
		t.Fatalf("Value: got %q", p.Value())
	}
	p, cmd := p.Update(key("enter"))
	msg, ok := run(t, cmd).(TimePickedMsg)
	if !ok || msg.Time != "9:05" {
		t.Errorf("enter: got %#v", msg)
	}
}

func TestTimePickerNormalizesPaddedHour(t *testing.T) {
	p := NewTimePicker(0, 0)
	for i := 0; i < 5; i++ {
		p, _ = p.Update(key("backspace"))
	}
	p, _ = p.Update(key("07:30"))
	_, cmd := p.Update(key("enter"))
	msg, ok := run(t, cmd).(TimePickedMsg)
	if !ok || msg.Time != "7:30" {
		t.Errorf("enter: got %#v, want 7:30", msg)
	}
}

func TestTimePickerWraps(t *testing.T) {
	p := NewTimePicker(23, 59)
	p, _ = p.Update(key("up"))
	if p.Value() != "0:00" {
		t.Errorf("up: got %q, want 0:00", p.Value())
	}
	p, _ = p.Update(key("down"))
	if p.Value() != "23:59" {
		t.Errorf("down: got %q, want 23:59", p.Value())
	}
}

func TestTimePickerRejectsGarbage(t *testing.T) {
	p := NewTimePicker(9, 0)
	for i := 0; i < 5; i++ {
		p, _ = p.Update(key("backspace"))
	}
	p, _ = p.Update(key("25:00"))
	p, cmd := p.Update(key("enter"))
	if cmd != nil || p.Err() == "" {
		t.Errorf("invalid time accepted: cmd %v err %q", cmd != nil, p.Err())
	}
	if _, cmd := p.Update(key("esc")); cmd == nil {
		t.Error("esc: want cancel command")
	}
}
