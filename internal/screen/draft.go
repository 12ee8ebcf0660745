package screen

import (
	"strconv"
	"strings"

	"github.com/nibzard/todolist-go/internal/task"
)

// Draft holds the not yet committed values of a compose session. Year is
// kept as entered text and parsed on commit.
type Draft struct {
	Day         string
	Date        string
	Month       string
	Year        string
	Time        string
	Title       string
	Description string
}

// DraftFrom prefills a draft from an existing task.
func DraftFrom(t task.Task) Draft {
	d := Draft{
		Day:         t.Day,
		Date:        t.Date,
		Month:       t.Month,
		Time:        t.Time,
		Title:       t.Title,
		Description: t.Description,
	}
	if t.Year != 0 {
		d.Year = strconv.Itoa(t.Year)
	}
	return d
}

// YearValue parses Year, falling back to 0.
func (d Draft) YearValue() int {
	y, err := strconv.Atoi(strings.TrimSpace(d.Year))
	if err != nil {
		return 0
	}
	return y
}

// Task builds a new task from the draft. The ID is left empty.
func (d Draft) Task() task.Task {
	return task.Task{
		Day:         d.Day,
		Date:        d.Date,
		Month:       d.Month,
		Year:        d.YearValue(),
		Time:        d.Time,
		Title:       d.Title,
		Description: d.Description,
	}
}

func (d *Draft) applyDate(ev PickDate) {
	d.Day = ev.Day
	d.Date = ev.Date
	d.Month = ev.Month
	d.Year = ev.Year
}

func (d Draft) complete() bool {
	return strings.TrimSpace(d.Title) != "" && strings.TrimSpace(d.Description) != ""
}
