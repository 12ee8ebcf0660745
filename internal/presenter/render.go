package presenter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const scheduleWidth = 22

var (
	colorAccent = lipgloss.Color("69")
	colorMuted  = lipgloss.Color("241")

	scheduleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Width(scheduleWidth)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(colorMuted)
	rowStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedRowStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorAccent)
)

// Schedule returns the compact date/time label of a row, e.g.
// "Mon 3 Jan 2024 9:00". Empty parts are skipped.
func (r RowViewModel) Schedule() string {
	year := r.Year
	if year == "0" {
		year = ""
	}
	parts := make([]string, 0, 5)
	for _, s := range []string{r.Day, r.Date, r.Month, year, r.Time} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "no date"
	}
	return strings.Join(parts, " ")
}

// RenderRow renders one row. The output depends only on the row and the
// selection flag.
func RenderRow(r RowViewModel, selected bool, width int) string {
	head := lipgloss.JoinHorizontal(lipgloss.Top,
		scheduleStyle.Render(r.Schedule()),
		titleStyle.Render(r.Title),
	)
	body := head
	if r.Description != "" {
		desc := r.Description
		if limit := width - scheduleWidth - 2; limit > 3 && lipgloss.Width(desc) > limit {
			desc = ansi.Truncate(desc, limit, "...")
		}
		body = lipgloss.JoinVertical(lipgloss.Left, head,
			strings.Repeat(" ", scheduleWidth)+descriptionStyle.Render(desc))
	}
	if selected {
		return selectedRowStyle.Render(body)
	}
	return rowStyle.Render(body)
}

// Render renders the cached rows with the row at cursor highlighted.
func (p *ListPresenter) Render(cursor, width int) string {
	var b strings.Builder
	for i, r := range p.rows {
		b.WriteString(RenderRow(r, i == cursor, width))
		b.WriteString("\n")
	}
	return b.String()
}
