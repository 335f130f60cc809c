package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

// Palette, shared across table and markdown rendering.
var (
	ColorAccent = lipgloss.Color("39")  // cursor / current node
	ColorWarn   = lipgloss.Color("214") // stale mtime, non-fatal warnings
	ColorPass   = lipgloss.Color("42")  // fresh mtime, success
	ColorMuted  = lipgloss.Color("244") // borders, hints
)

// Table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Align(lipgloss.Center)

	TableWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarn)

	TableSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorPass)

	TableHintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TableBorderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	tableCurrentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)
)

// NodeRow is one line of a node listing: its path and the time its payload
// was last touched. Mtime is the zero time when unknown, in which case the
// "Modified" column is left blank rather than printing "a long while ago".
type NodeRow struct {
	Path  string
	Mtime time.Time
}

// RenderNodeTable renders rows as a Path/Modified table, used by list and
// match to show where a note lives and how stale it is. The row matching
// current, if any, is bolded the way a status header is.
func RenderNodeTable(width int, rows []NodeRow, current string) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		modified := ""
		if !r.Mtime.IsZero() {
			modified = humanize.Time(r.Mtime)
		}
		data[i] = []string{r.Path, modified}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Width(width).
		Headers("Path", "Modified").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case row >= 0 && row < len(rows) && rows[row].Path == current:
				return tableCurrentStyle
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		String()
}
