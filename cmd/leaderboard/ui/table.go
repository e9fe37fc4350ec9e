package ui

import (
	"fmt"
	"strings"

	"leaderboard/internal/leaderboard"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable is a simple table component for rendering static data.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles.
func (t *SimpleTable) View(styles Styles) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	// Width includes the one-cell padding on each side.
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)

	t.writeRow(&sb, t.Headers, colWidths, headerStyle, styles.Muted)

	for i, w := range colWidths {
		sb.WriteString(styles.Muted.Render(strings.Repeat("-", w)))
		if i < len(colWidths)-1 {
			sb.WriteString(styles.Muted.Render("+"))
		}
	}
	sb.WriteString("\n")

	if len(t.Rows) == 0 {
		sb.WriteString(styles.Muted.Render(" (no submissions)"))
		sb.WriteString("\n")
		return sb.String()
	}
	for _, row := range t.Rows {
		t.writeRow(&sb, row, colWidths, rowStyle, styles.Muted)
	}
	return sb.String()
}

func (t *SimpleTable) writeRow(sb *strings.Builder, cells []string, widths []int, style, sep lipgloss.Style) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(style.Width(w).Render(cell))
		if i < len(widths)-1 {
			sb.WriteString(sep.Render("|"))
		}
	}
	sb.WriteString("\n")
}

// GroupTable builds the ranking table for one leaderboard group. top <= 0 shows all rows.
func GroupTable(g leaderboard.Group, top int, styles Styles) *SimpleTable {
	title := g.DisplayName
	if title == "" {
		title = g.TabName
	}
	t := NewSimpleTable(title, []string{"#", "Name", "Resolved", "Rate", "Date", "Flags"})

	for i, m := range g.Models {
		if top > 0 && i >= top {
			break
		}
		t.AddRow(
			fmt.Sprintf("%d", i+1),
			m.Name,
			fmt.Sprintf("%d", m.Resolved),
			fmt.Sprintf("%.1f%%", m.ResolvedRate*100),
			m.Date,
			flags(m.OSS, m.Verified, m.HasLogs, m.HasTrajs, styles),
		)
	}
	return t
}

func flags(oss, verified, logs, trajs bool, styles Styles) string {
	var parts []string
	if verified {
		parts = append(parts, styles.Good.Render("verified"))
	}
	if oss {
		parts = append(parts, "oss")
	}
	if logs {
		parts = append(parts, "logs")
	}
	if trajs {
		parts = append(parts, "trajs")
	}
	if len(parts) == 0 {
		return styles.Flag.Render("-")
	}
	return strings.Join(parts, ",")
}
