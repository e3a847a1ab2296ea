package cli

import (
	"strings"
)

// Table is a plain-text table formatter with dynamic column widths, used by
// the list-style commands.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int // per-column wrap width, 0 = unlimited
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:   headers,
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth caps a column's width; longer cells wrap onto
// continuation lines at word boundaries.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow appends a row. Missing cells render empty; extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render formats the table: a header line, a dashed separator, then the
// rows, with columns sized to their longest line.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Wrap capped cells first; widths are computed over the wrapped lines.
	wrapped := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		wrapped[r] = make([][]string, len(row))
		for c, cell := range row {
			if max := t.maxWidths[c]; max > 0 {
				wrapped[r][c] = wrapText(cell, max)
			} else {
				wrapped[r][c] = []string{cell}
			}
		}
	}

	widths := make([]int, len(t.headers))
	for c, h := range t.headers {
		widths[c] = len(h)
	}
	for _, row := range wrapped {
		for c, lines := range row {
			for _, line := range lines {
				if len(line) > widths[c] {
					widths[c] = len(line)
				}
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder

	cells := make([]string, len(t.headers))
	for c, h := range t.headers {
		cells[c] = padRight(h, widths[c])
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for c, w := range widths {
		cells[c] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			if len(lines) > height {
				height = len(lines)
			}
		}

		for line := 0; line < height; line++ {
			for c := range t.headers {
				cell := ""
				if line < len(row[c]) {
					cell = row[c][line]
				}
				cells[c] = padRight(cell, widths[c])
			}
			b.WriteString(strings.Join(cells, gap))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// padRight pads a string with spaces on the right to reach the desired
// width. Longer strings are returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText wraps text to the given width at word boundaries, splitting
// words longer than a whole line.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if len(candidate) <= width {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
