package shared

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Tagline is the project tagline.
const Tagline = "Knowledge-Base Registry Tooling"

// Box drawing characters
const (
	BoxTopLeft     = "╭"
	BoxTopRight    = "╮"
	BoxBottomLeft  = "╰"
	BoxBottomRight = "╯"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
	BoxTeeLeft     = "├"
	BoxTeeRight    = "┤"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// CenterText centers text within a given width, measured in display columns.
func CenterText(text string, width int) string {
	textLen := runewidth.StringWidth(text)
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}

// Table is a boxed, column-aligned table. Columns after the first are
// right-aligned, which suits counts.
type Table struct {
	Headers []string
	Rows    [][]string
	// Footer is an optional final row set off by a separator.
	Footer []string
}

// Render writes the table to out. Cell widths are measured in display
// columns so wide characters line up.
func (t *Table) Render(out io.Writer) {
	widths := make([]int, len(t.Headers))
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}
	measure(t.Footer)

	rule := func(left, right string) {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(BoxHorizontal, w+2)
		}
		fmt.Fprintln(out, left+strings.Join(parts, BoxHorizontal)+right)
	}
	line := func(row []string) {
		cells := make([]string, len(widths))
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i == 0 {
				cells[i] = " " + runewidth.FillRight(cell, w) + " "
			} else {
				cells[i] = " " + runewidth.FillLeft(cell, w) + " "
			}
		}
		fmt.Fprintln(out, BoxVertical+strings.Join(cells, " ")+BoxVertical)
	}

	rule(BoxTopLeft, BoxTopRight)
	line(t.Headers)
	rule(BoxTeeLeft, BoxTeeRight)
	for _, row := range t.Rows {
		line(row)
	}
	if len(t.Footer) > 0 {
		rule(BoxTeeLeft, BoxTeeRight)
		line(t.Footer)
	}
	rule(BoxBottomLeft, BoxBottomRight)
}
