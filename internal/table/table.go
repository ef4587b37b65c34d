// Package table renders record collections as fixed-width text tables.
package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/afk552/people/internal/person"
)

// Messages printed instead of a table when there is nothing to show.
const (
	EmptyMessage       = "The list of people is empty!"
	SelectEmptyMessage = "No people were born in this month!"
)

// Align is the horizontal alignment of a column's cells.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column.
type Column struct {
	Title string
	Width int // in runes
	Align Align
}

// Columns are the table's columns in display order.
var Columns = []Column{
	{Title: "No", Width: 4, Align: AlignRight},
	{Title: "Full name", Width: 30, Align: AlignLeft},
	{Title: "Phone number", Width: 14, Align: AlignLeft},
	{Title: "Birth date", Width: 19, Align: AlignRight},
}

// Rows returns the cell text for people, one row per person, numbered from 1.
func Rows(people []person.Person) [][]string {
	rows := make([][]string, len(people))
	for i, p := range people {
		rows[i] = []string{strconv.Itoa(i + 1), p.Name, p.Pnumber, p.Birth.String()}
	}
	return rows
}

// Render writes people to w as a plain bordered table, or EmptyMessage when
// there are none.
func Render(w io.Writer, people []person.Person) error {
	return NewRenderer(w, Options{Color: ColorNever}).Render(people)
}

// borderLine returns "+------+---...-+" with each segment sized to its column.
func borderLine() string {
	parts := make([]string, len(Columns))
	for i, c := range Columns {
		parts[i] = strings.Repeat("-", c.Width+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

// headerLine returns the header row with centered titles.
func headerLine() string {
	cells := make([]string, len(Columns))
	for i, c := range Columns {
		cells[i] = center(c.Title, c.Width)
	}
	return joinCells(cells)
}

// rowLine returns a data row with cells padded per column alignment.
func rowLine(cells []string) string {
	padded := make([]string, len(Columns))
	for i, c := range Columns {
		if c.Align == AlignRight {
			padded[i] = fmt.Sprintf("%*s", c.Width, cells[i])
		} else {
			padded[i] = fmt.Sprintf("%-*s", c.Width, cells[i])
		}
	}
	return joinCells(padded)
}

func joinCells(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// center pads s to width runes, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
