// Package browse implements an interactive terminal view of an address book.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/afk552/people/internal/month"
	"github.com/afk552/people/internal/person"
	ptable "github.com/afk552/people/internal/table"
)

// chromeHeight is the number of lines View spends outside the table body.
const chromeHeight = 6

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)

// Model is the Bubble Tea model for browsing people.
type Model struct {
	title   string
	people  []person.Person
	visible []person.Person
	codes   []string
	filter  int // 0 shows everyone; i > 0 shows codes[i-1]
	table   table.Model
	help    help.Model
	keys    keyMap
	done    bool
}

// NewModel creates a Model over people. The slice is copied.
func NewModel(title string, people []person.Person) Model {
	cols := make([]table.Column, len(ptable.Columns))
	for i, c := range ptable.Columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	m := Model{
		title:  title,
		people: person.CloneAll(people),
		codes:  month.Codes(),
		table: table.New(
			table.WithColumns(cols),
			table.WithFocused(true),
			table.WithHeight(10),
		),
		help: help.New(),
		keys: defaultKeys(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if h := msg.Height - chromeHeight; h > 0 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMonth):
			m.filter = (m.filter + 1) % (len(m.codes) + 1)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.PrevMonth):
			m.filter = (m.filter + len(m.codes)) % (len(m.codes) + 1)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the title, the current month filter, the table, and key help.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(filterStyle.Render(m.filterLabel()) + "\n\n")

	if len(m.visible) == 0 {
		msg := ptable.EmptyMessage
		if m.filter > 0 {
			msg = ptable.SelectEmptyMessage
		}
		b.WriteString(emptyStyle.Render(msg) + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// Visible returns the people currently shown, in display order.
func (m Model) Visible() []person.Person {
	return m.visible
}

// Month returns the active month code, or "" when everyone is shown.
func (m Model) Month() string {
	if m.filter == 0 {
		return ""
	}
	return m.codes[m.filter-1]
}

// Selected returns the person under the cursor.
func (m Model) Selected() (person.Person, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return person.Person{}, false
	}
	return m.visible[i], true
}

// refresh recomputes the visible people for the current filter.
func (m *Model) refresh() {
	if code := m.Month(); code != "" {
		m.visible = person.SelectByMonth(m.people, code)
	} else {
		m.visible = m.people
	}

	rows := make([]table.Row, 0, len(m.visible))
	for _, cells := range ptable.Rows(m.visible) {
		rows = append(rows, table.Row(cells))
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m Model) filterLabel() string {
	code := m.Month()
	if code == "" {
		return fmt.Sprintf("Month: all (%d)", len(m.visible))
	}
	name, _ := month.Name(code)
	return fmt.Sprintf("Month: %s %s (%d)", code, name, len(m.visible))
}
