// Package browse is an interactive terminal browser for the catalog.
package browse

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mytheresa/product-categories/listing"
	"github.com/mytheresa/product-categories/models"
)

const helpText = "/ search • esc done • x clear • ←/→ user • 1-9 category • 0 all categories • i/p/c/u sort • r reset • q quit"

var sortKeys = map[string]listing.Column{
	"i": listing.ColumnID,
	"p": listing.ColumnProduct,
	"c": listing.ColumnCategory,
	"u": listing.ColumnUser,
}

// Model is the bubbletea model of the browser.
type Model struct {
	state      *listing.State
	users      []models.User
	categories []models.Category

	search        textinput.Model
	searchFocused bool

	styles Styles
}

// NewModel builds a browser over the catalog's tables.
func NewModel(c *listing.Catalog) (Model, error) {
	rows, err := c.GetRows()
	if err != nil {
		return Model{}, err
	}
	users, err := c.GetAllUsers()
	if err != nil {
		return Model{}, err
	}
	categories, err := c.GetAllCategories()
	if err != nil {
		return Model{}, err
	}

	si := textinput.New()
	si.Placeholder = "Search"
	si.Prompt = "🔍 "
	si.CharLimit = 64
	si.Width = 40

	return Model{
		state:      listing.NewState(rows),
		users:      users,
		categories: categories,
		search:     si,
		styles:     DefaultStyles(),
	}, nil
}

// Run shows the browser until the user quits or ctx is cancelled.
func Run(ctx context.Context, c *listing.Catalog) error {
	m, err := NewModel(c)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.searchFocused {
		switch key.String() {
		case "esc", "enter":
			m.searchFocused = false
			m.search.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.state.SetSearchText(m.search.Value())
		return m, cmd
	}

	switch k := key.String(); k {
	case "q":
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		return m, m.search.Focus()
	case "x":
		m.search.SetValue("")
		m.state.ClearSearch()
	case "left", "h":
		m.cycleUser(-1)
	case "right", "l":
		m.cycleUser(1)
	case "0":
		m.state.SelectAllCategories()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i, _ := strconv.Atoi(k)
		if i <= len(m.categories) {
			m.state.ToggleCategory(m.categories[i-1].ID)
		}
	case "r":
		m.search.SetValue("")
		m.state.Reset()
	default:
		if col, ok := sortKeys[k]; ok {
			m.state.SortBy(col)
		}
	}
	return m, nil
}

// cycleUser moves the user selection through "All" followed by every user.
func (m *Model) cycleUser(step int) {
	names := make([]string, 0, len(m.users)+1)
	names = append(names, listing.AllUsers)
	for _, u := range m.users {
		names = append(names, u.Name)
	}

	current := 0
	for i, name := range names {
		if name == m.state.SelectedUser() {
			current = i
			break
		}
	}

	next := (current + step + len(names)) % len(names)
	if next == 0 {
		m.state.SelectAllUsers()
	} else {
		m.state.SelectUser(names[next])
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Product Categories"))
	b.WriteString("\n")
	b.WriteString(m.viewUsers())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.viewCategories())
	b.WriteString("\n")

	rows := m.state.Rows()
	if len(rows) == 0 {
		b.WriteString(m.styles.Notice.Render(listing.NoMatchesMessage))
	} else {
		b.WriteString(m.viewTable(rows))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(helpText))
	return b.String()
}

func (m Model) viewUsers() string {
	tabs := []string{m.tab(listing.AllUsers, m.state.SelectedUser() == listing.AllUsers)}
	for _, u := range m.users {
		tabs = append(tabs, m.tab(u.Name, m.state.SelectedUser() == u.Name))
	}
	return m.styles.Heading.Render("Users") + " " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCategories() string {
	selected := m.state.SelectedCategories()
	tabs := []string{m.tab("0 All", len(selected) == 0)}
	for i, c := range m.categories {
		label := c.Title
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, c.Title)
		}
		tabs = append(tabs, m.tab(label, m.state.CategorySelected(c.ID)))
	}
	return m.styles.Heading.Render("Categories") + " " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) tab(label string, active bool) string {
	if active {
		return m.styles.ActiveTab.Render(label)
	}
	return m.styles.Tab.Render(label)
}

func (m Model) viewTable(rows []listing.ProductRow) string {
	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = []string{
			strconv.FormatUint(uint64(row.Product.ID), 10),
			row.Product.Name,
			row.CategoryLabel(),
			row.UserName(),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(m.styles.Border).
		Headers(
			m.header("ID", listing.ColumnID),
			m.header("Product", listing.ColumnProduct),
			m.header("Category", listing.ColumnCategory),
			m.header("User", listing.ColumnUser),
		).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return m.styles.Header
			case col == 0:
				return m.styles.IDCell
			case col == 3 && row < len(rows) && rows[row].User != nil:
				return m.userStyle(rows[row].User.Sex)
			}
			return m.styles.Cell
		})

	return t.String()
}

func (m Model) header(title string, col listing.Column) string {
	if m.state.SortColumn() != col {
		return title + " ↕"
	}
	if m.state.SortOrder() == listing.Descending {
		return title + " ▼"
	}
	return title + " ▲"
}

func (m Model) userStyle(sex models.Sex) lipgloss.Style {
	switch sex {
	case models.SexMale:
		return m.styles.Male
	case models.SexFemale:
		return m.styles.Female
	}
	return m.styles.Cell
}
