package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acmecorp/invoiceboard/internal/customer"
)

type customersState int

const (
	customersStateBrowse customersState = iota
	customersStateSearch
)

type CustomersModel struct {
	CommonModel
	customerService *customer.Service

	state customersState
	table table.Model

	searchInput textinput.Model
	query       string

	loading bool
	err     error
}

func NewCustomersModel(custSvc *customer.Service) CustomersModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "Invoices", Width: 9},
		{Title: "Pending", Width: 12},
		{Title: "Paid", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Search customers..."
	ti.Width = 40

	return CustomersModel{
		customerService: custSvc,
		table:           t,
		searchInput:     ti,
	}
}

func (m CustomersModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CustomersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCustomersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.refreshTable(msg.summaries)

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case customersStateBrowse:
		return m.updateBrowse(msg)
	case customersStateSearch:
		return m.updateSearch(msg)
	}

	return m, nil
}

func (m CustomersModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "/":
			m.state = customersStateSearch
			m.searchInput.SetValue(m.query)
			m.searchInput.Focus()
			m.table.Blur()

			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CustomersModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = customersStateBrowse
			m.searchInput.Blur()
			m.table.Focus()

			return m, nil
		case tea.KeyEnter:
			m.query = m.searchInput.Value()
			m.state = customersStateBrowse
			m.searchInput.Blur()
			m.table.Focus()

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	return m, cmd
}

func (m CustomersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading customers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var header string
	if m.state == customersStateSearch {
		header = "Search: " + m.searchInput.View()
	} else {
		label := m.query
		if label == "" {
			label = "(none)"
		}

		header = fmt.Sprintf("Filter: %s", lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(label))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().Faint(true).Render("/: search | r: refresh | Esc: back"),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *CustomersModel) refreshTable(summaries []customer.Summary) {
	rows := make([]table.Row, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, table.Row{
			s.Name,
			s.Email,
			strconv.FormatInt(s.TotalInvoices, 10),
			s.TotalPending,
			s.TotalPaid,
		})
	}

	m.table.SetRows(rows)
}

type loadCustomersMsg struct {
	summaries []customer.Summary
	err       error
}

func (m CustomersModel) loadCmd() tea.Cmd {
	query := m.query

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summaries, err := m.customerService.Filtered(ctx, query)

		return loadCustomersMsg{summaries: summaries, err: err}
	}
}
