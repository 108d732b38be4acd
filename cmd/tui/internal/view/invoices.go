package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/acmecorp/invoiceboard/internal/customer"
	"github.com/acmecorp/invoiceboard/internal/format"
	"github.com/acmecorp/invoiceboard/internal/invoice"
	"github.com/acmecorp/invoiceboard/internal/pagination"
)

type invoicesState int

const (
	invoicesStateBrowse invoicesState = iota
	invoicesStateSearch
	invoicesStateForm
)

type InvoicesModel struct {
	CommonModel
	invoiceService  *invoice.Service
	customerService *customer.Service

	state invoicesState
	table table.Model
	rows  []invoice.Row
	form  *huh.Form

	searchInput textinput.Model
	query       string
	page        int
	totalPages  int

	loading bool
	err     error
	status  string

	// Form bindings
	editingID    string
	formCustomer string
	formAmount   string
	formStatus   string
}

func NewInvoicesModel(invSvc *invoice.Service, custSvc *customer.Service) InvoicesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Amount", Width: 12},
		{Title: "Customer", Width: 24},
		{Title: "Email", Width: 28},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(invoice.PageSize),
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
	ti.Placeholder = "Search invoices..."
	ti.Width = 40

	return InvoicesModel{
		invoiceService:  invSvc,
		customerService: custSvc,
		table:           t,
		searchInput:     ti,
		page:            1,
		totalPages:      1,
	}
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.rows = msg.rows
		m.page = msg.page
		m.totalPages = msg.totalPages
		m.refreshTable()

		return m, nil

	case invoiceFormReadyMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		return m.enterForm(msg.customers)

	case invoiceSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Saved."
		}

		m.state = invoicesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case invoiceDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		} else {
			m.status = "Deleted."
		}

		return m, m.loadCmd()
	}

	switch m.state {
	case invoicesStateBrowse:
		return m.updateBrowse(msg)
	case invoicesStateSearch:
		return m.updateSearch(msg)
	case invoicesStateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m InvoicesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "/":
			m.state = invoicesStateSearch
			m.searchInput.SetValue(m.query)
			m.searchInput.Focus()
			m.table.Blur()

			return m, textinput.Blink
		case "n":
			if m.page < m.totalPages {
				m.page++
				return m, m.loadCmd()
			}
		case "p":
			if m.page > 1 {
				m.page--
				return m, m.loadCmd()
			}
		case "c":
			m.editingID = ""
			return m, m.loadCustomersCmd()
		case "e":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.rows) {
				m.editingID = m.rows[idx].ID
				return m, m.loadCustomersCmd()
			}
		case "x":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.rows) {
				return m, m.deleteCmd(m.rows[idx].ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = invoicesStateBrowse
			m.searchInput.Blur()
			m.table.Focus()

			return m, nil
		case tea.KeyEnter:
			m.query = m.searchInput.Value()
			m.page = 1
			m.state = invoicesStateBrowse
			m.searchInput.Blur()
			m.table.Focus()

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	return m, cmd
}

func (m InvoicesModel) enterForm(customers []customer.Field) (tea.Model, tea.Cmd) {
	m.formCustomer = ""
	m.formAmount = ""
	m.formStatus = string(invoice.StatusPending)

	if m.editingID != "" {
		idx := m.table.Cursor()
		if idx >= 0 && idx < len(m.rows) {
			row := m.rows[idx]
			m.formAmount = strconv.FormatFloat(float64(row.AmountCents)/100, 'f', 2, 64)
			m.formStatus = string(row.Status)
		}
	}

	options := make([]huh.Option[string], 0, len(customers))
	for _, c := range customers {
		options = append(options, huh.NewOption(c.Name, c.ID))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("customer").
				Title("Customer").
				Options(options...).
				Value(&m.formCustomer),

			huh.NewInput().
				Key("amount").
				Title("Amount (USD)").
				Placeholder("12.34").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
						return fmt.Errorf("enter a decimal amount")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Pending", string(invoice.StatusPending)),
					huh.NewOption("Paid", string(invoice.StatusPaid)),
				).
				Value(&m.formStatus),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = invoicesStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m InvoicesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = invoicesStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var header string
	if m.state == invoicesStateSearch {
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
		m.renderPagination(),
		lipgloss.NewStyle().Faint(true).Render("/: search | n/p: page | c: create | e: edit | x: delete | r: refresh | Esc: back"),
	)

	if m.state == invoicesStateForm && m.form != nil {
		title := "Create Invoice"
		if m.editingID != "" {
			title = "Edit Invoice"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m InvoicesModel) renderPagination() string {
	items := pagination.Generate(m.totalPages, m.page)

	parts := make([]string, 0, len(items))
	for _, it := range items {
		s := it.String()
		if it == pagination.Item(m.page) {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render(s)
		}

		parts = append(parts, s)
	}

	return "Page: " + strings.Join(parts, " ")
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		rows = append(rows, table.Row{
			format.Date(r.Date),
			string(r.Status),
			format.Currency(r.AmountCents),
			r.Name,
			r.Email,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadInvoicesMsg struct {
	rows       []invoice.Row
	page       int
	totalPages int
	err        error
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	query := m.query
	page := m.page

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		totalPages, err := m.invoiceService.Pages(ctx, query)
		if err != nil {
			return loadInvoicesMsg{err: err}
		}

		if page > totalPages {
			page = totalPages
		}

		if page < 1 {
			page = 1
		}

		rows, err := m.invoiceService.Filtered(ctx, query, page)

		return loadInvoicesMsg{rows: rows, page: page, totalPages: totalPages, err: err}
	}
}

type invoiceFormReadyMsg struct {
	customers []customer.Field
	err       error
}

func (m InvoicesModel) loadCustomersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		customers, err := m.customerService.List(ctx)

		return invoiceFormReadyMsg{customers: customers, err: err}
	}
}

type invoiceSavedMsg struct {
	err error
}

func (m InvoicesModel) saveCmd() tea.Cmd {
	id := m.editingID
	params := invoice.CreateParams{
		CustomerID: m.form.GetString("customer"),
		Status:     invoice.Status(m.form.GetString("status")),
	}

	if amount, err := strconv.ParseFloat(strings.TrimSpace(m.form.GetString("amount")), 64); err == nil {
		params.Amount = amount
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if id == "" {
			_, err := m.invoiceService.Create(ctx, params)
			return invoiceSavedMsg{err: err}
		}

		return invoiceSavedMsg{err: m.invoiceService.Update(ctx, id, params)}
	}
}

type invoiceDeletedMsg struct {
	err error
}

func (m InvoicesModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return invoiceDeletedMsg{err: m.invoiceService.Delete(ctx, id)}
	}
}
