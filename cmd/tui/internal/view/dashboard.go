package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acmecorp/invoiceboard/internal/dashboard"
)

type DashboardModel struct {
	CommonModel
	dashService *dashboard.Service

	cards   dashboard.Cards
	revenue []dashboard.Revenue
	loading bool
	err     error
}

func NewDashboardModel(dashSvc *dashboard.Service) DashboardModel {
	return DashboardModel{
		dashService: dashSvc,
		loading:     true,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}

	case loadDashboardMsg:
		m.loading = false
		m.err = msg.err
		m.cards = msg.cards
		m.revenue = msg.revenue

		return m, nil
	}

	return m, nil
}

var cardStyle = lipgloss.NewStyle().
	Padding(0, 2).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Width(22)

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(fmt.Sprintf("Collected\n%s", m.cards.TotalPaid)),
		cardStyle.Render(fmt.Sprintf("Pending\n%s", m.cards.TotalPending)),
		cardStyle.Render(fmt.Sprintf("Invoices\n%d", m.cards.NumberOfInvoices)),
		cardStyle.Render(fmt.Sprintf("Customers\n%d", m.cards.NumberOfCustomers)),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		cards,
		"",
		"Recent Revenue",
		renderRevenueBars(m.revenue),
		"",
		lipgloss.NewStyle().Faint(true).Render("r: refresh | Esc: back"),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// renderRevenueBars draws a simple horizontal bar per month, scaled to the
// largest revenue figure.
func renderRevenueBars(revenue []dashboard.Revenue) string {
	if len(revenue) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("No revenue data.")
	}

	var maxRevenue int64
	for _, r := range revenue {
		if r.Revenue > maxRevenue {
			maxRevenue = r.Revenue
		}
	}

	const barWidth = 40

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("57"))

	var b strings.Builder

	for _, r := range revenue {
		width := 0
		if maxRevenue > 0 {
			width = int(r.Revenue * barWidth / maxRevenue)
		}

		b.WriteString(fmt.Sprintf("%-4s %s %d\n", r.Month, barStyle.Render(strings.Repeat("█", width)), r.Revenue))
	}

	return b.String()
}

type loadDashboardMsg struct {
	cards   dashboard.Cards
	revenue []dashboard.Revenue
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cards, err := m.dashService.Cards(ctx)
		if err != nil {
			return loadDashboardMsg{err: err}
		}

		revenue, err := m.dashService.Revenue(ctx)

		return loadDashboardMsg{cards: cards, revenue: revenue, err: err}
	}
}
