package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fidelizaplus/gestao/internal/api"
)

// recentTransactionCount caps the history shown on the dashboard.
const recentTransactionCount = 8

// Styles contains lipgloss styles for the dashboard
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")). // Purple
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginTop(1),
	}
}

// Messages delivered by the fetch commands. Report and transactions load
// independently; one failing does not cancel the other.
type reportMsg struct {
	report *api.CompanyReport
	err    error
}

type transactionsMsg struct {
	transactions []api.PointTransaction
	err          error
}

// DashboardModel is the bubbletea model for the company dashboard
type DashboardModel struct {
	gateway     *api.Client
	companyName string

	spinner spinner.Model
	styles  Styles

	report     *api.CompanyReport
	reportErr  error
	reportDone bool

	transactions     []api.PointTransaction
	transactionsErr  error
	transactionsDone bool

	quitting bool
}

// NewDashboard creates a dashboard model for the given gateway
func NewDashboard(gateway *api.Client, companyName string) DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return DashboardModel{
		gateway:     gateway,
		companyName: companyName,
		spinner:     sp,
		styles:      DefaultStyles(),
	}
}

// Init implements tea.Model
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchReport(), m.fetchTransactions())
}

func (m DashboardModel) fetchReport() tea.Cmd {
	gateway := m.gateway
	return func() tea.Msg {
		report, err := gateway.ReportSummary(context.Background())
		return reportMsg{report: report, err: err}
	}
}

func (m DashboardModel) fetchTransactions() tea.Cmd {
	gateway := m.gateway
	return func() tea.Msg {
		transactions, err := gateway.Transactions(context.Background())
		return transactionsMsg{transactions: transactions, err: err}
	}
}

// Update implements tea.Model
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.report, m.reportErr, m.reportDone = nil, nil, false
			m.transactions, m.transactionsErr, m.transactionsDone = nil, nil, false
			return m, tea.Batch(m.spinner.Tick, m.fetchReport(), m.fetchTransactions())
		}
		return m, nil

	case reportMsg:
		m.report = msg.report
		m.reportErr = msg.err
		m.reportDone = true
		return m, nil

	case transactionsMsg:
		m.transactions = msg.transactions
		m.transactionsErr = msg.err
		m.transactionsDone = true
		return m, nil

	case spinner.TickMsg:
		if m.loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m DashboardModel) loading() bool {
	return !m.reportDone || !m.transactionsDone
}

// View implements tea.Model
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.companyName) + "\n")

	b.WriteString(m.reportView())
	b.WriteString("\n\n")
	b.WriteString(m.transactionsView())
	b.WriteString(m.styles.Help.Render("\nr refresh • q quit"))

	return b.String()
}

func (m DashboardModel) reportView() string {
	if !m.reportDone {
		return m.spinner.View() + " loading report..."
	}
	if m.reportErr != nil {
		return m.styles.Error.Render(userMessageOf(m.reportErr))
	}

	rows := []string{
		m.styles.Label.Render("Points awarded    ") + m.styles.Value.Render(fmt.Sprintf("%d", m.report.TotalPointsAwarded)),
		m.styles.Label.Render("Rewards redeemed  ") + m.styles.Value.Render(fmt.Sprintf("%d", m.report.TotalRewardsRedeemed)),
		m.styles.Label.Render("Unique customers  ") + m.styles.Value.Render(fmt.Sprintf("%d", m.report.UniqueCustomers)),
	}
	return m.styles.Border.Render(strings.Join(rows, "\n"))
}

func (m DashboardModel) transactionsView() string {
	if !m.transactionsDone {
		return m.spinner.View() + " loading transactions..."
	}
	if m.transactionsErr != nil {
		return m.styles.Error.Render(userMessageOf(m.transactionsErr))
	}
	if len(m.transactions) == 0 {
		return m.styles.Muted.Render("No transactions yet.")
	}

	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Recent transactions") + "\n")

	shown := m.transactions
	if len(shown) > recentTransactionCount {
		shown = shown[:recentTransactionCount]
	}
	for _, tx := range shown {
		b.WriteString(fmt.Sprintf("  %s %s → %s  %s\n",
			m.styles.Value.Render(fmt.Sprintf("%+d", tx.Points)),
			tx.AwardedBy.Name,
			tx.Client.Name,
			m.styles.Muted.Render(tx.CreatedAt)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// userMessageOf prefers the gateway's normalized message over raw error text.
func userMessageOf(err error) string {
	if apiErr, ok := api.AsError(err); ok {
		return apiErr.UserMessage
	}
	return err.Error()
}

// RunDashboard starts the dashboard program and blocks until it exits
func RunDashboard(gateway *api.Client, companyName string) error {
	_, err := tea.NewProgram(NewDashboard(gateway, companyName)).Run()
	return err
}
