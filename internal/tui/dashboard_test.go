package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidelizaplus/gestao/internal/api"
)

func TestDashboardStartsLoading(t *testing.T) {
	m := NewDashboard(api.NewClient(""), "Acme Café")

	assert.True(t, m.loading())
	view := m.View()
	assert.Contains(t, view, "Acme Café")
	assert.Contains(t, view, "loading")
}

func TestDashboardRendersReport(t *testing.T) {
	m := NewDashboard(api.NewClient(""), "Acme Café")

	updated, _ := m.Update(reportMsg{report: &api.CompanyReport{
		TotalPointsAwarded:   120,
		TotalRewardsRedeemed: 4,
		UniqueCustomers:      17,
	}})
	model := updated.(DashboardModel)

	updated, _ = model.Update(transactionsMsg{transactions: []api.PointTransaction{
		{ID: 1, Points: 5, Client: api.TransactionParty{Name: "Maria"}, AwardedBy: api.TransactionParty{Name: "Ana"}, CreatedAt: "2026-08-30T10:00:00Z"},
	}})
	model = updated.(DashboardModel)

	require.False(t, model.loading())
	view := model.View()
	assert.Contains(t, view, "120")
	assert.Contains(t, view, "17")
	assert.Contains(t, view, "Maria")
}

func TestDashboardIndependentFailures(t *testing.T) {
	m := NewDashboard(api.NewClient(""), "Acme Café")

	updated, _ := m.Update(reportMsg{err: &api.Error{Status: 403, UserMessage: "Access restricted to administrators."}})
	model := updated.(DashboardModel)

	updated, _ = model.Update(transactionsMsg{transactions: []api.PointTransaction{
		{ID: 1, Points: 5, Client: api.TransactionParty{Name: "Maria"}, AwardedBy: api.TransactionParty{Name: "Ana"}},
	}})
	model = updated.(DashboardModel)

	view := model.View()
	assert.Contains(t, view, "Access restricted to administrators.",
		"failed section shows the normalized message")
	assert.Contains(t, view, "Maria", "the other section still renders")
}

func TestDashboardCapsRecentTransactions(t *testing.T) {
	m := NewDashboard(api.NewClient(""), "Acme Café")

	txs := make([]api.PointTransaction, recentTransactionCount+5)
	for i := range txs {
		txs[i] = api.PointTransaction{ID: i, Points: 1,
			Client:    api.TransactionParty{Name: "Client"},
			AwardedBy: api.TransactionParty{Name: "Staff"}}
	}

	updated, _ := m.Update(reportMsg{report: &api.CompanyReport{}})
	model := updated.(DashboardModel)
	updated, _ = model.Update(transactionsMsg{transactions: txs})
	model = updated.(DashboardModel)

	shown := strings.Count(model.View(), "Client")
	assert.Equal(t, recentTransactionCount, shown)
}

func TestDashboardQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := NewDashboard(api.NewClient(""), "Acme Café")

			var msg tea.KeyMsg
			switch key {
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			updated, cmd := m.Update(msg)
			model := updated.(DashboardModel)
			assert.True(t, model.quitting)
			require.NotNil(t, cmd)
		})
	}
}

func TestDashboardRefreshResetsState(t *testing.T) {
	m := NewDashboard(api.NewClient(""), "Acme Café")

	updated, _ := m.Update(reportMsg{report: &api.CompanyReport{}})
	model := updated.(DashboardModel)
	updated, _ = model.Update(transactionsMsg{})
	model = updated.(DashboardModel)
	require.False(t, model.loading())

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	model = updated.(DashboardModel)
	assert.True(t, model.loading())
	assert.NotNil(t, cmd)
}
