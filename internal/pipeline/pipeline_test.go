package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapmap-dev/grapmap/internal/model"
	"github.com/grapmap-dev/grapmap/internal/rules"
	"github.com/grapmap-dev/grapmap/internal/statement"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func row(code, label, amount string, side model.Side) model.TrialBalanceRow {
	return model.TrialBalanceRow{
		AccountCode: code,
		Label:       label,
		Amount:      dec(amount),
		Side:        side,
	}
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New(rules.DefaultTable())
	require.NoError(t, err)
	return engine
}

// fixtureRows is the reference scenario used throughout: a small
// balanced trial balance with one account no rule recognises.
func fixtureRows() []model.TrialBalanceRow {
	return []model.TrialBalanceRow{
		row("1000", "Bank - Current Account", "100000", model.SideDebit),
		row("2000", "Trade Creditors", "40000", model.SideCredit),
		row("4000", "Member Contributions", "80000", model.SideCredit),
		row("5000", "Salaries and Wages", "20000", model.SideDebit),
	}
}

func TestRunFixture(t *testing.T) {
	result := newEngine(t).Run(fixtureRows(), nil, nil)

	pos := result.Statement.Position
	assert.True(t, pos.TotalAssets.Equal(dec("100000")))
	assert.True(t, pos.TotalLiabilities.Equal(dec("40000")))
	assert.True(t, pos.NetAssets.Equal(dec("60000")))

	perf := result.Statement.Performance
	assert.True(t, perf.TotalRevenue.Equal(dec("80000")))
	assert.True(t, perf.SurplusDeficit.Equal(dec("60000")))

	assert.True(t, result.Statement.IdentityOK)
	assert.True(t, result.Statement.CashFlow.Reconciled)
	assert.True(t, result.Validation.Clean())
	assert.Len(t, result.Entries, 4)
	assert.Empty(t, result.Validation.Warnings)
}

func TestRunReportsUnmapped(t *testing.T) {
	rows := append(fixtureRows(),
		row("9912", "Xyz Miscellaneous Holding 9912", "555", model.SideDebit))
	result := newEngine(t).Run(rows, nil, nil)

	require.Len(t, result.Validation.UnmappedAccounts, 1)
	un := result.Validation.UnmappedAccounts[0]
	assert.Equal(t, "9912", un.AccountCode)
	assert.Equal(t, "Xyz Miscellaneous Holding 9912", un.Label)
	assert.True(t, un.Amount.Equal(dec("555")))
	assert.False(t, result.Validation.Clean())

	// The unmapped amount is excluded, so the identity breaks by it.
	assert.True(t, result.Statement.Position.TotalAssets.Equal(dec("100000")))
	assert.True(t, result.Statement.IdentityOK)
}

func TestRunIdempotent(t *testing.T) {
	engine := newEngine(t)
	first := engine.Run(fixtureRows(), nil, nil)
	second := engine.Run(fixtureRows(), nil, nil)
	assert.Equal(t, first, second)
}

func TestRunPassesThroughIngestFindings(t *testing.T) {
	rejects := []model.RowReject{{Line: 3, Reason: "bad debit balance"}}
	warnings := []string{"found 1 accounts with both debit and credit balances; netted"}

	result := newEngine(t).Run(fixtureRows(), rejects, warnings)

	assert.Equal(t, rejects, result.Validation.RejectedRows)
	require.NotEmpty(t, result.Validation.Warnings)
	assert.Equal(t, warnings[0], result.Validation.Warnings[0])
	assert.False(t, result.Validation.Clean())
}

func TestRunDuplicateAccountCodesWarn(t *testing.T) {
	rows := append(fixtureRows(),
		row("1000", "Bank - Savings Account", "10", model.SideDebit),
		row("4000", "Sundry Income", "10", model.SideCredit))
	result := newEngine(t).Run(rows, nil, nil)

	require.NotEmpty(t, result.Validation.Warnings)
	assert.Contains(t, result.Validation.Warnings[0], "2 duplicate account codes")
}

func TestRunOutOfBalanceWarn(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row("1000", "Bank", "100", model.SideDebit),
		row("4000", "Sales", "60", model.SideCredit),
	}
	result := newEngine(t).Run(rows, nil, nil)

	require.NotEmpty(t, result.Validation.Warnings)
	assert.Contains(t, result.Validation.Warnings[0], "does not balance")
	assert.False(t, result.Statement.IdentityOK)
}

func TestRunEmptyTrialBalance(t *testing.T) {
	result := newEngine(t).Run(nil, nil, nil)

	assert.Empty(t, result.Entries)
	assert.Empty(t, result.Totals)
	assert.True(t, result.Statement.Position.TotalAssets.IsZero())
	assert.True(t, result.Statement.IdentityOK)
	assert.Len(t, result.Validation.UndefinedRatios, 8)
}

func TestNewRejectsInvalidTable(t *testing.T) {
	_, err := New(&rules.Table{Version: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule table")
}

func TestRunCustomTolerance(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row("1000", "Bank", "100.01", model.SideDebit),
		row("4000", "Sales", "100.00", model.SideCredit),
	}
	engine, err := New(rules.DefaultTable(), statement.WithTolerance(dec("0.001")))
	require.NoError(t, err)

	result := engine.Run(rows, nil, nil)
	assert.False(t, result.Statement.IdentityOK)
	assert.False(t, result.Validation.Clean())
}
