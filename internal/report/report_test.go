package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapmap-dev/grapmap/internal/model"
	"github.com/grapmap-dev/grapmap/internal/pipeline"
	"github.com/grapmap-dev/grapmap/internal/rules"
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

func runFixture(t *testing.T, extra ...model.TrialBalanceRow) pipeline.Result {
	t.Helper()
	engine, err := pipeline.New(rules.DefaultTable())
	require.NoError(t, err)
	rows := append([]model.TrialBalanceRow{
		row("1000", "Bank - Current Account", "100000", model.SideDebit),
		row("2000", "Trade Creditors", "40000", model.SideCredit),
		row("4000", "Member Contributions", "80000", model.SideCredit),
		row("5000", "Salaries and Wages", "20000", model.SideDebit),
	}, extra...)
	return engine.Run(rows, nil, nil)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"1234.5", "1 234.50"},
		{"1000000", "1 000 000.00"},
		{"-1234.5", "(1 234.50)"},
		{"-0.01", "(0.01)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMoney(dec(tt.in)), "formatMoney(%s)", tt.in)
	}
}

func TestRenderFixture(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, runFixture(t), Meta{Entity: "Demo Water Board", PeriodEnd: "31 March 2026"})
	out := buf.String()

	assert.Contains(t, out, "DEMO WATER BOARD")
	assert.Contains(t, out, "for the year ended 31 March 2026")
	assert.Contains(t, out, "STATEMENT OF FINANCIAL POSITION")
	assert.Contains(t, out, "STATEMENT OF FINANCIAL PERFORMANCE")
	assert.Contains(t, out, "CASH FLOW STATEMENT")
	assert.Contains(t, out, "KEY FINANCIAL RATIOS")
	assert.Contains(t, out, "100 000.00")
	assert.Contains(t, out, "TOTAL NET ASSETS")
	assert.Contains(t, out, "no findings")
	assert.NotContains(t, out, "unmapped accounts")
}

func TestRenderShowsUnmapped(t *testing.T) {
	result := runFixture(t,
		row("9912", "Xyz Miscellaneous Holding 9912", "555", model.SideDebit))

	var buf bytes.Buffer
	Render(&buf, result, Meta{})
	out := buf.String()

	assert.Contains(t, out, "1 unmapped accounts excluded")
	assert.Contains(t, out, "9912 Xyz Miscellaneous Holding 9912")
	assert.NotContains(t, out, "no findings")
}

func TestRenderIdentityViolation(t *testing.T) {
	engine, err := pipeline.New(rules.DefaultTable())
	require.NoError(t, err)
	result := engine.Run([]model.TrialBalanceRow{
		row("1000", "Bank", "500", model.SideDebit),
	}, nil, nil)

	var buf bytes.Buffer
	Render(&buf, result, Meta{})
	assert.Contains(t, buf.String(), "accounting identity violated by 500.00")
}

func TestWriteCSVFixture(t *testing.T) {
	result := runFixture(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result.Statement))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"statement", "section", "grap_ref", "line_item", "amount"}, records[0])

	find := func(name string) []string {
		for _, rec := range records[1:] {
			if rec[3] == name {
				return rec
			}
		}
		return nil
	}

	cash := find("Cash and Cash Equivalents")
	require.NotNil(t, cash)
	assert.Equal(t, "financial_position", cash[0])
	assert.Equal(t, "current_assets", cash[1])
	assert.Equal(t, "CA-001", cash[2])
	assert.Equal(t, "100000.00", cash[4])

	totalAssets := find("Total Assets")
	require.NotNil(t, totalAssets)
	assert.Equal(t, "100000.00", totalAssets[4])

	surplus := find("Surplus/(Deficit)")
	require.NotNil(t, surplus)
	assert.Equal(t, "financial_performance", surplus[0])
	assert.Equal(t, "60000.00", surplus[4])

	closing := find("Cash at End of Year")
	require.NotNil(t, closing)
	assert.Equal(t, "cash_flow", closing[0])
	assert.Equal(t, "100000.00", closing[4])
}

func TestArtifactNameRoundTrip(t *testing.T) {
	stamp := time.Date(2026, 3, 31, 17, 2, 10, 0, time.UTC)
	name := ArtifactName("statements", "csv", stamp)
	assert.Equal(t, "statements_20260331_170210.csv", name)

	got, err := ParseArtifactTime(name)
	require.NoError(t, err)
	assert.True(t, got.Equal(stamp))

	_, err = ParseArtifactTime("statements.csv")
	require.Error(t, err)
	_, err = ParseArtifactTime("statements_2026_badstamp.csv")
	require.Error(t, err)
}
