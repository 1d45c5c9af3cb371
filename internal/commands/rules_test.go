package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapmap-dev/grapmap/internal/rules"
)

func TestRulesList(t *testing.T) {
	out, err := runGrapmap(t, "rules", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "rule table version")
	assert.Contains(t, out, "substring:petty cash")
	assert.Contains(t, out, "CASH_AND_EQUIVALENTS")
}

func TestRulesCheckMatched(t *testing.T) {
	out, err := runGrapmap(t, "rules", "check", "Petty Cash")
	require.NoError(t, err)

	assert.Contains(t, out, "CASH_AND_EQUIVALENTS")
	assert.Contains(t, out, "petty cash")
}

func TestRulesCheckUnmapped(t *testing.T) {
	out, err := runGrapmap(t, "rules", "check", "Xyz Miscellaneous Holding 9912")
	require.NoError(t, err)

	assert.Contains(t, out, "UNMAPPED")
	assert.Contains(t, out, "xyz miscellaneous holding 9912")
}

func TestRulesListCustomTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, rules.Save(path, rules.DefaultTable()))

	out, err := runGrapmap(t, "rules", "list", "--rules", path)
	require.NoError(t, err)
	assert.Contains(t, out, "rule table version")
}

func TestRulesMissingTable(t *testing.T) {
	_, err := runGrapmap(t, "rules", "list", "--rules", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
