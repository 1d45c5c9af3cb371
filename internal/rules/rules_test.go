package rules

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapmap-dev/grapmap/internal/model"
)

func TestDefaultTableValid(t *testing.T) {
	table := DefaultTable()
	require.NoError(t, table.Validate())
	assert.NotEmpty(t, table.Version)
	assert.NotEmpty(t, table.Rules)
}

func TestOrderedStable(t *testing.T) {
	table := &Table{
		Rules: []Rule{
			{Kind: KindSubstring, Pattern: "b", Code: model.CodeGeneralExpenses, Priority: 30},
			{Kind: KindSubstring, Pattern: "a", Code: model.CodeGeneralExpenses, Priority: 30},
			{Kind: KindSubstring, Pattern: "c", Code: model.CodeGeneralExpenses, Priority: 10},
		},
	}
	ordered := table.Ordered()
	require.Len(t, ordered, 3)
	assert.Equal(t, "c", ordered[0].Pattern)
	// Equal priorities keep file order.
	assert.Equal(t, "b", ordered[1].Pattern)
	assert.Equal(t, "a", ordered[2].Pattern)
}

func TestMatches(t *testing.T) {
	tests := []struct {
		rule  Rule
		label string
		code  string
		want  bool
	}{
		{Rule{Kind: KindExact, Pattern: "petty cash"}, "petty cash", "", true},
		{Rule{Kind: KindExact, Pattern: "petty cash"}, "petty cash float", "", false},
		{Rule{Kind: KindExact, Pattern: "1000"}, "main bank", "1000", true},
		{Rule{Kind: KindSubstring, Pattern: "cash"}, "petty cash float", "", true},
		{Rule{Kind: KindSubstring, Pattern: "cash"}, "bank account", "", false},
		{Rule{Kind: KindKeywords, Keywords: []string{"employee", "benefit"}}, "employee benefit obligation", "", true},
		{Rule{Kind: KindKeywords, Keywords: []string{"employee", "benefit"}}, "employee costs", "", false},
		{Rule{Kind: KindKeywords}, "anything", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.rule.Matches(tt.label, tt.code), "%s vs %q", tt.rule.Describe(), tt.label)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		want  string
	}{
		{
			name:  "empty table",
			table: Table{},
			want:  "empty",
		},
		{
			name: "empty pattern",
			table: Table{Rules: []Rule{
				{Kind: KindSubstring, Pattern: "  ", Code: model.CodeCashAndEquivalents},
			}},
			want: "empty pattern",
		},
		{
			name: "unknown kind",
			table: Table{Rules: []Rule{
				{Kind: "regex", Pattern: "cash", Code: model.CodeCashAndEquivalents},
			}},
			want: "unknown kind",
		},
		{
			name: "unknown code",
			table: Table{Rules: []Rule{
				{Kind: KindSubstring, Pattern: "cash", Code: "NOT_A_CODE"},
			}},
			want: "unknown line item code",
		},
		{
			name: "keywords without keywords",
			table: Table{Rules: []Rule{
				{Kind: KindKeywords, Code: model.CodeCashAndEquivalents},
			}},
			want: "no keywords",
		},
		{
			name: "duplicate exact pattern",
			table: Table{Rules: []Rule{
				{Kind: KindExact, Pattern: "1000", Code: model.CodeCashAndEquivalents},
				{Kind: KindExact, Pattern: "1000", Code: model.CodeInventories},
			}},
			want: "duplicate exact pattern",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, Save(path, DefaultTable()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTable().Version, got.Version)
	assert.Len(t, got.Rules, len(DefaultTable().Rules))
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	bad := &Table{Version: "x", Rules: []Rule{
		{Kind: KindSubstring, Pattern: "cash", Code: "BOGUS"},
	}}
	require.NoError(t, Save(path, bad))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown line item code")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
