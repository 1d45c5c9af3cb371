package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapmap-dev/grapmap/internal/rules"
)

func runGrapmap(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, err := runGrapmap(t, "init", dir, "--name", "Demo Water Board")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized grapmap project")

	for _, d := range []string{"input", "reports"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runGrapmap(t, "init", dir, "--name", "Demo Water Board")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "grapmap.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Demo Water Board")
	assert.Contains(t, contents, "entity_type: public_entity")
	assert.Contains(t, contents, "year_end: 03-31")
}

func TestInit_RuleTable(t *testing.T) {
	dir := t.TempDir()
	_, err := runGrapmap(t, "init", dir, "--name", "Demo Water Board")
	require.NoError(t, err)

	table, err := rules.Load(filepath.Join(dir, "rules.yaml"))
	require.NoError(t, err)
	assert.Equal(t, len(rules.DefaultTable().Rules), len(table.Rules))
	require.NoError(t, table.Validate())
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runGrapmap(t, "init", dir)
	require.Error(t, err, "init without --name should fail")
}

func TestInit_CustomEntityType(t *testing.T) {
	dir := t.TempDir()
	_, err := runGrapmap(t, "init", dir, "--name", "Demo", "--entity-type", "municipality")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "grapmap.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "entity_type: municipality")
}
