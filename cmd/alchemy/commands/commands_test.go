// SPDX-License-Identifier: MIT

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree in an empty directory with colors off.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, _, err := run(t, "classify", "NaCl", "Al(OH)3 + K2Cr2O7", "-j", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ NaCl: salt (normal)")
	assert.Contains(t, out, "  Na: +1")
	assert.Contains(t, out, "✓ Al(OH)3: base")
	assert.Contains(t, out, "  OH: -1 ×3 [O -2, H +1]")
	assert.Contains(t, out, "✓ K2Cr2O7: salt (normal)")
	assert.Contains(t, out, "  Cr2O7: -2 ×1 [Cr2 +6, O7 -2]")

	out, _, err = run(t, "classify", "H2SO4")
	require.NoError(t, err)
	assert.Contains(t, out, "  S1O4: -2 ×1 (residue)")
}

func TestClassifyCommand_Failures(t *testing.T) {
	out, errOut, err := run(t, "classify", "NaCl", "NaCl2")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 substances could not be classified", err.Error())
	assert.Contains(t, out, "NaCl2: substance: unknown substance")
	assert.Contains(t, errOut, "1 of 2 substances")

	_, errOut, err = run(t, "classify", "NACL")
	require.Error(t, err)
	assert.Equal(t, "Invalid formula", err.Error())
	assert.Contains(t, errOut, "unknown element")

	_, _, err = run(t, "classify")
	require.Error(t, err)
}

func TestReactCommand(t *testing.T) {
	out, _, err := run(t, "react", "Na", "H2O")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Na + H2O -> NaOH + H2")
	assert.Contains(t, out, "  kind: substitution")
	assert.Contains(t, out, "  NaOH: base")

	out, _, err = run(t, "react", "Fe + O2")
	require.NoError(t, err)
	assert.Contains(t, out, "Fe + O2 -> no reaction")

	out, _, err = run(t, "react", "Fe + O2", "--heat")
	require.NoError(t, err)
	assert.Contains(t, out, "Fe + O2 -(t)-> Fe2O3")

	_, _, err = run(t, "react", "NaCl", "H2O")
	require.Error(t, err)
	assert.Equal(t, "Cannot predict reaction", err.Error())
}

func TestElementCommand(t *testing.T) {
	out, _, err := run(t, "element", "Fe")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Fe")
	assert.Contains(t, out, "  charge: 26")
	assert.Contains(t, out, "  valencies: [2 3]")
	assert.Contains(t, out, "  metal: true")

	out, _, err = run(t, "element")
	require.NoError(t, err)
	assert.Contains(t, out, "99 elements: H He Li")

	_, _, err = run(t, "element", "Fe", "Qq")
	require.Error(t, err)
	assert.Equal(t, "Unknown element: Qq", err.Error())
}

func TestConfigAndTable(t *testing.T) {
	dir := t.TempDir()
	table := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(table, []byte(`elements:
  - {symbol: "Na", charge: 11, group: 1, period: 3, a_rm: 22.99, valencies: [1], electronegativity: 0.93}
  - {symbol: "Cl", charge: 17, group: 17, period: 3, a_rm: 35.45, valencies: [1, 3, 5, 7], electronegativity: 3.16}
`), 0o600))
	cfgPath := filepath.Join(dir, "alchemy.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("table: "+table+"\nlog_level: debug\n"), 0o600))

	out, errOut, err := run(t, "--config", cfgPath, "element")
	require.NoError(t, err)
	assert.Contains(t, out, "2 elements: Na Cl")
	assert.Contains(t, errOut, "periodic table loaded")

	out, errOut, err = run(t, "--config", cfgPath, "classify", "NaCl")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ NaCl: salt")
	assert.Contains(t, errOut, "recognizer=salt")

	_, _, err = run(t, "--config", cfgPath, "--log-level", "loud", "element")
	require.Error(t, err)

	_, _, err = run(t, "--table", filepath.Join(dir, "missing.yaml"), "element")
	require.Error(t, err)
	assert.Equal(t, "Cannot load periodic table", err.Error())
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3 (commit: abc, built: today)")
}
