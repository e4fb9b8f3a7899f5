// SPDX-License-Identifier: MIT

package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Plain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut, false)

	p.Success("NaCl is a %s\n", "salt")
	p.Success("✓ done\n")
	p.Info("%d terms\n", 2)
	p.Warning("slow\n")
	p.Step("classify\n")
	p.Field("class", "salt")

	assert.Equal(t, "✓ NaCl is a salt\n✓ done\n2 terms\n⚠️  slow\n→ classify\n  class: salt\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestPrinter_Color(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out, true)
	p.Success("ok")
	assert.Contains(t, out.String(), "\x1b[32m")
}

func TestPrinter_Error(t *testing.T) {
	t.Run("single suggestion", func(t *testing.T) {
		var errOut bytes.Buffer
		err := New(&bytes.Buffer{}, &errOut, false).Error("Unknown substance", "NaCl2 balances no class", []string{"check the formula"})
		require.Error(t, err)
		assert.Equal(t, "Unknown substance", err.Error())
		assert.Equal(t, "Unknown substance\n\nNaCl2 balances no class\n\ncheck the formula\n", errOut.String())
	})

	t.Run("several suggestions", func(t *testing.T) {
		var errOut bytes.Buffer
		err := New(&bytes.Buffer{}, &errOut, false).Error("Bad", "", []string{"one", "two"})
		require.Error(t, err)
		assert.Equal(t, "Bad\n\nEither:\n  1. one\n  2. two\n", errOut.String())
	})
}
