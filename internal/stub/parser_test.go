package stub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board-stubgen/internal/diagnostic"
)

const genericStub = `"""Board specific pin names"""
from __future__ import annotations

import busio

def I2C() -> busio.I2C:
    """Returns the busio.I2C object for the board's designated I2C bus(es)."""
    ...

def SPI() -> busio.SPI:
    """Returns the busio.SPI object for the board's designated SPI bus(es)."""
    ...

def UART() -> busio.UART:
    ...
`

func TestParse(t *testing.T) {
	g, diags := NewParser(DefinitionHeader).Parse([]byte(genericStub))
	require.NotNil(t, g)
	assert.Zero(t, diags.Len())

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"I2C", "SPI", "UART"}, g.Names())

	i2c, ok := g.Lookup("I2C")
	require.True(t, ok)
	assert.Equal(t, "def I2C() -> busio.I2C:\n"+
		"    \"\"\"Returns the busio.I2C object for the board's designated I2C bus(es).\"\"\"\n"+
		"    ...\n"+
		"\n", i2c)

	uart, ok := g.Lookup("UART")
	require.True(t, ok)
	assert.Equal(t, "def UART() -> busio.UART:\n    ...\n", uart)

	_, ok = g.Lookup("LED")
	assert.False(t, ok)
}

func TestParseSpansAreExact(t *testing.T) {
	src := "preamble\ndef A(x):\n  a\ndef B():\n  b\n  b2"

	g, _ := NewParser(DefinitionHeader).Parse([]byte(src))

	a, _ := g.Lookup("A")
	b, _ := g.Lookup("B")
	assert.Equal(t, "def A(x):\n  a\n", a)
	assert.Equal(t, "def B():\n  b\n  b2", b)
	assert.Equal(t, src, "preamble\n"+a+b)
}

func TestParseNoHeaders(t *testing.T) {
	for _, src := range []string{"", "import busio\n", "  def indented():\n", "define X(\n"} {
		g, diags := NewParser(DefinitionHeader).Parse([]byte(src))
		assert.Zero(t, g.Len(), "source %q", src)
		assert.Zero(t, diags.Len())
	}
}

func TestParseDuplicateLastWins(t *testing.T) {
	src := "def LED():\n    first\ndef LED():\n    second\n"

	g, diags := NewParser(DefinitionHeader).Parse([]byte(src))

	led, ok := g.Lookup("LED")
	require.True(t, ok)
	assert.Equal(t, "def LED():\n    second\n", led)

	dups := diags.WithCode(diagnostic.CodeDuplicateDefinition)
	require.Len(t, dups, 1)
	assert.Equal(t, diagnostic.SeverityWarning, dups[0].Severity)
	assert.Contains(t, dups[0].Message, `"LED"`)
	assert.Contains(t, dups[0].Message, "line 3")
}

func TestParseCRLF(t *testing.T) {
	g, _ := NewParser(DefinitionHeader).Parse([]byte("def A():\r\n  ...\r\ndef B():\r\n"))

	a, _ := g.Lookup("A")
	assert.Equal(t, "def A():\r\n  ...\r\n", a)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "__init__.pyi")
	require.NoError(t, os.WriteFile(path, []byte(genericStub), 0o644))

	g, diags, err := NewParser(DefinitionHeader).ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.Empty(t, diags.Warnings)

	_, _, err = NewParser(DefinitionHeader).ParseFile(filepath.Join(t.TempDir(), "missing.pyi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading generic stub")
}

func TestNilGeneric(t *testing.T) {
	var g *Generic

	_, ok := g.Lookup("I2C")
	assert.False(t, ok)
	assert.Zero(t, g.Len())
	assert.Nil(t, g.Names())
}
