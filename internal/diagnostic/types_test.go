package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Code: CodeMissingPins, Message: "no pins.c next to board config"}
	assert.Equal(t, "[BOARD_MISSING_PINS] no pins.c next to board config", d.String())

	d.Board = "feather_m0"
	d.File = "ports/atmel-samd/boards/feather_m0/mpconfigboard.mk"
	assert.Equal(t, "[feather_m0] ports/atmel-samd/boards/feather_m0/mpconfigboard.mk: "+
		"[BOARD_MISSING_PINS] no pins.c next to board config", d.String())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo(CodeExcludedBoard, "excluded", "x", "")
	b.AddWarning(CodeDuplicateDefinition, "duplicate", "", "stub.pyi")
	b.AddInfo(CodeMissingPins, "missing", "y", "")

	a.Merge(b)

	assert.Equal(t, 3, a.Len())
	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityWarning, all[0].Severity)
	assert.Equal(t, "warning", all[0].Severity.String())
	assert.Equal(t, "info", all[1].Severity.String())

	assert.Len(t, a.WithCode(CodeMissingPins), 1)
	assert.Empty(t, a.WithCode("NOPE"))
	assert.Equal(t, "unknown", Severity(9).String())
}
