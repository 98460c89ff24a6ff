package pins

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board-stubgen/internal/stub"
)

const pinsC = `#include "shared-bindings/board/__init__.h"

STATIC const mp_rom_map_elem_t board_module_globals_table[] = {
    CIRCUITPYTHON_BOARD_DICT_STANDARD_ITEMS

    { MP_ROM_QSTR(MP_QSTR_A0), MP_ROM_PTR(&pin_GPIO26) },
    { MP_ROM_QSTR(MP_QSTR_LED), MP_ROM_PTR(&pin_GPIO13) },
    {MP_ROM_QSTR(MP_QSTR_DISPLAY),MP_ROM_PTR(&displays[0].display)},
    { MP_ROM_QSTR(MP_QSTR_I2C), MP_ROM_PTR(&board_i2c_obj) },
    { MP_ROM_QSTR(MP_QSTR_BUTTON), MP_ROM_PTR(&board_button_obj) },
    { MP_ROM_QSTR(MP_QSTR_STEMMA_I2C), MP_ROM_PTR(&board_i2c_obj) },
    // { MP_ROM_QSTR(MP_QSTR_COMMENTED), MP_ROM_PTR(&pin_GPIO0) },
    { MP_ROM_QSTR(MP_QSTR_I2C), MP_ROM_PTR(&board_i2c_obj) },
};

MP_DEFINE_CONST_DICT(board_module_globals, board_module_globals_table);
`

const generic = `def I2C() -> busio.I2C:
    ...

def STEMMA_I2C() -> busio.I2C:
    ...

def BUTTON() -> keypad.Keys:
    ...
`

func newTestExtractor(t *testing.T, src string) *Extractor {
	t.Helper()

	g, _ := stub.NewParser(stub.DefinitionHeader).Parse([]byte(src))

	return NewExtractor(TableEntry, g)
}

func TestExtract(t *testing.T) {
	res, err := newTestExtractor(t, generic).Extract(strings.NewReader(pinsC))
	require.NoError(t, err)

	assert.Equal(t, []string{"busio", "displayio", "microcontroller"}, res.Imports)
	assert.Equal(t, []Declaration{
		{Name: "A0", Value: "&pin_GPIO26", Kind: KindPin},
		{Name: "LED", Value: "&pin_GPIO13", Kind: KindPin},
		{Name: "DISPLAY", Value: "&displays[0].display", Kind: KindDisplay},
	}, res.Pins)

	require.Len(t, res.Generic, 3)
	assert.Equal(t, "I2C", res.Generic[0].Name)
	assert.Equal(t, "BUTTON", res.Generic[1].Name)
	assert.Equal(t, "STEMMA_I2C", res.Generic[2].Name)
	assert.Equal(t, "def I2C() -> busio.I2C:\n    ...\n\n", res.Generic[0].Text)

	assert.Equal(t, "import busio\nimport displayio\nimport microcontroller\n", res.ImportLines())
	assert.Equal(t, "A0: microcontroller.Pin = ...\n"+
		"LED: microcontroller.Pin = ...\n"+
		"DISPLAY: displayio.Display = ...\n", res.DeclarationLines())
}

func TestExtractGenericNeverInferred(t *testing.T) {
	res, err := newTestExtractor(t, generic).Extract(strings.NewReader(pinsC))
	require.NoError(t, err)

	for _, g := range res.Generic {
		for _, p := range res.Pins {
			assert.NotEqual(t, g.Name, p.Name)
		}
		assert.NotContains(t, res.DeclarationLines(), g.Name+": ")
	}
}

func TestExtractWithoutGeneric(t *testing.T) {
	res, err := NewExtractor(TableEntry, nil).Extract(strings.NewReader(pinsC))
	require.NoError(t, err)

	assert.Empty(t, res.Generic)
	assert.Equal(t, []string{"displayio", "microcontroller", "typing"}, res.Imports)
	assert.Contains(t, res.DeclarationLines(), "I2C: typing.Any = ...\n")
	assert.Contains(t, res.DeclarationLines(), "BUTTON: typing.Any = ...\n")
	assert.Equal(t, 3, strings.Count(res.DeclarationLines(), "I2C: typing.Any = ...\n"),
		"I2C twice plus STEMMA_I2C")
}

func TestExtractGenericWithoutBus(t *testing.T) {
	src := "{ MP_ROM_QSTR(MP_QSTR_BUTTON), MP_ROM_PTR(&board_button_obj) },\n"

	res, err := newTestExtractor(t, generic).Extract(strings.NewReader(src))
	require.NoError(t, err)

	assert.Empty(t, res.Imports)
	assert.Empty(t, res.Pins)
	require.Len(t, res.Generic, 1)
	assert.Equal(t, "BUTTON", res.Generic[0].Name)
}

func TestExtractNoEntries(t *testing.T) {
	res, err := newTestExtractor(t, generic).Extract(strings.NewReader("// nothing here\n"))
	require.NoError(t, err)

	assert.Empty(t, res.Imports)
	assert.Empty(t, res.Pins)
	assert.Empty(t, res.Generic)
	assert.Empty(t, res.ImportLines())
	assert.Empty(t, res.DeclarationLines())
}

func TestExtractFile(t *testing.T) {
	fsys := fstest.MapFS{
		"boards/test/pins.c": &fstest.MapFile{
			Data: []byte("{ MP_ROM_QSTR(MP_QSTR_LED), MP_ROM_PTR(&pin_GPIO1) },\n"),
		},
	}

	res, err := NewExtractor(TableEntry, nil).ExtractFile(fsys, "boards/test/pins.c")
	require.NoError(t, err)
	assert.Equal(t, []string{"microcontroller"}, res.Imports)
	assert.Equal(t, "LED: microcontroller.Pin = ...\n", res.DeclarationLines())

	_, err = NewExtractor(TableEntry, nil).ExtractFile(fsys, "boards/missing/pins.c")
	require.Error(t, err)
}
