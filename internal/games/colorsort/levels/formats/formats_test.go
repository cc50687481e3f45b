package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
)

func TestParseJSONArray(t *testing.T) {
	data := []byte(`
	[
	  {"rows": [[{"baseHeight": 3, "objects": ["red", "Blue"]}, {"baseHeight": 3, "objects": []}]]},
	  {"rows": [[{"baseHeight": 1, "objects": ["green"]}], [{"baseHeight": 2, "objects": []}]]}
	]`)

	pack, err := ParseJSON(data)
	require.NoError(t, err)
	require.Len(t, pack.Levels, 2)
	assert.Empty(t, pack.ID)

	first := pack.Levels[0].Definition
	assert.Equal(t, []core.Color{core.Red, core.Color("Blue")}, first.Rows[0][0].Objects)
	assert.NotEqual(t, core.Blue, first.Rows[0][0].Objects[1], "color names are kept verbatim")
	assert.Equal(t, 2, first.BaseCount())
	assert.Equal(t, 2, len(pack.Levels[1].Definition.Rows))
}

func TestParseJSONObject(t *testing.T) {
	data := []byte(`{"id": "extra", "name": "Extra", "levels": [{"name": "One", "rows": [[{"baseHeight": 1, "objects": ["red"]}]]}]}`)

	pack, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "extra", pack.ID)
	assert.Equal(t, "Extra", pack.Name)
	assert.Equal(t, "One", pack.Levels[0].Name)
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte(`[{"rows": 5}]`))
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: mini
name: Mini
levels:
  - name: First
    rows:
      - - {base_height: 2, objects: [red, blue]}
        - {base_height: 2}
`)

	pack, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "mini", pack.ID)
	require.Len(t, pack.Levels, 1)

	def := pack.Levels[0].Definition
	assert.Equal(t, 2, def.Rows[0][0].BaseHeight)
	assert.Equal(t, []core.Color{core.Red, core.Blue}, def.Rows[0][0].Objects)
	assert.Empty(t, def.Rows[0][1].Objects)
}

func TestEncodeDecodeDefinition(t *testing.T) {
	def := core.Definition{Rows: [][]core.Cell{
		{{BaseHeight: 2, Objects: []core.Color{core.Red, core.Blue}}, {BaseHeight: 2, Objects: []core.Color{}}},
	}}

	data, err := EncodeDefinition("pair", def)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"pair","rows":[[{"baseHeight":2,"objects":["red","blue"]},{"baseHeight":2,"objects":[]}]]}`, string(data))

	name, decoded, err := DecodeDefinition(data)
	require.NoError(t, err)
	assert.Equal(t, "pair", name)
	assert.Equal(t, def, decoded)
}

func TestPackValidate(t *testing.T) {
	pack := Pack{Levels: []PackLevel{
		{Definition: core.Definition{Rows: [][]core.Cell{{{BaseHeight: 1}}}}},
		{Definition: core.Definition{Rows: [][]core.Cell{{{BaseHeight: 0}}}}},
	}}

	err := pack.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level 2")
}

func TestParseByExtension(t *testing.T) {
	_, err := ParseByExtension([]byte(`[]`), ".json")
	assert.NoError(t, err)

	_, err = ParseByExtension([]byte(`levels: []`), ".yml")
	assert.NoError(t, err)

	_, err = ParseByExtension(nil, ".txt")
	assert.Error(t, err)
}
