package payload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "status": 200,
  "error": false,
  "meta": {
    "variableCollections": {
      "VariableCollectionId:1:0": {
        "id": "VariableCollectionId:1:0",
        "name": "Primitives",
        "modes": [{"modeId": "1:0", "name": "Light"}, {"modeId": "1:1", "name": "Dark"}],
        "defaultModeId": "1:0",
        "remote": false,
        "hiddenFromPublishing": false,
        "variableIds": ["VariableID:1:2"]
      }
    },
    "variables": {
      "VariableID:1:2": {
        "id": "VariableID:1:2",
        "name": "Brand/Primary",
        "key": "abc",
        "variableCollectionId": "VariableCollectionId:1:0",
        "resolvedType": "COLOR",
        "valuesByMode": {
          "1:0": {"r": 1, "g": 0, "b": 0, "a": 1},
          "1:1": {"type": "VARIABLE_ALIAS", "id": "VariableID:9:9"}
        },
        "remote": false,
        "description": "Main brand color",
        "hiddenFromPublishing": false,
        "scopes": ["ALL_FILLS"],
        "codeSyntax": {"WEB": "var(--brand-primary)", "iOS": "Color.brandPrimary"}
      }
    }
  }
}`

func TestDecode(t *testing.T) {
	t.Parallel()

	resp, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.Status)
	require.Len(t, resp.Meta.VariableCollections, 1)
	coll := resp.Meta.VariableCollections["VariableCollectionId:1:0"]
	require.NotNil(t, coll)
	assert.Equal(t, "Primitives", coll.Name)
	assert.Equal(t, []Mode{{ModeID: "1:0", Name: "Light"}, {ModeID: "1:1", Name: "Dark"}}, coll.Modes)

	v := resp.Meta.Variables["VariableID:1:2"]
	require.NotNil(t, v)
	assert.Equal(t, "COLOR", v.ResolvedType)
	assert.JSONEq(t, `{"type": "VARIABLE_ALIAS", "id": "VariableID:9:9"}`, string(v.ValuesByMode["1:1"]))
	assert.Equal(t, "var(--brand-primary)", v.CodeSyntax.Web)
	assert.Equal(t, "Color.brandPrimary", v.CodeSyntax.IOS)
	assert.Empty(t, v.CodeSyntax.Android)
}

func TestDecode_EmptyMeta(t *testing.T) {
	t.Parallel()

	resp, err := Decode(strings.NewReader(`{"status":200,"meta":{}}`))
	require.NoError(t, err)
	assert.NotNil(t, resp.Meta.Variables)
	assert.NotNil(t, resp.Meta.VariableCollections)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"meta": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode variables payload")
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "variables.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0600))

	resp, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, resp.Meta.Variables, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open payload")
}
