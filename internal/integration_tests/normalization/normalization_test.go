package integration_tests

import (
	"encoding/json"
	"testing"

	"github.com/specialistvlad/figvars/internal/app"
	"github.com/specialistvlad/figvars/internal/export"
	"github.com/specialistvlad/figvars/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runJSON(t *testing.T, payload string) export.Document {
	t.Helper()

	result := testutil.RunIntegrationTest(t, map[string]string{"vars.json": payload}, app.Config{
		PayloadPath: "vars.json",
		Format:      "json",
	})
	require.NoError(t, result.Err)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(result.Output), &doc))
	return doc
}

func TestNormalization_GroupsByPathAndResolvesAliases(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	payload := testutil.NewPayload().
		Collection("c1", "Brand", "m1", "Light").
		Variable("1", "Colors/Primary/Base", "c1", "COLOR", map[string]string{"m1": `{"r":1,"g":0,"b":0,"a":1}`}).
		Variable("2", "Colors/Accent", "c1", "COLOR", map[string]string{"m1": testutil.Alias("1")}).
		Variable("3", "Spacing", "c1", "FLOAT", map[string]string{"m1": `8`}).
		JSON(t)

	// --- Act ---
	doc := runJSON(t, payload)

	// --- Assert ---
	require.Len(t, doc.Collections, 1)
	coll := doc.Collections[0]
	assert.Equal(t, "Brand", coll.Name)

	require.Len(t, coll.Variables, 1, "root group keeps ungrouped variables")
	assert.Equal(t, "Spacing", coll.Variables[0].Name)

	require.Len(t, coll.Groups, 1)
	colors := coll.Groups[0]
	assert.Equal(t, "Colors", colors.Name)
	require.Len(t, colors.Variables, 1)
	assert.Equal(t, "Accent", colors.Variables[0].Name)
	assert.Equal(t, "{Colors/Primary/Base}", colors.Variables[0].Values["Light"])

	require.Len(t, colors.Groups, 1)
	primary := colors.Groups[0]
	assert.Equal(t, "Primary", primary.Name)
	require.Len(t, primary.Variables, 1)
	base := primary.Variables[0]
	assert.Equal(t, "#ff0000", base.Values["Light"])
	assert.Equal(t, map[string][]string{"Light": {"{Colors/Accent}"}}, base.ReferencedBy)
}

func TestNormalization_RemoteVariablesAreExcluded(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	payload := testutil.NewPayload().
		Collection("c1", "Brand", "m1", "Light").
		Variable("1", "Local", "c1", "STRING", map[string]string{"m1": `"here"`}).
		RemoteVariable("2", "Published/Remote", "c1", "STRING", map[string]string{"m1": `"there"`}).
		JSON(t)

	// --- Act ---
	doc := runJSON(t, payload)

	// --- Assert ---
	require.Len(t, doc.Collections, 1)
	coll := doc.Collections[0]
	assert.Empty(t, coll.Groups)
	require.Len(t, coll.Variables, 1)
	assert.Equal(t, "Local", coll.Variables[0].Name)
}

func TestNormalization_TableRendersEveryMode(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	payload := testutil.NewPayload().
		Collection("c1", "Theme", "m1", "Light", "m2", "Dark").
		Variable("1", "Surface/Background", "c1", "COLOR", map[string]string{
			"m1": `{"r":1,"g":1,"b":1,"a":1}`,
			"m2": `{"r":0,"g":0,"b":0,"a":0.5}`,
		}).
		Variable("2", "Surface/Enabled", "c1", "BOOLEAN", map[string]string{"m1": `true`, "m2": `false`}).
		JSON(t)

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"vars.json": payload}, app.Config{
		PayloadPath: "vars.json",
	})

	// --- Assert ---
	testutil.AssertOutputContains(t, result,
		"Theme", "Light", "Dark", "Surface",
		"#ffffff", "#00000080", "True", "False",
	)
}

func TestNormalization_SearchKeepsMatchingGroups(t *testing.T) {
	t.Parallel()

	payload := testutil.NewPayload().
		Collection("c1", "Theme", "m1", "Light").
		Variable("1", "Surface/Background", "c1", "STRING", map[string]string{"m1": `"white"`}).
		Variable("2", "Text/Body", "c1", "STRING", map[string]string{"m1": `"black"`}).
		JSON(t)

	result := testutil.RunIntegrationTest(t, map[string]string{"vars.json": payload}, app.Config{
		PayloadPath: "vars.json",
		Search:      "body",
	})

	testutil.AssertOutputContains(t, result, "Text", "black")
	assert.NotContains(t, result.Output, "white")
}
