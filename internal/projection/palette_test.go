package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		modeRef      string
		expectedMode string
	}{
		{name: "by id", modeRef: "m2", expectedMode: "m2"},
		{name: "by name", modeRef: "Dark", expectedMode: "m2"},
		{name: "unknown falls back to default", modeRef: "Sepia", expectedMode: "m1"},
		{name: "empty falls back to default", modeRef: "", expectedMode: "m1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newCollection(t, "Color/Red", "Color/Blue")

			view := Palette(c, tc.modeRef, false)

			assert.Equal(t, tc.expectedMode, view.ActiveModeID)
			assert.Equal(t, "Tokens", view.Name)
			assert.Len(t, view.Modes, 2)
		})
	}
}

func TestPalette_Sections(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := newCollection(t, "Color/Red/500", "Color/White", "Secret/Token", "Gap")
	c.Groups[1].Hidden = true
	c.Groups[0].Variables[0].Hidden = true

	// --- Act ---
	viewing := Palette(c, "", false)
	editing := Palette(c, "", true)

	// --- Assert ---
	require.Len(t, viewing.Sections, 2)
	color := viewing.Sections[0]
	assert.Equal(t, "group-Color", color.Key)
	assert.Empty(t, color.Variables)
	require.Len(t, color.Sections, 1)
	assert.Equal(t, "Red", color.Sections[0].Name)
	assert.Equal(t, 1, color.Sections[0].Depth)
	assert.Equal(t, "group-", viewing.Sections[1].Key)

	require.Len(t, editing.Sections, 3)
	assert.Len(t, editing.Sections[0].Variables, 1)
}
