package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		opts     FilterOptions
		expected []string
	}{
		{
			name:     "no filter keeps everything",
			opts:     FilterOptions{},
			expected: []string{"group-Brand", "group-Brand/Dark", "group-Spacing", "group-"},
		},
		{
			name:     "search matches group name",
			opts:     FilterOptions{Search: "spac"},
			expected: []string{"group-Spacing"},
		},
		{
			name:     "search matches variable name case-insensitively",
			opts:     FilterOptions{Search: "RADIUS"},
			expected: []string{"group-"},
		},
		{
			name:     "search keeps ancestors of a matching descendant",
			opts:     FilterOptions{Search: "dark"},
			expected: []string{"group-Brand", "group-Brand/Dark"},
		},
		{
			name:     "no match",
			opts:     FilterOptions{Search: "zzz"},
			expected: nil,
		},
		{
			name:     "group key keeps the group and its direct children",
			opts:     FilterOptions{GroupKey: "group-Brand"},
			expected: []string{"group-Brand", "group-Brand/Dark"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newCollection(t, "Brand/Primary", "Brand/Dark/Primary", "Spacing/Small", "Radius")
			rows := Flatten(c.Groups, c.Modes)

			got := Filter(rows, tc.opts)

			assert.Equal(t, tc.expected, nilIfEmpty(keys(got)))
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestFilter_Hidden(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := newCollection(t, "Brand/Primary", "Brand/Dark/Primary", "Brand/Accent", "Spacing/Small")
	c.Groups[0].Hidden = true
	c.Groups[1].Variables[0].Hidden = true
	rows := Flatten(c.Groups, c.Modes)

	// --- Act ---
	viewing := Filter(rows, FilterOptions{})
	editing := Filter(rows, FilterOptions{Editing: true})

	// --- Assert ---
	require.Equal(t, []string{"group-Spacing"}, keys(viewing), "hidden group drops its subtree")
	assert.Empty(t, viewing[0].Variables, "hidden variable is dropped")

	require.Len(t, editing, 3)
	assert.Len(t, editing[2].Variables, 1)
}

func TestFilter_DoesNotMutateRows(t *testing.T) {
	t.Parallel()

	c := newCollection(t, "Brand/Primary", "Brand/Accent")
	c.Groups[0].Variables[0].Hidden = true
	rows := Flatten(c.Groups, c.Modes)

	got := Filter(rows, FilterOptions{})

	require.Len(t, got, 1)
	assert.Len(t, got[0].Variables, 1)
	assert.Len(t, rows[0].Variables, 2)
	assert.NotSame(t, rows[0], got[0])
}
