package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertOutputContains checks that every fragment appears in the rendered
// output of a successful run.
func AssertOutputContains(t *testing.T, result *HarnessResult, fragments ...string) {
	t.Helper()

	require.NoError(t, result.Err, "run failed unexpectedly")
	for _, f := range fragments {
		require.True(t,
			strings.Contains(result.Output, f),
			"expected output to contain %q, got:\n%s", f, result.Output,
		)
	}
}

// AssertFailedWithoutOutput checks that the run failed with an error
// mentioning fragment and rendered nothing.
func AssertFailedWithoutOutput(t *testing.T, result *HarnessResult, fragment string) {
	t.Helper()

	require.Error(t, result.Err, "run should have failed")
	require.Contains(t, result.Err.Error(), fragment)
	require.Empty(t, result.Output, "a failed run must not render partial output")
}
