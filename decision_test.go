package prthrottler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecision_WriteOutputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")

	d := Decision{Outcome: OutcomeClosed, OpenCount: 2, AllowedOpen: 1, MergedCount: 7}
	require.NoError(t, d.WriteOutputs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "decision=closed\nopen_count=2\nallowed_open=1\nmerged_count=7\n", string(data))
}

func TestDecision_WriteOutputsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0o644))

	require.NoError(t, Decision{Outcome: OutcomeSkipped}.WriteOutputs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "existing=1\ndecision=skipped\nopen_count=0\nallowed_open=0\nmerged_count=0\n", string(data))
}

func TestDecision_WriteOutputsWithoutPath(t *testing.T) {
	require.NoError(t, Decision{Outcome: OutcomeOK}.WriteOutputs(""))
}
