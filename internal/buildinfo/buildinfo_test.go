package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	assert.Contains(t, out, "Build version: N/A")
	assert.Contains(t, out, "Build date: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestPrintBuildData_Injected(t *testing.T) {
	origVersion, origDate, origCommit := Version, Date, Commit
	t.Cleanup(func() { Version, Date, Commit = origVersion, origDate, origCommit })

	Version, Date, Commit = "v1.2.3", "2025-01-01", "abc123"

	var buf bytes.Buffer
	PrintBuildData(&buf)

	require.Equal(t, "Build version: v1.2.3\nBuild date: 2025-01-01\nBuild commit: abc123\n", buf.String())
}
