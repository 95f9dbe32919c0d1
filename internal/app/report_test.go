package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/leafsift/internal/domain/classifier"
)

func TestWriteReport_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := ReportPath(dir, "ana_json", "java_leaf")

	records := []classifier.FunctionRecord{
		{
			Code:      "    public static int add(int a, int b) {\n        return a + b;\n    }",
			FilePath:  "Util.java",
			StartLine: 2,
			EndLine:   4,
			IsLeaf:    true,
		},
	}
	require.NoError(t, WriteReport(path, records))

	got, err := ReadReport(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, records[0].Code, got[0].Code)
	assert.Equal(t, "Util.java", got[0].FilePath)
	assert.Equal(t, 2, got[0].StartLine)
	assert.Equal(t, 4, got[0].EndLine)

	// IsLeaf is internal state, never serialized.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "IsLeaf")
}

func TestWriteReport_EmptyList(t *testing.T) {
	dir := t.TempDir()
	path := ReportPath(dir, "ana_json", "python_leaf")

	// A directory with no leaves still gets an artifact: an empty array, not
	// null and not a missing file.
	require.NoError(t, WriteReport(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	got, err := ReadReport(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteReport_CreatesArtifactDir(t *testing.T) {
	dir := t.TempDir()
	path := ReportPath(filepath.Join(dir, "proj"), "ana_json", "java_leaf")

	require.NoError(t, WriteReport(path, nil))
	assert.True(t, ReportExists(filepath.Join(dir, "proj"), "ana_json", "java_leaf"))
}

func TestWriteReport_NoStaleTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := ReportPath(dir, "ana_json", "java_leaf")
	require.NoError(t, WriteReport(path, nil))

	entries, err := os.ReadDir(filepath.Join(dir, "ana_json"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "java_leaf.json", entries[0].Name())
}

func TestWriteReport_IndentedOutput(t *testing.T) {
	dir := t.TempDir()
	path := ReportPath(dir, "ana_json", "java_leaf")

	require.NoError(t, WriteReport(path, []classifier.FunctionRecord{
		{Code: "x", FilePath: "A.java", StartLine: 1, EndLine: 1},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n    {"))
	assert.Contains(t, string(data), `"file_path": "A.java"`)
	assert.Contains(t, string(data), `"start_line": 1`)
	assert.Contains(t, string(data), `"end_line": 1`)
}

func TestReportExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, ReportExists(dir, "ana_json", "java_leaf"))

	require.NoError(t, WriteReport(ReportPath(dir, "ana_json", "java_leaf"), nil))
	assert.True(t, ReportExists(dir, "ana_json", "java_leaf"))
}
