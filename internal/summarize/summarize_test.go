package summarize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthquery/cli/internal/testutil"
)

func TestForFile(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		path string
		want string
	}{
		{"steps.csv", "csv"},
		{"run.GPX", "gpx"},
		{"RIDE.FIT", "fit"},
		{"notes.txt", ""},
		{"archive.csv.bak", ""},
	}
	for _, tc := range cases {
		s := r.ForFile(tc.path)
		if tc.want == "" {
			assert.Nil(t, s, tc.path)
			continue
		}
		require.NotNil(t, s, tc.path)
		assert.Equal(t, tc.want, s.Name(), tc.path)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "b.csv", "Date,HR\n")
	testutil.WriteFile(t, dir, "a.gpx", "<gpx/>")
	testutil.WriteFile(t, dir, "UPPER.CSV", "Date,HR\n")
	testutil.WriteFile(t, dir, "notes.txt", "ignore me")
	// Files in subdirectories are not discovered.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	testutil.WriteFile(t, filepath.Join(dir, "sub"), "nested.csv", "Date\n")

	r := NewRegistry()

	files, err := r.ScanDir(dir, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "UPPER.CSV"),
		filepath.Join(dir, "a.gpx"),
		filepath.Join(dir, "b.csv"),
	}, files)

	files, err = r.ScanDir(dir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.gpx"),
		filepath.Join(dir, "b.csv"),
	}, files)
}

func TestScanDirEmpty(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "readme.md", "nothing to see")

	files, err := NewRegistry().ScanDir(dir, true)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanDirMissing(t *testing.T) {
	_, err := NewRegistry().ScanDir(filepath.Join(t.TempDir(), "nope"), true)
	assert.Error(t, err)
}
