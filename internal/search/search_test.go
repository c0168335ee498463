package search

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hide-utils/hide/internal/errors"
	"github.com/hide-utils/hide/internal/testutil"
)

func TestFindIntendedFile(t *testing.T) {
	t.Run("finds hidden counterpart of missing visible path", func(t *testing.T) {
		dir := testutil.TempDir(t)
		testutil.WriteFile(t, filepath.Join(dir, ".foo.txt"), "x")

		other, found, err := FindIntendedFile(filepath.Join(dir, "foo.txt"), '.')

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, filepath.Join(dir, ".foo.txt"), other)
	})

	t.Run("finds visible counterpart of missing hidden path", func(t *testing.T) {
		dir := testutil.TempDir(t)
		testutil.WriteFile(t, filepath.Join(dir, "foo.txt"), "x")

		other, found, err := FindIntendedFile(filepath.Join(dir, ".foo.txt"), '.')

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, filepath.Join(dir, "foo.txt"), other)
	})

	t.Run("custom marker", func(t *testing.T) {
		dir := testutil.TempDir(t)
		testutil.WriteFile(t, filepath.Join(dir, "~notes"), "x")

		other, found, err := FindIntendedFile(filepath.Join(dir, "notes"), '~')

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, filepath.Join(dir, "~notes"), other)
	})

	t.Run("no counterpart", func(t *testing.T) {
		dir := testutil.TempDir(t)

		other, found, err := FindIntendedFile(filepath.Join(dir, "foo.txt"), '.')

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, other)
	})

	t.Run("relative path", func(t *testing.T) {
		testutil.InTempDir(t, func(dir string) {
			testutil.WriteFile(t, filepath.Join(dir, ".env"), "x")

			other, found, err := FindIntendedFile("env", '.')

			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, ".env", other)
		})
	})

	t.Run("dangling symlink counts as existing", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks need privileges on Windows")
		}
		dir := testutil.TempDir(t)
		require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, ".link")))

		other, found, err := FindIntendedFile(filepath.Join(dir, "link"), '.')

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, filepath.Join(dir, ".link"), other)
	})

	t.Run("path errors propagate", func(t *testing.T) {
		_, _, err := FindIntendedFile("/", '.')

		require.Error(t, err)
		assert.True(t, errors.IsHideError(err, errors.ErrCodeNoFileName))
	})

	t.Run("does not touch the filesystem", func(t *testing.T) {
		dir := testutil.TempDir(t)
		testutil.WriteFile(t, filepath.Join(dir, ".foo.txt"), "x")

		_, _, err := FindIntendedFile(filepath.Join(dir, "foo.txt"), '.')

		require.NoError(t, err)
		assert.Equal(t, []string{".foo.txt"}, testutil.ListDir(t, dir))
	})
}
