// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package osext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, DirExists(dir))
	assert.ErrorIs(t, DirExists(file), ErrNotADir)
	assert.ErrorIs(t, DirExists(filepath.Join(dir, "missing")), os.ErrNotExist)
}

func TestEnsureDir(t *testing.T) {
	t.Run("creates missing parents", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b")
		require.NoError(t, EnsureDir(dir))
		assert.DirExists(t, dir)
	})
	t.Run("existing dir", func(t *testing.T) {
		assert.NoError(t, EnsureDir(t.TempDir()))
	})
	t.Run("file in the way", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		err := EnsureDir(file)
		assert.ErrorIs(t, err, ErrNotADir)
		var osErr *Error
		require.ErrorAs(t, err, &osErr)
		assert.Equal(t, file, osErr.File)
	})
}
