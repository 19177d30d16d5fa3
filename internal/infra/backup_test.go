package infra_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheuseschaves/supermarket-tracker/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupCopiesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "supermercado.db")
	require.NoError(t, os.WriteFile(src, []byte("sqlite bytes"), 0o644))

	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	backups := filepath.Join(dir, "backups")

	path, err := infra.Backup(src, backups, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(backups, "supermercado_20240309_140507.db"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite bytes", string(got))

	// same second overwrites
	require.NoError(t, os.WriteFile(src, []byte("newer"), 0o644))
	again, err := infra.Backup(src, backups, now)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	got, err = os.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, "newer", string(got))
}

func TestBackupMissingDatabase(t *testing.T) {
	dir := t.TempDir()

	_, err := infra.Backup(filepath.Join(dir, "nope.db"), filepath.Join(dir, "backups"), time.Now())
	assert.ErrorIs(t, err, infra.ErrNoDatabase)

	_, err = os.Stat(filepath.Join(dir, "backups"))
	assert.True(t, os.IsNotExist(err))
}

func TestListBackupsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "supermercado.db")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))
	backups := filepath.Join(dir, "backups")

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		_, err := infra.Backup(src, backups, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
	}

	files, err := infra.ListBackups(backups)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "supermercado_20240101_100000.db", filepath.Base(files[0]))
	assert.Equal(t, "supermercado_20240101_080000.db", filepath.Base(files[2]))

	none, err := infra.ListBackups(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, none)
}
