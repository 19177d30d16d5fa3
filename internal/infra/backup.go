package infra

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// BackupStampLayout is the compact date-time stamp appended to backup files.
const BackupStampLayout = "20060102_150405"

// ErrNoDatabase is returned when there is no database file to back up.
var ErrNoDatabase = errors.New("arquivo do banco de dados não encontrado")

// Backup copies the database file at dbPath into dir as
// <stem>_YYYYMMDD_HHMMSS<ext>, creating dir if needed. The copy keeps the
// source modification time. Returns the path of the new file.
func Backup(dbPath, dir string, now time.Time) (string, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoDatabase
		}
		return "", fmt.Errorf("backup: stat database: %w", err)
	}
	if info.IsDir() {
		return "", ErrNoDatabase
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("backup: create dir: %w", err)
	}

	base := filepath.Base(dbPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".db"
	}
	target := filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, now.Format(BackupStampLayout), ext))

	if err := copyFile(dbPath, target, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}
	_ = os.Chtimes(target, info.ModTime(), info.ModTime())

	log.Info().Str("path", target).Msg("database backup created")
	return target, nil
}

func copyFile(src, dst string, perm os.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// ListBackups returns the backup files in dir, newest first.
func ListBackups(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for i := len(entries) - 1; i >= 0; i-- {
		if e := entries[i]; !e.IsDir() {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
