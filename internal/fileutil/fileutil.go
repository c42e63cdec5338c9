// Package fileutil provides copy, backup, and path allocation helpers for
// the organize phase.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CopyFile streams src to dst with default permissions (0o644).
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// CopyFileVerified streams src to dst and verifies the destination size
// against the source. The corrupted destination is removed on mismatch.
func CopyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	if err := CopyFile(src, dst); err != nil {
		return err
	}

	dstInfo, err := os.Stat(dst)
	if err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("stat destination: %w", err)
	}
	if dstInfo.Size() != srcInfo.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), dstInfo.Size())
	}
	return nil
}

// BackupAside renames path out of the way using a timestamped backup name,
// probing numbered suffixes when the backup name itself is taken. It returns
// the backup path, or "" when path does not exist.
func BackupAside(path string, now time.Time) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("stat existing file: %w", err)
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	name := fmt.Sprintf("%s_backup_%s%s", stem, now.Format("020106_1504"), ext)
	backup, err := NextAvailable(filepath.Join(filepath.Dir(path), name))
	if err != nil {
		return "", err
	}
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("move existing file aside: %w", err)
	}
	return backup, nil
}

// NextAvailable returns path if nothing exists there, otherwise the first
// "<stem>_<n><ext>" variant that is free. Probing is bounded.
func NextAvailable(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	const maxAttempts = 100
	for n := 1; n <= maxAttempts; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free path variant for %s", path)
}
