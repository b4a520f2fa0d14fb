// Package archive moves a translation cache out of the way so the next run
// starts from an empty cache.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// now is replaced in tests.
var now = time.Now

// ArchiveCache moves the cache file at path into an archive directory next
// to it, named <name>-<timestamp><ext>. It returns the archived path.
func ArchiveCache(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("cache file does not exist: %s", path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat cache file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("cache path is a directory: %s", path)
	}

	archiveDir := filepath.Join(filepath.Dir(path), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", name, now().Format("20060102-150405"), ext))

	// Same second as an earlier archive
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", name, now().Format("20060102-150405.000000"), ext))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive cache file: %w", err)
	}

	return archivePath, nil
}
