package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BackupSuffix is inserted before the extension to name the one-generation backup.
const BackupSuffix = "_temp"

// CorruptSuffix names the sibling a damaged snapshot is moved to so that it
// never replaces the backup.
const CorruptSuffix = "_corrupt"

// BackupPath derives the sibling backup for path by inserting BackupSuffix
// before the extension: "meta.json" becomes "meta_temp.json" and "meta"
// becomes "meta_temp".
func BackupPath(path string) string {
	return withSuffix(path, BackupSuffix)
}

// CorruptPath derives the sibling for a damaged snapshot: "meta.json"
// becomes "meta_corrupt.json".
func CorruptPath(path string) string {
	return withSuffix(path, CorruptSuffix)
}

func withSuffix(path, suffix string) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	if ext == base {
		// Dotfiles such as ".talks" have no stem to separate.
		ext = ""
	}
	stem := strings.TrimSuffix(base, ext)
	return dir + stem + suffix + ext
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFirst writes data to the first candidate path that accepts it and
// returns that path. Every failure is returned joined when no candidate works.
func WriteFirst(candidates []string, data []byte, mode os.FileMode) (string, error) {
	if len(candidates) == 0 {
		return "", errors.New("no candidate paths")
	}
	var errs []error
	for _, path := range candidates {
		if err := os.WriteFile(path, data, mode); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", path, err))
			continue
		}
		return path, nil
	}
	return "", errors.Join(errs...)
}
