package store

import (
	"errors"
	"fmt"
)

// ErrLocked is returned by Open when another invocation holds the snapshot lock.
var ErrLocked = errors.New("metadata is locked by another talknotes process")

// SaveError reports a failed snapshot write. The previous snapshot, if there
// was one, is left at BackupPath.
type SaveError struct {
	Path       string
	BackupPath string
	Err        error
}

func (e *SaveError) Error() string {
	if e.BackupPath == "" {
		return fmt.Sprintf("Error saving metadata to %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("Error saving metadata, old metadata is saved at %s: %v", e.BackupPath, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// VersionError reports a snapshot written by a newer schema than this build reads.
type VersionError struct {
	Path    string
	Version int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("metadata %s uses schema version %d; this build reads up to %d", e.Path, e.Version, SchemaVersion)
}
