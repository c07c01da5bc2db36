package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"talknotes/internal/catalog"
	"talknotes/internal/fileutil"
	"talknotes/internal/logging"
)

// LoadResult describes how a snapshot was obtained.
type LoadResult struct {
	// Fresh is true when no usable snapshot existed and an empty graph was returned.
	Fresh bool
	// Reason explains a fresh start ("not found", "unreadable", "corrupt").
	Reason string
}

// Options configures Open.
type Options struct {
	Lock   bool
	Logger *slog.Logger
	// Now stamps saved snapshots; defaults to time.Now.
	Now func() time.Time
}

// Store is one invocation's handle on the snapshot file.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
	now    func() time.Time
}

// Open prepares the snapshot at path, taking the advisory lock when requested.
func Open(path string, opts Options) (*Store, error) {
	logger := logging.NewComponentLogger(opts.Logger, "store")
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &Store{path: path, logger: logger, now: now}

	if !opts.Lock {
		return s, nil
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create metadata directory %q: %w", dir, err)
		}
	}
	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, lockPath)
	}
	s.lock = lock
	logger.Debug("acquired metadata lock", logging.String(logging.FieldPath, lockPath))
	return s, nil
}

// Path returns the snapshot path.
func (s *Store) Path() string { return s.path }

// Load reads the snapshot.
func (s *Store) Load() (*catalog.Graph, LoadResult, error) {
	return load(s.path, s.logger)
}

// Save rewrites the snapshot with g.
func (s *Store) Save(g *catalog.Graph) error {
	return save(s.path, g, s.now(), s.logger)
}

// Close releases the advisory lock.
func (s *Store) Close() error {
	if s.lock == nil {
		return nil
	}
	if err := s.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	s.lock = nil
	return nil
}

// Load reads the snapshot at path without locking.
func Load(path string, logger *slog.Logger) (*catalog.Graph, LoadResult, error) {
	return load(path, logging.NewComponentLogger(logger, "store"))
}

// Save writes g to path without locking.
func Save(path string, g *catalog.Graph, logger *slog.Logger) error {
	return save(path, g, time.Now(), logging.NewComponentLogger(logger, "store"))
}

func load(path string, logger *slog.Logger) (*catalog.Graph, LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		reason := "unreadable"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "not found"
		} else {
			logging.WarnWithContext(logger, "metadata unreadable, starting empty", "metadata_unreadable",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check file permissions"),
				logging.String(logging.FieldImpact, "next save moves it to "+fileutil.CorruptPath(path)))
		}
		return catalog.New(), LoadResult{Fresh: true, Reason: reason}, nil
	}

	g, err := decodeSnapshot(path, data)
	if err != nil {
		var versionErr *VersionError
		if errors.As(err, &versionErr) {
			return nil, LoadResult{}, err
		}
		return corrupt(path, err, logger)
	}

	logger.Debug("loaded metadata",
		logging.String(logging.FieldPath, path),
		logging.Int("people", len(g.People)))
	return g, LoadResult{}, nil
}

// decodeSnapshot parses a snapshot document and checks its invariants.
func decodeSnapshot(path string, data []byte) (*catalog.Graph, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.SchemaVersion > SchemaVersion {
		return nil, &VersionError{Path: path, Version: doc.SchemaVersion}
	}
	if doc.SchemaVersion < 1 {
		return nil, errors.New("missing schema_version")
	}
	return decodeGraph(doc)
}

// intact reports whether the file at path holds a snapshot worth keeping as
// the backup. Snapshots from a newer schema count as intact.
func intact(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	_, err = decodeSnapshot(path, data)
	var versionErr *VersionError
	return err == nil || errors.As(err, &versionErr)
}

func corrupt(path string, cause error, logger *slog.Logger) (*catalog.Graph, LoadResult, error) {
	logging.WarnWithContext(logger, "metadata corrupt, starting empty", "metadata_corrupt",
		logging.String(logging.FieldPath, path),
		logging.Error(cause),
		logging.String(logging.FieldErrorHint, "restore from "+fileutil.BackupPath(path)+" if it holds an older snapshot"),
		logging.String(logging.FieldImpact, "next save moves the damaged file to "+fileutil.CorruptPath(path)))
	return catalog.New(), LoadResult{Fresh: true, Reason: "corrupt"}, nil
}

func save(path string, g *catalog.Graph, now time.Time, logger *slog.Logger) error {
	data, err := json.MarshalIndent(encodeGraph(g, now), "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	data = append(data, '\n')

	backupPath := ""
	exists, err := fileutil.Exists(path)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	switch {
	case exists && intact(path):
		backupPath = fileutil.BackupPath(path)
		if err := os.Rename(path, backupPath); err != nil {
			return &SaveError{Path: path, Err: fmt.Errorf("back up previous snapshot: %w", err)}
		}
	case exists:
		// A damaged snapshot must not replace the last good backup.
		damagedPath := fileutil.CorruptPath(path)
		if err := os.Rename(path, damagedPath); err != nil {
			return &SaveError{Path: path, Err: fmt.Errorf("move damaged snapshot aside: %w", err)}
		}
		if ok, _ := fileutil.Exists(fileutil.BackupPath(path)); ok {
			backupPath = fileutil.BackupPath(path)
		}
		logging.WarnWithContext(logger, "damaged metadata moved aside", "metadata_quarantined",
			logging.String(logging.FieldPath, path),
			logging.String("moved_to", damagedPath),
			logging.String(logging.FieldErrorHint, "inspect "+damagedPath+" and compare with "+fileutil.BackupPath(path)),
			logging.String(logging.FieldImpact, "the previous backup is kept unchanged"))
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return &SaveError{Path: path, BackupPath: backupPath, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &SaveError{Path: path, BackupPath: backupPath, Err: err}
	}

	logger.Debug("saved metadata",
		logging.String(logging.FieldPath, path),
		logging.String("backup", backupPath),
		logging.Int("people", len(g.People)))
	return nil
}
