package notebook

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"talknotes/internal/catalog"
	"talknotes/internal/editor"
	"talknotes/internal/fileutil"
	"talknotes/internal/logging"
	"talknotes/internal/notes"
)

const noteExt = ".txt"

// WarnEditorAborted is reported when a new-talk editor session returns no text.
const WarnEditorAborted = "Editor session returned no text, no note file was written"

// Report summarizes the outcome of an authoring flow for the user.
type Report struct {
	// Path is the note file written or edited; empty when nothing was written.
	Path string
	// Fallback is true when a new note could not be written to its folder.
	Fallback bool
	Warnings []string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for default dates and fallback names.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithWorkDir sets the last-resort directory for new notes. Defaults to the
// process working directory.
func WithWorkDir(dir string) Option {
	return func(s *Service) {
		s.workDir = dir
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logging.NewComponentLogger(logger, "notebook")
	}
}

// Service authors talk notes under a database root.
type Service struct {
	editor       editor.Editor
	databasePath string
	workDir      string
	now          func() time.Time
	logger       *slog.Logger
}

// New constructs a Service rooted at databasePath.
func New(ed editor.Editor, databasePath string, opts ...Option) *Service {
	s := &Service{
		editor:       ed,
		databasePath: databasePath,
		now:          time.Now,
		logger:       logging.NewComponentLogger(nil, "notebook"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FolderPath returns the note folder for person.
func (s *Service) FolderPath(person *catalog.Person) string {
	return filepath.Join(s.databasePath, person.FolderName)
}

// NotePath returns the note file for a talk of person.
func (s *Service) NotePath(person *catalog.Person, talkID int) string {
	return filepath.Join(s.FolderPath(person), fmt.Sprintf("%d%s", talkID, noteExt))
}

// AddTalk appends a talk dated today to person and authors its note.
func (s *Service) AddTalk(ctx context.Context, person *catalog.Person) (*catalog.Talk, Report, error) {
	folder := s.FolderPath(person)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		// The note write below falls back to other locations.
		logging.WarnWithContext(s.logger, "cannot create person folder", "folder_create_failed",
			logging.String(logging.FieldPath, folder),
			logging.Error(err),
			logging.String(logging.FieldImpact, "note will be written to a fallback location"))
	}

	talk := person.NewTalk(s.now())
	report, err := s.EditTalk(ctx, person, talk.ID, true)
	return talk, report, err
}

// EditTalk authors the note of an existing talk. New-talk mode starts the
// editor from the dated template and writes a fresh note file; otherwise the
// existing note file is edited in place and re-read.
func (s *Service) EditTalk(ctx context.Context, person *catalog.Person, talkID int, isNewTalk bool) (Report, error) {
	if talkID < 0 || talkID >= len(person.Talks) {
		return Report{}, &catalog.NotFoundError{PersonID: person.ID, PersonName: person.DisplayName(), TalkID: talkID, Talk: true}
	}
	talk := person.Talks[talkID]
	today := s.now()
	logger := s.logger.With(logging.Int(logging.FieldPersonID, person.ID), logging.Int(logging.FieldTalkID, talkID))

	var (
		report Report
		text   string
	)
	if isNewTalk {
		edited, err := s.editor.EditText(ctx, notes.Template(today))
		if err != nil {
			logger.Debug("editor session failed", logging.Error(err))
		}
		if err != nil || strings.TrimSpace(edited) == "" {
			report.Warnings = append(report.Warnings, WarnEditorAborted)
		} else {
			text = edited
			path, fallback, err := s.writeNewNote(person, talkID, text, today)
			if err != nil {
				return report, fmt.Errorf("save talk note: %w", err)
			}
			report.Path = path
			report.Fallback = fallback
			if fallback {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("Error saving talk file, please check entry saved at %s and try again", path))
			}
		}
	} else {
		path := s.NotePath(person, talkID)
		if err := s.editor.EditFile(ctx, path); err != nil {
			return report, fmt.Errorf("edit talk note: %w", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return report, fmt.Errorf("read talk note: %w", err)
		}
		text = string(data)
		report.Path = path
	}

	fields := notes.Parse(text, today)
	report.Warnings = append(report.Warnings, fields.Warnings...)
	talk.Update(fields.Date, fields.Title, fields.Venue)

	logger.Debug("applied talk note",
		logging.String(logging.FieldPath, report.Path),
		logging.String("date", talk.DateString()),
		logging.Bool("has_title", talk.Title != ""),
		logging.Bool("has_venue", talk.Venue != ""))
	return report, nil
}

// writeNewNote writes text to the talk's note file, falling back to a
// timestamp-named file in the database root and then the work directory.
func (s *Service) writeNewNote(person *catalog.Person, talkID int, text string, now time.Time) (string, bool, error) {
	primary := s.NotePath(person, talkID)
	stamped := fmt.Sprintf("%d%s", now.Unix(), noteExt)
	candidates := []string{
		primary,
		filepath.Join(s.databasePath, stamped),
		filepath.Join(s.workDir, stamped),
	}

	path, err := fileutil.WriteFirst(candidates, []byte(text), 0o644)
	if err != nil {
		return "", false, err
	}
	if path != primary {
		logging.WarnWithContext(s.logger, "talk note written to fallback location", "note_fallback",
			logging.Int(logging.FieldPersonID, person.ID),
			logging.Int(logging.FieldTalkID, talkID),
			logging.String(logging.FieldPath, path),
			logging.String(logging.FieldErrorHint, "move the file to "+primary),
			logging.String(logging.FieldImpact, "the talk entry needs manual verification"))
		return path, true, nil
	}
	return path, false, nil
}
