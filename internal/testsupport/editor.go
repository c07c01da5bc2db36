package testsupport

import (
	"context"
	"os"
)

// FakeEditor stands in for the external editor in tests.
//
// EditText returns Text (or Err) and records the initial text it was given.
// EditFile writes FileText to the path when set, records the path, and
// returns Err.
type FakeEditor struct {
	Text     string
	FileText string
	Err      error

	Initial []string
	Files   []string
}

func (f *FakeEditor) EditText(_ context.Context, initial string) (string, error) {
	f.Initial = append(f.Initial, initial)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Text, nil
}

func (f *FakeEditor) EditFile(_ context.Context, path string) error {
	f.Files = append(f.Files, path)
	if f.Err != nil {
		return f.Err
	}
	if f.FileText != "" {
		return os.WriteFile(path, []byte(f.FileText), 0o644)
	}
	return nil
}
