package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"talknotes/internal/catalog"
	"talknotes/internal/logging"
	"talknotes/internal/store"
	"talknotes/internal/testsupport"
)

type cliTestEnv struct {
	baseDir      string
	configPath   string
	metadataPath string
	databasePath string
	noteSource   string
}

// setupCLITestEnv writes a config whose editor copies noteSource over the file
// it is asked to edit.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))

	noteSource := filepath.Join(base, "note-source.txt")
	testsupport.WriteFile(t, noteSource, "")
	script := filepath.Join(base, "fake-editor.sh")
	testsupport.WriteFile(t, script, "#!/bin/sh\ncat \""+noteSource+"\" > \"$1\"\n")
	if err := os.Chmod(script, 0o755); err != nil {
		t.Fatalf("chmod editor: %v", err)
	}

	cfg := testsupport.NewConfig(t, testsupport.WithEditorCommand(script))
	configPath := filepath.Join(base, "talknotes.toml")
	testsupport.WriteConfig(t, configPath, cfg)

	return &cliTestEnv{
		baseDir:      base,
		configPath:   configPath,
		metadataPath: filepath.Join(base, "meta.json"),
		databasePath: filepath.Join(base, "notes"),
		noteSource:   noteSource,
	}
}

// setNote sets the text the fake editor leaves behind.
func (e *cliTestEnv) setNote(t *testing.T, text string) {
	t.Helper()
	testsupport.WriteFile(t, e.noteSource, text)
}

// run invokes the CLI with the environment's two paths followed by args.
func (e *cliTestEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, append([]string{e.metadataPath, e.databasePath}, args...), e.configPath)
}

func (e *cliTestEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, stderr, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("talknotes %v: %v\nstdout: %s\nstderr: %s", args, err, out, stderr)
	}
	return out
}

func (e *cliTestEnv) loadGraph(t *testing.T) *catalog.Graph {
	t.Helper()
	g, result, err := store.Load(e.metadataPath, logging.NewNop())
	if err != nil {
		t.Fatalf("load metadata: %v", err)
	}
	if result.Fresh {
		t.Fatalf("expected a saved snapshot at %s (%s)", e.metadataPath, result.Reason)
	}
	return g
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
