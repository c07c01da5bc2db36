package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mattn/go-shellwords"
)

// Editor is the interactive editing collaborator used by talk authoring.
type Editor interface {
	// EditText opens initial in the editor and returns the saved text.
	EditText(ctx context.Context, initial string) (string, error)
	// EditFile opens path in the editor, editing it in place.
	EditFile(ctx context.Context, path string) error
}

// Option configures a Command.
type Option func(*Command)

// WithStreams overrides the editor's stdin, stdout, and stderr.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(c *Command) {
		c.stdin = stdin
		c.stdout = stdout
		c.stderr = stderr
	}
}

// WithTempDir sets where EditText stages its scratch file.
func WithTempDir(dir string) Option {
	return func(c *Command) {
		c.tempDir = dir
	}
}

// Command is an Editor backed by an external program.
type Command struct {
	argv    []string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	tempDir string
}

// New parses commandLine into an editor invocation.
func New(commandLine string, opts ...Option) (*Command, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = true
	argv, err := parser.Parse(commandLine)
	if err != nil {
		return nil, fmt.Errorf("parse editor command %q: %w", commandLine, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("editor command is empty")
	}
	c := &Command{
		argv:   argv,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Argv returns the parsed program and arguments.
func (c *Command) Argv() []string {
	return append([]string(nil), c.argv...)
}

// EditText stages initial in a scratch file, runs the editor on it, and
// returns the file's contents once the editor exits.
func (c *Command) EditText(ctx context.Context, initial string) (string, error) {
	file, err := os.CreateTemp(c.tempDir, "talknotes-*.txt")
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}
	path := file.Name()
	defer os.Remove(path)

	if _, err := file.WriteString(initial); err != nil {
		file.Close()
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close scratch file: %w", err)
	}

	if err := c.EditFile(ctx, path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read scratch file: %w", err)
	}
	return string(data), nil
}

// EditFile runs the editor on path and waits for it to exit.
func (c *Command) EditFile(ctx context.Context, path string) error {
	args := append(append([]string(nil), c.argv[1:]...), path)
	cmd := exec.CommandContext(ctx, c.argv[0], args...) //nolint:gosec
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", c.argv[0], err)
	}
	return nil
}
