package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"talknotes/internal/config"
	"talknotes/internal/editor"
	"talknotes/internal/fileutil"
	"talknotes/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newLogger builds the invocation logger tagged with a fresh session id.
func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewFromConfig(cfg, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// newEditor resolves the editor command and attaches it to the command's streams.
func (c *commandContext) newEditor(cmd *cobra.Command, cfg *config.Config) (editor.Editor, error) {
	return editor.New(cfg.EditorCommand(), editor.WithStreams(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
}

// ensureDatabaseDir creates the notes root when it is missing.
func ensureDatabaseDir(out io.Writer, path string) error {
	exists, err := fileutil.Exists(path)
	if err != nil {
		return fmt.Errorf("inspect notes database %s: %w", path, err)
	}
	if exists {
		return nil
	}
	fmt.Fprintf(out, "No notes database found, creating directory %s\n", path)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create notes database %s: %w", path, err)
	}
	return nil
}
