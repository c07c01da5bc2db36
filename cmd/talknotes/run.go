package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"talknotes/internal/catalog"
	"talknotes/internal/logging"
	"talknotes/internal/notebook"
	"talknotes/internal/store"
	"talknotes/internal/textutil"
)

// run loads the snapshot, dispatches cmd, and saves when a mutating command
// succeeds.
func (c *commandContext) run(cobraCmd *cobra.Command, cmd command) (err error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.newLogger(cfg)
	if err != nil {
		return err
	}
	logger = logging.NewComponentLogger(logger, "cli").With(logging.String("command", cmd.kind.String()))

	out := cobraCmd.OutOrStdout()
	if err := ensureDatabaseDir(out, cmd.databasePath); err != nil {
		return err
	}

	st, err := store.Open(cmd.metadataPath, store.Options{Lock: cfg.Store.Lock, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	graph, result, err := st.Load()
	if err != nil {
		return err
	}
	if result.Fresh {
		fmt.Fprintln(out, "No metadata file found, starting with an empty database.")
	}

	d := &dispatcher{
		ctx:      c,
		cobraCmd: cobraCmd,
		out:      out,
		colorize: shouldColorize(out),
		graph:    graph,
		logger:   logger,
	}
	if err := d.dispatch(cmd); err != nil {
		var notFound *catalog.NotFoundError
		if errors.As(err, &notFound) {
			logger.Debug("command target missing", logging.Error(err))
		}
		return err
	}

	if !cmd.kind.mutates() {
		return nil
	}
	if err := st.Save(graph); err != nil {
		return err
	}
	logger.Debug("metadata saved", logging.String(logging.FieldPath, st.Path()))
	return nil
}

type dispatcher struct {
	ctx      *commandContext
	cobraCmd *cobra.Command
	out      io.Writer
	colorize bool
	graph    *catalog.Graph
	logger   *slog.Logger
}

func (d *dispatcher) dispatch(cmd command) error {
	switch cmd.kind {
	case commandNewPerson:
		return d.newPerson(cmd)
	case commandAddTalk:
		return d.addTalk(cmd)
	case commandPrintInfo:
		return d.printInfo(cmd)
	case commandEditTalk:
		return d.editTalk(cmd)
	case commandUpdateRole:
		return d.updateRole(cmd)
	case commandSearch:
		return d.search(cmd)
	default:
		return fmt.Errorf("unsupported command %s", cmd.kind)
	}
}

func (d *dispatcher) newPerson(cmd command) error {
	person := d.graph.AddPerson(cmd.name)
	fmt.Fprintf(d.out, "Successfully added %s to the database. Their ID is %d\n", cmd.rawName, person.ID)
	return nil
}

func (d *dispatcher) addTalk(cmd command) error {
	person, err := d.graph.Person(cmd.personID)
	if err != nil {
		return err
	}
	svc, err := d.notebook(cmd)
	if err != nil {
		return err
	}
	talk, report, err := svc.AddTalk(d.cobraCmd.Context(), person)
	if err != nil {
		return err
	}
	d.renderReport(report, true)
	fmt.Fprintf(d.out, "Successfully added a talk for %d (%s) to the database (talk id = %d).\n",
		person.ID, person.DisplayName(), talk.ID)
	return nil
}

func (d *dispatcher) printInfo(cmd command) error {
	person, err := d.graph.Person(cmd.personID)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Name: %s (id=%d)\n", person.DisplayName(), person.ID)
	if person.Role != "" {
		fmt.Fprintf(d.out, "Role: %s\n", person.Role)
	}
	for _, past := range person.PastRoles {
		fmt.Fprintf(d.out, "Previous role: %s\n", past)
	}
	fmt.Fprintln(d.out, "Talks in notes database:")
	if len(person.Talks) == 0 {
		fmt.Fprintln(d.out, "No talks recorded")
		return nil
	}
	fmt.Fprintln(d.out, renderTalks(person.Talks))
	return nil
}

func (d *dispatcher) editTalk(cmd command) error {
	person, talk, err := d.graph.Talk(cmd.personID, cmd.talkID)
	if err != nil {
		return err
	}
	svc, err := d.notebook(cmd)
	if err != nil {
		return err
	}
	report, err := svc.EditTalk(d.cobraCmd.Context(), person, talk.ID, false)
	if err != nil {
		return err
	}
	d.renderReport(report, false)
	fmt.Fprintf(d.out, "Successfully edited talk %d for %d (%s).\n", talk.ID, person.ID, person.DisplayName())
	return nil
}

func (d *dispatcher) updateRole(cmd command) error {
	person, err := d.graph.Person(cmd.personID)
	if err != nil {
		return err
	}
	person.UpdateRole(cmd.role, true)
	fmt.Fprintf(d.out, "Successfully updated the role for %d (%s)\n", person.ID, person.DisplayName())
	return nil
}

func (d *dispatcher) search(cmd command) error {
	ids := d.graph.Search(textutil.Tokens(cmd.name))
	if len(ids) == 0 {
		fmt.Fprintln(d.out, "Name not found")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintf(d.out, "%d: %s\n", id, d.graph.People[id].DisplayName())
	}
	return nil
}

func (d *dispatcher) notebook(cmd command) (*notebook.Service, error) {
	cfg, err := d.ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	ed, err := d.ctx.newEditor(d.cobraCmd, cfg)
	if err != nil {
		return nil, err
	}
	return notebook.New(ed, cmd.databasePath, notebook.WithLogger(d.logger)), nil
}

// renderReport prints authoring warnings and, for new notes, where the note
// landed.
func (d *dispatcher) renderReport(report notebook.Report, isNew bool) {
	for _, warning := range report.Warnings {
		fmt.Fprintln(d.out, renderStatusLine("Warning", statusWarn, warning, d.colorize))
	}
	if isNew && report.Path != "" && !report.Fallback {
		fmt.Fprintln(d.out, renderStatusLine("Note", statusOK, "Successfully saved talk information to "+report.Path, d.colorize))
	}
}
