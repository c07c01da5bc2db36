package main

import (
	"github.com/spf13/cobra"
)

const (
	flagNewPerson  = "newPerson"
	flagAddTalk    = "addTalk"
	flagPrintInfo  = "printInfo"
	flagEditTalk   = "editTalk"
	flagUpdateRole = "updateRole"
	flagSearch     = "search"
	flagConfig     = "config"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var values flagValues
	tracker := &flagTracker{}

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "talknotes <metadataPath> <databasePath> [flag]",
		Short: "Track talks given by people and keep notes for each one",
		Long: "talknotes keeps a metadata snapshot of tracked people and their talks at\n" +
			"<metadataPath> and one note file per talk under <databasePath>.\n" +
			"Exactly one command flag runs per invocation.",
		Example: "  talknotes meta.json notes -n \"Ada Lovelace\"\n" +
			"  talknotes meta.json notes -a 0\n" +
			"  talknotes meta.json notes -e 0 1\n" +
			"  talknotes meta.json notes -u 0 \"Chief Scientist\"",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseCommand(values, tracker.seen, args)
			if err != nil {
				return err
			}
			if parsed.kind == commandHelp {
				return cmd.Help()
			}
			return ctx.run(cmd, parsed)
		},
	}

	flags := rootCmd.Flags()
	tracker.flags = flags
	flags.VarP(newTrackedString(tracker, flagNewPerson, &values.newPerson), flagNewPerson, "n", "Add new person named `<name>`")
	flags.VarP(newTrackedString(tracker, flagAddTalk, &values.addTalk), flagAddTalk, "a", "Add talk to person `<id>`")
	flags.VarP(newTrackedString(tracker, flagPrintInfo, &values.printInfo), flagPrintInfo, "i", "Print info about and list talks by person `<id>`")
	flags.VarP(newTrackedString(tracker, flagEditTalk, &values.editTalk), flagEditTalk, "e", "Edit notes for a talk: `<person_id>` <talk_id>")
	flags.VarP(newTrackedString(tracker, flagUpdateRole, &values.updateRole), flagUpdateRole, "u", "Update the role for a person: `<person_id>` <newRole>")
	flags.VarP(newTrackedString(tracker, flagSearch, &values.search), flagSearch, "s", "Search for people named `<name>`")
	rootCmd.MarkFlagsMutuallyExclusive(flagNewPerson, flagAddTalk, flagPrintInfo, flagEditTalk, flagUpdateRole, flagSearch)

	rootCmd.PersistentFlags().VarP(newTrackedString(tracker, flagConfig, &configFlag), flagConfig, "c", "Configuration file path")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
