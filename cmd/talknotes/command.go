package main

import (
	"fmt"
	"strconv"
	"strings"
)

type commandKind int

const (
	commandHelp commandKind = iota
	commandNewPerson
	commandAddTalk
	commandPrintInfo
	commandEditTalk
	commandUpdateRole
	commandSearch
)

func (k commandKind) String() string {
	switch k {
	case commandNewPerson:
		return flagNewPerson
	case commandAddTalk:
		return flagAddTalk
	case commandPrintInfo:
		return flagPrintInfo
	case commandEditTalk:
		return flagEditTalk
	case commandUpdateRole:
		return flagUpdateRole
	case commandSearch:
		return flagSearch
	default:
		return "help"
	}
}

// mutates reports whether a successful run must rewrite the snapshot.
func (k commandKind) mutates() bool {
	switch k {
	case commandNewPerson, commandAddTalk, commandEditTalk, commandUpdateRole:
		return true
	default:
		return false
	}
}

// flagValues receives the raw command flag strings from Cobra.
type flagValues struct {
	newPerson  string
	addTalk    string
	printInfo  string
	editTalk   string
	updateRole string
	search     string
}

// command is one parsed invocation.
type command struct {
	kind         commandKind
	metadataPath string
	databasePath string

	// name is lowercased for storage and search; rawName keeps the new
	// person's name as typed for the confirmation message.
	name     string
	rawName  string
	personID int
	talkID   int
	role     string
}

var commandFlags = map[string]commandKind{
	flagNewPerson:  commandNewPerson,
	flagAddTalk:    commandAddTalk,
	flagPrintInfo:  commandPrintInfo,
	flagEditTalk:   commandEditTalk,
	flagUpdateRole: commandUpdateRole,
	flagSearch:     commandSearch,
}

// takesTwoValues reports whether the flag's second value is a positional
// argument written directly after the flag value.
func (k commandKind) takesTwoValues() bool {
	return k == commandEditTalk || k == commandUpdateRole
}

// parseCommand turns the flag occurrences and positional arguments into a
// command. seen lists flag occurrences in command-line order.
func parseCommand(values flagValues, seen []flagPosition, args []string) (command, error) {
	kind := commandHelp
	at := -1
	for i, occurrence := range seen {
		if k, ok := commandFlags[occurrence.name]; ok {
			kind = k
			at = i
		}
	}
	if kind == commandHelp {
		return command{kind: commandHelp}, nil
	}

	paths := args
	var second string
	if kind.takesTwoValues() {
		index := seen[at].positionals
		if index >= len(args) || flagFollows(seen[at+1:], index) {
			return command{}, fmt.Errorf("--%s requires two values written together, e.g. --%s 0 1", kind, kind)
		}
		second = args[index]
		paths = append(append([]string(nil), args[:index]...), args[index+1:]...)
	}
	if len(paths) < 2 {
		return command{}, fmt.Errorf("expected <metadataPath> and <databasePath>, got %d argument(s)", len(paths))
	}
	if len(paths) > 2 {
		return command{}, fmt.Errorf("unexpected arguments: %s", strings.Join(paths[2:], " "))
	}

	cmd := command{
		kind:         kind,
		metadataPath: paths[0],
		databasePath: paths[1],
	}

	var err error
	switch kind {
	case commandNewPerson:
		cmd.rawName = strings.TrimSpace(values.newPerson)
		cmd.name = strings.ToLower(cmd.rawName)
		if cmd.name == "" {
			return command{}, fmt.Errorf("--%s requires a non-empty name", kind)
		}
	case commandSearch:
		cmd.name = strings.ToLower(values.search)
	case commandAddTalk:
		cmd.personID, err = parseID("person id", values.addTalk)
	case commandPrintInfo:
		cmd.personID, err = parseID("person id", values.printInfo)
	case commandEditTalk:
		if cmd.personID, err = parseID("person id", values.editTalk); err == nil {
			cmd.talkID, err = parseID("talk id", second)
		}
	case commandUpdateRole:
		cmd.personID, err = parseID("person id", values.updateRole)
		cmd.role = second
	}
	if err != nil {
		return command{}, err
	}
	return cmd, nil
}

// flagFollows reports whether another flag was written before the positional
// at index, i.e. between a flag value and the positional meant to pair with it.
func flagFollows(later []flagPosition, index int) bool {
	for _, occurrence := range later {
		if occurrence.positionals == index {
			return true
		}
	}
	return false
}

func parseID(label, value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected an integer", label, value)
	}
	return id, nil
}
