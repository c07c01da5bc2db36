package main

import (
	"github.com/spf13/pflag"
)

// flagPosition records a flag occurrence by how many positional arguments
// preceded it on the command line.
type flagPosition struct {
	name        string
	positionals int
}

// flagTracker logs flag occurrences in command-line order.
type flagTracker struct {
	flags *pflag.FlagSet
	seen  []flagPosition
}

func (t *flagTracker) record(name string) {
	t.seen = append(t.seen, flagPosition{name: name, positionals: len(t.flags.Args())})
}

// trackedString is a string flag value whose Set calls are logged. pflag
// appends positional arguments as it meets them, so Args() at Set time counts
// the positionals that came before the flag.
type trackedString struct {
	name    string
	target  *string
	tracker *flagTracker
}

func newTrackedString(tracker *flagTracker, name string, target *string) *trackedString {
	return &trackedString{name: name, target: target, tracker: tracker}
}

func (v *trackedString) String() string {
	if v.target == nil {
		return ""
	}
	return *v.target
}

func (v *trackedString) Set(value string) error {
	*v.target = value
	v.tracker.record(v.name)
	return nil
}

func (v *trackedString) Type() string { return "string" }
