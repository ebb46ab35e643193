package cmd

import (
	"flag"
	"strings"
)

// NewFlagsValue implements the -newflags flag: a comma-separated list
// of flag names that should parse without error even though this build
// does not implement them yet. It lets old binaries tolerate the flags
// of newer deploy scripts during a rollout.
type NewFlagsValue struct {
	FlagSet *flag.FlagSet
	Flags   []string
}

func (v *NewFlagsValue) String() string { return strings.Join(v.Flags, ",") }

func (v *NewFlagsValue) Set(flags string) error {
	v.Flags = strings.Split(flags, ",")

	// define the given flags if they haven't been defined already
	for _, flagName := range v.Flags {
		if v.FlagSet.Lookup(flagName) == nil {
			v.FlagSet.String(flagName, "", "not yet implemented")
		}
	}

	return nil
}

// NewFlagsFlag installs -newflags (under the given name) on flagSet.
// Run installs it on every subcommand's flagset before parsing.
func NewFlagsFlag(flagSet *flag.FlagSet, name string) *NewFlagsValue {
	v := &NewFlagsValue{FlagSet: flagSet}
	flagSet.Var(v, name, "comma-separated list of flag names to ignore errors on")
	return v
}
