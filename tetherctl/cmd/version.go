package cmd

import (
	"flag"
	"fmt"

	"euphoria.io/tether"
)

// Version is stamped into release binaries by the build.
var Version = "dev"

func init() { register("version", &versionCmd{}) }

type versionCmd struct{}

func (versionCmd) desc() string  { return "display tetherctl version" }
func (versionCmd) usage() string { return "version" }

func (versionCmd) longdesc() string {
	return "Display the version stamped into the tetherctl binary."
}

func (versionCmd) flags() *flag.FlagSet { return flag.NewFlagSet("version", flag.ExitOnError) }

func (versionCmd) run(ctx tether.Context, args []string) error {
	fmt.Printf("tetherctl version %s\n", Version)
	return nil
}
