package app

import (
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

const DEFAULT_COMMAND = "train"

func AllCommands() *commander.Command {
	return &commander.Command{
		UsageLine: os.Args[0] + " <command>",
		Short:     "graph-based dependency parser trainer",
		Subcommands: []*commander.Command{
			TrainCmd(),
			FixtureCmd(),
		},
		Flag: *flag.NewFlagSet("graphparser", flag.ExitOnError),
	}
}

// DefaultArgs runs the train command when no command is named
func DefaultArgs(args []string) []string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return append([]string{DEFAULT_COMMAND}, args...)
	}
	return args
}
