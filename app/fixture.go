package app

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/irinya/cmsc723-group9-p2/alg/perceptron"
	nlp "github.com/irinya/cmsc723-group9-p2/nlp/types"
)

var fixtureIterations int

// RunFixture trains on the built-in fixture sentence alone, printing every
// prediction
func RunFixture(cmd *commander.Command, args []string) error {
	if fixtureIterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", fixtureIterations)
	}
	reporter := &LogReporter{Out: os.Stdout, Verbose: true}
	corpus := perceptron.SliceCorpus{nlp.NewFixtureSentence()}
	_, _, err := Train(corpus, fixtureIterations, reporter)
	return err
}

func FixtureCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       RunFixture,
		UsageLine: "fixture [-it <iterations>]",
		Short:     "runs the parser repeatedly on a built-in example sentence",
		Long: `
runs the parser repeatedly on "the hairy monster ate tasty little children"

	$ ./graphparser fixture -it 3

`,
		Flag: *flag.NewFlagSet("fixture", flag.ExitOnError),
	}
	cmd.Flag.IntVar(&fixtureIterations, "it", 3, "Number of Perceptron Iterations")
	return cmd
}
