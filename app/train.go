package app

import (
	"fmt"
	"log"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/irinya/cmsc723-group9-p2/nlp/format/conll"
	"github.com/irinya/cmsc723-group9-p2/util"
	"github.com/irinya/cmsc723-group9-p2/util/conf"
)

// TrainConfig reads the configuration file given with -c, if any, and
// applies the flags set on the command line on top of it
func TrainConfig(cmd *commander.Command) (*conf.Conf, error) {
	c := conf.Default()
	if len(confFile) > 0 {
		var err error
		c, err = conf.ReadFile(confFile)
		if err != nil {
			return nil, fmt.Errorf("failed reading configuration file %s: %w", confFile, err)
		}
	}
	cmd.Flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tc":
			c.Corpus = tConll
		case "it":
			c.Iterations = Iterations
		case "v":
			c.Verbose = verbose
		case "nfc":
			c.Normalize = normalize
		case "progress":
			c.Progress = progress
		case "limit":
			c.Limit = limit
		}
	})
	return c, c.Validate()
}

func TrainConfigOut(c *conf.Conf) {
	log.Println("Configuration")
	log.Printf("Iterations:\t\t%d", c.Iterations)
	log.Printf("Normalize (NFC):\t%v", c.Normalize)
	log.Printf("Limit:\t\t\t%d", c.Limit)
	log.Println()
	log.Println("Data")
	log.Printf("Train file (conll):\t%s", c.Corpus)
	if sum, err := util.MD5File(c.Corpus); err == nil {
		log.Printf("Train file md5:\t\t%s", sum)
	}
	log.Println()
}

func TrainGraphParser(cmd *commander.Command, args []string) error {
	c, err := TrainConfig(cmd)
	if err != nil {
		return err
	}
	verbose = c.Verbose
	if allOut {
		TrainConfigOut(c)
	}
	if !VerifyExists(c.Corpus) {
		return fmt.Errorf("training corpus %s not found", c.Corpus)
	}
	corpus := &conll.Corpus{
		Filename:  c.Corpus,
		Limit:     c.Limit,
		Normalize: c.Normalize,
	}

	reporter := Reporters{&LogReporter{Out: os.Stdout, Verbose: c.Verbose}}
	if c.Progress {
		sents, err := conll.ReadFile(c.Corpus, c.Limit)
		if err != nil {
			return err
		}
		bar := &ProgressReporter{Total: len(sents)}
		reporter = append(reporter, bar)
		bar.Start()
		defer bar.Stop()
	}

	if allOut {
		log.Println("Training", c.Iterations, "iteration(s)")
	}
	trainer, _, err := Train(corpus, c.Iterations, reporter)
	if err != nil {
		return err
	}
	if c.Verbose {
		log.Println("Features:", NumFeatures(trainer.Model))
		for _, datum := range TopFeatures(trainer.Model, TOP_FEATURES) {
			log.Printf("\t%s\t%v", datum.S, datum.F)
		}
		util.LogMemory()
	}
	return nil
}

func TrainCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       TrainGraphParser,
		UsageLine: "train <file options> [arguments]",
		Short:     "trains a graph-based dependency parser with the structured perceptron",
		Long: `
trains a graph-based dependency parser with the structured perceptron

	$ ./graphparser train [-c <yaml conf>] [-tc <conll>] [-it <iterations>] [options]

Prints the total error of each iteration.
`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&confFile, "c", "", "Optional - YAML Configuration File")
	cmd.Flag.StringVar(&tConll, "tc", conf.DEFAULT_CORPUS, "Training Conll File")
	cmd.Flag.IntVar(&Iterations, "it", conf.DEFAULT_ITERATIONS, "Number of Perceptron Iterations")
	cmd.Flag.BoolVar(&verbose, "v", false, "Print every prediction")
	cmd.Flag.BoolVar(&normalize, "nfc", false, "Normalize word forms and lemmas to NFC")
	cmd.Flag.BoolVar(&progress, "progress", false, "Show a progress bar per iteration")
	cmd.Flag.IntVar(&limit, "limit", 0, "limit training set")
	return cmd
}
