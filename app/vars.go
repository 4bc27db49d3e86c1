package app

import (
	"log"
	"os"
	"time"

	"github.com/irinya/cmsc723-group9-p2/alg/featurevector"
	"github.com/irinya/cmsc723-group9-p2/alg/perceptron"
	"github.com/irinya/cmsc723-group9-p2/nlp/parser/dependency/mst"
	"github.com/irinya/cmsc723-group9-p2/util"
)

var (
	allOut bool = true

	// processing options
	Iterations int
	limit      int
	verbose    bool
	normalize  bool
	progress   bool

	// file names
	confFile string
	tConll   string
)

// number of highest weighted features shown after verbose training
const TOP_FEATURES = 20

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

// Train runs the perceptron over corpus and returns the trained perceptron
// with each iteration's total mistakes
func Train(corpus perceptron.Corpus, iterations int, reporter perceptron.Reporter) (*perceptron.LinearPerceptron, []int, error) {
	trainer := &perceptron.LinearPerceptron{
		Decoder:    &mst.Parser{},
		Iterations: iterations,
		Reporter:   reporter,
		Log:        verbose,
	}
	trainer.Init(perceptron.NewModel())
	startTime := time.Now()
	mistakes, err := trainer.Train(corpus)
	if allOut {
		log.Println("TRAIN Total Time:", time.Since(startTime))
	}
	return trainer, mistakes, err
}

func NumFeatures(m perceptron.Model) int {
	if sparse, ok := m.(featurevector.Sparse); ok {
		return sparse.Len()
	}
	return 0
}

// TopFeatures lists the n features of m with the highest weight
func TopFeatures(m perceptron.Model, n int) []util.TopNStrFloatDatum {
	sparse, ok := m.(featurevector.Sparse)
	if !ok {
		return nil
	}
	weights := make(map[string]float64, sparse.Len())
	for feature, value := range sparse {
		weights[string(feature)] = value
	}
	return util.GetTopNStrFloat(weights, n)
}
