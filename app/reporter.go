package app

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gosuri/uiprogress"

	"github.com/irinya/cmsc723-group9-p2/alg/graph"
	"github.com/irinya/cmsc723-group9-p2/alg/perceptron"
	"github.com/irinya/cmsc723-group9-p2/eval"
	nlp "github.com/irinya/cmsc723-group9-p2/nlp/types"
)

// PredictionString renders a prediction as "error = k \tpred = ( a <-> b ) ..."
func PredictionString(sent *nlp.DependencyGraph, mistakes int, predicted *graph.Tree) string {
	var b strings.Builder
	fmt.Fprintf(&b, "error = %d \tpred =", mistakes)
	for _, edge := range predicted.Edges() {
		b.WriteString(" ")
		b.WriteString(sent.ArcString(edge))
	}
	return b.String()
}

// LogReporter prints each iteration's total error and, when verbose, every
// prediction
type LogReporter struct {
	Out     io.Writer
	Verbose bool
}

var _ perceptron.Reporter = &LogReporter{}

func (r *LogReporter) Example(iteration, index int, decoded *perceptron.Decoded) {
	if !r.Verbose {
		return
	}
	sent, ok := decoded.Instance.(*nlp.DependencyGraph)
	if !ok {
		return
	}
	fmt.Fprintln(r.Out, PredictionString(sent, decoded.Mistakes, decoded.Predicted))
}

func (r *LogReporter) Iteration(iteration int, total *eval.Total) {
	fmt.Fprintf(r.Out, "Total error: %d\n", total.Mistakes())
	if allOut {
		log.Println(total)
	}
}

// ProgressReporter draws one bar per iteration, advanced per example
type ProgressReporter struct {
	Total int

	bar *uiprogress.Bar
}

var _ perceptron.Reporter = &ProgressReporter{}

func (r *ProgressReporter) Start() {
	uiprogress.Start()
}

func (r *ProgressReporter) Stop() {
	uiprogress.Stop()
}

func (r *ProgressReporter) Example(iteration, index int, decoded *perceptron.Decoded) {
	if r.bar == nil {
		label := fmt.Sprintf("IT #%d", iteration)
		r.bar = uiprogress.AddBar(r.Total)
		r.bar.AppendCompleted()
		r.bar.PrependElapsed()
		r.bar.PrependFunc(func(b *uiprogress.Bar) string {
			return label
		})
	}
	r.bar.Incr()
}

func (r *ProgressReporter) Iteration(iteration int, total *eval.Total) {
	r.bar = nil
}

// Reporters fans out to several reporters in order
type Reporters []perceptron.Reporter

var _ perceptron.Reporter = Reporters{}

func (rs Reporters) Example(iteration, index int, decoded *perceptron.Decoded) {
	for _, r := range rs {
		r.Example(iteration, index, decoded)
	}
}

func (rs Reporters) Iteration(iteration int, total *eval.Total) {
	for _, r := range rs {
		r.Iteration(iteration, total)
	}
}
