package perceptron

import (
	"github.com/irinya/cmsc723-group9-p2/alg/featurevector"
	"github.com/irinya/cmsc723-group9-p2/alg/graph"
	"github.com/irinya/cmsc723-group9-p2/eval"
)

// Model is a sparse linear model: features never seen weigh 0.0 and
// updates create features on demand.
type Model interface {
	Get(feature featurevector.Feature) float64
	DotProduct(features featurevector.Sparse) float64
	Update(features featurevector.Sparse, sign float64)
}

var _ Model = featurevector.Sparse{}

func NewModel() Model {
	return featurevector.NewSparse()
}

// Instance is a training example annotated with its gold tree
type Instance interface {
	Gold() *graph.Tree
}

// Stream is a forward-only sequence of instances, in the style of
// bufio.Scanner: call Next until it returns false, then check Err.
type Stream interface {
	Next() bool
	Instance() Instance
	Err() error
	Close() error
}

// Corpus yields a fresh stream over the same instances on every Open
type Corpus interface {
	Open() (Stream, error)
}

// FeaturedGraph gives the features of any candidate edge of an instance
type FeaturedGraph interface {
	EdgeFeatures(edge graph.Pair) featurevector.Sparse
}

// InstanceDecoder predicts a tree for an instance under the current model
// and returns the featurized candidate graph it predicted from
type InstanceDecoder interface {
	Decode(instance Instance, m Model) (FeaturedGraph, *graph.Tree)
}

// Decoded is the outcome of processing one example
type Decoded struct {
	Instance  Instance
	Graph     FeaturedGraph
	Predicted *graph.Tree
	Mistakes  int
	Result    *eval.Result
}

// Reporter observes training; it has no effect on learning
type Reporter interface {
	Example(iteration, index int, decoded *Decoded)
	Iteration(iteration int, total *eval.Total)
}

type EmptyReporter struct{}

var _ Reporter = &EmptyReporter{}

func (r *EmptyReporter) Example(iteration, index int, decoded *Decoded) {}

func (r *EmptyReporter) Iteration(iteration int, total *eval.Total) {}

// SliceCorpus is an in-memory corpus
type SliceCorpus []Instance

var _ Corpus = SliceCorpus{}

func (c SliceCorpus) Open() (Stream, error) {
	return &sliceStream{instances: c, pos: -1}, nil
}

type sliceStream struct {
	instances []Instance
	pos       int
}

func (s *sliceStream) Next() bool {
	if s.pos+1 >= len(s.instances) {
		s.pos = len(s.instances)
		return false
	}
	s.pos++
	return true
}

func (s *sliceStream) Instance() Instance {
	return s.instances[s.pos]
}

func (s *sliceStream) Err() error {
	return nil
}

func (s *sliceStream) Close() error {
	return nil
}
