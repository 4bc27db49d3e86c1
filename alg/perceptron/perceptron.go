package perceptron

import (
	"fmt"
	"log"

	"github.com/irinya/cmsc723-group9-p2/eval"
)

// LinearPerceptron trains a structured perceptron, one example at a time,
// for a fixed number of passes over a corpus. There is no averaging, no
// shuffling and no early stopping.
type LinearPerceptron struct {
	Decoder    InstanceDecoder
	Iterations int
	Model      Model
	Reporter   Reporter
	Log        bool
}

func (m *LinearPerceptron) Init(newModel Model) {
	m.Model = newModel
	if m.Reporter == nil {
		m.Reporter = &EmptyReporter{}
	}
}

// Train runs every iteration over corpus and returns each iteration's total
// number of mistakes. The first corpus error aborts training.
func (m *LinearPerceptron) Train(corpus Corpus) ([]int, error) {
	if m.Model == nil {
		panic("Model not initialized")
	}
	prevPrefix := log.Prefix()
	defer log.SetPrefix(prevPrefix)

	mistakes := make([]int, 0, m.Iterations)
	for i := 0; i < m.Iterations; i++ {
		log.SetPrefix("IT #" + fmt.Sprintf("%v ", i) + prevPrefix)
		total, err := m.Iteration(corpus, i)
		if err != nil {
			return mistakes, fmt.Errorf("iteration %d: %w", i, err)
		}
		mistakes = append(mistakes, total.Mistakes())
		m.Reporter.Iteration(i, total)
	}
	return mistakes, nil
}

// Iteration makes a single pass over corpus
func (m *LinearPerceptron) Iteration(corpus Corpus, iteration int) (*eval.Total, error) {
	stream, err := corpus.Open()
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	if m.Reporter == nil {
		m.Reporter = &EmptyReporter{}
	}
	total := &eval.Total{}
	for j := 0; stream.Next(); j++ {
		decoded := m.RunOne(stream.Instance())
		total.Add(decoded.Result)
		if m.Log {
			if decoded.Mistakes > 0 {
				log.Println("At instance", j, "failed", decoded.Mistakes, "of", decoded.Predicted.NumberOfEdges())
			} else {
				log.Println("At instance", j, "success")
			}
		}
		m.Reporter.Example(iteration, j, decoded)
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return total, nil
}

// RunOne predicts a tree for instance, counts its mistakes and, if there
// are any, updates the model
func (m *LinearPerceptron) RunOne(instance Instance) *Decoded {
	gold := instance.Gold()
	featured, predicted := m.Decoder.Decode(instance, m.Model)
	result := eval.Evaluate(gold, predicted)
	decoded := &Decoded{
		Instance:  instance,
		Graph:     featured,
		Predicted: predicted,
		Mistakes:  eval.CountMistakes(gold, predicted),
		Result:    result,
	}
	if decoded.Mistakes > 0 {
		StructuredUpdate(m.Model, featured, gold, predicted)
	}
	return decoded
}
