package eval

import (
	"fmt"

	"github.com/irinya/cmsc723-group9-p2/alg/graph"
)

func Precision(truePositives, testPositives int) float64 {
	if testPositives == 0 {
		return 0.0
	}
	return float64(truePositives) / float64(testPositives)
}

func Recall(truePositives, conditionPositives int) float64 {
	if conditionPositives == 0 {
		return 0.0
	}
	return float64(truePositives) / float64(conditionPositives)
}

func F1(precision, recall float64) float64 {
	if precision+recall == 0.0 {
		return 0.0
	}
	return 2.0 * (precision * recall) / (precision + recall)
}

// CountMistakes counts the predicted edges that appear in the gold tree in
// neither orientation. Gold edges missing from the prediction are not
// counted; for two spanning trees over the same nodes the two numbers agree.
func CountMistakes(gold, predicted *graph.Tree) int {
	var mistakes int
	for _, edge := range predicted.Edges() {
		if gold.HasEdge(edge.From(), edge.To()) || gold.HasEdge(edge.To(), edge.From()) {
			continue
		}
		mistakes++
	}
	return mistakes
}

// Result compares one predicted tree to its gold tree, edge by edge
type Result struct {
	TP, FP, FN int
}

// Evaluate scores predicted against gold. FP equals CountMistakes.
func Evaluate(gold, predicted *graph.Tree) *Result {
	r := &Result{FP: CountMistakes(gold, predicted)}
	r.TP = predicted.NumberOfEdges() - r.FP
	for _, edge := range gold.Edges() {
		if !predicted.HasEdge(edge.From(), edge.To()) {
			r.FN++
		}
	}
	return r
}

func (r *Result) Mistakes() int {
	return r.FP
}

func (r *Result) Incorrect() int {
	return r.FP + r.FN
}

func (r *Result) TestPositives() int {
	return r.TP + r.FP
}

func (r *Result) ConditionPositives() int {
	return r.TP + r.FN
}

func (r *Result) Precision() float64 {
	return Precision(r.TP, r.TestPositives())
}

func (r *Result) Recall() float64 {
	return Recall(r.TP, r.ConditionPositives())
}

func (r *Result) F1() float64 {
	return F1(r.Precision(), r.Recall())
}

// Total aggregates the results of a pass over a corpus
type Total struct {
	Result
	Exact, Population int
}

func (t *Total) Add(r *Result) {
	t.TP += r.TP
	t.FP += r.FP
	t.FN += r.FN
	if r.Incorrect() == 0 {
		t.Exact += 1
	}
	t.Population += 1
}

func (t *Total) ExactMatch() float64 {
	if t.Population == 0 {
		return 0.0
	}
	return float64(t.Exact) / float64(t.Population)
}

func (t *Total) String() string {
	return fmt.Sprintf("mistakes %d; exact %d of %d (%.2f); edge precision %.4f",
		t.Mistakes(), t.Exact, t.Population, t.ExactMatch(), t.Precision())
}
