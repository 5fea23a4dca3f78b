// Package eval scores generated trees against gold trees.
package eval

import (
	"errors"
	"fmt"
)

var ErrLengthMismatch = errors.New("eval: test and gold corpora differ in length")

// Precision, Recall and F1 are 0 when undefined.
func Precision(truePositives, testPositives int) float64 {
	if testPositives == 0 {
		return 0
	}
	return float64(truePositives) / float64(testPositives)
}

func Recall(truePositives, conditionPositives int) float64 {
	if conditionPositives == 0 {
		return 0
	}
	return float64(truePositives) / float64(conditionPositives)
}

func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2.0 * (precision * recall) / (precision + recall)
}

type Error interface {
	String() string
	Class() string
}

type Errors []Error

func (ers Errors) ByType() map[string]int {
	retval := make(map[string]int)
	for _, e := range ers {
		retval[e.Class()]++
	}
	return retval
}

type Result struct {
	TP, FP, FN int
	Errors     Errors
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

func (r *Result) String() string {
	return fmt.Sprintf("P %.4f R %.4f F1 %.4f (TP %d FP %d FN %d)",
		r.Precision(), r.Recall(), r.F1(), r.TP, r.FP, r.FN)
}

type Eval[T any] func(test, gold T) *Result

// Total aggregates results over a corpus (micro-averaged). Individual
// results are kept only if Results is non-nil.
type Total struct {
	Result
	Results           []*Result
	Exact, Population int
}

func (t *Total) Add(r *Result) {
	t.TP += r.TP
	t.FP += r.FP
	t.FN += r.FN
	if r.Incorrect() == 0 {
		t.Exact++
	}
	t.Population++
	if t.Results != nil {
		t.Results = append(t.Results, r)
	}
}

func (t *Total) ExactMatch() float64 {
	if t.Population == 0 {
		return 0
	}
	return float64(t.Exact) / float64(t.Population)
}

func (t *Total) Errors() Errors {
	var retval Errors
	for _, v := range t.Results {
		retval = append(retval, v.Errors...)
	}
	return retval
}

// Corpus evaluates aligned test and gold sequences.
func Corpus[T any](test, gold []T, eval Eval[T], keep bool) (*Total, error) {
	if len(test) != len(gold) {
		return nil, fmt.Errorf("%w: %d test, %d gold", ErrLengthMismatch, len(test), len(gold))
	}
	total := &Total{}
	if keep {
		total.Results = make([]*Result, 0, len(test))
	}
	for i := range test {
		total.Add(eval(test[i], gold[i]))
	}
	return total, nil
}
