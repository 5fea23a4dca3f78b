package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johndpope/tgen/nlp/tree"
	"github.com/johndpope/tgen/nlp/types"
)

func build(t *testing.T, formemes []types.Formeme, lemmas []string, heads []int) types.DepTree {
	tr, err := tree.FromHeads(
		tree.Node{Formeme: types.ROOT_FORMEME, Lemma: types.ROOT_LEMMA, Parent: -1},
		formemes, lemmas, heads)
	require.NoError(t, err)
	return tr
}

func TestTreesIdentical(t *testing.T) {
	gold := build(t, []types.Formeme{"n:subj", "v:fin", "n:obj"}, []string{"it", "be", "dog"}, []int{2, 0, 2})
	r := Trees(gold, gold)
	assert.Equal(t, 3, r.TP)
	assert.Equal(t, 0, r.Incorrect())
	assert.Equal(t, 1.0, r.F1())
	assert.Empty(t, r.Errors)
}

func TestTreesPartial(t *testing.T) {
	gold := build(t, []types.Formeme{"n:subj", "v:fin", "n:obj"}, []string{"it", "be", "dog"}, []int{2, 0, 2})
	// "dog" moved before its head, "cat" added
	test := build(t, []types.Formeme{"n:obj", "v:fin", "n:obj"}, []string{"dog", "be", "cat"}, []int{2, 0, 2})

	r := Trees(test, gold)
	assert.Equal(t, 1, r.TP)
	assert.Equal(t, 2, r.FP)
	assert.Equal(t, 2, r.FN)
	assert.InDelta(t, 1.0/3.0, r.Precision(), 1e-9)
	assert.InDelta(t, 1.0/3.0, r.Recall(), 1e-9)
	assert.Equal(t, map[string]int{"missing": 2, "extra": 2}, r.Errors.ByType())
}

func TestTreesDuplicates(t *testing.T) {
	gold := build(t, []types.Formeme{"v:fin", "n:obj"}, []string{"be", "dog"}, []int{0, 1})
	test := build(t, []types.Formeme{"v:fin", "n:obj", "n:obj"}, []string{"be", "dog", "dog"}, []int{0, 1, 1})
	r := Trees(test, gold)
	assert.Equal(t, 2, r.TP)
	assert.Equal(t, 1, r.FP)
	assert.Equal(t, 0, r.FN)
	assert.Equal(t, 1.0, r.Recall())
}

func TestCorpus(t *testing.T) {
	a := build(t, []types.Formeme{"v:fin", "n:obj"}, []string{"be", "dog"}, []int{0, 1})
	b := build(t, []types.Formeme{"v:fin"}, []string{"be"}, []int{0})

	total, err := Corpus([]types.DepTree{a, b}, []types.DepTree{a, a}, Trees, true)
	require.NoError(t, err)
	assert.Equal(t, 2, total.Population)
	assert.Equal(t, 1, total.Exact)
	assert.Equal(t, 0.5, total.ExactMatch())
	assert.Equal(t, 3, total.TP)
	assert.Equal(t, 1, total.FN)
	assert.Len(t, total.Results, 2)
	assert.Len(t, total.Errors(), 1)
	assert.Equal(t, "missing v:fin -> n:obj/dog/after", total.Errors()[0].String())

	_, err = Corpus([]types.DepTree{a}, nil, Trees, false)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestUndefinedScores(t *testing.T) {
	r := &Result{}
	assert.Equal(t, 0.0, r.Precision())
	assert.Equal(t, 0.0, r.Recall())
	assert.Equal(t, 0.0, r.F1())
	assert.Equal(t, 0.0, (&Total{}).ExactMatch())
}
