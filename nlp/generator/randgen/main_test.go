package randgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/johndpope/tgen/nlp/tree"
	"github.com/johndpope/tgen/nlp/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	informDog = types.DAI{DAType: "inform", Slot: "type", Value: "dog"}
	informCat = types.DAI{DAType: "inform", Slot: "type", Value: "cat"}
	confirm   = types.DAI{DAType: "confirm"}
)

func mustTree(t *testing.T, formemes []types.Formeme, lemmas []string, heads []int) types.DepTree {
	t.Helper()
	tr, err := tree.FromHeads(
		tree.Node{Formeme: types.ROOT_FORMEME, Lemma: types.ROOT_LEMMA, Parent: -1},
		formemes, lemmas, heads)
	require.NoError(t, err)
	return tr
}

// corpus returns four aligned (tree, dialogue act) pairs:
//
//	it be dog          inform(type=dog)
//	cat be             inform(type=cat)&confirm()
//	be dog             confirm()&inform(type=dog)
//	it be cat big      inform(type=cat)
func corpus(t *testing.T) ([]types.DepTree, []types.DA) {
	trees := []types.DepTree{
		mustTree(t, []types.Formeme{"n:subj", "v:fin", "n:obj"}, []string{"it", "be", "dog"}, []int{2, 0, 2}),
		mustTree(t, []types.Formeme{"n:subj", "v:fin"}, []string{"cat", "be"}, []int{2, 0}),
		mustTree(t, []types.Formeme{"v:fin", "n:obj"}, []string{"be", "dog"}, []int{0, 1}),
		mustTree(t, []types.Formeme{"n:subj", "v:fin", "n:obj", "adj:attr"}, []string{"it", "be", "cat", "big"}, []int{2, 0, 2, 3}),
	}
	das := []types.DA{
		{informDog},
		{informCat, confirm},
		{confirm, informDog},
		{informCat},
	}
	return trees, das
}

func trainedModel(t *testing.T) *Model {
	t.Helper()
	trees, das := corpus(t)
	m, err := Train(context.Background(), trees, das)
	require.NoError(t, err)
	return m
}
