package randgen

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johndpope/tgen/alg/dist"
	"github.com/johndpope/tgen/nlp/types"
)

func TestMergedCDFsSingleItem(t *testing.T) {
	item1 := types.DAI{DAType: "inform", Slot: "food", Value: "chinese"}
	m := &Model{
		FormCounts: AttachmentCounts{
			item1: {"n:subj": {dogAfter: 3, catBefore: 1}},
		},
	}
	cdfs, err := m.MergedCDFs(types.DA{item1})
	require.NoError(t, err)
	assert.Equal(t, dist.CDF[types.ChildEntry]{
		{Key: dogAfter, Cum: 0.75},
		{Key: catBefore, Cum: 1.0},
	}, cdfs["n:subj"])
	assert.Len(t, cdfs, 1)
}

func TestMergedCDFsOrderIndependent(t *testing.T) {
	m := trainedModel(t)
	ab, err := m.MergedCDFs(types.DA{informDog, confirm, informCat})
	require.NoError(t, err)
	ba, err := m.MergedCDFs(types.DA{informCat, confirm, informDog})
	require.NoError(t, err)
	if diff := cmp.Diff(ab, ba); diff != "" {
		t.Errorf("merge depends on item order (-ab +ba):\n%s", diff)
	}
	for formeme, cdf := range ab {
		assert.NoError(t, cdf.Validate(), "formeme %s", formeme)
		assert.InDelta(t, 1.0, cdf.Total(), 1e-9)
	}
}

func TestMergedCountsSums(t *testing.T) {
	m := trainedModel(t)
	merged, err := m.MergedCounts(types.DA{informDog, confirm})
	require.NoError(t, err)
	// dog follows "be" twice under inform(type=dog) and once under confirm()
	assert.Equal(t, 3, merged["v:fin"][dogAfter])

	// the model's own tables are left alone
	assert.Equal(t, 2, m.FormCounts[informDog]["v:fin"][dogAfter])
}

func TestMergedCDFsUnknownItem(t *testing.T) {
	m := trainedModel(t)
	unknown := types.DAI{DAType: "bye"}
	_, err := m.MergedCDFs(types.DA{informDog, unknown})
	require.ErrorIs(t, err, ErrUnknownSemanticItem)
	var itemErr *UnknownItemError
	require.True(t, errors.As(err, &itemErr))
	assert.Equal(t, unknown, itemErr.Item)
}

func TestModelChildCDFs(t *testing.T) {
	m := trainedModel(t)
	assert.Equal(t, 3, m.Items())
	assert.Equal(t, dist.CDF[int]{{Key: 1, Cum: 0.5}, {Key: 2, Cum: 1.0}}, m.ChildCDFs["v:fin"])
	assert.Equal(t, dist.CDF[int]{{Key: 0, Cum: 2.0 / 3.0}, {Key: 1, Cum: 1.0}}, m.ChildCDFs["n:obj"])
}
