package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChildEntryCompare(t *testing.T) {
	dogAfter := ChildEntry{"n:obj", "dog", After}
	dogBefore := ChildEntry{"n:obj", "dog", Before}
	cat := ChildEntry{"n:obj", "cat", After}
	subj := ChildEntry{"n:subj", "cat", Before}

	assert.Equal(t, 0, dogAfter.Compare(dogAfter))
	assert.Equal(t, -1, dogBefore.Compare(dogAfter))
	assert.Equal(t, 1, dogAfter.Compare(dogBefore))
	assert.Less(t, cat.Compare(dogBefore), 0)
	assert.Less(t, dogAfter.Compare(subj), 0)
	assert.Equal(t, "n:obj/dog/after", dogAfter.String())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, After, DirectionOf(true))
	assert.Equal(t, Before, DirectionOf(false))
	assert.Equal(t, "before", Before.String())
}

func TestDAString(t *testing.T) {
	da := DA{
		{"inform", "food", "Chinese"},
		{"inform", "name", "Golden Dragon"},
		{"hello", "", ""},
		{"request", "area", ""},
	}
	assert.Equal(t, `inform(food=Chinese)&inform(name="Golden Dragon")&hello()&request(area)`, da.String())
}

func TestDASorted(t *testing.T) {
	da := DA{{"inform", "name", "X"}, {"hello", "", ""}, {"inform", "food", "Y"}}
	sorted := da.Sorted()
	assert.Equal(t, DA{{"hello", "", ""}, {"inform", "food", "Y"}, {"inform", "name", "X"}}, sorted)
	assert.Equal(t, DAI{"inform", "name", "X"}, da[0], "original must be untouched")
}
