package types

import "strings"

const (
	ROOT_FORMEME = "<root>"
	ROOT_LEMMA   = "<root>"
)

type Formeme string

func (f Formeme) String() string {
	return string(f)
}

// Direction places a child relative to its parent in surface order.
type Direction bool

const (
	Before Direction = false
	After  Direction = true
)

func DirectionOf(after bool) Direction {
	return Direction(after)
}

func (d Direction) String() string {
	if d == After {
		return "after"
	}
	return "before"
}

// ChildEntry is one way a child can realize a slot of its parent.
type ChildEntry struct {
	Formeme Formeme
	Lemma   string
	Dir     Direction
}

func (c ChildEntry) String() string {
	return string(c.Formeme) + "/" + c.Lemma + "/" + c.Dir.String()
}

// Compare orders entries by formeme, lemma, then Before ahead of After.
func (c ChildEntry) Compare(other ChildEntry) int {
	if diff := strings.Compare(string(c.Formeme), string(other.Formeme)); diff != 0 {
		return diff
	}
	if diff := strings.Compare(c.Lemma, other.Lemma); diff != 0 {
		return diff
	}
	switch {
	case c.Dir == other.Dir:
		return 0
	case c.Dir == Before:
		return -1
	default:
		return 1
	}
}
