package eval

import (
	"github.com/johndpope/tgen/nlp/types"
)

// Attachment is the unit of tree evaluation: one non-root node described by
// its parent's formeme and its own child entry.
type Attachment struct {
	Parent types.Formeme
	types.ChildEntry
}

func (a Attachment) String() string {
	return string(a.Parent) + " -> " + a.ChildEntry.String()
}

// NodeError is an attachment found in only one of the two trees.
type NodeError struct {
	Attachment
	Missing bool // in gold but not in test
}

func (e *NodeError) Class() string {
	if e.Missing {
		return "missing"
	}
	return "extra"
}

func (e *NodeError) String() string {
	return e.Class() + " " + e.Attachment.String()
}

// Attachments returns the multiset of attachments of t.
func Attachments(t types.DepTree) map[Attachment]int {
	retval := make(map[Attachment]int)
	for _, node := range t.Ordered() {
		if node == t.Root() {
			continue
		}
		retval[Attachment{t.Formeme(t.Parent(node)), types.Entry(t, node)}]++
	}
	return retval
}

// Trees compares the attachment multisets of test and gold. Word order
// enters only through each node's direction relative to its parent.
func Trees(test, gold types.DepTree) *Result {
	testAtt, goldAtt := Attachments(test), Attachments(gold)
	retval := &Result{}
	for att, n := range testAtt {
		matched := min(n, goldAtt[att])
		retval.TP += matched
		for i := matched; i < n; i++ {
			retval.FP++
			retval.Errors = append(retval.Errors, &NodeError{att, false})
		}
	}
	for att, n := range goldAtt {
		for i := testAtt[att]; i < n; i++ {
			retval.FN++
			retval.Errors = append(retval.Errors, &NodeError{att, true})
		}
	}
	return retval
}
