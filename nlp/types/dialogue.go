package types

import (
	"sort"
	"strings"
)

// quoteEscaper escapes backslashes and double quotes inside quoted values.
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// DAI is a dialogue act item: one act type with at most one slot-value pair.
type DAI struct {
	DAType string
	Slot   string
	Value  string
}

func (d DAI) String() string {
	var b strings.Builder
	b.WriteString(d.DAType)
	b.WriteByte('(')
	if d.Slot != "" {
		b.WriteString(d.Slot)
		if d.Value != "" {
			b.WriteByte('=')
			if strings.ContainsAny(d.Value, ",()&=\" ") {
				b.WriteByte('"')
				b.WriteString(quoteEscaper.Replace(d.Value))
				b.WriteByte('"')
			} else {
				b.WriteString(d.Value)
			}
		}
	}
	b.WriteByte(')')
	return b.String()
}

func (d DAI) Compare(other DAI) int {
	if diff := strings.Compare(d.DAType, other.DAType); diff != 0 {
		return diff
	}
	if diff := strings.Compare(d.Slot, other.Slot); diff != 0 {
		return diff
	}
	return strings.Compare(d.Value, other.Value)
}

// DA is a dialogue act: the semantic input of one instance.
type DA []DAI

func (da DA) String() string {
	strs := make([]string, len(da))
	for i, dai := range da {
		strs[i] = dai.String()
	}
	return strings.Join(strs, "&")
}

// Sorted returns a copy of da in canonical order.
func (da DA) Sorted() DA {
	retval := make(DA, len(da))
	copy(retval, da)
	sort.Slice(retval, func(i, j int) bool { return retval[i].Compare(retval[j]) < 0 })
	return retval
}
