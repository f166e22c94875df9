package ordering

import (
	"sort"

	"facette.io/natsort"
)

var _ sort.Interface = StringList{}

// Less reports whether a must sort before b. It has to be a strict order:
// Less(a, a) is false.
type Less func(a, b string) bool

// Ordinal compares strings byte by byte, with no locale or case folding.
// Uppercase ASCII letters sort before lowercase ones.
func Ordinal(a, b string) bool {
	return a < b
}

// Natural compares runs of digits by their numeric value, so "file2" sorts
// before "file10".
func Natural(a, b string) bool {
	return natsort.Compare(a, b)
}

// StringList is a list of strings that *can* be sorted.
//
// Implement sort.Interface
type StringList struct {
	Items []string
	// Compare defaults to Ordinal.
	Compare Less
}

// Len returns the length of the list.
func (s StringList) Len() int {
	return len(s.Items)
}

// Swap swaps the elements with indexes i and j.
func (s StringList) Swap(i, j int) {
	s.Items[i], s.Items[j] = s.Items[j], s.Items[i]
}

// Less reports whether the element with index i should sort before the element with index j.
func (s StringList) Less(i, j int) bool {
	if s.Compare == nil {
		return Ordinal(s.Items[i], s.Items[j])
	}
	return s.Compare(s.Items[i], s.Items[j])
}

// Sort bubble sorts the list in place.
func (s StringList) Sort() Stats {
	return Bubble(s)
}

// IsSorted reports whether every adjacent pair is in order.
func (s StringList) IsSorted() bool {
	return sort.IsSorted(s)
}
