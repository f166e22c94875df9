// Package ordering sorts loaded lines in place.
package ordering

import "sort"

// Stats describes the work done by a sort.
type Stats struct {
	// Passes is the number of full scans over adjacent pairs, including the
	// last one that found nothing to swap.
	Passes int
	// Swaps is the number of exchanged pairs.
	Swaps int
}

// Bubble sorts data in place with repeated passes over adjacent pairs.
// A pair is swapped only when the right element is strictly less than the
// left one, so equal elements keep their relative order. The loop stops after
// the first pass without swaps, which happens after at most data.Len() passes.
func Bubble(data sort.Interface) Stats {
	var st Stats
	n := data.Len()
	if n < 2 {
		return st
	}

	// after each pass the largest remaining element has reached its final
	// slot, so the scanned range shrinks by one
	for end := n - 1; end > 0; end-- {
		st.Passes++
		swapped := false
		for i := 0; i < end; i++ {
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
				st.Swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return st
}

// Sorter sorts the valid part of a line buffer.
type Sorter struct {
	// Compare defaults to Ordinal.
	Compare Less
}

// Sort reorders text[:length] in place into non-decreasing order and leaves
// the remaining slots alone. length is clamped to [0, len(text)].
func (s Sorter) Sort(text []string, length int) Stats {
	if length < 0 {
		length = 0
	}
	if length > len(text) {
		length = len(text)
	}
	return Bubble(StringList{Items: text[:length], Compare: s.Compare})
}

// Alphabetize sorts text[:length] by ordinal comparison.
func Alphabetize(text []string, length int) Stats {
	return Sorter{}.Sort(text, length)
}
