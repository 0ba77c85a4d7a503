package knapsack

import (
	"cmp"
	"math/bits"
	"slices"
)

// Violation is a pair of positions in a sequence where the earlier item does
// not dominate-or-tie the later one.
type Violation struct {
	I, J int
}

// SortByDensity returns a copy of items ordered by descending density.
// Ties are broken by weight ascending, then value descending, which makes
// the result satisfy the ordering-dominance invariant. The input is not
// modified.
func SortByDensity(items []Item) []Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compareDensity)
	return sorted
}

// compareDensity orders a before b when a is denser, then lighter, then more
// valuable.
func compareDensity(a, b Item) int {
	if c := cmpRatio(b, a); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
		return c
	}
	return cmp.Compare(b.Value, a.Value)
}

// cmpRatio compares the densities of a and b exactly.
// Weightless items with positive value compare equal to each other and above
// every finite density; (0,0) is ranked as density 0.
func cmpRatio(a, b Item) int {
	aInf, bInf := a.Weight == 0 && a.Value > 0, b.Weight == 0 && b.Value > 0
	switch {
	case aInf && bInf:
		return 0
	case aInf:
		return 1
	case bInf:
		return -1
	}
	an, ad := ratio(a)
	bn, bd := ratio(b)
	// an/ad vs bn/bd  <=>  an*bd vs bn*ad, in 128 bits.
	lh, ll := bits.Mul64(an, bd)
	rh, rl := bits.Mul64(bn, ad)
	if c := cmp.Compare(lh, rh); c != 0 {
		return c
	}
	return cmp.Compare(ll, rl)
}

func ratio(it Item) (num, den uint64) {
	if it.Weight == 0 {
		return 0, 1
	}
	return uint64(it.Value), uint64(it.Weight)
}

// CheckOrdering returns every pair (i, j), i < j, that breaks the
// ordering-dominance invariant or the descending density order.
// A sequence produced by SortByDensity never has violations.
func CheckOrdering(items []Item) []Violation {
	var bad []Violation
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			switch {
			case cmpRatio(a, b) < 0:
				bad = append(bad, Violation{I: i, J: j})
			case a.Value == b.Value && a.Weight > b.Weight:
				bad = append(bad, Violation{I: i, J: j})
			case a.Weight == b.Weight && a.Value < b.Value:
				bad = append(bad, Violation{I: i, J: j})
			}
		}
	}
	return bad
}
