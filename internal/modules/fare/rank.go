// README: Stable price-ascending ranking of offers.
package fare

import "sort"

// RankByPrice returns a new slice sorted by price ascending. The sort is
// stable: equal prices keep their relative input order, which is the tie
// rule downstream recommendation relies on.
func RankByPrice(offers []Offer) []Offer {
	out := make([]Offer, len(offers))
	copy(out, offers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price < out[j].Price
	})
	return out
}
