package cart

// StockErrors returns the subsequence of lines whose quantity exceeds their
// captured stock snapshot, in display order. A non-empty result is the sole
// business-rule reason a submission is blocked; it is recomputed from scratch
// on every item-set change.
func StockErrors(items []LineItem) []LineItem {
	var out []LineItem
	for _, li := range items {
		if li.ExceedsStock() {
			out = append(out, li)
		}
	}
	return out
}
