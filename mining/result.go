package mining

import "cmp"

// Len returns the number of frequent itemsets.
func (r *Result[T]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Itemsets)
}

// Items returns the frequent items of the top-level header in ascending order.
func (r *Result[T]) Items() []T {
	if r == nil {
		return nil
	}
	return r.Header.SortedItems()
}

// ByItem groups itemsets by the items they contain: one group per header
// item (ascending), each listing its itemsets in emission order.
func (r *Result[T]) ByItem() []ItemGroup[T] {
	items := r.Items()
	groups := make([]ItemGroup[T], len(items))
	index := make(map[T]int, len(items))
	for i, item := range items {
		groups[i] = ItemGroup[T]{Item: item}
		index[item] = i
	}
	if r == nil {
		return groups
	}

	for _, set := range r.Itemsets {
		for _, item := range set.Items {
			if i, ok := index[item]; ok {
				groups[i].Itemsets = append(groups[i].Itemsets, set)
			}
		}
	}
	return groups
}

// Verify recomputes the support of every itemset against transactions and
// returns the itemsets whose true support is below the threshold or differs
// from the reported one. An empty slice means the result is consistent.
func (r *Result[T]) Verify(transactions [][]T) []Mismatch[T] {
	if r == nil {
		return nil
	}
	var out []Mismatch[T]
	for _, set := range r.Itemsets {
		actual := Support(transactions, set.Items)
		if actual != set.Support || float64(actual) < r.MinSupport {
			out = append(out, Mismatch[T]{Itemset: set, Actual: actual})
		}
	}
	return out
}

// Mismatch pairs a reported itemset with its recomputed support.
type Mismatch[T cmp.Ordered] struct {
	Itemset Itemset[T]
	Actual  int
}
