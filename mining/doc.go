// Package mining enumerates frequent itemsets with FP-Growth.
//
// What
//
//   - Mine builds an FP-tree over the transactions (see package fptree) and
//     walks it recursively, returning every itemset whose support reaches
//     the minimum, together with the top-level header table.
//   - MineTree runs the same recursion over an already built tree.
//   - For every header item (ascending item order) the miner:
//     1. emits prefix ∪ {item} as a frequent itemset,
//     2. extracts the item's conditional pattern base,
//     3. builds a conditional FP-tree from it with the same threshold,
//     4. recurses into that tree with the extended prefix, unless the
//     conditional tree is empty.
//
// Pattern bases
//
//	Weighted (default) feeds every prefix path into the conditional build
//	weighted by its node count. This is textbook FP-Growth: the result is
//	complete and every reported support is exact.
//
//	Distinct discards those counts and feeds each distinct prefix path once.
//	Supports in deeper conditional trees are understated, so the result can
//	miss itemsets. It exists to reproduce the behaviour of earlier tools that
//	did exactly this; select it with WithPatternBase(Distinct).
//
// Determinism
//
//	Header items are visited in ascending order and each itemset stores its
//	items in ascending order, so two runs over identical input produce
//	identical output sequences.
//
// Complexity
//
//   - Time:   output-sensitive; one conditional build per emitted itemset
//   - Memory: O(depth × conditional tree size); each level owns its tree
//
// Usage
//
//	res, err := mining.Mine(transactions, 2)
//	if err != nil {
//	    // fptree.ErrInvalidSupport, fptree.ErrUnorderedItem, ErrOptionViolation
//	}
//	for _, set := range res.Itemsets {
//	    fmt.Println(set.Items, set.Support)
//	}
//
//	// Bounded, cancellable mining that reproduces the unweighted base:
//	res, err = mining.Mine(transactions, 2,
//	    mining.WithContext(ctx),
//	    mining.WithMaxLength(3),
//	    mining.WithPatternBase(mining.Distinct),
//	)
package mining
