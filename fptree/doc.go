// Package fptree builds FP-trees: prefix trees that compress a transaction
// set by sharing common leading items under one fixed item ordering.
//
// 🚀 What is an FP-tree?
//
//	Every transaction is reduced to its frequent items, sorted by descending
//	global support (ties broken by ascending item value), and inserted as a
//	path from the root. Transactions that start the same way share nodes, and
//	each node counts how many transactions pass through it.
//
//	A header table indexes every frequent item to the chain of tree nodes
//	carrying it, so all occurrences of an item can be visited without
//	scanning the whole tree.
//
// ✨ Key features:
//   - arena storage: nodes live in one slice, parent/link/child are NodeID handles
//   - generic over any cmp.Ordered item type (strings, ints, floats …)
//   - weighted input via BuildWeighted (used for conditional trees)
//   - PrefixPaths extracts the conditional pattern base of an item
//   - nil-safe inspection: a nil *Tree or *HeaderTable reads as empty
//
// ⚙️ Usage:
//
//	tree, err := fptree.Build([][]string{
//	  {"bread", "milk"},
//	  {"bread", "butter"},
//	}, 2)
//	if err != nil {
//	  // ErrInvalidSupport or ErrUnorderedItem
//	}
//	if tree == nil {
//	  // no item reached the minimum support
//	}
//	for _, item := range tree.Header().Items() {
//	  fmt.Println(item, tree.Header().Support(item))
//	}
//
// Determinism:
//
//	The canonical ordering is total (support desc, item asc), and transactions
//	are inserted in input order, so the tree shape, the header chains and the
//	node IDs are reproducible for identical input.
//
// Performance:
//
//   - Build: O(Σ|t|·log|t|) for sorting plus O(Σ|t|) insertions
//   - PrefixPaths(item): O(chain length × tree depth)
//   - Memory: O(number of distinct prefixes)
package fptree
