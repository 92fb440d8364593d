// Package fpgrowth is an in-memory toolkit for mining frequent itemsets
// with the FP-Growth algorithm, from tree construction to recursive mining.
//
// 🚀 What is fpgrowth?
//
//	A small, deterministic, generic library that brings together:
//		• FP-tree construction over any cmp.Ordered item type
//		• Header tables with per-item node chains
//		• Conditional pattern base extraction
//		• Recursive FP-Growth mining, weighted or distinct pattern bases
//		• Support helpers: brute-force recount, relative → absolute thresholds
//
// ✨ Why choose fpgrowth?
//
//   - Minimal API: Build a tree, Mine a result
//   - Reproducible: fixed tie-breaking and ascending emission order
//   - Arena-backed trees: parent, child and same-item links are plain handles
//   - Pure Go library packages, with a cobra CLI on top
//
// Under the hood, everything is organized under two packages:
//
//	fptree/: FP-tree Builder, header table and PrefixPaths
//	mining/: FP-Growth Miner, Result grouping and support helpers
//
// and a command line tool:
//
//	cmd/fpgrowth: `fpgrowth mine` / `fpgrowth header` over comma-separated baskets
//
// Quick ASCII example (baskets {bread,milk}, {bread,butter}, {bread,milk,butter}):
//
//	        (root)
//	          │
//	       bread:3
//	       /     \
//	   milk:2   butter:1
//	     │
//	  butter:1
//
// The two butter nodes are chained from the header table entry for butter.
//
//	go get github.com/katalvlaran/fpgrowth
package fpgrowth
