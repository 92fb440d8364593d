// Package fptree defines the arena-backed tree, header table and errors.
package fptree

import (
	"cmp"
	"errors"
)

// Sentinel errors for tree construction.
var (
	// ErrInvalidSupport is returned when the minimum support is negative, NaN or infinite.
	ErrInvalidSupport = errors.New("fptree: minimum support must be a finite non-negative number")

	// ErrUnorderedItem is returned when an item cannot be ordered against
	// the others (an item that is not equal to itself, e.g. a NaN float).
	ErrUnorderedItem = errors.New("fptree: item is not comparable with itself")
)

// NodeID is a handle to a node stored in a Tree's arena.
type NodeID int

const (
	// RootID is the handle of the synthetic root of every tree.
	RootID NodeID = 0

	// NoNode marks an absent parent or the end of a header chain.
	NoNode NodeID = -1
)

// Node is one position of the prefix tree.
//
//   - Item  : the item this node stands for (zero value for the root).
//   - Count : number of (weighted) transactions passing through the node.
//   - Parent: handle of the parent, NoNode for the root.
//   - Link  : next node carrying the same Item, NoNode at the chain tail.
type Node[T cmp.Ordered] struct {
	Item   T
	Count  int
	Parent NodeID
	Link   NodeID

	children map[T]NodeID
}

// Pattern is a weighted transaction: Items occurred together Count times.
// PrefixPaths returns conditional patterns in this form and BuildWeighted
// consumes them.
type Pattern[T cmp.Ordered] struct {
	Items []T
	Count int
}

// headerEntry is the per-item record of a HeaderTable.
type headerEntry struct {
	head    NodeID
	tail    NodeID
	support int
	nodes   int
}

// HeaderTable maps every frequent item to the chain of nodes carrying it.
// Chains are in node creation order.
type HeaderTable[T cmp.Ordered] struct {
	order   []T // canonical: support desc, item asc
	entries map[T]*headerEntry
}

// Tree is an FP-tree together with its header table.
// It is an immutable snapshot once Build returns.
type Tree[T cmp.Ordered] struct {
	nodes      []Node[T]
	header     *HeaderTable[T]
	rank       map[T]int
	minSupport float64
}
