package fptree

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Build constructs an FP-tree from transactions, keeping only items that
// occur in at least minSupport transactions.
//
// Algorithm Outline:
//  1. Count every distinct item once per transaction.
//  2. Keep items with count >= minSupport. None left → (nil, nil).
//  3. Order frequent items by count desc, ties by item asc (canonical order).
//  4. For each transaction: drop infrequent items, reorder the rest by the
//     canonical order and insert the path from the root, creating nodes
//     and appending them to their header chain as needed.
//
// minSupport is compared against raw occurrence counts, never normalized.
// A nil tree with a nil error means no item is frequent; callers stop there.
//
// Errors:
//   - ErrInvalidSupport: minSupport negative, NaN or infinite.
//   - ErrUnorderedItem : an item is not equal to itself (NaN).
//
// The transactions slice and its elements are never modified.
func Build[T cmp.Ordered](transactions [][]T, minSupport float64) (*Tree[T], error) {
	patterns := make([]Pattern[T], len(transactions))
	for i, tx := range transactions {
		patterns[i] = Pattern[T]{Items: tx, Count: 1}
	}

	return BuildWeighted(patterns, minSupport)
}

// BuildWeighted is Build over weighted transactions: each pattern counts
// Count times toward item supports and node counts. Patterns with a
// non-positive Count are ignored.
func BuildWeighted[T cmp.Ordered](patterns []Pattern[T], minSupport float64) (*Tree[T], error) {
	if err := validateSupport(minSupport); err != nil {
		return nil, err
	}

	counts, err := countItems(patterns)
	if err != nil {
		return nil, err
	}

	frequent := make([]T, 0, len(counts))
	for item, c := range counts {
		if float64(c) >= minSupport {
			frequent = append(frequent, item)
		}
	}
	if len(frequent) == 0 {
		return nil, nil
	}

	slices.SortFunc(frequent, func(a, b T) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	t := newTree(frequent, counts, minSupport)
	path := make([]T, 0, len(frequent))
	for _, p := range patterns {
		if p.Count <= 0 {
			continue
		}
		path = t.orderPath(path[:0], p.Items)
		if len(path) > 0 {
			t.insert(path, p.Count)
		}
	}

	return t, nil
}

// validateSupport rejects thresholds that cannot be compared to a count.
func validateSupport(minSupport float64) error {
	if math.IsNaN(minSupport) || math.IsInf(minSupport, 0) || minSupport < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidSupport, minSupport)
	}
	return nil
}

// countItems sums pattern weights per item, counting an item at most once
// per pattern.
func countItems[T cmp.Ordered](patterns []Pattern[T]) (map[T]int, error) {
	counts := make(map[T]int)
	seen := make(map[T]struct{})
	for i, p := range patterns {
		if p.Count <= 0 {
			continue
		}
		clear(seen)
		for _, item := range p.Items {
			if item != item {
				return nil, fmt.Errorf("%w: transaction %d", ErrUnorderedItem, i)
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			counts[item] += p.Count
		}
	}
	return counts, nil
}

// newTree allocates the root and one empty header chain per frequent item.
func newTree[T cmp.Ordered](order []T, counts map[T]int, minSupport float64) *Tree[T] {
	t := &Tree[T]{
		nodes: make([]Node[T], 1, len(order)+1),
		header: &HeaderTable[T]{
			order:   order,
			entries: make(map[T]*headerEntry, len(order)),
		},
		rank:       make(map[T]int, len(order)),
		minSupport: minSupport,
	}
	t.nodes[RootID] = Node[T]{Parent: NoNode, Link: NoNode}
	for i, item := range order {
		t.rank[item] = i
		t.header.entries[item] = &headerEntry{head: NoNode, tail: NoNode, support: counts[item]}
	}
	return t
}

// orderPath appends the frequent items of items to dst in canonical order,
// without duplicates.
func (t *Tree[T]) orderPath(dst, items []T) []T {
	for _, item := range items {
		if _, ok := t.rank[item]; ok {
			dst = append(dst, item)
		}
	}
	slices.SortFunc(dst, func(a, b T) int {
		return cmp.Compare(t.rank[a], t.rank[b])
	})
	return slices.Compact(dst)
}

// insert walks path from the root one item at a time, merging into an
// existing child or creating a new one.
func (t *Tree[T]) insert(path []T, weight int) {
	cur := RootID
	for _, item := range path {
		child, ok := t.nodes[cur].children[item]
		if ok {
			t.nodes[child].Count += weight
		} else {
			child = t.newNode(item, weight, cur)
		}
		cur = child
	}
}

// newNode appends a child of parent to the arena and to the tail of the
// item's header chain.
func (t *Tree[T]) newNode(item T, count int, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node[T]{Item: item, Count: count, Parent: parent, Link: NoNode})

	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[T]NodeID)
	}
	p.children[item] = id

	e := t.header.entries[item]
	if e.head == NoNode {
		e.head = id
	} else {
		t.nodes[e.tail].Link = id
	}
	e.tail = id
	e.nodes++

	return id
}
