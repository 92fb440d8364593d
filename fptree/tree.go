package fptree

import (
	"cmp"
	"maps"
	"slices"
)

// Empty reports whether t holds no item nodes. A nil tree is empty.
func (t *Tree[T]) Empty() bool {
	return t == nil || len(t.nodes) <= 1
}

// Len returns the number of item nodes, excluding the root.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes) - 1
}

// Header returns the header table built together with t.
func (t *Tree[T]) Header() *HeaderTable[T] {
	if t == nil {
		return nil
	}
	return t.header
}

// MinSupport returns the threshold t was built with.
func (t *Tree[T]) MinSupport() float64 {
	if t == nil {
		return 0
	}
	return t.minSupport
}

// Node returns a copy of the node behind id.
func (t *Tree[T]) Node(id NodeID) (Node[T], bool) {
	if t == nil || id < 0 || int(id) >= len(t.nodes) {
		return Node[T]{}, false
	}
	n := t.nodes[id]
	n.children = nil
	return n, true
}

// Children returns the child handles of id in canonical item order.
func (t *Tree[T]) Children(id NodeID) []NodeID {
	if t == nil || id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	ids := slices.Collect(maps.Values(t.nodes[id].children))
	slices.SortFunc(ids, func(a, b NodeID) int {
		return cmp.Compare(t.rank[t.nodes[a].Item], t.rank[t.nodes[b].Item])
	})
	return ids
}

// Child returns the child of id carrying item.
func (t *Tree[T]) Child(id NodeID, item T) (NodeID, bool) {
	if t == nil || id < 0 || int(id) >= len(t.nodes) {
		return NoNode, false
	}
	child, ok := t.nodes[id].children[item]
	if !ok {
		return NoNode, false
	}
	return child, true
}

// Chain returns the header chain of item: every node carrying it, in
// creation order.
func (t *Tree[T]) Chain(item T) []NodeID {
	head := t.Header().Head(item)
	if head == NoNode {
		return nil
	}
	chain := make([]NodeID, 0, t.header.ChainLength(item))
	for id := head; id != NoNode; id = t.nodes[id].Link {
		chain = append(chain, id)
	}
	return chain
}

// Path returns the items from the root (exclusive) down to id (inclusive).
func (t *Tree[T]) Path(id NodeID) []T {
	if t == nil || id <= RootID || int(id) >= len(t.nodes) {
		return nil
	}
	path := t.ascend(id)
	slices.Reverse(path)
	return path
}

// ascend collects items walking parent handles from id up to, but not
// including, the root. Order is leaf to root.
func (t *Tree[T]) ascend(id NodeID) []T {
	var items []T
	for id != NoNode && id != RootID {
		n := &t.nodes[id]
		items = append(items, n.Item)
		id = n.Parent
	}
	return items
}
