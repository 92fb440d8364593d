package fptree

import "slices"

// PrefixPaths returns the conditional pattern base of item.
//
// The header chain of item is followed node by node. For each node the
// items of its ancestors (root excluded) form one pattern, weighted by the
// node's Count: that many transactions contain the ancestors together with
// item. Nodes hanging directly off the root contribute nothing.
//
// Patterns are returned in chain order with Items in canonical order, one
// per chain node; nothing is merged. An item outside the header yields nil.
func (t *Tree[T]) PrefixPaths(item T) []Pattern[T] {
	head := t.Header().Head(item)
	if head == NoNode {
		return nil
	}

	var patterns []Pattern[T]
	for id := head; id != NoNode; id = t.nodes[id].Link {
		n := &t.nodes[id]
		ancestors := t.ascend(n.Parent)
		if len(ancestors) == 0 {
			continue
		}
		slices.Reverse(ancestors)
		patterns = append(patterns, Pattern[T]{Items: ancestors, Count: n.Count})
	}
	return patterns
}
