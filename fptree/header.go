package fptree

import "slices"

// Len returns the number of frequent items.
func (h *HeaderTable[T]) Len() int {
	if h == nil {
		return 0
	}
	return len(h.order)
}

// Items returns the frequent items in canonical order
// (support desc, item asc).
func (h *HeaderTable[T]) Items() []T {
	if h == nil {
		return nil
	}
	return slices.Clone(h.order)
}

// SortedItems returns the frequent items in ascending item order.
func (h *HeaderTable[T]) SortedItems() []T {
	items := h.Items()
	slices.Sort(items)
	return items
}

// Has reports whether item is frequent in this table.
func (h *HeaderTable[T]) Has(item T) bool {
	if h == nil {
		return false
	}
	_, ok := h.entries[item]
	return ok
}

// Support returns the (weighted) number of transactions containing item,
// or 0 if item is not in the table.
func (h *HeaderTable[T]) Support(item T) int {
	if e := h.entry(item); e != nil {
		return e.support
	}
	return 0
}

// Head returns the first node of item's chain, or NoNode.
func (h *HeaderTable[T]) Head(item T) NodeID {
	if e := h.entry(item); e != nil {
		return e.head
	}
	return NoNode
}

// ChainLength returns the number of nodes carrying item.
func (h *HeaderTable[T]) ChainLength(item T) int {
	if e := h.entry(item); e != nil {
		return e.nodes
	}
	return 0
}

func (h *HeaderTable[T]) entry(item T) *headerEntry {
	if h == nil {
		return nil
	}
	return h.entries[item]
}
