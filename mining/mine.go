package mining

import (
	"cmp"
	"context"
	"slices"

	"github.com/katalvlaran/fpgrowth/fptree"
)

// miner carries the state shared by one mining run.
type miner[T cmp.Ordered] struct {
	opts       Options
	ctx        context.Context
	minSupport float64
	out        []Itemset[T]
}

// Mine returns every itemset occurring in at least minSupport transactions,
// together with the top-level header table.
//
// minSupport is compared with raw transaction counts (use AbsoluteSupport to
// turn a fraction into a count). Empty input, or input where no item reaches
// minSupport, yields an empty Itemsets slice and a nil Header.
//
// Errors:
//   - fptree.ErrInvalidSupport, fptree.ErrUnorderedItem: bad input.
//   - ErrOptionViolation: bad option.
//   - ctx.Err(): the context passed by WithContext was cancelled.
func Mine[T cmp.Ordered](transactions [][]T, minSupport float64, opts ...Option) (*Result[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	tree, err := fptree.Build(transactions, minSupport)
	if err != nil {
		return nil, err
	}

	m := newMiner[T](o, minSupport)
	if err = m.mine(tree, nil, 0); err != nil {
		return nil, err
	}

	return &Result[T]{
		Itemsets:   m.out,
		Header:     tree.Header(),
		MinSupport: minSupport,
	}, nil
}

// MineTree runs the FP-Growth recursion over an already built tree, using
// the threshold the tree was built with. A nil tree yields no itemsets.
func MineTree[T cmp.Ordered](tree *fptree.Tree[T], opts ...Option) ([]Itemset[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	m := newMiner[T](o, tree.MinSupport())
	if err = m.mine(tree, nil, 0); err != nil {
		return nil, err
	}
	return m.out, nil
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func newMiner[T cmp.Ordered](o Options, minSupport float64) *miner[T] {
	return &miner[T]{
		opts:       o,
		ctx:        o.Ctx,
		minSupport: minSupport,
		out:        make([]Itemset[T], 0),
	}
}

// mine emits prefix ∪ {item} for every header item of tree in ascending
// order and recurses into the item's conditional tree.
func (m *miner[T]) mine(tree *fptree.Tree[T], prefix []T, depth int) error {
	h := tree.Header()
	for _, item := range h.SortedItems() {
		// cancellation check (once per item)
		select {
		case <-m.ctx.Done():
			return m.ctx.Err()
		default:
		}

		items := withItem(prefix, item)
		m.out = append(m.out, Itemset[T]{Items: items, Support: h.Support(item)})

		if m.opts.MaxLength > 0 && len(items) >= m.opts.MaxLength {
			continue
		}

		cond, err := fptree.BuildWeighted(m.patternBase(tree, item), m.minSupport)
		if err != nil {
			return err
		}
		if cond == nil {
			continue
		}

		m.opts.OnConditionalTree(depth+1, cond.Header().Len(), cond.Len())
		if err = m.mine(cond, items, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// patternBase returns the conditional input for item under the configured mode.
func (m *miner[T]) patternBase(tree *fptree.Tree[T], item T) []fptree.Pattern[T] {
	patterns := tree.PrefixPaths(item)
	if m.opts.PatternBase == Distinct {
		return distinctPatterns(patterns)
	}
	return patterns
}

// distinctPatterns keeps the first occurrence of every distinct item set
// and sets each weight to 1.
func distinctPatterns[T cmp.Ordered](patterns []fptree.Pattern[T]) []fptree.Pattern[T] {
	keys := make([][]T, len(patterns))
	order := make([]int, len(patterns))
	for i, p := range patterns {
		keys[i] = slices.Sorted(slices.Values(p.Items))
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return slices.Compare(keys[a], keys[b])
	})

	dup := make([]bool, len(patterns))
	for i := 1; i < len(order); i++ {
		if slices.Equal(keys[order[i-1]], keys[order[i]]) {
			dup[order[i]] = true
		}
	}

	out := make([]fptree.Pattern[T], 0, len(patterns))
	for i, p := range patterns {
		if !dup[i] {
			out = append(out, fptree.Pattern[T]{Items: p.Items, Count: 1})
		}
	}
	return out
}

// withItem returns a sorted copy of prefix with item added.
func withItem[T cmp.Ordered](prefix []T, item T) []T {
	pos, found := slices.BinarySearch(prefix, item)
	items := slices.Clone(prefix)
	if found {
		return items
	}
	return slices.Insert(items, pos, item)
}
