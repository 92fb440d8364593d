// Package mining defines options, results and errors for FP-Growth mining.
package mining

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/fpgrowth/fptree"
)

// Sentinel errors for mining.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mining: invalid option supplied")

	// ErrInvalidFraction is returned by AbsoluteSupport for a fraction outside [0, 1].
	ErrInvalidFraction = errors.New("mining: relative support must be within [0, 1]")

	// ErrUnknownPatternBase is returned by ParsePatternBase for an unknown name.
	ErrUnknownPatternBase = errors.New("mining: unknown pattern base")
)

// PatternBase selects how conditional pattern bases feed conditional builds.
type PatternBase int

const (
	// Weighted feeds each prefix path weighted by its node count.
	Weighted PatternBase = iota

	// Distinct feeds each distinct prefix path once, dropping counts.
	Distinct
)

// String returns the lowercase name of p.
func (p PatternBase) String() string {
	switch p {
	case Weighted:
		return "weighted"
	case Distinct:
		return "distinct"
	default:
		return fmt.Sprintf("PatternBase(%d)", int(p))
	}
}

// ParsePatternBase maps "weighted" or "distinct" (any case) to a PatternBase.
func ParsePatternBase(s string) (PatternBase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weighted", "":
		return Weighted, nil
	case "distinct":
		return Distinct, nil
	default:
		return Weighted, fmt.Errorf("%w: %q", ErrUnknownPatternBase, s)
	}
}

// Option configures mining via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a mining run.
type Options struct {
	// Ctx allows cancellation; it is checked once per header item.
	Ctx context.Context

	// PatternBase selects Weighted (default) or Distinct conditional input.
	PatternBase PatternBase

	// MaxLength, if > 0, stops extending itemsets past this many items.
	MaxLength int

	// OnConditionalTree is called for every non-empty conditional tree with
	// its recursion depth (1 for the first level), number of frequent items
	// and number of nodes.
	OnConditionalTree func(depth, items, nodes int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Weighted pattern bases
//   - no length limit
//   - a no-op OnConditionalTree hook
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		PatternBase:       Weighted,
		MaxLength:         0,
		OnConditionalTree: func(int, int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPatternBase selects how conditional pattern bases are fed back.
func WithPatternBase(p PatternBase) Option {
	return func(o *Options) {
		switch p {
		case Weighted, Distinct:
			o.PatternBase = p
		default:
			o.err = fmt.Errorf("%w: unknown pattern base %d", ErrOptionViolation, int(p))
		}
	}
}

// WithMaxLength limits the size of emitted itemsets.
//
//	k > 0:  itemsets hold at most k items
//	k == 0: explicit no limit
//	k < 0:  invalid option → ErrOptionViolation
func WithMaxLength(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxLength = k
	}
}

// WithOnConditionalTree registers a callback run for each conditional tree.
func WithOnConditionalTree(fn func(depth, items, nodes int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnConditionalTree = fn
		}
	}
}

// Itemset is one frequent itemset. Items are in ascending order; Support is
// the count recorded in the header of the tree the itemset was emitted from.
type Itemset[T cmp.Ordered] struct {
	Items   []T `json:"items" yaml:"items"`
	Support int `json:"support" yaml:"support"`
}

// Len returns the number of items in s.
func (s Itemset[T]) Len() int { return len(s.Items) }

// Contains reports whether item belongs to s.
func (s Itemset[T]) Contains(item T) bool {
	_, ok := slices.BinarySearch(s.Items, item)
	return ok
}

// Result holds the outcome of Mine:
//   - Itemsets:   frequent itemsets in emission order.
//   - Header:     the top-level header table (nil when nothing is frequent).
//   - MinSupport: the threshold the run used.
type Result[T cmp.Ordered] struct {
	Itemsets   []Itemset[T]
	Header     *fptree.HeaderTable[T]
	MinSupport float64
}

// ItemGroup lists every itemset containing Item.
type ItemGroup[T cmp.Ordered] struct {
	Item     T
	Itemsets []Itemset[T]
}
