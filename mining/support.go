package mining

import (
	"cmp"
	"fmt"
	"math"
)

// fractionEpsilon absorbs float noise such as 0.3*10 = 3.0000000000000004.
const fractionEpsilon = 1e-9

// AbsoluteSupport converts a relative threshold in [0, 1] over n
// transactions into the raw count Mine expects: ceil(fraction·n).
func AbsoluteSupport(fraction float64, n int) (float64, error) {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidFraction, fraction)
	}
	if n <= 0 {
		return 0, nil
	}
	return math.Ceil(fraction*float64(n) - fractionEpsilon), nil
}

// Support counts the transactions that contain every item of items.
// It scans all transactions; use it to check results, not to mine.
func Support[T cmp.Ordered](transactions [][]T, items []T) int {
	if len(items) == 0 {
		return len(transactions)
	}

	seen := make(map[T]struct{})
	count := 0
	for _, tx := range transactions {
		clear(seen)
		for _, item := range tx {
			seen[item] = struct{}{}
		}
		if containsAll(seen, items) {
			count++
		}
	}
	return count
}

func containsAll[T cmp.Ordered](set map[T]struct{}, items []T) bool {
	for _, item := range items {
		if _, ok := set[item]; !ok {
			return false
		}
	}
	return true
}
