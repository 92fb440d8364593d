package mining_test

import (
	"testing"

	"github.com/katalvlaran/fpgrowth/mining"
)

// benchmarkMine is a helper that mines fixed random transactions with opts.
func benchmarkMine(b *testing.B, n, vocab, width int, minSupport float64, opts ...mining.Option) {
	tx := randomTransactions(n, vocab, width, 42)

	b.ReportAllocs()
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := mining.Mine(tx, minSupport, opts...); err != nil {
			b.Fatalf("Mine failed: %v", err)
		}
	}
}

// BenchmarkMine_Small mines 1k transactions over 20 items.
func BenchmarkMine_Small(b *testing.B) { benchmarkMine(b, 1_000, 20, 6, 20) }

// BenchmarkMine_Medium mines 20k transactions over 100 items.
func BenchmarkMine_Medium(b *testing.B) { benchmarkMine(b, 20_000, 100, 10, 200) }

// BenchmarkMine_Distinct mines the medium set with unweighted pattern bases.
func BenchmarkMine_Distinct(b *testing.B) {
	benchmarkMine(b, 20_000, 100, 10, 200, mining.WithPatternBase(mining.Distinct))
}

// BenchmarkMine_MaxLength2 mines the medium set limited to pairs.
func BenchmarkMine_MaxLength2(b *testing.B) {
	benchmarkMine(b, 20_000, 100, 10, 200, mining.WithMaxLength(2))
}
