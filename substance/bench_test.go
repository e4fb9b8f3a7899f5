// SPDX-License-Identifier: MIT

package substance_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/alchemy/substance"
)

// BenchmarkClassify_Binary measures the early pipeline stages.
func BenchmarkClassify_Binary(b *testing.B) {
	in := ms(b, "Fe2O3")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = substance.Classify(in)
	}
}

// BenchmarkClassify_Salt measures the valency search on a salt with a
// multi-valent cation and residue centre.
func BenchmarkClassify_Salt(b *testing.B) {
	in := ms(b, "Fe2(CrO4)3")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = substance.Classify(in)
	}
}

// BenchmarkClassify_Unknown measures full pipeline exhaustion.
func BenchmarkClassify_Unknown(b *testing.B) {
	in := ms(b, "FeCu")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = substance.Classify(in)
	}
}

// BenchmarkClassifyAll runs the whole corpus as one batch.
func BenchmarkClassifyAll(b *testing.B) {
	inputs := make([]substance.Multiset, 0, len(corpus))
	for _, f := range corpus {
		inputs = append(inputs, ms(b, f))
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.SetBytes(int64(len(inputs)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = substance.ClassifyAll(ctx, inputs)
	}
}
