package benchmarks

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"topn-spec/internal"
	"topn-spec/internal/infra"
	"topn-spec/specs"
)

// Benchmark RecordSpec construction with realistic data
func BenchmarkRecord_Realistic_Memory(b *testing.B) {
	b.ReportAllocs()

	orderedAt := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < b.N; i++ {
		_ = specs.NewRecord("rnd_550e8400-e29b-41d4-a716-446655440000", "startup:acme", "12000000.00", orderedAt, 3)
	}
}

// Benchmark TopNResultSpec JSON wire size path
func BenchmarkTopNResult_JSON(b *testing.B) {
	b.ReportAllocs()

	result := specs.TopNResultSpec{
		Total:         "16500000.00",
		CountConsumed: 4,
	}

	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(result); err != nil {
			b.Fatal(err)
		}
	}
}

func buildSource(partitionKey string, size int) *infra.MemorySource {
	source := infra.NewMemorySource()
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < size; i++ {
		source.Add(specs.NewRecord(
			fmt.Sprintf("rnd_%06d", i),
			partitionKey,
			"1250.75",
			base.Add(time.Duration(i)*time.Hour),
			i,
		))
	}
	return source
}

// Benchmark aggregating the first 100 of a 1000-record partition
func BenchmarkAggregateTopN_100of1000(b *testing.B) {
	source := buildSource("startup:acme", 1000)
	request := specs.TopNRequestSpec{PartitionKey: "startup:acme", N: 100}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := internal.AggregateTopN(request, source.RecordAt); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark the degrade-to-zero path: N far past the end of data
func BenchmarkAggregateTopN_PastEndOfData(b *testing.B) {
	source := buildSource("startup:acme", 10)
	request := specs.TopNRequestSpec{PartitionKey: "startup:acme", N: 1000}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := internal.AggregateTopN(request, source.RecordAt); err != nil {
			b.Fatal(err)
		}
	}
}
