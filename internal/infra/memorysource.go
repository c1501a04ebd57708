package infra

import (
	"sort"

	specs "topn-spec/specs"
)

// MemorySource is an in-memory record source keeping each partition sorted
// ascending by (OrderedAt, Sequence). It stands in for the external
// relational store in flow tests and benchmarks.
//
// Loading and reading are separate phases: finish Add calls before handing
// RecordAt to an aggregation. The source offers no isolation of its own,
// matching the consistency stance of the external stores it imitates.
type MemorySource struct {
	partitions map[string][]specs.RecordSpec
}

func NewMemorySource() *MemorySource {
	return &MemorySource{partitions: map[string][]specs.RecordSpec{}}
}

// Add inserts a record into its partition, keeping the partition order.
func (s *MemorySource) Add(record specs.RecordSpec) {
	records := append(s.partitions[record.PartitionKey], record)
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].OrderedAt.Equal(records[j].OrderedAt) {
			return records[i].OrderedAt.Before(records[j].OrderedAt)
		}
		return records[i].Sequence < records[j].Sequence
	})
	s.partitions[record.PartitionKey] = records
}

// RecordAt satisfies specs.RecordAt. Returns nil when the partition holds
// fewer than index+1 records; an unknown partition is simply empty.
func (s *MemorySource) RecordAt(partitionKey string, index int) (*specs.RecordSpec, error) {
	records := s.partitions[partitionKey]
	if index < 0 || index >= len(records) {
		return nil, nil
	}

	record := records[index]
	return &record, nil
}

// PartitionSize returns the number of records held for a partition.
func (s *MemorySource) PartitionSize(partitionKey string) int {
	return len(s.partitions[partitionKey])
}
