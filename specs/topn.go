package specs

// AggregateTopN computes an associative aggregate over the first N records
// of a partition.
//
// Process:
//  1. Validate the request (N must be non-negative, operator must be known)
//  2. Walk positions 0..N-1 of the partition in ascending order
//  3. Fetch each position from the source until the partition is exhausted
//  4. Fold each position's value into the running total, left to right
//
// A position past the end of the partition contributes zero, as does a
// record whose measure is absent. The walk always covers all N positions
// rather than stopping at the end of data, so a short partition degrades to
// zero-valued positions instead of an error. Once the source reports a
// position absent, no further fetches are issued; the remaining positions
// contribute zero without touching the source.
//
// Returns TopNResultSpec with the folded total and the number of records
// actually consumed. Returns an error for a negative N or an unknown
// operator (invalid argument) or when the source cannot be queried (source
// unavailable); no partial result accompanies an error.
//
// This is the spec-level interface using only primitive types.
// See internal.AggregateTopN for the reference implementation.
type AggregateTopN func(request TopNRequestSpec, source RecordAt) (TopNResultSpec, error)

// RecordAt is the capability an external record source must provide.
//
// Given a partition key and a 0-based position, it returns the record at
// that position of the partition sorted ascending by (OrderedAt, Sequence),
// or nil when the partition holds fewer records than index+1. A non-nil
// error means the source could not be queried at all and aborts the
// aggregation; absence of a record is not an error.
//
// The capability is expected to be backed by an external relational store;
// schema, indexing, and query execution are entirely its responsibility.
// The aggregator issues at most one call per position per invocation and
// never calls back after the first absent position.
type RecordAt func(partitionKey string, index int) (*RecordSpec, error)

// TopNRequestSpec describes one aggregation invocation.
//
// Created per call and discarded after use. Concurrent requests with
// different partition keys are independent; the aggregator holds no state
// across invocations.
type TopNRequestSpec struct {
	// Partition whose first N records are aggregated.
	//
	// Matched exactly against RecordSpec.PartitionKey by the source.
	PartitionKey string `json:"partitionKey"`

	// Number of leading positions to aggregate over.
	//
	// Must be non-negative. N = 0 yields a zero total and zero consumed
	// count without querying the source. An N larger than the partition is
	// not an error: positions past the end contribute zero.
	N int `json:"n"`

	// Aggregation operator folded over the per-position values.
	//
	// Determines how position values combine into the total:
	//   - "sum": add all values (the default when empty)
	//   - "max": largest value seen across the N positions
	//   - "min": smallest value seen across the N positions
	//
	// Every position yields a value (zero when the position or its measure
	// is absent) and the operator is folded left to right in ascending
	// partition order, so results are deterministic for a given source
	// state. All three operators are associative.
	Aggregation string `json:"aggregation"`
}

// TopNResultSpec represents the outcome of one top-N aggregation.
//
// Returned to the caller; no persistent identity. Two invocations with
// identical requests against an unchanged source produce identical results.
type TopNResultSpec struct {
	// Folded total as a decimal string.
	//
	// Stored as a string to preserve arbitrary precision. "0" when N is
	// zero or the partition is empty.
	Total string `json:"total"`

	// Number of records that actually existed at the fetched positions.
	//
	// Always <= N. Records with an absent measure still count: they were
	// encountered, they just contributed zero. Positions past the end of
	// the partition do not count.
	CountConsumed int `json:"countConsumed"`
}
