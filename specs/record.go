package specs

import "time"

// RecordSpec represents a single record drawn from an external store.
//
// Records are the immutable inputs to top-N aggregation. Each record carries
// a partition key selecting which aggregation it belongs to, an ordering key
// defining its position within the partition, and an optional numeric
// measure. Ownership of record data remains with the external source; the
// aggregator never mutates or caches records.
type RecordSpec struct {
	// Unique identifier for this record.
	//
	// Assigned by the external store. Not interpreted by the aggregator
	// beyond identity; useful for audit trails and debugging.
	ID string `json:"id"`

	// Identifier of the partition this record belongs to.
	//
	// All records sharing a partition key form one logical collection for
	// aggregation. Format convention: "type:id", e.g. "startup:acme",
	// "customer:cust_123". Records from different partitions never mix
	// within a single aggregation.
	PartitionKey string `json:"partitionKey"`

	// Business timestamp defining this record's position in the partition.
	//
	// Records within a partition are totally ordered ascending by OrderedAt;
	// the "first N" of a partition are the N records with the smallest
	// OrderedAt values. Should be in UTC to avoid timezone ambiguity.
	OrderedAt time.Time `json:"orderedAt"`

	// Stable tiebreak for records sharing the same OrderedAt.
	//
	// Typically the insertion order assigned by the external store. Two
	// records in the same partition must never share both OrderedAt and
	// Sequence, so the total order over the partition is deterministic.
	Sequence int `json:"sequence"`

	// Numeric measure as a decimal string, or nil when absent.
	//
	// Stored as a string to preserve arbitrary precision across language
	// boundaries and avoid floating-point representation issues. Examples:
	// "42", "123.456", "1000000.00". A nil Measure means the record exists
	// but carries no value (a null read in the external store); it
	// contributes zero to any aggregation while still counting as a
	// consumed record.
	Measure *string `json:"measure"`
}

// NewRecord creates a record with a present measure.
//
// The measure is a decimal string; validation of its syntax happens when the
// record enters the reference implementation, not here.
func NewRecord(id, partitionKey, measure string, orderedAt time.Time, sequence int) RecordSpec {
	return RecordSpec{
		ID:           id,
		PartitionKey: partitionKey,
		OrderedAt:    orderedAt,
		Sequence:     sequence,
		Measure:      &measure,
	}
}

// NewAbsentMeasureRecord creates a record whose measure is absent.
//
// The record still occupies a position in the partition's order and counts
// toward consumed records, but contributes zero to the aggregate. This
// mirrors a row whose measure column is null in the external store.
func NewAbsentMeasureRecord(id, partitionKey string, orderedAt time.Time, sequence int) RecordSpec {
	return RecordSpec{
		ID:           id,
		PartitionKey: partitionKey,
		OrderedAt:    orderedAt,
		Sequence:     sequence,
		Measure:      nil,
	}
}
