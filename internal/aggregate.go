package internal

import (
	"fmt"

	specs "topn-spec/specs"
)

// AggregateTopN implements specs.AggregateTopN.
// Converts the request spec to domain objects, runs the aggregation, and
// converts the outcome back to a spec.
func AggregateTopN(requestSpec specs.TopNRequestSpec, source specs.RecordAt) (specs.TopNResultSpec, error) {
	request, err := NewTopNRequest(requestSpec)
	if err != nil {
		return specs.TopNResultSpec{}, fmt.Errorf("invalid request: %w", err)
	}

	// Wrap the spec-level capability so the domain loop only ever sees
	// validated records belonging to the requested partition.
	fetch := func(partitionKey RecordPartitionKey, index int) (*Record, error) {
		recordSpec, err := source(partitionKey.ToString(), index)
		if err != nil {
			return nil, fmt.Errorf("%w: position %d: %v", ErrSourceUnavailable, index, err)
		}
		if recordSpec == nil {
			return nil, nil
		}

		record, err := NewRecord(*recordSpec)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed record at position %d: %v", ErrSourceUnavailable, index, err)
		}
		if !record.PartitionKey.Equals(partitionKey) {
			return nil, fmt.Errorf("%w: record at position %d belongs to partition %q, requested %q",
				ErrSourceUnavailable, index, record.PartitionKey.ToString(), partitionKey.ToString())
		}

		return &record, nil
	}

	total, countConsumed, err := aggregateTopN(request, fetch)
	if err != nil {
		return specs.TopNResultSpec{}, err
	}

	return specs.TopNResultSpec{
		Total:         total.String(),
		CountConsumed: countConsumed.ToInt(),
	}, nil
}

// recordFetcher retrieves the validated record at a 0-based position of a
// partition, or nil when the partition holds no record there.
type recordFetcher func(partitionKey RecordPartitionKey, index int) (*Record, error)

// aggregateTopN folds the first N position values of a partition.
// This is the private domain-level function that operates on domain objects.
//
// Every one of the N positions contributes a value: the record's measure
// when a record exists and carries one, zero otherwise. The loop covers all
// N positions even when the partition runs out of records, so a short
// partition degrades to zero-valued positions rather than stopping early.
// After the first absent position the source is known to be exhausted and
// is not queried again; the remaining positions fold zero directly.
func aggregateTopN(request TopNRequest, fetch recordFetcher) (Decimal, TopNCountConsumed, error) {
	n := request.Limit().ToInt()

	total := DecimalZero()
	consumed := 0
	exhausted := false

	for position := 0; position < n; position++ {
		value := DecimalZero()

		if !exhausted {
			record, err := fetch(request.PartitionKey(), position)
			if err != nil {
				return Decimal{}, TopNCountConsumed{}, err
			}

			if record == nil {
				exhausted = true
			} else {
				consumed++
				value = record.Measure.Value()
			}
		}

		if position == 0 {
			total = value
		} else {
			total = request.Aggregation().Fold(total, value)
		}
	}

	countConsumed, err := NewTopNCountConsumed(consumed)
	if err != nil {
		return Decimal{}, TopNCountConsumed{}, fmt.Errorf("invalid count consumed: %w", err)
	}

	return total, countConsumed, nil
}

type TopNCountConsumed struct {
	value int
}

func NewTopNCountConsumed(value int) (TopNCountConsumed, error) {
	if value < 0 {
		return TopNCountConsumed{}, fmt.Errorf("count consumed cannot be negative")
	}
	return TopNCountConsumed{value: value}, nil
}

func (c TopNCountConsumed) ToInt() int {
	return c.value
}
