package internal

import (
	"fmt"

	specs "topn-spec/specs"
)

type TopNRequest struct {
	partitionKey RecordPartitionKey
	limit        TopNLimit
	aggregation  TopNAggregation
}

func NewTopNRequest(spec specs.TopNRequestSpec) (TopNRequest, error) {
	partitionKey, err := NewRecordPartitionKey(spec.PartitionKey)
	if err != nil {
		return TopNRequest{}, fmt.Errorf("%w: invalid partition key: %v", ErrInvalidArgument, err)
	}

	limit, err := NewTopNLimit(spec.N)
	if err != nil {
		return TopNRequest{}, err
	}

	aggregation, err := NewTopNAggregation(spec.Aggregation)
	if err != nil {
		return TopNRequest{}, err
	}

	return TopNRequest{
		partitionKey: partitionKey,
		limit:        limit,
		aggregation:  aggregation,
	}, nil
}

func (r TopNRequest) PartitionKey() RecordPartitionKey {
	return r.partitionKey
}

func (r TopNRequest) Limit() TopNLimit {
	return r.limit
}

func (r TopNRequest) Aggregation() TopNAggregation {
	return r.aggregation
}

type TopNLimit struct {
	value int
}

func NewTopNLimit(value int) (TopNLimit, error) {
	if value < 0 {
		return TopNLimit{}, fmt.Errorf("%w: n cannot be negative, got %d", ErrInvalidArgument, value)
	}
	return TopNLimit{value: value}, nil
}

func (l TopNLimit) ToInt() int {
	return l.value
}

type TopNAggregation struct {
	value string
}

// NewTopNAggregation validates the operator name. An empty name defaults to
// "sum", matching the request spec.
func NewTopNAggregation(value string) (TopNAggregation, error) {
	if value == "" {
		value = "sum"
	}

	switch value {
	case "sum", "max", "min":
		// Valid
	default:
		return TopNAggregation{}, fmt.Errorf("%w: unknown aggregation type: %q", ErrInvalidArgument, value)
	}

	return TopNAggregation{value: value}, nil
}

func (a TopNAggregation) ToString() string {
	return a.value
}

func (a TopNAggregation) IsSum() bool {
	return a.value == "sum"
}

func (a TopNAggregation) IsMax() bool {
	return a.value == "max"
}

func (a TopNAggregation) IsMin() bool {
	return a.value == "min"
}

// Fold combines the running total with the next position's value. All
// operators are associative, so left-to-right folding in ascending
// partition order is deterministic for a given source state.
func (a TopNAggregation) Fold(total Decimal, next Decimal) Decimal {
	switch a.value {
	case "max":
		if next.Cmp(total) > 0 {
			return next
		}
		return total

	case "min":
		if next.Cmp(total) < 0 {
			return next
		}
		return total

	default:
		return total.Add(next)
	}
}
