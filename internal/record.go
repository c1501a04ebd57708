package internal

import (
	"fmt"
	"time"

	specs "topn-spec/specs"
)

type Record struct {
	ID           RecordID
	PartitionKey RecordPartitionKey
	OrderedAt    RecordOrderedAt
	Sequence     RecordSequence
	Measure      RecordMeasure
}

func NewRecord(spec specs.RecordSpec) (Record, error) {
	id, err := NewRecordID(spec.ID)
	if err != nil {
		return Record{}, fmt.Errorf("invalid ID: %w", err)
	}

	partitionKey, err := NewRecordPartitionKey(spec.PartitionKey)
	if err != nil {
		return Record{}, fmt.Errorf("invalid partition key: %w", err)
	}

	orderedAt, err := NewRecordOrderedAt(spec.OrderedAt)
	if err != nil {
		return Record{}, fmt.Errorf("invalid ordered at: %w", err)
	}

	sequence, err := NewRecordSequence(spec.Sequence)
	if err != nil {
		return Record{}, fmt.Errorf("invalid sequence: %w", err)
	}

	measure, err := NewRecordMeasure(spec.Measure)
	if err != nil {
		return Record{}, fmt.Errorf("invalid measure: %w", err)
	}

	return Record{
		ID:           id,
		PartitionKey: partitionKey,
		OrderedAt:    orderedAt,
		Sequence:     sequence,
		Measure:      measure,
	}, nil
}

type RecordID struct {
	value string
}

func NewRecordID(value string) (RecordID, error) {
	if value == "" {
		return RecordID{}, fmt.Errorf("ID is required")
	}
	return RecordID{value: value}, nil
}

func (id RecordID) ToString() string {
	return id.value
}

type RecordPartitionKey struct {
	value string
}

func NewRecordPartitionKey(value string) (RecordPartitionKey, error) {
	if value == "" {
		return RecordPartitionKey{}, fmt.Errorf("partition key is required")
	}
	return RecordPartitionKey{value: value}, nil
}

func (k RecordPartitionKey) ToString() string {
	return k.value
}

func (k RecordPartitionKey) Equals(other RecordPartitionKey) bool {
	return k.value == other.value
}

type RecordOrderedAt struct {
	value time.Time
}

func NewRecordOrderedAt(value time.Time) (RecordOrderedAt, error) {
	if value.IsZero() {
		return RecordOrderedAt{}, fmt.Errorf("ordered at is required")
	}
	return RecordOrderedAt{value: value}, nil
}

func (t RecordOrderedAt) ToTime() time.Time {
	return t.value
}

type RecordSequence struct {
	value int
}

func NewRecordSequence(value int) (RecordSequence, error) {
	if value < 0 {
		return RecordSequence{}, fmt.Errorf("sequence cannot be negative")
	}
	return RecordSequence{value: value}, nil
}

func (s RecordSequence) ToInt() int {
	return s.value
}

// RecordMeasure is the optional numeric value of a record. An absent measure
// is a valid state: the record occupies a position in the partition order
// and counts as consumed, but folds as zero.
type RecordMeasure struct {
	value   Decimal
	present bool
}

func NewRecordMeasure(value *string) (RecordMeasure, error) {
	if value == nil {
		return RecordMeasure{}, nil
	}

	quantity, err := NewDecimal(*value)
	if err != nil {
		return RecordMeasure{}, err
	}

	return RecordMeasure{value: quantity, present: true}, nil
}

func (m RecordMeasure) IsPresent() bool {
	return m.present
}

// Value returns the measure's decimal, or zero when the measure is absent.
func (m RecordMeasure) Value() Decimal {
	if !m.present {
		return DecimalZero()
	}
	return m.value
}
