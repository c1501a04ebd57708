package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	specs "topn-spec/specs"
)

func TestNewRecord(t *testing.T) {
	t.Run("creates record with all required fields", func(t *testing.T) {
		orderedAt := time.Date(2021, 3, 14, 9, 0, 0, 0, time.UTC)
		spec := specs.NewRecord("round-1", "startup:acme", "500000", orderedAt, 2)

		record, err := NewRecord(spec)

		require.NoError(t, err)
		assert.Equal(t, "round-1", record.ID.ToString())
		assert.Equal(t, "startup:acme", record.PartitionKey.ToString())
		assert.Equal(t, orderedAt, record.OrderedAt.ToTime())
		assert.Equal(t, 2, record.Sequence.ToInt())
		assert.True(t, record.Measure.IsPresent())
		assert.Equal(t, "500000", record.Measure.Value().String())
	})

	t.Run("accepts absent measure", func(t *testing.T) {
		orderedAt := time.Date(2021, 6, 2, 0, 0, 0, 0, time.UTC)
		spec := specs.NewAbsentMeasureRecord("round-2", "startup:acme", orderedAt, 0)

		record, err := NewRecord(spec)

		require.NoError(t, err)
		assert.False(t, record.Measure.IsPresent())
		assert.True(t, record.Measure.Value().IsZero(), "absent measure must read as zero")
	})

	t.Run("with empty ID returns error", func(t *testing.T) {
		spec := specs.NewRecord("", "startup:acme", "100", time.Now(), 0)

		_, err := NewRecord(spec)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid ID")
	})

	t.Run("with empty partition key returns error", func(t *testing.T) {
		spec := specs.NewRecord("round-1", "", "100", time.Now(), 0)

		_, err := NewRecord(spec)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid partition key")
	})

	t.Run("with zero ordered at returns error", func(t *testing.T) {
		spec := specs.NewRecord("round-1", "startup:acme", "100", time.Time{}, 0)

		_, err := NewRecord(spec)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid ordered at")
	})

	t.Run("with negative sequence returns error", func(t *testing.T) {
		spec := specs.NewRecord("round-1", "startup:acme", "100", time.Now(), -1)

		_, err := NewRecord(spec)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sequence")
	})

	t.Run("with unparseable measure returns error", func(t *testing.T) {
		spec := specs.NewRecord("round-1", "startup:acme", "a lot", time.Now(), 0)

		_, err := NewRecord(spec)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid measure")
	})
}

func TestRecordPartitionKey(t *testing.T) {
	t.Run("equals compares by value", func(t *testing.T) {
		a, err := NewRecordPartitionKey("startup:acme")
		require.NoError(t, err)
		b, err := NewRecordPartitionKey("startup:acme")
		require.NoError(t, err)
		c, err := NewRecordPartitionKey("startup:globex")
		require.NoError(t, err)

		assert.True(t, a.Equals(b))
		assert.False(t, a.Equals(c))
	})
}
