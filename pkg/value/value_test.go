package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindRecord, KindOf(NewRecord()))
	assert.Equal(t, KindSequence, KindOf(NewSequence()))
	assert.Equal(t, KindOpaque, KindOf(nil))
	assert.Equal(t, KindOpaque, KindOf(42))
	assert.Equal(t, KindOpaque, KindOf("text"))
	assert.Equal(t, KindOpaque, KindOf(time.Now()))
	// Raw Go containers are opaque: only tagged values are draftable.
	assert.Equal(t, KindOpaque, KindOf(map[string]any{}))
	assert.Equal(t, KindOpaque, KindOf([]any{}))
}

func TestRecordBasics(t *testing.T) {
	r := NewRecord()
	require.NoError(t, r.Set("a", 1))
	require.NoError(t, r.Set("b", "two"))

	v, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, r.Has("b"))
	assert.False(t, r.Has("c"))
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"a", "b"}, r.Keys())

	require.NoError(t, r.Delete("a"))
	assert.False(t, r.Has("a"))
	// Deleting an absent key is a no-op.
	require.NoError(t, r.Delete("a"))
}

func TestRecordClone(t *testing.T) {
	r := RecordOf(map[string]any{"x": 1})
	c := r.Clone()
	require.NotSame(t, r, c)

	require.NoError(t, c.Set("x", 2))
	v, _ := r.Get("x")
	assert.Equal(t, 1, v, "clone writes must not reach the original")
}

func TestSequenceBasics(t *testing.T) {
	s := NewSequence(1, 2, 3)
	assert.Equal(t, 3, s.Len())

	v, ok := s.At(1)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = s.At(3)
	assert.False(t, ok)

	require.NoError(t, s.Set(0, 10))
	require.NoError(t, s.Append(4, 5))
	require.NoError(t, s.Insert(1, 99))
	assert.Equal(t, []any{10, 99, 2, 3, 4, 5}, s.Items())

	require.NoError(t, s.Remove(1))
	assert.Equal(t, []any{10, 2, 3, 4, 5}, s.Items())

	assert.ErrorIs(t, s.Set(99, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Remove(-1), ErrIndexOutOfRange)
}

func TestSequenceSortReverse(t *testing.T) {
	s := NewSequence(3, 1, 2)
	require.NoError(t, s.Sort(func(a, b any) bool { return a.(int) < b.(int) }))
	assert.Equal(t, []any{1, 2, 3}, s.Items())

	require.NoError(t, s.Reverse())
	assert.Equal(t, []any{3, 2, 1}, s.Items())
}

func TestDeletedTombstone(t *testing.T) {
	assert.True(t, IsDeleted(Deleted))
	assert.False(t, IsDeleted(nil))
	assert.False(t, IsDeleted(0))
	assert.False(t, IsDeleted(&tombstone{}), "only the singleton counts")
}

func TestSame(t *testing.T) {
	r := NewRecord()
	s := NewSequence()
	assert.True(t, Same(r, r))
	assert.False(t, Same(r, NewRecord()))
	assert.True(t, Same(s, s))
	assert.False(t, Same(s, NewSequence()))
	assert.True(t, Same(nil, nil))
	assert.False(t, Same(nil, 0))
	assert.True(t, Same(1, 1))
	assert.False(t, Same(1, int64(1)), "different dynamic types are never the same")
	// Non-comparable opaque values never compare equal instead of
	// panicking.
	assert.False(t, Same([]int{1}, []int{1}))
}
