package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SylphxAI/craft/pkg/value"
)

func record(fields map[string]any) *value.Record {
	return value.RecordOf(fields)
}

func TestNewPassesOpaqueThrough(t *testing.T) {
	assert.Equal(t, 42, New(42))
	assert.Equal(t, "x", New("x"))
	assert.Nil(t, New(nil))

	d, ok := New(record(nil)).(*Draft)
	require.True(t, ok)
	assert.Equal(t, value.KindRecord, d.Kind())
}

func TestReadThrough(t *testing.T) {
	base := record(map[string]any{"a": 1, "b": "two"})
	d := New(base).(*Draft)

	assert.Equal(t, 1, d.Get("a"))
	assert.Equal(t, "two", d.Get("b"))
	assert.Nil(t, d.Get("missing"))
	assert.True(t, d.Has("a"))
	assert.False(t, d.Has("missing"))
	assert.Equal(t, []string{"a", "b"}, d.Keys())
	assert.Equal(t, 2, d.Len())
	assert.False(t, d.Modified())
}

func TestNestedReadWrapsOnce(t *testing.T) {
	inner := record(map[string]any{"x": 1})
	base := record(map[string]any{"inner": inner})
	d := New(base).(*Draft)

	c1 := d.Get("inner")
	c2 := d.Get("inner")
	require.IsType(t, &Draft{}, c1)
	assert.Same(t, c1, c2, "repeated access must return the cached child")
	assert.False(t, d.Modified(), "reading alone never marks modified")
}

func TestWriteCopiesOnce(t *testing.T) {
	base := record(map[string]any{"count": 0})
	d := New(base).(*Draft)

	d.Set("count", 1)
	assert.True(t, d.Modified())
	assert.Equal(t, 1, d.Get("count"))

	// Copy isolation: the base is untouched.
	v, _ := base.Get("count")
	assert.Equal(t, 0, v)
}

func TestNoopWriteDoesNotMarkModified(t *testing.T) {
	inner := record(map[string]any{"x": 1})
	base := record(map[string]any{"a": 1, "inner": inner})
	d := New(base).(*Draft)

	d.Set("a", 1)
	assert.False(t, d.Modified(), "writing the identical value is a no-op")

	d.Set("inner", inner)
	assert.False(t, d.Modified(), "writing the same reference is a no-op")
}

func TestChildWritePropagatesModified(t *testing.T) {
	base := record(map[string]any{
		"user": record(map[string]any{
			"profile": record(map[string]any{"age": 25}),
		}),
	})
	d := New(base).(*Draft)

	profile := d.Get("user").(*Draft).Get("profile").(*Draft)
	assert.False(t, d.Modified())

	profile.Set("age", 26)
	assert.True(t, profile.Modified())
	assert.True(t, d.Get("user").(*Draft).Modified(), "modified propagates upward")
	assert.True(t, d.Modified())
}

func TestDeleteRecordKey(t *testing.T) {
	base := record(map[string]any{"a": 1, "b": 2, "c": 3})
	d := New(base).(*Draft)

	d.Delete("b")
	assert.False(t, d.Has("b"))
	assert.Equal(t, []string{"a", "c"}, d.Keys())
	assert.True(t, base.Has("b"), "base keeps the deleted key")

	mod := d.Modified()
	d.Delete("missing")
	assert.Equal(t, mod, d.Modified(), "deleting an absent key is a no-op")
}

func TestSentinelWriteDeletes(t *testing.T) {
	base := record(map[string]any{"a": 1, "b": 2})
	d := New(base).(*Draft)

	d.Set("b", value.Deleted)
	assert.False(t, d.Has("b"))

	d.Set("missing", value.Deleted)
	assert.Equal(t, []string{"a"}, d.Keys())
}

func TestSetUnwrapsDrafts(t *testing.T) {
	base := record(map[string]any{
		"src": record(map[string]any{"x": 1}),
		"dst": nil,
	})
	d := New(base).(*Draft)

	src := d.Get("src").(*Draft)
	src.Set("x", 2)
	d.Set("dst", src)

	res := Finalize(d, nil).(*value.Record)
	dst, _ := res.Get("dst")
	require.IsType(t, &value.Record{}, dst, "drafts must never leak into results")
	x, _ := dst.(*value.Record).Get("x")
	assert.Equal(t, 2, x)
}

func TestReplacedValueNotRewrapped(t *testing.T) {
	base := record(map[string]any{"a": record(map[string]any{"x": 1})})
	d := New(base).(*Draft)

	replacement := record(map[string]any{"y": 2})
	d.Set("a", replacement)

	got := d.Get("a")
	assert.Same(t, replacement, got, "a replacement the caller wrote is not re-wrapped")
}

func TestWrongKindOpsAreNoops(t *testing.T) {
	d := New(value.NewSequence(1, 2)).(*Draft)

	assert.Nil(t, d.Get("a"))
	assert.False(t, d.Has("a"))
	assert.Nil(t, d.Keys())
	d.Set("a", 1)
	d.Delete("a")
	assert.False(t, d.Modified())

	rd := New(record(nil)).(*Draft)
	assert.Nil(t, rd.At(0))
	rd.SetAt(0, 1)
	rd.DeleteAt(0)
	assert.Equal(t, 0, rd.Append(1))
	assert.False(t, rd.Modified())
}

func TestBaseAndCurrent(t *testing.T) {
	base := record(map[string]any{"a": 1})
	d := New(base).(*Draft)

	assert.Same(t, base, d.Base())
	assert.Same(t, base, d.Current(), "unmodified snapshot is the base itself")

	d.Set("a", 2)
	assert.Same(t, base, d.Base(), "base never changes")

	cur := d.Current().(*value.Record)
	a, _ := cur.Get("a")
	assert.Equal(t, 2, a)
	assert.False(t, d.s.finalized, "Current must not finalize")

	// The draft stays usable after a snapshot.
	d.Set("a", 3)
	res := Finalize(d, nil).(*value.Record)
	a, _ = res.Get("a")
	assert.Equal(t, 3, a)
}

func TestMutateAfterFinalizePanics(t *testing.T) {
	d := New(record(map[string]any{"a": 1})).(*Draft)
	d.Set("a", 2)
	Finalize(d, nil)

	assert.PanicsWithError(t, "draft: use after finalize: draft mutated after finalization", func() {
		d.Set("a", 3)
	})

	sd := New(value.NewSequence(1)).(*Draft)
	Finalize(sd, nil)
	assert.Panics(t, func() { sd.Append(2) })
	assert.Panics(t, func() { sd.DeleteAt(0) })
}
