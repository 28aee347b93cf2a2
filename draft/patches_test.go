package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SylphxAI/craft/patch"
	"github.com/SylphxAI/craft/pkg/value"
)

func TestPatchesRecordEdits(t *testing.T) {
	base := record(map[string]any{"keep": 1, "old": 2, "change": 3})
	d := New(base).(*Draft)
	d.Set("change", 30)
	d.Set("new", 4)
	d.Delete("old")

	_, ops, inverse := FinalizeWithPatches(d, nil)

	assert.ElementsMatch(t, []patch.Op{
		{Kind: patch.Remove, Path: []any{"old"}},
		{Kind: patch.Replace, Path: []any{"change"}, Value: 30},
		{Kind: patch.Add, Path: []any{"new"}, Value: 4},
	}, ops)

	assert.ElementsMatch(t, []patch.Op{
		{Kind: patch.Add, Path: []any{"old"}, Value: 2},
		{Kind: patch.Replace, Path: []any{"change"}, Value: 3},
		{Kind: patch.Remove, Path: []any{"new"}},
	}, inverse)
}

func TestPatchesNestedEditsArePrecise(t *testing.T) {
	base := record(map[string]any{
		"user": record(map[string]any{
			"name":    "Alice",
			"profile": record(map[string]any{"age": 25}),
		}),
	})
	d := New(base).(*Draft)
	d.Get("user").(*Draft).Get("profile").(*Draft).Set("age", 26)

	_, ops, inverse := FinalizeWithPatches(d, nil)
	require.Len(t, ops, 1)
	assert.Equal(t, patch.Op{Kind: patch.Replace, Path: []any{"user", "profile", "age"}, Value: 26}, ops[0])
	require.Len(t, inverse, 1)
	assert.Equal(t, patch.Op{Kind: patch.Replace, Path: []any{"user", "profile", "age"}, Value: 25}, inverse[0])
}

func TestPatchesAppends(t *testing.T) {
	d := New(seq(1, 2)).(*Draft)
	d.Append(3)
	d.Append(4)

	_, ops, inverse := FinalizeWithPatches(d, nil)
	assert.Equal(t, []patch.Op{
		{Kind: patch.Add, Path: []any{2}, Value: 3},
		{Kind: patch.Add, Path: []any{3}, Value: 4},
	}, ops)
	assert.Equal(t, []patch.Op{
		{Kind: patch.Remove, Path: []any{3}},
		{Kind: patch.Remove, Path: []any{2}},
	}, inverse)
}

func TestPatchesSequenceReplace(t *testing.T) {
	d := New(seq(1, 2, 3)).(*Draft)
	d.SetAt(1, 20)

	_, ops, inverse := FinalizeWithPatches(d, nil)
	assert.Equal(t, []patch.Op{{Kind: patch.Replace, Path: []any{1}, Value: 20}}, ops)
	assert.Equal(t, []patch.Op{{Kind: patch.Replace, Path: []any{1}, Value: 2}}, inverse)
}

func TestPatchesSequenceDeletionsAreCoarse(t *testing.T) {
	d := New(seq(1, 2, 3)).(*Draft)
	d.DeleteAt(0)

	_, ops, inverse := FinalizeWithPatches(d, nil)
	// Compacted view [2,3] vs base [1,2,3]: two replaces and a tail
	// remove.
	assert.Equal(t, []patch.Op{
		{Kind: patch.Replace, Path: []any{0}, Value: 2},
		{Kind: patch.Replace, Path: []any{1}, Value: 3},
		{Kind: patch.Remove, Path: []any{2}},
	}, ops)
	assert.Equal(t, []patch.Op{
		{Kind: patch.Replace, Path: []any{0}, Value: 1},
		{Kind: patch.Replace, Path: []any{1}, Value: 2},
		{Kind: patch.Add, Path: []any{2}, Value: 3},
	}, inverse)
}

func TestPatchesUnmodifiedDraft(t *testing.T) {
	d := New(record(map[string]any{"a": 1})).(*Draft)
	res, ops, inverse := FinalizeWithPatches(d, nil)
	assert.Same(t, d.Base(), res)
	assert.Empty(t, ops)
	assert.Empty(t, inverse)
}

func TestPatchValueIsSnapshotNotDraft(t *testing.T) {
	base := record(map[string]any{"list": seq()})
	d := New(base).(*Draft)
	d.Set("items", value.RecordOf(map[string]any{"x": 1}))

	_, ops, _ := FinalizeWithPatches(d, nil)
	require.Len(t, ops, 1)
	assert.IsType(t, &value.Record{}, ops[0].Value)
}
