package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SylphxAI/craft/internal/docpath"
	"github.com/SylphxAI/craft/pkg/value"
)

func newTestModel(t *testing.T, content string) *Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	m, err := NewModel(path)
	require.NoError(t, err)
	return &m
}

func TestNewModelBuildsTopLevelRows(t *testing.T) {
	m := newTestModel(t, `{"b":1,"a":{"x":2},"c":[1,2]}`)

	require.Len(t, m.rows, 3)
	// Record keys come back sorted.
	assert.Equal(t, []docpath.Segment{"a"}, m.rows[0].path)
	assert.Equal(t, value.KindRecord, m.rows[0].kind)
	assert.Equal(t, value.KindOpaque, m.rows[1].kind)
	assert.Equal(t, value.KindSequence, m.rows[2].kind)
}

func TestNewModelRejectsScalarRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`42`), 0o644))
	_, err := NewModel(path)
	assert.Error(t, err)
}

func TestExpandShowsChildren(t *testing.T) {
	m := newTestModel(t, `{"a":{"x":2,"y":3},"b":1}`)

	m.expanded[pathKey(m.rows[0].path)] = true
	m.rebuildRows()

	require.Len(t, m.rows, 4)
	assert.Equal(t, []docpath.Segment{"a", "x"}, m.rows[1].path)
	assert.Equal(t, 1, m.rows[1].depth)
	assert.Equal(t, []docpath.Segment{"a", "y"}, m.rows[2].path)
	assert.Equal(t, []docpath.Segment{"b"}, m.rows[3].path)
}

func TestEditThroughSessionMarksModified(t *testing.T) {
	m := newTestModel(t, `{"n":1}`)
	assert.False(t, m.session.Modified())

	require.NoError(t, docpath.Set(m.session, []docpath.Segment{"n"}, 2))
	m.rebuildRows()

	assert.True(t, m.session.Modified())
	assert.Contains(t, m.rows[0].label, "2")
}

func TestWriteSessionPersistsAndReopens(t *testing.T) {
	m := newTestModel(t, `{"n":1}`)
	require.NoError(t, docpath.Set(m.session, []docpath.Segment{"n"}, 2))

	require.NoError(t, m.writeSession())
	assert.False(t, m.session.Modified())

	data, err := os.ReadFile(m.docPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"n": 2`)

	// The fresh session edits cleanly on top of the written result.
	require.NoError(t, docpath.Set(m.session, []docpath.Segment{"n"}, 3))
	assert.True(t, m.session.Modified())
}
