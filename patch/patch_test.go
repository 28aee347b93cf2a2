package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerRendering(t *testing.T) {
	cases := []struct {
		name string
		op   Op
		want string
	}{
		{"root", Op{Kind: Replace}, ""},
		{"record key", Op{Kind: Add, Path: []any{"user", "name"}}, "/user/name"},
		{"sequence index", Op{Kind: Remove, Path: []any{"items", 3}}, "/items/3"},
		{"escaped slash", Op{Kind: Add, Path: []any{"a/b"}}, "/a~1b"},
		{"escaped tilde", Op{Kind: Add, Path: []any{"a~b"}}, "/a~0b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.op.Pointer())
		})
	}
}

func TestParsePointer(t *testing.T) {
	path, err := ParsePointer("/user/tags/0")
	require.NoError(t, err)
	assert.Equal(t, []any{"user", "tags", 0}, path)

	path, err = ParsePointer("")
	require.NoError(t, err)
	assert.Nil(t, path)

	path, err = ParsePointer("/a~1b/a~0b")
	require.NoError(t, err)
	assert.Equal(t, []any{"a/b", "a~b"}, path)

	// A leading digit does not make a mixed segment an index.
	path, err = ParsePointer("/2fast")
	require.NoError(t, err)
	assert.Equal(t, []any{"2fast"}, path)

	_, err = ParsePointer("no-leading-slash")
	assert.ErrorIs(t, err, ErrBadPointer)
}

func TestOpJSONRoundTrip(t *testing.T) {
	ops := []Op{
		{Kind: Add, Path: []any{"user", "email"}, Value: "a@b.c"},
		{Kind: Replace, Path: []any{"items", 2}, Value: float64(7)},
		{Kind: Remove, Path: []any{"items", 0}},
	}

	data, err := json.Marshal(ops)
	require.NoError(t, err)

	var decoded []Op
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ops, decoded)
}

func TestOpJSONWireShape(t *testing.T) {
	data, err := json.Marshal(Op{Kind: Remove, Path: []any{"x"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"remove","path":"/x"}`, string(data))

	data, err = json.Marshal(Op{Kind: Add, Path: []any{"n"}, Value: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"add","path":"/n","value":1}`, string(data))
}

func TestOpUnmarshalRejectsUnknownKind(t *testing.T) {
	var op Op
	err := json.Unmarshal([]byte(`{"op":"move","path":"/a"}`), &op)
	assert.Error(t, err)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "remove /items/0", Op{Kind: Remove, Path: []any{"items", 0}}.String())
	assert.Equal(t, "replace /n = 5", Op{Kind: Replace, Path: []any{"n"}, Value: 5}.String())
}
