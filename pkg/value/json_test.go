package value

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	doc, err := FromJSON([]byte(`{"name":"Alice","tags":["a","b"],"meta":{"age":25}}`))
	require.NoError(t, err)

	r, ok := doc.(*Record)
	require.True(t, ok)

	name, _ := r.Get("name")
	assert.Equal(t, "Alice", name)

	tags, _ := r.Get("tags")
	require.IsType(t, &Sequence{}, tags)
	assert.Equal(t, 2, tags.(*Sequence).Len())

	meta, _ := r.Get("meta")
	require.IsType(t, &Record{}, meta)
	age, _ := meta.(*Record).Get("age")
	assert.Equal(t, float64(25), age, "scalars keep encoding/json defaults")
}

func TestFromJSONErrors(t *testing.T) {
	_, err := FromJSON([]byte(`{`))
	assert.Error(t, err)
	_, err = FromJSON([]byte(`{} trailing`))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	in := []byte(`{"a":[1,2,{"b":true}],"c":null,"d":"x"}`)
	doc, err := FromJSON(in)
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}

func TestMarshalEmptySequence(t *testing.T) {
	out, err := json.Marshal(&Sequence{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestFromAnyShapes(t *testing.T) {
	v := FromAny(map[string]any{
		"strs": []string{"a", "b"},
		"maps": []map[string]any{{"k": 1}},
	})
	r := v.(*Record)

	strs, _ := r.Get("strs")
	require.IsType(t, &Sequence{}, strs)

	maps, _ := r.Get("maps")
	seq := maps.(*Sequence)
	first, _ := seq.At(0)
	require.IsType(t, &Record{}, first)
}

func TestToAnyInvertsFromAny(t *testing.T) {
	plain := map[string]any{"a": []any{1.0, "x"}, "b": map[string]any{"c": true}}
	assert.Equal(t, plain, ToAny(FromAny(plain)))
}

func TestFromAnyKeepsTaggedValues(t *testing.T) {
	r := NewRecord()
	assert.Same(t, r, FromAny(r))
}
