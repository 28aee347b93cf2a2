package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the record as a JSON object. Field order follows
// encoding/json's sorted-key map behavior.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields)
}

// MarshalJSON renders the sequence as a JSON array.
func (s *Sequence) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// FromJSON decodes raw JSON into a value tree: objects become Records,
// arrays become Sequences, scalars decode to the encoding/json defaults
// (float64, string, bool, nil).
func FromJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("value: decode JSON: %w", err)
	}
	// Reject trailing garbage after the first document.
	if dec.More() {
		return nil, fmt.Errorf("value: trailing data after JSON document")
	}
	return FromAny(raw), nil
}

// FromAny converts a plain Go tree into a value tree. Recognized
// container shapes are map[string]any, []any, []string and
// []map[string]any; anything else passes through as an opaque leaf.
// Values that are already Records or Sequences are returned unchanged.
func FromAny(v any) any {
	switch tv := v.(type) {
	case *Record, *Sequence:
		return tv
	case map[string]any:
		r := &Record{fields: make(map[string]any, len(tv))}
		for k, fv := range tv {
			r.fields[k] = FromAny(fv)
		}
		return r
	case []any:
		s := &Sequence{items: make([]any, len(tv))}
		for i, it := range tv {
			s.items[i] = FromAny(it)
		}
		return s
	case []string:
		s := &Sequence{items: make([]any, len(tv))}
		for i, it := range tv {
			s.items[i] = it
		}
		return s
	case []map[string]any:
		s := &Sequence{items: make([]any, len(tv))}
		for i, m := range tv {
			s.items[i] = FromAny(m)
		}
		return s
	default:
		return v
	}
}

// ToAny converts a value tree back into plain map[string]any / []any
// containers. Opaque leaves are returned as-is.
func ToAny(v any) any {
	switch tv := v.(type) {
	case *Record:
		m := make(map[string]any, len(tv.fields))
		for k, fv := range tv.fields {
			m[k] = ToAny(fv)
		}
		return m
	case *Sequence:
		out := make([]any, len(tv.items))
		for i, it := range tv.items {
			out[i] = ToAny(it)
		}
		return out
	default:
		return v
	}
}
