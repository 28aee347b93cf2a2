package patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a patch operation.
type Kind string

const (
	// Add introduces a value at a path that does not exist yet. For
	// sequences, an index equal to the current length appends.
	Add Kind = "add"

	// Replace overwrites the value at an existing path.
	Replace Kind = "replace"

	// Remove deletes the value at an existing path. Sequence removals
	// shift later items down.
	Remove Kind = "remove"
)

// ErrBadPointer indicates a JSON pointer that cannot be parsed.
var ErrBadPointer = errors.New("patch: malformed JSON pointer")

// Op is a single patch operation. Path segments are record keys
// (string) or sequence indices (int); an empty path addresses the
// document root. Value is unset for Remove.
type Op struct {
	Kind  Kind
	Path  []any
	Value any
}

// Pointer renders the path as an RFC 6901 JSON pointer.
func (op Op) Pointer() string {
	if len(op.Path) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range op.Path {
		b.WriteByte('/')
		switch s := seg.(type) {
		case string:
			b.WriteString(escapePointer(s))
		case int:
			b.WriteString(strconv.Itoa(s))
		default:
			b.WriteString(fmt.Sprint(s))
		}
	}
	return b.String()
}

// String returns a compact human-readable rendering.
func (op Op) String() string {
	if op.Kind == Remove {
		return fmt.Sprintf("%s %s", op.Kind, op.Pointer())
	}
	return fmt.Sprintf("%s %s = %v", op.Kind, op.Pointer(), op.Value)
}

// wireOp is the RFC 6902 JSON shape.
type wireOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON renders the op in RFC 6902 shape.
func (op Op) MarshalJSON() ([]byte, error) {
	w := wireOp{Op: string(op.Kind), Path: op.Pointer()}
	if op.Kind != Remove {
		raw, err := json.Marshal(op.Value)
		if err != nil {
			return nil, err
		}
		w.Value = raw
	}
	return json.Marshal(w)
}

// UnmarshalJSON parses an RFC 6902-shaped op. Pointer segments made of
// digits decode as sequence indices; everything else decodes as record
// keys.
func (op *Op) UnmarshalJSON(data []byte) error {
	var w wireOp
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch Kind(w.Op) {
	case Add, Replace, Remove:
	default:
		return fmt.Errorf("patch: unsupported op %q", w.Op)
	}
	path, err := ParsePointer(w.Path)
	if err != nil {
		return err
	}
	op.Kind = Kind(w.Op)
	op.Path = path
	op.Value = nil
	if len(w.Value) > 0 {
		if err := json.Unmarshal(w.Value, &op.Value); err != nil {
			return err
		}
	}
	return nil
}

// ParsePointer converts an RFC 6901 JSON pointer into path segments.
// All-digit segments become int indices.
func ParsePointer(ptr string) ([]any, error) {
	if ptr == "" {
		return nil, nil
	}
	if ptr[0] != '/' {
		return nil, fmt.Errorf("%w: %q", ErrBadPointer, ptr)
	}
	parts := strings.Split(ptr[1:], "/")
	path := make([]any, 0, len(parts))
	for _, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		p = strings.ReplaceAll(p, "~0", "~")
		if allDigits(p) {
			idx, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("%w: segment %q", ErrBadPointer, p)
			}
			path = append(path, idx)
			continue
		}
		path = append(path, p)
	}
	return path, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func escapePointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
