// Package docpath implements dotted-path addressing into document
// values and drafts, used by the command-line tools.
//
// A path like "users.0.name" names the "name" field of the first item
// of the "users" sequence. Segments are split on '.'; a literal dot in
// a key is escaped as '\.', a literal backslash as '\\'. Whether a
// segment is a key or an index is decided by the container it lands on:
// sequences require an all-digit segment, records take the segment text
// as the key.
package docpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SylphxAI/craft/draft"
	"github.com/SylphxAI/craft/pkg/value"
)

var (
	// ErrEmptyPath indicates a path with no segments.
	ErrEmptyPath = errors.New("docpath: empty path")

	// ErrNotFound indicates a segment that does not resolve.
	ErrNotFound = errors.New("docpath: path not found")

	// ErrKindMismatch indicates a segment applied to the wrong container
	// shape, e.g. a non-numeric segment on a sequence.
	ErrKindMismatch = errors.New("docpath: segment does not match container")
)

// Segment is one path element. Index reports whether it can address a
// sequence.
type Segment string

// Index returns the segment as a sequence index, if it is all digits.
func (s Segment) Index() (int, bool) {
	t := string(s)
	if t == "" {
		return 0, false
	}
	for _, c := range t {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Parse splits a dotted path into segments, honoring '\.' and '\\'
// escapes.
func Parse(path string) ([]Segment, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	var segs []Segment
	var cur strings.Builder
	escaped := false
	for _, c := range path {
		switch {
		case escaped:
			cur.WriteRune(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '.':
			segs = append(segs, Segment(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}
	if escaped {
		return nil, fmt.Errorf("docpath: trailing escape in %q", path)
	}
	segs = append(segs, Segment(cur.String()))
	return segs, nil
}

// Lookup resolves a path against a plain value tree (no draft
// involved). Returns the addressed value.
func Lookup(v any, path []Segment) (any, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	cur := v
	for _, seg := range path {
		switch c := cur.(type) {
		case *value.Record:
			next, ok := c.Get(string(seg))
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrNotFound, seg)
			}
			cur = next
		case *value.Sequence:
			i, ok := seg.Index()
			if !ok {
				return nil, fmt.Errorf("%w: %q on sequence", ErrKindMismatch, seg)
			}
			next, ok := c.At(i)
			if !ok {
				return nil, fmt.Errorf("%w: index %d", ErrNotFound, i)
			}
			cur = next
		default:
			return nil, fmt.Errorf("%w: %q under opaque value", ErrNotFound, seg)
		}
	}
	return cur, nil
}

// walk descends a draft to the node holding the last segment. Read-only
// navigation still wraps intermediate containers, which is the engine's
// documented copy-on-read trade.
func walk(d *draft.Draft, path []Segment) (*draft.Draft, Segment, error) {
	if len(path) == 0 {
		return nil, "", ErrEmptyPath
	}
	cur := d
	for _, seg := range path[:len(path)-1] {
		var next any
		switch cur.Kind() {
		case value.KindRecord:
			next = cur.Get(string(seg))
		case value.KindSequence:
			i, ok := seg.Index()
			if !ok {
				return nil, "", fmt.Errorf("%w: %q on sequence", ErrKindMismatch, seg)
			}
			next = cur.At(i)
		}
		nd, ok := next.(*draft.Draft)
		if !ok {
			return nil, "", fmt.Errorf("%w: %q", ErrNotFound, seg)
		}
		cur = nd
	}
	return cur, path[len(path)-1], nil
}

// Get resolves a path through a draft. Nested containers come back as
// child drafts.
func Get(d *draft.Draft, path []Segment) (any, error) {
	node, last, err := walk(d, path)
	if err != nil {
		return nil, err
	}
	switch node.Kind() {
	case value.KindRecord:
		if !node.Has(string(last)) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, last)
		}
		return node.Get(string(last)), nil
	case value.KindSequence:
		i, ok := last.Index()
		if !ok {
			return nil, fmt.Errorf("%w: %q on sequence", ErrKindMismatch, last)
		}
		if i >= node.Len() {
			return nil, fmt.Errorf("%w: index %d", ErrNotFound, i)
		}
		return node.At(i), nil
	}
	return nil, ErrNotFound
}

// Set writes v at the path through a draft.
func Set(d *draft.Draft, path []Segment, v any) error {
	node, last, err := walk(d, path)
	if err != nil {
		return err
	}
	switch node.Kind() {
	case value.KindRecord:
		node.Set(string(last), v)
		return nil
	case value.KindSequence:
		i, ok := last.Index()
		if !ok {
			return fmt.Errorf("%w: %q on sequence", ErrKindMismatch, last)
		}
		if i == node.Len() {
			node.Append(v)
			return nil
		}
		if i > node.Len() {
			return fmt.Errorf("%w: index %d", ErrNotFound, i)
		}
		node.SetAt(i, v)
		return nil
	}
	return ErrKindMismatch
}

// Delete removes the value at the path through a draft. Sequence slots
// are spliced out immediately.
func Delete(d *draft.Draft, path []Segment) error {
	node, last, err := walk(d, path)
	if err != nil {
		return err
	}
	switch node.Kind() {
	case value.KindRecord:
		if !node.Has(string(last)) {
			return fmt.Errorf("%w: %q", ErrNotFound, last)
		}
		node.Delete(string(last))
		return nil
	case value.KindSequence:
		i, ok := last.Index()
		if !ok {
			return fmt.Errorf("%w: %q on sequence", ErrKindMismatch, last)
		}
		if i >= node.Len() {
			return fmt.Errorf("%w: index %d", ErrNotFound, i)
		}
		node.Splice(i, 1)
		return nil
	}
	return ErrKindMismatch
}

// Append adds items to the sequence at the path. The path addresses the
// sequence itself, not a slot in it.
func Append(d *draft.Draft, path []Segment, items ...any) error {
	target, err := Get(d, path)
	if err != nil {
		return err
	}
	nd, ok := target.(*draft.Draft)
	if !ok || nd.Kind() != value.KindSequence {
		return fmt.Errorf("%w: path is not a sequence", ErrKindMismatch)
	}
	nd.Append(items...)
	return nil
}
