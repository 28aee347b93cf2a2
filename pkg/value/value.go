package value

import (
	"reflect"
	"sort"
)

// Kind classifies a value for the draft engine.
type Kind int

const (
	// KindOpaque marks values the engine passes through untouched.
	KindOpaque Kind = iota

	// KindRecord marks *Record values.
	KindRecord

	// KindSequence marks *Sequence values.
	KindSequence
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindSequence:
		return "sequence"
	default:
		return "opaque"
	}
}

// KindOf classifies v. Only *Record and *Sequence are draftable; every
// other type is Opaque.
func KindOf(v any) Kind {
	switch v.(type) {
	case *Record:
		return KindRecord
	case *Sequence:
		return KindSequence
	default:
		return KindOpaque
	}
}

// Draftable reports whether v is a container the draft engine can wrap.
func Draftable(v any) bool {
	return KindOf(v) != KindOpaque
}

// tombstone is the type of the Deleted singleton. The non-zero size
// guarantees a unique allocation.
type tombstone struct{ _ byte }

// Deleted is the deletion tombstone. The draft engine writes it into
// sequence slots to mark them for removal; the finalizer compacts the
// marked slots out. It is a unique token: no caller-supplied value,
// including nil, compares equal to it.
var Deleted any = &tombstone{}

func (*tombstone) String() string { return "<deleted>" }

// IsDeleted reports whether v is the deletion tombstone.
func IsDeleted(v any) bool {
	return v == Deleted
}

// Record is a string-keyed container of fields.
//
// The zero value is not usable; construct with NewRecord or RecordOf.
type Record struct {
	fields map[string]any
	frozen bool
}

// NewRecord returns an empty, unfrozen record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]any)}
}

// RecordOf returns a record holding a shallow copy of fields. The field
// values themselves are stored as-is; use FromAny to convert a whole
// plain tree.
func RecordOf(fields map[string]any) *Record {
	r := &Record{fields: make(map[string]any, len(fields))}
	for k, v := range fields {
		r.fields[k] = v
	}
	return r
}

// Get returns the value stored under key and whether it is present.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Set stores v under key. Returns ErrFrozen on a frozen record.
func (r *Record) Set(key string, v any) error {
	if r.frozen {
		return ErrFrozen
	}
	r.fields[key] = v
	return nil
}

// Delete removes key. Removing an absent key is a no-op. Returns
// ErrFrozen on a frozen record.
func (r *Record) Delete(key string) error {
	if r.frozen {
		return ErrFrozen
	}
	delete(r.fields, key)
	return nil
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Keys returns the field names in sorted order, so enumeration is
// deterministic.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Range calls fn for each field in sorted key order until fn returns
// false.
func (r *Record) Range(fn func(key string, v any) bool) {
	for _, k := range r.Keys() {
		if !fn(k, r.fields[k]) {
			return
		}
	}
}

// Clone returns an unfrozen shallow duplicate: the field map is copied,
// the field values are shared by reference.
func (r *Record) Clone() *Record {
	return RecordOf(r.fields)
}

// Frozen reports whether the record rejects writes.
func (r *Record) Frozen() bool {
	return r.frozen
}

// Sequence is a linear, index-addressed container.
//
// The zero value is not usable; construct with NewSequence or SequenceOf.
type Sequence struct {
	items  []any
	frozen bool
}

// NewSequence returns an unfrozen sequence holding the given items.
func NewSequence(items ...any) *Sequence {
	return SequenceOf(items)
}

// SequenceOf returns a sequence holding a shallow copy of items.
func SequenceOf(items []any) *Sequence {
	s := &Sequence{items: make([]any, len(items))}
	copy(s.items, items)
	return s
}

// At returns the item at index i and whether i is in range.
func (s *Sequence) At(i int) (any, bool) {
	if i < 0 || i >= len(s.items) {
		return nil, false
	}
	return s.items[i], true
}

// Set stores v at index i. Returns ErrIndexOutOfRange for an invalid
// index and ErrFrozen on a frozen sequence.
func (s *Sequence) Set(i int, v any) error {
	if s.frozen {
		return ErrFrozen
	}
	if i < 0 || i >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items[i] = v
	return nil
}

// Append adds items at the tail. Returns ErrFrozen on a frozen sequence.
func (s *Sequence) Append(items ...any) error {
	if s.frozen {
		return ErrFrozen
	}
	s.items = append(s.items, items...)
	return nil
}

// Insert places items before index i. i == Len() appends. Returns
// ErrIndexOutOfRange for an invalid index and ErrFrozen on a frozen
// sequence.
func (s *Sequence) Insert(i int, items ...any) error {
	if s.frozen {
		return ErrFrozen
	}
	if i < 0 || i > len(s.items) {
		return ErrIndexOutOfRange
	}
	out := make([]any, 0, len(s.items)+len(items))
	out = append(out, s.items[:i]...)
	out = append(out, items...)
	out = append(out, s.items[i:]...)
	s.items = out
	return nil
}

// Remove deletes the item at index i, shifting later items down. Returns
// ErrIndexOutOfRange for an invalid index and ErrFrozen on a frozen
// sequence.
func (s *Sequence) Remove(i int) error {
	if s.frozen {
		return ErrFrozen
	}
	if i < 0 || i >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Sort reorders the items by less. Returns ErrFrozen on a frozen
// sequence.
func (s *Sequence) Sort(less func(a, b any) bool) error {
	if s.frozen {
		return ErrFrozen
	}
	sort.SliceStable(s.items, func(i, j int) bool {
		return less(s.items[i], s.items[j])
	})
	return nil
}

// Reverse reverses the item order. Returns ErrFrozen on a frozen
// sequence.
func (s *Sequence) Reverse() error {
	if s.frozen {
		return ErrFrozen
	}
	for i, j := 0, len(s.items)-1; i < j; i, j = i+1, j-1 {
		s.items[i], s.items[j] = s.items[j], s.items[i]
	}
	return nil
}

// Len returns the number of items.
func (s *Sequence) Len() int {
	return len(s.items)
}

// Range calls fn for each item in order until fn returns false.
func (s *Sequence) Range(fn func(i int, v any) bool) {
	for i, v := range s.items {
		if !fn(i, v) {
			return
		}
	}
}

// Items returns a copy of the item slice.
func (s *Sequence) Items() []any {
	out := make([]any, len(s.items))
	copy(out, s.items)
	return out
}

// Clone returns an unfrozen shallow duplicate: the item slice is copied,
// the items are shared by reference.
func (s *Sequence) Clone() *Sequence {
	return SequenceOf(s.items)
}

// Frozen reports whether the sequence rejects writes.
func (s *Sequence) Frozen() bool {
	return s.frozen
}

// Same reports identity between two values: pointer identity for
// records and sequences, == for comparable opaque values of the same
// type. Non-comparable opaque values are never Same, which errs on the
// side of treating a rewrite as a change.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *Record:
		bv, ok := b.(*Record)
		return ok && av == bv
	case *Sequence:
		bv, ok := b.(*Sequence)
		return ok && av == bv
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
