// Package value defines the tagged document value model that the draft
// engine operates on.
//
// # Overview
//
// A document is a tree of values. Exactly two container shapes are
// recognized, both tagged at construction time:
//
//   - Record: a string-keyed collection of fields, built with NewRecord
//     or RecordOf
//   - Sequence: a linear, index-addressed collection, built with
//     NewSequence or SequenceOf
//
// Every other Go value (numbers, strings, bools, nil, time.Time, user
// structs, raw maps and slices) is Opaque: the engine never looks inside
// it, never copies it, and passes it through by reference or by value as
// the caller supplied it. KindOf reports the classification.
//
// # Freezing
//
// Records and Sequences carry a frozen flag. Once frozen (see Freeze),
// every mutating method rejects the write with ErrFrozen. Clone always
// returns an unfrozen shallow duplicate, which is what copy-on-write in
// the draft package relies on.
//
// # Deletion tombstone
//
// Deleted is a unique singleton used by the draft engine to mark sequence
// slots for removal. It cannot collide with caller data: no ordinary
// value compares equal to it, including nil.
//
// # JSON
//
// Record and Sequence implement json.Marshaler, so a value tree marshals
// with the standard library directly. FromJSON and FromAny build value
// trees from raw JSON bytes and from plain map[string]any / []any trees
// respectively; ToAny converts back.
//
// # Thread Safety
//
// Values are not safe for concurrent mutation. Frozen values are
// effectively immutable and may be read from multiple goroutines.
package value
