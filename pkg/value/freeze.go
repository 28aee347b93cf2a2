package value

// Freeze marks v immutable. Frozen records and sequences reject every
// mutating method with ErrFrozen. With deep set, all nested records and
// sequences are frozen as well; opaque values are left untouched (the
// engine never owns them). Freezing an opaque value is a no-op.
//
// Freezing is one-way: there is no Unfreeze. Clone returns an unfrozen
// duplicate when a mutable copy is needed.
func Freeze(v any, deep bool) {
	switch c := v.(type) {
	case *Record:
		if c.frozen {
			return
		}
		c.frozen = true
		if deep {
			for _, fv := range c.fields {
				Freeze(fv, true)
			}
		}
	case *Sequence:
		if c.frozen {
			return
		}
		c.frozen = true
		if deep {
			for _, it := range c.items {
				Freeze(it, true)
			}
		}
	}
}

// Frozen reports whether v is a frozen record or sequence. Opaque values
// are never frozen.
func Frozen(v any) bool {
	switch c := v.(type) {
	case *Record:
		return c.frozen
	case *Sequence:
		return c.frozen
	}
	return false
}
