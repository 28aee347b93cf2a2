package craft

import (
	"github.com/SylphxAI/craft/draft"
)

// defaultFreeze is the process-wide freeze default used when a call
// passes no WithFreeze option. Guarded by convention, not locks: set it
// once at startup, like the rest of the engine it is not meant for
// concurrent reconfiguration.
var defaultFreeze = draft.FreezeDeep

// SetAutoFreeze sets the process-wide default: deep freezing when on,
// no freezing when off. Call from program setup, before produce calls.
func SetAutoFreeze(on bool) {
	if on {
		defaultFreeze = draft.FreezeDeep
	} else {
		defaultFreeze = draft.FreezeNone
	}
}

// Option adjusts a single produce or finish call.
type Option func(*options)

type options struct {
	freeze draft.FreezeMode
}

// WithFreeze overrides the freeze mode for this call only.
func WithFreeze(mode draft.FreezeMode) Option {
	return func(o *options) {
		o.freeze = mode
	}
}

func buildOptions(opts []Option) *options {
	o := &options{freeze: defaultFreeze}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) config() *draft.Config {
	return &draft.Config{Freeze: o.freeze}
}
