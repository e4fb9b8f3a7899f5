// SPDX-License-Identifier: MIT

package substance

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Option configures classification via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Classify or ClassifyAll runs.
type Option func(*Options)

// Options holds the knobs of one classification call.
type Options struct {
	// Recognizers are tried in order; the first acceptance wins.
	Recognizers []Recognizer

	// Logger receives one debug record per recognizer attempt.
	Logger *slog.Logger

	// OnAttempt is called after every recognizer attempt. ClassifyAll calls
	// it from several goroutines.
	OnAttempt func(name string, accepted bool)

	// Concurrency bounds the number of goroutines used by ClassifyAll.
	Concurrency int

	err error
}

// DefaultRecognizers returns the fixed-precedence pipeline:
// simple, hydride, peroxide, oxide, base, salt, acid.
func DefaultRecognizers() []Recognizer {
	return []Recognizer{
		SimpleRecognizer{},
		HydrideRecognizer{},
		PeroxideRecognizer{},
		OxideRecognizer{},
		BaseRecognizer{},
		SaltRecognizer{},
		AcidRecognizer{},
	}
}

// DefaultOptions returns Options with the default pipeline, a discarding
// logger, a no-op hook and GOMAXPROCS concurrency.
func DefaultOptions() Options {
	return Options{
		Recognizers: DefaultRecognizers(),
		Logger:      slog.New(slog.DiscardHandler),
		OnAttempt:   func(string, bool) {},
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithRecognizers replaces the pipeline. An empty list or a nil entry is an
// option violation.
func WithRecognizers(rs ...Recognizer) Option {
	return func(o *Options) {
		if len(rs) == 0 {
			o.err = fmt.Errorf("%w: empty recognizer list", ErrOptionViolation)
			return
		}
		for i, r := range rs {
			if r == nil {
				o.err = fmt.Errorf("%w: recognizer %d is nil", ErrOptionViolation, i)
				return
			}
		}
		o.Recognizers = append([]Recognizer(nil), rs...)
	}
}

// WithLogger enables the debug trace of recognizer attempts; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAttempt registers a hook run after each recognizer attempt; nil is
// ignored.
func WithOnAttempt(fn func(name string, accepted bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAttempt = fn
		}
	}
}

// WithConcurrency bounds ClassifyAll parallelism.
//
//	n < 1: invalid option → ErrOptionViolation
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: concurrency must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}

// resolve applies opts over the defaults in order.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
