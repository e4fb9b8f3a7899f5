// SPDX-License-Identifier: MIT

package substance

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Classify runs the recognizer pipeline over in and returns the first
// accepted Substance.
//
// Errors:
//   - ErrInvalidInput if in is empty or carries non-zero states, indices < 1.
//   - ErrUnknownSubstance if every recognizer rejects.
//   - ErrOptionViolation if an option is invalid.
//
// in is never modified.
func Classify(in Multiset, opts ...Option) (Substance, error) {
	o, err := resolve(opts)
	if err != nil {
		return Substance{}, err
	}

	return classify(in, &o)
}

func classify(in Multiset, o *Options) (Substance, error) {
	if err := in.Validate(); err != nil {
		return Substance{}, err
	}

	formula := in.Formula()
	for _, r := range o.Recognizers {
		s, ok := r.Recognize(in)
		o.Logger.Debug("recognizer attempt",
			slog.String("recognizer", r.Name()),
			slog.String("formula", formula),
			slog.Bool("accepted", ok))
		o.OnAttempt(r.Name(), ok)
		if ok {
			return s, nil
		}
	}

	return Substance{}, fmt.Errorf("%w: %s", ErrUnknownSubstance, formula)
}

// FromString parses s with p and classifies its single term.
// Returns ErrWrongArity unless s holds exactly one substance.
func FromString(s string, p Parser, opts ...Option) (Substance, error) {
	terms, err := p.Parse(s)
	if err != nil {
		return Substance{}, err
	}
	if len(terms) != 1 {
		return Substance{}, fmt.Errorf("%w: %q holds %d", ErrWrongArity, s, len(terms))
	}

	return Classify(terms[0], opts...)
}

// ClassifyAll classifies inputs concurrently, at most Options.Concurrency at
// a time. Results keep the order of inputs; a failed classification is
// reported in its Result.Err and does not stop the batch. The returned error
// is non-nil only for option violations and context cancellation.
func ClassifyAll(ctx context.Context, inputs []Multiset, opts ...Option) ([]Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := classify(in, &o)
			results[i] = Result{Input: in, Substance: s, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}
