// SPDX-License-Identifier: MIT

package formula

import (
	"errors"

	"github.com/katalvlaran/alchemy/periodic"
	"github.com/katalvlaran/alchemy/substance"
)

// Sentinel errors for parsing.
var (
	// ErrEmptyFormula indicates an input without any term.
	ErrEmptyFormula = errors.New("formula: empty formula")

	// ErrUnknownElement indicates a symbol missing from the table.
	ErrUnknownElement = errors.New("formula: unknown element")

	// ErrUnbalancedBrackets indicates an unclosed, unopened or mismatched
	// bracket.
	ErrUnbalancedBrackets = errors.New("formula: unbalanced brackets")

	// ErrMalformedFormula indicates an unexpected character, a count with
	// nothing to multiply, a zero count, a count above 255 or an empty group.
	ErrMalformedFormula = errors.New("formula: malformed formula")
)

// maxCount is the largest accepted count.
const maxCount = 255

// closers maps every opening bracket to its closing pair.
var closers = map[rune]rune{'(': ')', '[': ']', '{': '}'}

// Parser parses formulas against one periodic table.
// It is stateless between calls and safe for concurrent use when its
// Lookup is.
type Parser struct {
	table periodic.Lookup
}

var _ substance.Parser = (*Parser)(nil)
