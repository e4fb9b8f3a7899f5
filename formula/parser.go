// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/alchemy/element"
	"github.com/katalvlaran/alchemy/periodic"
	"github.com/katalvlaran/alchemy/substance"
)

// NewParser returns a Parser resolving symbols through table.
func NewParser(table periodic.Lookup) *Parser {
	return &Parser{table: table}
}

// Parse is shorthand for NewParser(table).Parse(s).
func Parse(s string, table periodic.Lookup) ([]substance.Multiset, error) {
	return NewParser(table).Parse(s)
}

// Parse splits s into terms and returns one multiset per term.
func (p *Parser) Parse(s string) ([]substance.Multiset, error) {
	terms := strings.FieldsFunc(s, func(r rune) bool {
		return r == '+' || r == ',' || unicode.IsSpace(r)
	})
	if len(terms) == 0 {
		return nil, ErrEmptyFormula
	}

	out := make([]substance.Multiset, 0, len(terms))
	for _, t := range terms {
		ms, err := p.term(t)
		if err != nil {
			return nil, err
		}
		out = append(out, ms)
	}

	return out, nil
}

// term parses one term.
func (p *Parser) term(t string) (substance.Multiset, error) {
	sc := &scanner{src: []rune(t), term: t, table: p.table}
	ms := make(substance.Multiset)
	if err := sc.sequence(0, 1, ms); err != nil {
		return nil, err
	}
	if sc.pos < len(sc.src) {
		return nil, fmt.Errorf("%w: unexpected %q in %q", ErrUnbalancedBrackets, sc.src[sc.pos], t)
	}

	return ms, nil
}

// scanner walks one term.
type scanner struct {
	src   []rune
	pos   int
	term  string
	table periodic.Lookup
}

// sequence reads units until end of input or the closer of the enclosing
// group and adds them, multiplied by mult, to ms. It returns with pos on the
// closer; closer 0 means top level.
func (sc *scanner) sequence(closer rune, mult int, ms substance.Multiset) error {
	units := 0
	for sc.pos < len(sc.src) {
		r := sc.src[sc.pos]
		switch {
		case r == closer:
			if units == 0 {
				return fmt.Errorf("%w: empty group in %q", ErrMalformedFormula, sc.term)
			}
			return nil
		case unicode.IsUpper(r):
			e, err := sc.element()
			if err != nil {
				return err
			}
			n, err := sc.count()
			if err != nil {
				return err
			}
			ms.Add(e, n*mult)
		case closers[r] != 0:
			sc.pos++
			inner := make(substance.Multiset)
			if err := sc.sequence(closers[r], 1, inner); err != nil {
				return err
			}
			if sc.pos >= len(sc.src) {
				return fmt.Errorf("%w: %q is not closed in %q", ErrUnbalancedBrackets, r, sc.term)
			}
			sc.pos++
			n, err := sc.count()
			if err != nil {
				return err
			}
			for _, b := range inner {
				ms.Add(b.Element, b.Index*n*mult)
			}
		case isCloser(r):
			return fmt.Errorf("%w: unexpected %q in %q", ErrUnbalancedBrackets, r, sc.term)
		case digit(r) >= 0:
			return fmt.Errorf("%w: count without element in %q", ErrMalformedFormula, sc.term)
		default:
			return fmt.Errorf("%w: unexpected %q in %q", ErrMalformedFormula, r, sc.term)
		}
		units++
	}
	if closer != 0 {
		return nil
	}
	if units == 0 {
		return ErrEmptyFormula
	}

	return nil
}

// element reads an uppercase letter and its lowercase tail and resolves it.
func (sc *scanner) element() (element.Element, error) {
	start := sc.pos
	sc.pos++
	for sc.pos < len(sc.src) && unicode.IsLower(sc.src[sc.pos]) {
		sc.pos++
	}
	symbol := string(sc.src[start:sc.pos])
	e, err := sc.table.Lookup(symbol)
	if err != nil {
		return element.Element{}, fmt.Errorf("%w: %s in %q", ErrUnknownElement, symbol, sc.term)
	}

	return e, nil
}

// count reads an optional count; absent means 1.
func (sc *scanner) count() (int, error) {
	n, digits := 0, 0
	for sc.pos < len(sc.src) {
		d := digit(sc.src[sc.pos])
		if d < 0 {
			break
		}
		n = n*10 + d
		digits++
		sc.pos++
		if n > maxCount {
			return 0, fmt.Errorf("%w: count above %d in %q", ErrMalformedFormula, maxCount, sc.term)
		}
	}
	switch {
	case digits == 0:
		return 1, nil
	case n == 0:
		return 0, fmt.Errorf("%w: zero count in %q", ErrMalformedFormula, sc.term)
	default:
		return n, nil
	}
}

// digit returns the value of an ASCII or subscript digit, or -1.
func digit(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= '₀' && r <= '₉':
		return int(r - '₀')
	default:
		return -1
	}
}

func isCloser(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}
