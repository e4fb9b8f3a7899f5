// SPDX-License-Identifier: MIT

package periodic

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/alchemy/element"
	"gopkg.in/yaml.v3"
)

//go:embed table.yaml
var defaultTable []byte

// New returns an empty table.
func New() *Table {
	return &Table{
		bySymbol: make(map[string]element.Element),
		byCharge: make(map[int]string),
	}
}

// Default decodes the embedded table (H … Fm).
// Each call returns an independent Table that may be modified freely.
func Default() (*Table, error) {
	return Parse(defaultTable)
}

// Load reads and decodes a YAML table from path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("periodic: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML table data, validating every record.
// Errors: ErrBadTable, element.ErrInvalidElement, ErrInvalidSymbol,
// ErrDuplicateSymbol, ErrDuplicateCharge.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}
	if len(doc.Elements) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrBadTable)
	}

	t := New()
	for _, e := range doc.Elements {
		if err := t.Insert(e.Symbol, e); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Lookup returns the element registered under symbol.
// Complexity: O(1) under a read lock.
func (t *Table) Lookup(symbol string) (element.Element, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.bySymbol[symbol]
	if !ok {
		return element.Element{}, fmt.Errorf("%w: %q", ErrNotFound, symbol)
	}

	return e, nil
}

// Insert registers e under symbol. The record's Symbol field is overwritten
// with symbol so both always agree.
//
// Errors:
//   - ErrInvalidSymbol  : symbol is not [A-Z][a-z]{0,2}.
//   - ErrDuplicateSymbol: symbol already present.
//   - ErrDuplicateCharge: another element already has e.Charge.
//   - element.ErrInvalidElement: e fails validation.
func (t *Table) Insert(symbol string, e element.Element) error {
	if !validSymbol(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	e.Symbol = symbol
	e.Valencies = append([]int(nil), e.Valencies...)
	if err := e.Validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.bySymbol[symbol]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSymbol, symbol)
	}
	if other, ok := t.byCharge[e.Charge]; ok {
		return fmt.Errorf("%w: %d (%s, %s)", ErrDuplicateCharge, e.Charge, other, symbol)
	}
	t.bySymbol[symbol] = e
	t.byCharge[e.Charge] = symbol

	return nil
}

// Remove deletes symbol from the table and returns the removed record.
func (t *Table) Remove(symbol string) (element.Element, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.bySymbol[symbol]
	if !ok {
		return element.Element{}, fmt.Errorf("%w: %q", ErrNotFound, symbol)
	}
	delete(t.bySymbol, symbol)
	delete(t.byCharge, e.Charge)

	return e, nil
}

// Len returns the number of elements in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.bySymbol)
}

// Symbols returns every symbol ordered by ascending charge.
func (t *Table) Symbols() []string {
	t.mu.RLock()
	charges := make([]int, 0, len(t.byCharge))
	for c := range t.byCharge {
		charges = append(charges, c)
	}
	sort.Ints(charges)
	out := make([]string, len(charges))
	for i, c := range charges {
		out[i] = t.byCharge[c]
	}
	t.mu.RUnlock()

	return out
}

// validSymbol reports whether s is an uppercase letter followed by up to two
// lowercase letters.
func validSymbol(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	if s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}

	return true
}
