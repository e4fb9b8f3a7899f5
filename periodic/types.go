// SPDX-License-Identifier: MIT

package periodic

import (
	"errors"
	"sync"

	"github.com/katalvlaran/alchemy/element"
)

// Sentinel errors for table operations.
var (
	// ErrNotFound indicates the requested symbol is not in the table.
	ErrNotFound = errors.New("periodic: element not found")

	// ErrInvalidSymbol indicates a symbol that is not an uppercase letter
	// followed by at most two lowercase letters.
	ErrInvalidSymbol = errors.New("periodic: invalid element symbol")

	// ErrDuplicateSymbol indicates an insert of an already present symbol.
	ErrDuplicateSymbol = errors.New("periodic: duplicate element symbol")

	// ErrDuplicateCharge indicates two records sharing one atomic number.
	ErrDuplicateCharge = errors.New("periodic: duplicate element charge")

	// ErrBadTable indicates table data that cannot be decoded.
	ErrBadTable = errors.New("periodic: malformed table data")
)

// Lookup is the read-only view of a table used by the parser and the
// reaction layer.
type Lookup interface {
	Lookup(symbol string) (element.Element, error)
}

// Table is an in-memory periodic table.
// mu guards both maps; byCharge mirrors bySymbol for charge uniqueness.
type Table struct {
	mu       sync.RWMutex
	bySymbol map[string]element.Element
	byCharge map[int]string
}

// document is the on-disk YAML layout.
type document struct {
	Elements []element.Element `yaml:"elements"`
}

var _ Lookup = (*Table)(nil)
