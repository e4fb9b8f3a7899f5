// SPDX-License-Identifier: MIT

package substance

import (
	"errors"

	"github.com/katalvlaran/alchemy/element"
)

// Sentinel errors returned by classification.
var (
	// ErrUnknownSubstance indicates that every recognizer rejected the input.
	ErrUnknownSubstance = errors.New("substance: unknown substance")

	// ErrWrongArity indicates a formula that does not hold exactly one term
	// where one substance is expected.
	ErrWrongArity = errors.New("substance: expected exactly one substance")

	// ErrInvalidInput indicates an empty multiset, a non-positive index,
	// a pre-set oxidation state or a key that disagrees with its block.
	ErrInvalidInput = errors.New("substance: invalid input multiset")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("substance: invalid option value")
)

// Well-known symbols and fixed oxidation states.
const (
	Hydrogen = "H"
	Oxygen   = "O"
	Nitrogen = "N"

	// HydroxideName and AmmoniumName key the composite blocks of bases and
	// basic salts.
	HydroxideName = "OH"
	AmmoniumName  = "NH4"

	oxideState    = -2
	peroxideState = -1
	protonState   = 1
	hydrideState  = -1
	ammoniaState  = -3
)

// Class is the taxonomic class of a substance.
type Class int

const (
	// Simple is a substance made of a single element.
	Simple Class = iota + 1
	// Hydride is a binary compound of hydrogen with a less electronegative element.
	Hydride
	// Oxide is a binary compound of oxygen in state −2.
	Oxide
	// Peroxide is a binary compound holding an O–O pair (state −1).
	Peroxide
	// Base is a metal (or ammonium) hydroxide.
	Base
	// Acid is hydrogen bound to an acid residue.
	Acid
	// Salt is cations bound to an acid residue, optionally with OH or acidic H.
	Salt
)

var classNames = [...]string{
	Simple:   "simple",
	Hydride:  "hydride",
	Oxide:    "oxide",
	Peroxide: "peroxide",
	Base:     "base",
	Acid:     "acid",
	Salt:     "salt",
}

// String returns the lower-case class name.
func (c Class) String() string {
	if c < Simple || c > Salt {
		return "unknown"
	}

	return classNames[c]
}

// Block is one element group of a substance.
//
// An elementary block holds Element, its stoichiometric Index and the
// OxidationState assigned by classification (0 until then).
// A composite block (OH, NH4, SO4 …) has Members: per-unit elementary blocks.
// Its Index is the number of units and OxidationState the net charge of one
// unit. Opaque composites (acid residues) keep their members at state 0.
type Block struct {
	Symbol         string
	Element        element.Element
	Index          int
	OxidationState int
	Members        []Block
	Opaque         bool
}

// Multiset maps an element symbol to its elementary block.
// It is the parser's output and the classifier's input.
type Multiset map[string]Block

// Substance is a classified substance.
//
// Me holds the electropositive part (metals, cations, acidic hydrogen) and
// AntiMe the electronegative part (non-metals, O, residues, OH). Keys of the
// two maps never overlap. Form carries the class-specific view of the same
// blocks.
type Substance struct {
	Class  Class
	Me     map[string]Block
	AntiMe map[string]Block
	Form   Form
}

// Form is the class-specific payload of a Substance.
// The set of implementations is closed: SimpleForm, HydrideForm, OxideForm,
// PeroxideForm, BaseForm, AcidForm and SaltForm.
type Form interface {
	// Class returns the class the form belongs to.
	Class() Class
	// split returns the blocks destined for Me and AntiMe.
	split() (me, antiMe []Block)
	// ordered returns the blocks in writing order.
	ordered() []Block
}

// SimpleForm is a single-element substance.
type SimpleForm struct {
	Element Block
}

// HydrideForm is Partner bound to hydrogen in state −1.
type HydrideForm struct {
	Partner  Block
	Hydrogen Block
}

// OxideForm is Partner bound to oxygen in state −2.
type OxideForm struct {
	Partner Block
	Oxygen  Block
}

// PeroxideForm is Metal bound to an O–O pair; Oxygen has index 2, state −1.
type PeroxideForm struct {
	Metal  Block
	Oxygen Block
}

// BaseForm is Cation (a metal or NH4) bound to Hydroxide units.
type BaseForm struct {
	Cation    Block
	Hydroxide Block
}

// AcidForm is hydrogen bound to one opaque residue.
type AcidForm struct {
	Hydrogen Block
	Residue  Block
}

// SaltKind distinguishes normal, acidic (hydrogen inside the residue) and
// basic (hydroxide next to the residue) salts.
type SaltKind int

const (
	// NormalSalt holds only cations and a residue (NaCl, Fe2(SO4)3).
	NormalSalt SaltKind = iota
	// AcidicSalt keeps hydrogen in the residue (NaHCO3).
	AcidicSalt
	// BasicSalt carries hydroxide groups (Al(OH)CO3).
	BasicSalt
)

// String returns the salt kind name.
func (k SaltKind) String() string {
	switch k {
	case AcidicSalt:
		return "acidic"
	case BasicSalt:
		return "basic"
	default:
		return "normal"
	}
}

// SaltForm is Cations bound to a residue and optional hydroxide.
// Cations are ordered by ascending electronegativity; Hydroxide is nil for
// normal and acidic salts.
type SaltForm struct {
	Kind      SaltKind
	Cations   []Block
	Hydroxide *Block
	Residue   Block
}

// Recognizer attempts to classify a multiset as one class.
// Recognize must not modify its argument and returns false on rejection.
type Recognizer interface {
	Name() string
	Recognize(in Multiset) (Substance, bool)
}

// Parser turns a formula string into one multiset per term.
type Parser interface {
	Parse(s string) ([]Multiset, error)
}

// Result is the outcome of classifying one multiset in a batch.
type Result struct {
	Input     Multiset
	Substance Substance
	Err       error
}
