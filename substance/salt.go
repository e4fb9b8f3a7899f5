// SPDX-License-Identifier: MIT

package substance

import "slices"

// SaltRecognizer accepts normal, acidic and basic salts (NaCl, NaHCO3,
// Al(OH)CO3, Fe2(SO4)3, K2Cr2O7, Zn(AlO2)2).
//
// Non-H, non-O elements are split into cations and the residue: alkali and
// alkaline-earth metals are always cations, other metals are cations unless
// the residue would otherwise be empty, in which case the least
// electronegative of them becomes the residue centre. Valencies are then
// searched exhaustively until the cation and anion totals meet.
type SaltRecognizer struct{}

// Name returns "salt".
func (SaltRecognizer) Name() string { return Salt.String() }

// Recognize tries the residue shapes allowed by the H and O content in order
// and commits the first valency assignment that balances.
func (SaltRecognizer) Recognize(in Multiset) (Substance, bool) {
	var me, amph, anti []Block
	for _, b := range in.Sorted() {
		switch {
		case b.Symbol == Hydrogen || b.Symbol == Oxygen:
		case b.Element.Group <= 2:
			me = append(me, b)
		case b.Element.IsAmphoteric():
			amph = append(amph, b)
		default:
			anti = append(anti, b)
		}
	}
	if len(anti) == 0 {
		if len(amph) == 0 {
			return Substance{}, false
		}
		anti, amph = amph[:1], amph[1:]
	}
	cations := append(me, amph...)
	if len(cations) == 0 {
		return Substance{}, false
	}
	slices.SortFunc(cations, byElectronegativity)

	for _, shape := range residueShapes(in) {
		if f, ok := shape.solve(cations, anti); ok {
			return newSubstance(f), true
		}
	}

	return Substance{}, false
}

// residueShape fixes where the hydrogen and oxygen atoms of a salt go.
type residueShape struct {
	kind      SaltKind
	hydroxide int // OH units next to the residue
	hydrogen  int // H atoms inside the residue
	oxygen    int // O atoms inside the residue
	h, o      Block
}

// residueShapes lists the shapes to try: with both H and O the hydroxide
// shape comes first, then hydrogen inside the residue.
func residueShapes(in Multiset) []residueShape {
	h, hasH := in[Hydrogen]
	o, hasO := in[Oxygen]

	switch {
	case hasH && hasO:
		shapes := make([]residueShape, 0, 2)
		if o.Index >= h.Index {
			shapes = append(shapes, residueShape{
				kind: BasicSalt, hydroxide: h.Index, oxygen: o.Index - h.Index, h: h, o: o,
			})
		}
		return append(shapes, residueShape{
			kind: AcidicSalt, hydrogen: h.Index, oxygen: o.Index, h: h, o: o,
		})
	case hasH:
		return []residueShape{{kind: AcidicSalt, hydrogen: h.Index, h: h}}
	case hasO:
		return []residueShape{{kind: NormalSalt, oxygen: o.Index, o: o}}
	default:
		return []residueShape{{kind: NormalSalt}}
	}
}

// anionVariant is one valency assignment of the residue members and the
// total negative charge it carries, hydroxide included.
type anionVariant struct {
	total  int
	states []int
}

// solve walks cation valency tuples and returns the first one whose total
// equals the total of some anion variant.
func (r residueShape) solve(cations, anions []Block) (SaltForm, bool) {
	variants := r.anionVariants(anions)
	if len(variants) == 0 {
		return SaltForm{}, false
	}

	slots := make([][]int, len(cations))
	for i, c := range cations {
		slots[i] = c.Element.Valencies
	}
	for states := range product(slots) {
		total := 0
		for i, v := range states {
			total += v * cations[i].Index
		}
		if total == 0 {
			continue
		}
		for _, av := range variants {
			if av.total == total {
				return r.commit(cations, states, anions, av.states), true
			}
		}
	}

	return SaltForm{}, false
}

// anionVariants enumerates residue assignments. The most electronegative
// member is the oxidant: with oxygen it takes any valency and the residue
// charge is the number of terminal O atoms 2·nO − Σpositive, which must lie
// in [1, nO − hR]; without oxygen it is anchored at group − 18.
func (r residueShape) anionVariants(anions []Block) []anionVariant {
	x := len(anions) - 1
	slots := make([][]int, len(anions))
	for i, b := range anions {
		slots[i] = b.Element.Valencies
	}
	if r.oxygen == 0 {
		anchor := anions[x].Element.NonMetalState()
		if !anions[x].Element.HasValency(anchor) {
			return nil
		}
		slots[x] = []int{anchor}
	}

	var out []anionVariant
	for states := range product(slots) {
		sum := r.hydrogen * protonState
		for i, v := range states {
			sum += v * anions[i].Index
		}
		q := -sum
		if r.oxygen > 0 {
			q = -oxideState*r.oxygen - sum
			if q < 1 || q > r.oxygen-r.hydrogen {
				continue
			}
		}
		if total := q + r.hydroxide; total >= 1 {
			out = append(out, anionVariant{total: total, states: slices.Clone(states)})
		}
	}

	return out
}

// commit writes the chosen states into fresh blocks and assembles the form.
func (r residueShape) commit(cations []Block, cs []int, anions []Block, as []int) SaltForm {
	f := SaltForm{Kind: r.kind, Cations: make([]Block, len(cations))}
	for i, c := range cations {
		f.Cations[i] = c.withState(cs[i])
	}

	members := make([]Block, 0, len(anions)+2)
	if r.hydrogen > 0 {
		members = append(members, r.h.withIndex(r.hydrogen).withState(protonState))
	}
	for i, a := range anions {
		members = append(members, a.withState(as[i]))
	}
	if r.oxygen > 0 {
		members = append(members, r.o.withIndex(r.oxygen).withState(oxideState))
	}
	f.Residue = residue(members)

	if r.hydroxide > 0 {
		oh := hydroxide(r.o, r.h, r.hydroxide)
		f.Hydroxide = &oh
	}

	return f
}

// residue reduces members by the gcd of their counts and names the unit by
// its formula: "SO4" ×3, "HCO3" ×2, "Cl" ×2.
func residue(members []Block) Block {
	g := 0
	for _, m := range members {
		g = gcd(g, m.Index)
	}
	for i := range members {
		members[i].Index /= g
	}

	return newComposite(unitFormula(members), g, members...)
}
