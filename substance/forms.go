// SPDX-License-Identifier: MIT

package substance

var (
	_ Form = SimpleForm{}
	_ Form = HydrideForm{}
	_ Form = OxideForm{}
	_ Form = PeroxideForm{}
	_ Form = BaseForm{}
	_ Form = AcidForm{}
	_ Form = SaltForm{}
)

func (SimpleForm) Class() Class { return Simple }

func (f SimpleForm) split() ([]Block, []Block) {
	if f.Element.Element.IsMetal() {
		return []Block{f.Element}, nil
	}

	return nil, []Block{f.Element}
}

func (f SimpleForm) ordered() []Block { return []Block{f.Element} }

func (HydrideForm) Class() Class { return Hydride }

func (f HydrideForm) split() ([]Block, []Block) {
	return []Block{f.Partner}, []Block{f.Hydrogen}
}

func (f HydrideForm) ordered() []Block { return []Block{f.Partner, f.Hydrogen} }

func (OxideForm) Class() Class { return Oxide }

func (f OxideForm) split() ([]Block, []Block) {
	return []Block{f.Partner}, []Block{f.Oxygen}
}

func (f OxideForm) ordered() []Block { return []Block{f.Partner, f.Oxygen} }

func (PeroxideForm) Class() Class { return Peroxide }

func (f PeroxideForm) split() ([]Block, []Block) {
	return []Block{f.Metal}, []Block{f.Oxygen}
}

func (f PeroxideForm) ordered() []Block { return []Block{f.Metal, f.Oxygen} }

func (BaseForm) Class() Class { return Base }

func (f BaseForm) split() ([]Block, []Block) {
	return []Block{f.Cation}, []Block{f.Hydroxide}
}

func (f BaseForm) ordered() []Block { return []Block{f.Cation, f.Hydroxide} }

func (AcidForm) Class() Class { return Acid }

func (f AcidForm) split() ([]Block, []Block) {
	return []Block{f.Hydrogen}, []Block{f.Residue}
}

func (f AcidForm) ordered() []Block { return []Block{f.Hydrogen, f.Residue} }

func (SaltForm) Class() Class { return Salt }

func (f SaltForm) split() ([]Block, []Block) {
	anti := []Block{f.Residue}
	if f.Hydroxide != nil {
		anti = append(anti, *f.Hydroxide)
	}

	return f.Cations, anti
}

func (f SaltForm) ordered() []Block {
	out := append([]Block(nil), f.Cations...)
	if f.Hydroxide != nil {
		out = append(out, *f.Hydroxide)
	}

	return append(out, f.Residue)
}
