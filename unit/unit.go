package unit

// Unit is a unit of measure. Units are compared by pointer identity.
//
// Conversion to the standard unit is si = v*scale + offset. The offset is
// non-zero only for scales with a shifted origin such as degree Celsius.
type Unit struct {
	quantity string
	name     string
	symbol   string
	scale    float64
	offset   float64
	si       SICoefficients
	standard *Unit // nil for standard units
}

// NewStandard creates the standard (SI) unit of a quantity and registers it as
// the canonical unit for its coefficients unless one is already registered.
func NewStandard(quantity, name, symbol string, si SICoefficients) *Unit {
	u := &Unit{
		quantity: quantity,
		name:     name,
		symbol:   symbol,
		scale:    1,
		si:       si,
	}
	register(u)
	return u
}

// NewScaled creates a unit worth factor times base.
func NewScaled(name, symbol string, base *Unit, factor float64) *Unit {
	return &Unit{
		quantity: base.quantity,
		name:     name,
		symbol:   symbol,
		scale:    base.scale * factor,
		offset:   base.offset,
		si:       base.si,
		standard: base.StandardUnit(),
	}
}

// NewOffset creates a unit with si = v*scale + offset relative to the standard unit std.
func NewOffset(name, symbol string, std *Unit, scale, offset float64) *Unit {
	std = std.StandardUnit()
	return &Unit{
		quantity: std.quantity,
		name:     name,
		symbol:   symbol,
		scale:    scale,
		offset:   offset,
		si:       std.si,
		standard: std,
	}
}

// ToSI converts v from this unit to the standard unit.
func (u *Unit) ToSI(v float64) float64 {
	return v*u.scale + u.offset
}

// FromSI converts v from the standard unit to this unit.
func (u *Unit) FromSI(v float64) float64 {
	return (v - u.offset) / u.scale
}

// ScaleToSI converts a difference v to the standard unit, ignoring the offset.
func (u *Unit) ScaleToSI(v float64) float64 {
	return v * u.scale
}

// ScaleFromSI converts a difference v from the standard unit, ignoring the offset.
func (u *Unit) ScaleFromSI(v float64) float64 {
	return v / u.scale
}

// StandardUnit returns the standard unit of u's quantity.
func (u *Unit) StandardUnit() *Unit {
	if u.standard == nil {
		return u
	}
	return u.standard
}

// IsStandard reports whether u is its own standard unit.
func (u *Unit) IsStandard() bool { return u.standard == nil }

// Compatible reports whether u and o share a standard unit.
func (u *Unit) Compatible(o *Unit) bool {
	if u == nil || o == nil {
		return u == o
	}
	return u.StandardUnit() == o.StandardUnit()
}

// SICoefficients returns the SI base-unit exponents of u.
func (u *Unit) SICoefficients() SICoefficients { return u.si }

// Named reports whether u belongs to a known quantity. Units created by ForSI
// for unregistered coefficient combinations are unnamed.
func (u *Unit) Named() bool { return u.quantity != "" }

func (u *Unit) Quantity() string { return u.quantity }
func (u *Unit) Name() string     { return u.name }
func (u *Unit) Symbol() string   { return u.symbol }
func (u *Unit) Scale() float64   { return u.scale }
func (u *Unit) Offset() float64  { return u.offset }

// String returns the symbol of u.
func (u *Unit) String() string {
	if u == nil {
		return "<nil>"
	}
	return u.symbol
}
