// Package units scales engineering quantities to their SI base value while
// keeping the display unit visible in the generated source through a
// displayUnit modification.
package units

import (
	"math"
	"strconv"

	"github.com/modkit/modelica/mo"
)

// Unit converts display-unit quantities to SI base values.
type Unit struct {
	Symbol string
	Factor float64
}

// Of returns a modification binding key to value scaled into SI units, with
// the display unit preserved, e.g. KV.Of("V", 1) -> V(displayUnit="kV")=1000.
func (u Unit) Of(key string, value float64) mo.Modification {
	return mo.Modification{
		Key:    key,
		Value:  Format(value * u.Factor),
		Nested: mo.Modifications{mo.Mod("displayUnit", strconv.Quote(u.Symbol))},
	}
}

// Convert returns the SI base value of a quantity given in this unit.
func (u Unit) Convert(value float64) float64 {
	return value * u.Factor
}

// Format renders a scaled value the way it appears in generated source.
func Format(value float64) string {
	return strconv.FormatFloat(value, 'g', 9, 64)
}

// Common power-system units.
var (
	Km   = Unit{"km", 1e3}
	KV   = Unit{"kV", 1e3}
	KW   = Unit{"kW", 1e3}
	Kvar = Unit{"kvar", 1e3}
	KVA  = Unit{"kVA", 1e3}
	KA   = Unit{"kA", 1e3}
	KWh  = Unit{"kWh", 1e3}

	MV   = Unit{"MV", 1e6}
	MW   = Unit{"MW", 1e6}
	Mvar = Unit{"Mvar", 1e6}
	MVA  = Unit{"MVA", 1e6}
	MWh  = Unit{"MWh", 1e6}

	Deg = Unit{"deg", math.Pi / 180}
)
