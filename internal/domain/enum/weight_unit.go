package enum

// WeightUnit is the unit a line item's weight was measured in
type WeightUnit string

const (
	WeightUnitGram  WeightUnit = "gm"
	WeightUnitAna   WeightUnit = "ana"
	WeightUnitPoint WeightUnit = "point"
	WeightUnitVori  WeightUnit = "vori"
)

// IsValid reports whether the value is a known weight unit
func (u WeightUnit) IsValid() bool {
	switch u {
	case WeightUnitGram, WeightUnitAna, WeightUnitPoint, WeightUnitVori:
		return true
	}
	return false
}

// Normalize returns the unit itself when valid and the gram default
// otherwise. The order form only offers these units, so unknown values
// are coerced rather than rejected.
func (u WeightUnit) Normalize() WeightUnit {
	if u.IsValid() {
		return u
	}
	return WeightUnitGram
}

func (u WeightUnit) String() string {
	return string(u)
}
