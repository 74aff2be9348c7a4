package coffee

// Variant is the finishing applied to a served drink.
type Variant int

const (
	Plain Variant = iota
	Sugar
	Blown
	SugarAndBlown
)

// VariantFor maps the order flags onto a variant.
func VariantFor(sugar, blow bool) Variant {
	switch {
	case sugar && blow:
		return SugarAndBlown
	case sugar:
		return Sugar
	case blow:
		return Blown
	default:
		return Plain
	}
}

// HasSugar reports whether the variant is sweetened.
func (v Variant) HasSugar() bool {
	return v == Sugar || v == SugarAndBlown
}

// IsBlown reports whether the variant has been blown on.
func (v Variant) IsBlown() bool {
	return v == Blown || v == SugarAndBlown
}

// Announcement is what the barista says while finishing the drink.
// Plain drinks need no finishing, so the announcement is empty.
func (v Variant) Announcement() string {
	switch v {
	case SugarAndBlown:
		return "Adding sugar and blowing your drink"
	case Sugar:
		return "Adding sugar to your drink"
	case Blown:
		return "Blowing your drink"
	default:
		return ""
	}
}

func (v Variant) String() string {
	switch v {
	case Sugar:
		return "sugar"
	case Blown:
		return "blown"
	case SugarAndBlown:
		return "sugar+blown"
	default:
		return "plain"
	}
}
