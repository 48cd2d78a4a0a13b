package entities

// Label holds the two locale variants every activity carries.
type Label struct {
	EN string `json:"en"`
	TR string `json:"tr"`
}

// In returns the variant for lang, english for anything unknown.
func (l Label) In(lang Language) string {
	if lang == LangTR {
		return l.TR
	}
	return l.EN
}

type ActivityDefinition struct {
	ID    string `json:"id"`
	Label Label  `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Type ids with special handling on the entry form.
const (
	TypeIrrigation    = "irrigation"
	TypeFertilization = "fertilization"
	TypeSpraying      = "spraying"
	TypeRipping       = "ripping"
	TypeHarvest       = "harvest"
	TypeDiesel        = "diesel"
	TypeFuel          = "fuel"
	TypeTractor       = "tractor"
	TypeTractorWork   = "tractor_work"
)

// IsTillageType reports whether implement/direction fields apply to the type.
func IsTillageType(t string) bool {
	return t == TypeRipping || t == TypeTractorWork
}

func IsFuelType(t string) bool {
	return t == TypeDiesel || t == TypeFuel
}

func IsMachineWorkType(t string) bool {
	switch t {
	case TypeRipping, TypeTractor, TypeTractorWork, TypeSpraying, TypeHarvest:
		return true
	}
	return false
}
