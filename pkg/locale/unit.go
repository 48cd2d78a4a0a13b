package locale

import "orchardlog/entities"

// DefaultUnit is the unit a new entry gets when it names none. Types outside
// the fuel, machine work and fertilization groups have no default.
func DefaultUnit(activityType string, lang entities.Language) string {
	switch {
	case entities.IsFuelType(activityType):
		return entities.Label{EN: "Liters", TR: "Lt"}.In(lang)
	case entities.IsMachineWorkType(activityType):
		return entities.Label{EN: "Hours", TR: "Saat"}.In(lang)
	case activityType == entities.TypeFertilization:
		return "kg"
	}
	return ""
}
