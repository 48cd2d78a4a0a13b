// Package catalog holds the built-in activity set, the demo seed logs and the
// rules for resolving a log's type against user-editable definitions.
package catalog

import "orchardlog/entities"

// MustExistIDs are built-ins added after the first release; loading a saved
// activity list appends whichever of them is missing.
var MustExistIDs = []string{entities.TypeDiesel, entities.TypeTractorWork}

// DefaultActivities returns a fresh copy of the built-in set.
func DefaultActivities() []entities.ActivityDefinition {
	return []entities.ActivityDefinition{
		{ID: "irrigation", Label: entities.Label{EN: "Irrigation", TR: "Sulama"}, Color: "#3b82f6", Icon: string(entities.IconDroplets)},
		{ID: "fertilization", Label: entities.Label{EN: "Fertilization", TR: "Gübreleme"}, Color: "#eab308", Icon: string(entities.IconSprout)},
		{ID: "spraying", Label: entities.Label{EN: "Spraying", TR: "İlaçlama"}, Color: "#ef4444", Icon: string(entities.IconBug)},
		{ID: "ripping", Label: entities.Label{EN: "Ripping", TR: "Sürüm/Patlatma"}, Color: "#8b5cf6", Icon: string(entities.IconTractor)},
		{ID: "pruning", Label: entities.Label{EN: "Pruning", TR: "Budama"}, Color: "#22c55e", Icon: string(entities.IconScissors)},
		{ID: "harvest", Label: entities.Label{EN: "Harvest", TR: "Hasat"}, Color: "#f97316", Icon: string(entities.IconApple)},
		{ID: "labor", Label: entities.Label{EN: "Labor / Workers", TR: "İşçilik / İşçiler"}, Color: "#ec4899", Icon: string(entities.IconUsers)},
		{ID: "diesel", Label: entities.Label{EN: "Diesel / Fuel", TR: "Mazot / Yakıt"}, Color: "#be123c", Icon: string(entities.IconFuel)},
		{ID: "tractor_work", Label: entities.Label{EN: "General Tractor Work", TR: "Genel Traktör İşleri"}, Color: "#7c3aed", Icon: string(entities.IconGauge)},
		{ID: "scouting", Label: entities.Label{EN: "Scouting", TR: "Gözlem"}, Color: "#14b8a6", Icon: string(entities.IconSearch)},
		{ID: "maintenance", Label: entities.Label{EN: "Maintenance", TR: "Bakım"}, Color: "#6b7280", Icon: string(entities.IconWrench)},
	}
}

// DefaultActivity returns the built-in definition with id.
func DefaultActivity(id string) (entities.ActivityDefinition, bool) {
	for _, d := range DefaultActivities() {
		if d.ID == id {
			return d, true
		}
	}
	return entities.ActivityDefinition{}, false
}

func f64(v float64) *float64 { return &v }

// SeedLogs is the demo data shown to a first-time user.
func SeedLogs() []entities.LogRecord {
	return []entities.LogRecord{
		{ID: "1", Date: "2023-10-20", Type: "irrigation", BlockID: "BLOCK A", Details: "Drip Line Flush", Quantity: f64(24), Unit: "hours", Notes: "Standard flush post-harvest", CreatedAt: 1697800000000},
		{ID: "2", Date: "2023-10-22", Type: "fertilization", BlockID: "BLOCK B", Details: "Zinc Sulfate", Quantity: f64(50), Unit: "kg", Notes: "Foliar application", Cost: f64(1200), CreatedAt: 1697970000000},
		{ID: "3", Date: "2023-10-25", Type: "pruning", BlockID: "BLOCK A", Details: "Structural Pruning", Notes: "Focusing on center opening", Cost: f64(3500), CreatedAt: 1698230000000},
		{ID: "4", Date: "2023-10-26", Type: "irrigation", BlockID: "BLOCK B", Details: "Regular Irrigation", Quantity: f64(12), Unit: "hours", CreatedAt: 1698310000000},
	}
}
