package catalog

import "orchardlog/entities"

// FallbackColor is used for log types with no matching definition.
const FallbackColor = "#9ca3af"

// Display is what a presentation layer needs to draw a log's type.
type Display struct {
	Label string
	Color string
	Icon  entities.Icon
	Known bool
}

// Find returns the first definition with id. Duplicate ids can appear after an
// import; the first one wins.
func Find(defs []entities.ActivityDefinition, id string) (entities.ActivityDefinition, bool) {
	for _, d := range defs {
		if d.ID == id {
			return d, true
		}
	}
	return entities.ActivityDefinition{}, false
}

// Resolve never fails: a dangling type renders as its raw id in gray with the default icon.
func Resolve(defs []entities.ActivityDefinition, typeID string, lang entities.Language) Display {
	d, ok := Find(defs, typeID)
	if !ok {
		return Display{Label: typeID, Color: FallbackColor, Icon: entities.IconStar}
	}
	return Display{Label: d.Label.In(lang), Color: d.Color, Icon: entities.ParseIcon(d.Icon), Known: true}
}

// LabelFor is the localized label of typeID, or typeID itself when unresolved.
func LabelFor(defs []entities.ActivityDefinition, typeID string, lang entities.Language) string {
	return Resolve(defs, typeID, lang).Label
}
