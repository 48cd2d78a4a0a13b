package entities

// Icon is the symbolic glyph name stored on an activity definition.
// Glyph lookup happens in the presentation layer; the core only needs
// the closed set and the fallback.
type Icon string

const (
	IconDroplets Icon = "Droplets"
	IconSprout   Icon = "Sprout"
	IconBug      Icon = "Bug"
	IconTractor  Icon = "Tractor"
	IconScissors Icon = "Scissors"
	IconApple    Icon = "Apple"
	IconSearch   Icon = "Search"
	IconWrench   Icon = "Wrench"
	IconLeaf     Icon = "Leaf"
	IconUsers    Icon = "Users"
	IconFuel     Icon = "Fuel"
	IconGauge    Icon = "Gauge"
	IconStar     Icon = "Star" // unknown / custom
)

var knownIcons = map[Icon]struct{}{
	IconDroplets: {}, IconSprout: {}, IconBug: {}, IconTractor: {},
	IconScissors: {}, IconApple: {}, IconSearch: {}, IconWrench: {},
	IconLeaf: {}, IconUsers: {}, IconFuel: {}, IconGauge: {}, IconStar: {},
}

// ParseIcon never fails: unknown names resolve to IconStar.
func ParseIcon(s string) Icon {
	if _, ok := knownIcons[Icon(s)]; ok {
		return Icon(s)
	}
	return IconStar
}
