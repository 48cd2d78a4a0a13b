// Package season maps calendar months to pistachio growth stages. The advisor
// uses it to keep recommendations consistent with what the trees can use.
package season

import (
	"fmt"
	"strings"
	"time"
)

type Stage struct {
	Key      string
	Season   string
	Months   []time.Month
	Guidance string
}

// Span renders the month range, e.g. "Nov-Feb".
func (s Stage) Span() string {
	if len(s.Months) == 0 {
		return ""
	}
	first, last := s.Months[0].String()[:3], s.Months[len(s.Months)-1].String()[:3]
	if first == last {
		return first
	}
	return first + "-" + last
}

type Calendar struct {
	stages  []Stage
	byMonth map[time.Month]int
}

// Stage keys of the built-in calendar.
const (
	Dormant = "dormant"
	Bloom   = "bloom"
	NutFill = "nut_fill"
	Harvest = "harvest"
)

func Default() *Calendar {
	c, _ := NewCalendar([]Stage{
		{Key: Dormant, Season: "Winter", Months: []time.Month{time.November, time.December, time.January, time.February},
			Guidance: "Trees are dormant. Leaves are falling or gone. NEVER recommend foliar (leaf) fertilizers during this time as there are no leaves to absorb it. Focus on pruning, soil sampling, or winter oil sprays."},
		{Key: Bloom, Season: "Spring", Months: []time.Month{time.March, time.April, time.May},
			Guidance: "Bud break, flowering, pollination."},
		{Key: NutFill, Season: "Summer", Months: []time.Month{time.June, time.July, time.August},
			Guidance: "Nut fill. Irrigation is critical."},
		{Key: Harvest, Season: "Autumn", Months: []time.Month{time.September, time.October},
			Guidance: "Harvest and post-harvest irrigation."},
	})
	return c
}

// NewCalendar requires every month to belong to exactly one stage.
func NewCalendar(stages []Stage) (*Calendar, error) {
	c := &Calendar{stages: stages, byMonth: map[time.Month]int{}}
	for i, s := range stages {
		for _, m := range s.Months {
			if m < time.January || m > time.December {
				return nil, fmt.Errorf("stage %q: invalid month %d", s.Key, m)
			}
			if j, dup := c.byMonth[m]; dup {
				return nil, fmt.Errorf("month %s in both %q and %q", m, stages[j].Key, s.Key)
			}
			c.byMonth[m] = i
		}
	}
	if len(c.byMonth) != 12 {
		return nil, fmt.Errorf("calendar covers %d of 12 months", len(c.byMonth))
	}
	return c, nil
}

func (c *Calendar) StageFor(m time.Month) Stage {
	return c.stages[c.byMonth[m]]
}

func (c *Calendar) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	copy(out, c.stages)
	return out
}

// PromptRules lists every stage as a markdown bullet.
func (c *Calendar) PromptRules() string {
	var sb strings.Builder
	for _, s := range c.stages {
		fmt.Fprintf(&sb, "- **%s (%s)**: %s\n", s.Season, s.Span(), s.Guidance)
	}
	return strings.TrimRight(sb.String(), "\n")
}
