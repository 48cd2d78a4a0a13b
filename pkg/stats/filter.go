// Package stats derives everything the dashboard shows from a log snapshot.
// Nothing here mutates its input.
package stats

import (
	"sort"

	"orchardlog/entities"
)

// Filter is a conjunction over the set dimensions; nil means "all".
type Filter struct {
	BlockID      *string
	ActivityType *string
}

// FilterFrom builds a Filter from selector values. Only "" means unset: any
// other value, "all" included, is a real block name or type id.
func FilterFrom(block, activityType string) Filter {
	var f Filter
	if block != "" {
		f.BlockID = &block
	}
	if activityType != "" {
		f.ActivityType = &activityType
	}
	return f
}

func (f Filter) Match(r entities.LogRecord) bool {
	if f.BlockID != nil && r.BlockID != *f.BlockID {
		return false
	}
	if f.ActivityType != nil && r.Type != *f.ActivityType {
		return false
	}
	return true
}

// Apply keeps the matching records in their input order.
func Apply(logs []entities.LogRecord, f Filter) []entities.LogRecord {
	out := make([]entities.LogRecord, 0, len(logs))
	for _, r := range logs {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// SortForDisplay orders by date desc, then createdAt desc.
func SortForDisplay(logs []entities.LogRecord) []entities.LogRecord {
	out := make([]entities.LogRecord, len(logs))
	copy(out, logs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// BlockOptions is the block selector's list: every defined block name plus any
// block referenced by a log, de-duplicated and sorted.
func BlockOptions(blocks []entities.BlockDefinition, logs []entities.LogRecord) []string {
	seen := map[string]struct{}{}
	for _, b := range blocks {
		if b.Name != "" {
			seen[b.Name] = struct{}{}
		}
	}
	for _, r := range logs {
		if r.BlockID != "" {
			seen[r.BlockID] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
