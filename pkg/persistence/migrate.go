package persistence

import (
	"log/slog"

	"orchardlog/entities"
	"orchardlog/pkg/catalog"
)

// MigrateActivities appends every must-exist built-in missing from saved.
// It only ever adds: user entries, including deletions of other built-ins, are kept as they are.
// An empty saved list is "no data" and becomes the full built-in set.
func MigrateActivities(saved []entities.ActivityDefinition) []entities.ActivityDefinition {
	if len(saved) == 0 {
		return catalog.DefaultActivities()
	}
	out := append([]entities.ActivityDefinition(nil), saved...)
	for _, id := range catalog.MustExistIDs {
		if _, ok := catalog.Find(out, id); ok {
			continue
		}
		def, _ := catalog.DefaultActivity(id)
		out = append(out, def)
		slog.Info("activity definitions migrated", "added", id)
	}
	return out
}
