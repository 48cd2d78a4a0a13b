package serviceImp

import (
	"context"
	"regexp"
	"strings"

	"orchardlog/entities"
	"orchardlog/pkg/activity/service"
	"orchardlog/pkg/collection"
)

// Defaults for user-created activities.
const (
	CustomColor = "#64748b"
	CustomIcon  = string(entities.IconStar)
)

var whitespace = regexp.MustCompile(`\s+`)

type activitySvc struct {
	defs *collection.Collection[entities.ActivityDefinition]
}

func NewActivityService(defs *collection.Collection[entities.ActivityDefinition]) service.ActivityService {
	return &activitySvc{defs: defs}
}

func (s *activitySvc) List() []entities.ActivityDefinition { return s.defs.Snapshot() }

// Add appends without a uniqueness check; lookups resolve to the first match.
func (s *activitySvc) Add(ctx context.Context, def entities.ActivityDefinition) []entities.ActivityDefinition {
	return s.defs.Mutate(ctx, func(cur []entities.ActivityDefinition) ([]entities.ActivityDefinition, bool) {
		return append(cur, def), true
	})
}

func (s *activitySvc) Create(ctx context.Context, en, tr string) (entities.ActivityDefinition, []entities.ActivityDefinition, error) {
	if strings.TrimSpace(en) == "" || strings.TrimSpace(tr) == "" {
		return entities.ActivityDefinition{}, nil, service.ErrLabelsRequired
	}
	def := entities.ActivityDefinition{
		ID:    SlugFor(en),
		Label: entities.Label{EN: en, TR: tr},
		Color: CustomColor,
		Icon:  CustomIcon,
	}
	return def, s.Add(ctx, def), nil
}

// Delete removes every definition with the id. Logs referencing it are left alone.
func (s *activitySvc) Delete(ctx context.Context, id string) []entities.ActivityDefinition {
	return s.defs.Mutate(ctx, func(cur []entities.ActivityDefinition) ([]entities.ActivityDefinition, bool) {
		return collection.RemoveWhere(cur, func(d entities.ActivityDefinition) bool { return d.ID == id })
	})
}

func (s *activitySvc) ReplaceAll(ctx context.Context, defs []entities.ActivityDefinition) []entities.ActivityDefinition {
	return s.defs.ReplaceAll(ctx, defs)
}

// SlugFor lower-cases the english label and turns whitespace runs into underscores.
func SlugFor(en string) string {
	return whitespace.ReplaceAllString(strings.ToLower(en), "_")
}
