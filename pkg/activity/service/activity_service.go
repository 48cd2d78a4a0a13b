package service

import (
	"context"
	"errors"

	"orchardlog/entities"
)

var ErrLabelsRequired = errors.New("both english and turkish labels are required")

type ActivityService interface {
	List() []entities.ActivityDefinition
	Add(ctx context.Context, def entities.ActivityDefinition) []entities.ActivityDefinition
	// Create builds a definition from its two labels and adds it.
	Create(ctx context.Context, en, tr string) (entities.ActivityDefinition, []entities.ActivityDefinition, error)
	Delete(ctx context.Context, id string) []entities.ActivityDefinition
	ReplaceAll(ctx context.Context, defs []entities.ActivityDefinition) []entities.ActivityDefinition
}
