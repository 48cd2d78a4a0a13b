package serviceImp

import (
	"context"
	"strings"

	"orchardlog/entities"
	"orchardlog/pkg/block/service"
	"orchardlog/pkg/collection"
)

type blockSvc struct {
	blocks *collection.Collection[entities.BlockDefinition]
}

func NewBlockService(blocks *collection.Collection[entities.BlockDefinition]) service.BlockService {
	return &blockSvc{blocks: blocks}
}

func (s *blockSvc) List() []entities.BlockDefinition { return s.blocks.Snapshot() }

func (s *blockSvc) Add(ctx context.Context, b entities.BlockDefinition) []entities.BlockDefinition {
	return s.blocks.Mutate(ctx, func(cur []entities.BlockDefinition) ([]entities.BlockDefinition, bool) {
		return append(cur, b), true
	})
}

// CreateBlock uses the trimmed name as both id and name.
func (s *blockSvc) CreateBlock(ctx context.Context, name string, size float64) (entities.BlockDefinition, []entities.BlockDefinition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.BlockDefinition{}, nil, service.ErrNameRequired
	}
	b := entities.BlockDefinition{ID: name, Name: name, Size: size}
	return b, s.Add(ctx, b), nil
}

func (s *blockSvc) Delete(ctx context.Context, id string) []entities.BlockDefinition {
	return s.blocks.Mutate(ctx, func(cur []entities.BlockDefinition) ([]entities.BlockDefinition, bool) {
		return collection.RemoveWhere(cur, func(b entities.BlockDefinition) bool { return b.ID == id })
	})
}

func (s *blockSvc) ReplaceAll(ctx context.Context, blocks []entities.BlockDefinition) []entities.BlockDefinition {
	return s.blocks.ReplaceAll(ctx, blocks)
}
