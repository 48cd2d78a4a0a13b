package service

import (
	"context"
	"errors"

	"orchardlog/entities"
)

var ErrNameRequired = errors.New("block name is required")

type BlockService interface {
	List() []entities.BlockDefinition
	Add(ctx context.Context, b entities.BlockDefinition) []entities.BlockDefinition
	CreateBlock(ctx context.Context, name string, size float64) (entities.BlockDefinition, []entities.BlockDefinition, error)
	Delete(ctx context.Context, id string) []entities.BlockDefinition
	ReplaceAll(ctx context.Context, blocks []entities.BlockDefinition) []entities.BlockDefinition
}
