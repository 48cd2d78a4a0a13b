package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orchardlog/entities"
	"orchardlog/pkg/block/service"
	"orchardlog/pkg/collection"
	kv "orchardlog/pkg/kv/repositoryImp"
	"orchardlog/pkg/persistence"
)

func TestBlockService(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewMemory()
	s := NewBlockService(collection.Open[entities.BlockDefinition](ctx, persistence.NewBlockSlot(repo)))
	assert.Empty(t, s.List())

	b, all, err := s.CreateBlock(ctx, "  North Ridge ", 12.5)
	require.NoError(t, err)
	assert.Equal(t, entities.BlockDefinition{ID: "North Ridge", Name: "North Ridge", Size: 12.5}, b)
	assert.Len(t, all, 1)

	_, _, err = s.CreateBlock(ctx, "   ", 1)
	assert.ErrorIs(t, err, service.ErrNameRequired)

	s.Add(ctx, entities.BlockDefinition{ID: "b2", Name: "South", Size: 3})
	assert.Len(t, s.List(), 2)

	all = s.Delete(ctx, "North Ridge")
	assert.Equal(t, []entities.BlockDefinition{{ID: "b2", Name: "South", Size: 3}}, all)

	// a fresh store over the same storage sees the same state
	again := NewBlockService(collection.Open[entities.BlockDefinition](ctx, persistence.NewBlockSlot(repo)))
	assert.Equal(t, all, again.List())

	assert.Empty(t, s.ReplaceAll(ctx, nil))
}
