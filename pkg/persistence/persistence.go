// Package persistence mirrors each in-memory collection to one key of the
// durable KV store. Loading never fails: anything unreadable resolves to the
// slot's fallback.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"orchardlog/entities"
	"orchardlog/pkg/catalog"
	"orchardlog/pkg/kv/repository"
)

// Storage keys. The names predate this service and are kept so existing data loads.
const (
	KeyLogs       = "pistachio_logs"
	KeyActivities = "pistachio_activities"
	KeyBlocks     = "pistachio_blocks"
	KeyLanguage   = "pistachio_lang"
)

// Slot is the load/save pair for one collection.
type Slot[T any] struct {
	repo     repository.KVRepository
	key      string
	fallback func() []T
	// afterLoad runs on successfully parsed data only
	afterLoad func([]T) []T
}

func NewSlot[T any](repo repository.KVRepository, key string, fallback func() []T, afterLoad func([]T) []T) *Slot[T] {
	return &Slot[T]{repo: repo, key: key, fallback: fallback, afterLoad: afterLoad}
}

func (s *Slot[T]) Key() string { return s.key }

// Load returns the stored collection or the fallback.
func (s *Slot[T]) Load(ctx context.Context) []T {
	raw, ok, err := s.repo.Get(ctx, s.key)
	if err != nil {
		slog.Warn("storage read failed, using fallback", "key", s.key, "error", err)
		return s.fallback()
	}
	if !ok {
		slog.Debug("storage key missing, using fallback", "key", s.key)
		return s.fallback()
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.Warn("stored value malformed, using fallback", "key", s.key, "error", err)
		return s.fallback()
	}
	if out == nil {
		// a stored JSON null reads as "no data"
		return s.fallback()
	}
	if s.afterLoad != nil {
		out = s.afterLoad(out)
	}
	return out
}

// Save overwrites the key with the whole collection.
func (s *Slot[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	return s.repo.Put(ctx, s.key, b)
}

// NewLogSlot falls back to the demo seed logs when seed is true, to an empty list otherwise.
func NewLogSlot(repo repository.KVRepository, seed bool) *Slot[entities.LogRecord] {
	fb := catalog.SeedLogs
	if !seed {
		fb = func() []entities.LogRecord { return []entities.LogRecord{} }
	}
	return NewSlot(repo, KeyLogs, fb, nil)
}

func NewActivitySlot(repo repository.KVRepository) *Slot[entities.ActivityDefinition] {
	return NewSlot(repo, KeyActivities, catalog.DefaultActivities, MigrateActivities)
}

func NewBlockSlot(repo repository.KVRepository) *Slot[entities.BlockDefinition] {
	return NewSlot(repo, KeyBlocks, func() []entities.BlockDefinition { return []entities.BlockDefinition{} }, nil)
}
