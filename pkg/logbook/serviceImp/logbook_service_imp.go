package serviceImp

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"orchardlog/entities"
	"orchardlog/pkg/collection"
	svc "orchardlog/pkg/logbook/service"
)

type service struct {
	logs  *collection.Collection[entities.LogRecord]
	clock *Clock
}

func New(logs *collection.Collection[entities.LogRecord], clock *Clock) svc.LogService {
	if clock == nil {
		clock = NewClock(nil)
	}
	return &service{logs: logs, clock: clock}
}

func (s *service) List() []entities.LogRecord { return s.logs.Snapshot() }

func (s *service) Get(id string) (entities.LogRecord, bool) {
	for _, r := range s.logs.Snapshot() {
		if r.ID == id {
			return r, true
		}
	}
	return entities.LogRecord{}, false
}

// AddLog applies the entry rules, stamps id/createdAt from the same instant and prepends.
func (s *service) AddLog(ctx context.Context, d entities.LogDraft) (entities.LogRecord, []entities.LogRecord) {
	ms := s.clock.Next()
	rec := Normalize(d).Record(strconv.FormatInt(ms, 10), ms)
	all := s.logs.Mutate(ctx, func(cur []entities.LogRecord) ([]entities.LogRecord, bool) {
		return collection.Prepend(cur, rec), true
	})
	return rec, all
}

// UpdateLog replaces the record with the same id wholesale.
func (s *service) UpdateLog(ctx context.Context, r entities.LogRecord) ([]entities.LogRecord, bool) {
	r.BlockID = strings.ToUpper(r.BlockID)
	found := false
	all := s.logs.Mutate(ctx, func(cur []entities.LogRecord) ([]entities.LogRecord, bool) {
		for i := range cur {
			if cur[i].ID == r.ID {
				cur[i] = r
				found = true
				return cur, true
			}
		}
		return cur, false
	})
	if !found {
		slog.Warn("update log: no record with id", "id", r.ID)
	}
	return all, found
}

func (s *service) DeleteLog(ctx context.Context, id string) []entities.LogRecord {
	return s.logs.Mutate(ctx, func(cur []entities.LogRecord) ([]entities.LogRecord, bool) {
		return collection.RemoveWhere(cur, func(r entities.LogRecord) bool { return r.ID == id })
	})
}

func (s *service) ReplaceAll(ctx context.Context, logs []entities.LogRecord) []entities.LogRecord {
	return s.logs.ReplaceAll(ctx, logs)
}

// Normalize applies the entry form rules: block names are upper-cased, clock
// times are kept for irrigation only and tillage attributes for tillage types only.
func Normalize(d entities.LogDraft) entities.LogDraft {
	d.BlockID = strings.ToUpper(d.BlockID)
	if d.Type != entities.TypeIrrigation {
		d.StartTime, d.EndTime = "", ""
	}
	if !entities.IsTillageType(d.Type) {
		d.TillageImplement, d.TillageDirection = "", ""
	}
	return d
}
