package service

import (
	"context"

	"orchardlog/entities"
)

// LogService owns the log collection. Every mutation returns the new state.
type LogService interface {
	List() []entities.LogRecord
	Get(id string) (entities.LogRecord, bool)
	AddLog(ctx context.Context, d entities.LogDraft) (entities.LogRecord, []entities.LogRecord)
	UpdateLog(ctx context.Context, r entities.LogRecord) ([]entities.LogRecord, bool)
	DeleteLog(ctx context.Context, id string) []entities.LogRecord
	ReplaceAll(ctx context.Context, logs []entities.LogRecord) []entities.LogRecord
}
