package transfer

import (
	"context"
	"io"
	"log/slog"

	"orchardlog/entities"
)

// Replacer is the bulk-overwrite half of a collection store.
type Replacer[T any] interface {
	ReplaceAll(ctx context.Context, items []T) []T
}

type Importer struct {
	Logs         Replacer[entities.LogRecord]
	ActivityDefs Replacer[entities.ActivityDefinition]
	Blocks       Replacer[entities.BlockDefinition]
}

// ImportResult reports which collections were replaced and their new sizes.
type ImportResult struct {
	Replaced     []string `json:"replaced"`
	Logs         int      `json:"logs"`
	ActivityDefs int      `json:"activityDefs"`
	Blocks       int      `json:"blocks"`
}

// Import parses r and replaces each collection the backup carried. Collections
// the backup lacks keep their state. The stores write independently.
func (im *Importer) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	var res ImportResult
	p, err := ParseBackup(r)
	if err != nil {
		return res, err
	}
	if p.HasLogs {
		res.Logs = len(im.Logs.ReplaceAll(ctx, p.Logs))
		res.Replaced = append(res.Replaced, "logs")
	}
	if p.HasActivityDefs {
		res.ActivityDefs = len(im.ActivityDefs.ReplaceAll(ctx, p.ActivityDefs))
		res.Replaced = append(res.Replaced, "activityDefs")
	}
	if p.HasBlocks {
		res.Blocks = len(im.Blocks.ReplaceAll(ctx, p.Blocks))
		res.Replaced = append(res.Replaced, "blocks")
	}
	slog.Info("backup imported", "replaced", res.Replaced, "logs", res.Logs, "activityDefs", res.ActivityDefs, "blocks", res.Blocks)
	return res, nil
}
