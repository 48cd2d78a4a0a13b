// Package transfer moves the three collections in and out of the process:
// the JSON backup document, the spreadsheet exports and the import path.
package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"orchardlog/entities"
)

// ExportBackup assembles a backup document stamped with now.
func ExportBackup(logs []entities.LogRecord, defs []entities.ActivityDefinition, blocks []entities.BlockDefinition, now time.Time) entities.Backup {
	b := entities.Backup{
		Version:      entities.BackupVersion,
		Timestamp:    now.UnixMilli(),
		Logs:         logs,
		ActivityDefs: defs,
		Blocks:       blocks,
	}
	if b.Logs == nil {
		b.Logs = []entities.LogRecord{}
	}
	if b.ActivityDefs == nil {
		b.ActivityDefs = []entities.ActivityDefinition{}
	}
	if b.Blocks == nil {
		b.Blocks = []entities.BlockDefinition{}
	}
	return b
}

// EncodeBackup writes b as two-space indented JSON.
func EncodeBackup(w io.Writer, b entities.Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	return nil
}

// File names carry the UTC calendar date of the export.
func BackupFileName(now time.Time) string {
	return "pistachiolog_backup_" + now.UTC().Format("2006-01-02") + ".json"
}

func CSVFileName(now time.Time) string {
	return "pistachiolog_export_" + now.UTC().Format("2006-01-02") + ".csv"
}

func XLSXFileName(now time.Time) string {
	return "pistachiolog_export_" + now.UTC().Format("2006-01-02") + ".xlsx"
}
