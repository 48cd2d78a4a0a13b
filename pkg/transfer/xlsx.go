package transfer

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"orchardlog/entities"
	"orchardlog/pkg/catalog"
	"orchardlog/pkg/locale"
)

const (
	logsSheet    = "Logs"
	summarySheet = "Summary"
)

// WriteXLSX writes the CSV columns to a "Logs" sheet with typed numeric cells,
// plus a "Summary" sheet with count and cost per activity type.
func WriteXLSX(w io.Writer, logs []entities.LogRecord, defs []entities.ActivityDefinition, lang entities.Language) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", logsSheet); err != nil {
		return fmt.Errorf("xlsx rename sheet: %w", err)
	}
	if err := setRow(f, logsSheet, 1, toAny(locale.CSVHeaders(lang))); err != nil {
		return err
	}
	for i, r := range logs {
		row := []any{
			r.Date,
			catalog.LabelFor(defs, r.Type, lang),
			r.BlockID,
			r.Details,
			numberCell(r.Quantity),
			r.Unit,
			numberCell(r.Cost),
			r.Notes,
		}
		if err := setRow(f, logsSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("xlsx new sheet: %w", err)
	}
	if err := writeSummary(f, logs, defs, lang); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, logs []entities.LogRecord, defs []entities.ActivityDefinition, lang entities.Language) error {
	type group struct {
		count int
		cost  float64
	}
	groups := map[string]*group{}
	var types []string
	for _, r := range logs {
		g, ok := groups[r.Type]
		if !ok {
			g = &group{}
			groups[r.Type] = g
			types = append(types, r.Type)
		}
		g.count++
		g.cost += r.CostOrZero()
	}
	sort.Strings(types)

	header := []any{"Activity", "Count", "Cost"}
	if lang == entities.LangTR {
		header = []any{"Faaliyet", "Adet", "Maliyet"}
	}
	if err := setRow(f, summarySheet, 1, header); err != nil {
		return err
	}
	for i, t := range types {
		g := groups[t]
		if err := setRow(f, summarySheet, i+2, []any{catalog.LabelFor(defs, t, lang), g.count, g.cost}); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx %s row %d: %w", sheet, row, err)
	}
	return nil
}

// numberCell leaves absent or zero amounts blank, as the CSV export does.
func numberCell(v *float64) any {
	if v == nil || *v == 0 {
		return nil
	}
	return *v
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
