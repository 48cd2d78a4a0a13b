package transfer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"orchardlog/entities"
	"orchardlog/pkg/catalog"
	"orchardlog/pkg/locale"
)

const utf8BOM = "\uFEFF"

// WriteCSV emits the spreadsheet export: a BOM, the localized header row, then
// one row per log joined by "\n" with no trailing newline. Text cells are always
// quoted; quantity and cost are bare and left empty when absent or zero.
func WriteCSV(w io.Writer, logs []entities.LogRecord, defs []entities.ActivityDefinition, lang entities.Language) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(utf8BOM)
	bw.WriteString(strings.Join(locale.CSVHeaders(lang), ","))
	for _, r := range logs {
		bw.WriteByte('\n')
		bw.WriteString(strings.Join([]string{
			quote(r.Date),
			quote(catalog.LabelFor(defs, r.Type, lang)),
			quote(r.BlockID),
			quote(r.Details),
			bareNumber(r.Quantity),
			quote(r.Unit),
			bareNumber(r.Cost),
			quote(r.Notes),
		}, ","))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func bareNumber(v *float64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
