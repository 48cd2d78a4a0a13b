package season

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// LoadFile reads a stage table from a .csv or .xlsx file (first sheet).
// Required columns are Stage and Months; Season and Guidance are optional.
// Months accepts "11,12,1,2", "11-2" or "Nov-Feb".
func LoadFile(path string) (*Calendar, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func parseRows(rows [][]string) (*Calendar, error) {
	if len(rows) == 0 {
		return nil, errors.New("season rules: empty table")
	}
	head := rows[0]
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cStage := findAny("Stage", "phase", "key")
	cMonths := findAny("Months", "month", "month_range")
	cSeason := findAny("Season", "name")
	cGuide := findAny("Guidance", "notes", "note", "tips")
	if cStage == -1 || cMonths == -1 {
		return nil, fmt.Errorf("season rules missing required columns. Found headers: %v\nNeed at least: Stage, Months", head)
	}

	var stages []Stage
	for n, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		key := get(cStage)
		if key == "" {
			continue
		}
		months, err := ParseMonths(get(cMonths))
		if err != nil {
			return nil, fmt.Errorf("season rules row %d: %w", n+2, err)
		}
		season := get(cSeason)
		if season == "" {
			season = key
		}
		stages = append(stages, Stage{Key: key, Season: season, Months: months, Guidance: get(cGuide)})
	}
	return NewCalendar(stages)
}

// ParseMonths expands a list or a wrapping range into months in order.
func ParseMonths(s string) ([]time.Month, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("no months")
	}
	if strings.Contains(s, ",") {
		var out []time.Month
		for _, part := range strings.Split(s, ",") {
			m, err := parseMonth(part)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		}
		return out, nil
	}
	if from, to, ok := strings.Cut(s, "-"); ok {
		a, err := parseMonth(from)
		if err != nil {
			return nil, err
		}
		b, err := parseMonth(to)
		if err != nil {
			return nil, err
		}
		var out []time.Month
		for m := a; ; m = m%12 + 1 {
			out = append(out, m)
			if m == b {
				break
			}
		}
		return out, nil
	}
	m, err := parseMonth(s)
	if err != nil {
		return nil, err
	}
	return []time.Month{m}, nil
}

func parseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %d out of range", n)
		}
		return time.Month(n), nil
	}
	if len(s) >= 3 {
		for m := time.January; m <= time.December; m++ {
			if strings.EqualFold(m.String()[:3], s[:3]) {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown month %q", s)
}
