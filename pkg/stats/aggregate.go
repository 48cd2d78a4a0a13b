package stats

import (
	"fmt"
	"sort"

	"orchardlog/entities"
	"orchardlog/pkg/catalog"
	"orchardlog/pkg/locale"
)

type Mode string

const (
	ModeCount Mode = "count"
	ModeCost  Mode = "cost"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeCount:
		return ModeCount, nil
	case ModeCost:
		return ModeCost, nil
	}
	return "", fmt.Errorf("unknown chart mode %q", s)
}

// Aggregate groups by type. Groups whose value is exactly zero are dropped.
func Aggregate(logs []entities.LogRecord, mode Mode) map[string]float64 {
	acc := map[string]float64{}
	for _, r := range logs {
		if mode == ModeCost {
			acc[r.Type] += r.CostOrZero()
		} else {
			acc[r.Type]++
		}
	}
	for k, v := range acc {
		if v == 0 {
			delete(acc, k)
		}
	}
	return acc
}

func TotalCost(logs []entities.LogRecord) float64 {
	var total float64
	for _, r := range logs {
		total += r.CostOrZero()
	}
	return total
}

type ChartEntry struct {
	Type  string        `json:"type"`
	Label string        `json:"label"`
	Color string        `json:"color"`
	Icon  entities.Icon `json:"icon"`
	Value float64       `json:"value"`
}

// Chart joins the aggregate to the definitions, largest value first.
func Chart(logs []entities.LogRecord, defs []entities.ActivityDefinition, lang entities.Language, mode Mode) []ChartEntry {
	agg := Aggregate(logs, mode)
	out := make([]ChartEntry, 0, len(agg))
	for typ, v := range agg {
		d := catalog.Resolve(defs, typ, lang)
		out = append(out, ChartEntry{Type: typ, Label: d.Label, Color: d.Color, Icon: d.Icon, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Type < out[j].Type
	})
	return out
}

type Summary struct {
	Count         int     `json:"count"`
	TotalCost     float64 `json:"totalCost"`
	TotalCostText string  `json:"totalCostText"`
}

func Summarize(logs []entities.LogRecord, lang entities.Language) Summary {
	total := TotalCost(logs)
	return Summary{Count: len(logs), TotalCost: total, TotalCostText: locale.FormatAmount(total, lang)}
}
