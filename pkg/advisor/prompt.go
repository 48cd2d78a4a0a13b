package advisor

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"orchardlog/entities"
	"orchardlog/pkg/locale"
	"orchardlog/pkg/season"
)

// RecentLimit caps how many records an insights request carries.
const RecentLimit = 50

// Recent returns up to n records, newest createdAt first, without touching logs.
func Recent(logs []entities.LogRecord, n int) []entities.LogRecord {
	out := make([]entities.LogRecord, len(logs))
	copy(out, logs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func insightsDirective(lang entities.Language) string {
	if lang == entities.LangTR {
		return "Respond strictly in Turkish language."
	}
	return "Respond in English."
}

func chatDirective(lang entities.Language) string {
	if lang == entities.LangTR {
		return "Respond in Turkish."
	}
	return "Respond in English."
}

func logsJSON(logs []entities.LogRecord) string {
	if logs == nil {
		logs = []entities.LogRecord{}
	}
	b, err := json.Marshal(logs)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func insightsPrompt(recent []entities.LogRecord, now time.Time, lang entities.Language, cal *season.Calendar) string {
	stage := cal.StageFor(now.Month())
	return fmt.Sprintf(`Current Date: %s
Current Month: %d
Current Stage: %s (%s)
Location Context: Northern Hemisphere (Turkey/USA standard Pistachio climate).

You are an expert agronomist specializing in Pistachio orchards.
Analyze the following recent activity logs from the orchard.

Logs:
%s

CRITICAL SEASONAL RULES:
1. **Phenology Awareness**: You must verify the current date against the pistachio growth cycle.
%s
2. **Weather Logic**: Assume typical seasonal weather for the date. Do not suggest spraying if it is typically rainy season unless explicitly for disease control requiring wet conditions.

%s
Provide a brief, 3-bullet point summary of the recent operations and 1 actionable suggestion for the coming week based on standard pistachio farming practices AND the current date.

If the user asks for something agronomically wrong for the season (like foliar feed in December), warn them against it.
Keep the tone professional but encouraging.`,
		locale.FullDate(now, lang), int(now.Month()), stage.Season, stage.Span(),
		logsJSON(recent), cal.PromptRules(), insightsDirective(lang))
}

func chatPrompt(logs []entities.LogRecord, question string, now time.Time, lang entities.Language, cal *season.Calendar) string {
	stage := cal.StageFor(now.Month())
	return fmt.Sprintf(`Current Date: %s
Current Stage: %s (%s)
Role: Expert Pistachio Orchard Manager Assistant.

You have access to the following orchard logs:
%s

User Question: "%s"

STRICT GUIDELINES:
1. **Seasonality**: Always check the "Current Date" before answering.
2. **Avoid Waste**: Do not recommend inputs (fertilizers/water) that the tree cannot use due to its current phenological stage (e.g., no nitrogen flushing during harvest, no foliar feeding during dormancy).
3. **Leaf Drop**: If today is between November and February, assume trees have no leaves.

%s
Answer based strictly on the logs provided and agronomic best practices for the current season.
Format your response nicely using Markdown (bolding key figures, lists where appropriate).`,
		locale.LongDate(now, lang), stage.Season, stage.Span(),
		logsJSON(logs), question, chatDirective(lang))
}
