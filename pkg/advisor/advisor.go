// Package advisor turns a log snapshot into a prompt for the text-generation
// collaborator and always hands back displayable text.
package advisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"orchardlog/entities"
	"orchardlog/pkg/ai"
	"orchardlog/pkg/locale"
	"orchardlog/pkg/season"
)

type Service struct {
	client ai.Client
	cal    *season.Calendar
	now    func() time.Time
}

// New falls back to the built-in season calendar when cal is nil.
func New(client ai.Client, cal *season.Calendar) *Service {
	if cal == nil {
		cal = season.Default()
	}
	return &Service{client: client, cal: cal, now: time.Now}
}

// Answer is advisory text plus the id its request was logged under.
type Answer struct {
	RequestID string
	Text      string
}

// GetInsights summarizes the 50 most recently created records. It never fails:
// an empty answer or a collaborator error becomes a localized fallback.
func (s *Service) GetInsights(ctx context.Context, logs []entities.LogRecord, lang entities.Language) Answer {
	recent := Recent(logs, RecentLimit)
	prompt := insightsPrompt(recent, s.now(), lang, s.cal)
	return s.ask(ctx, "insights", prompt, len(recent), lang, locale.InsightsEmpty, locale.InsightsUnavailable)
}

// Chat answers question against the whole given collection.
func (s *Service) Chat(ctx context.Context, logs []entities.LogRecord, question string, lang entities.Language) Answer {
	snapshot := make([]entities.LogRecord, len(logs))
	copy(snapshot, logs)
	prompt := chatPrompt(snapshot, question, s.now(), lang, s.cal)
	return s.ask(ctx, "chat", prompt, len(snapshot), lang, locale.ChatEmpty, locale.ChatUnavailable)
}

func (s *Service) ask(ctx context.Context, kind, prompt string, nLogs int, lang entities.Language, empty, unavailable locale.Fallback) Answer {
	reqID := uuid.NewString()
	started := time.Now()
	text, err := s.client.Generate(ctx, prompt)
	if err != nil {
		slog.Error("advisor request failed", "request_id", reqID, "kind", kind, "logs", nLogs, "error", err)
		return Answer{RequestID: reqID, Text: locale.Text(unavailable, lang)}
	}
	if text == "" {
		slog.Warn("advisor returned no text", "request_id", reqID, "kind", kind)
		return Answer{RequestID: reqID, Text: locale.Text(empty, lang)}
	}
	slog.Info("advisor answered", "request_id", reqID, "kind", kind, "logs", nLogs, "lang", lang, "took", time.Since(started))
	return Answer{RequestID: reqID, Text: text}
}
