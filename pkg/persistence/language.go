package persistence

import (
	"context"
	"log/slog"

	"orchardlog/entities"
	"orchardlog/pkg/kv/repository"
)

// LanguageSlot stores the display language code as a bare string.
type LanguageSlot struct {
	repo repository.KVRepository
	def  entities.Language
}

func NewLanguageSlot(repo repository.KVRepository, def entities.Language) *LanguageSlot {
	return &LanguageSlot{repo: repo, def: def}
}

func (s *LanguageSlot) Load(ctx context.Context) entities.Language {
	raw, ok, err := s.repo.Get(ctx, KeyLanguage)
	if err != nil {
		slog.Warn("storage read failed, using default language", "error", err)
		return s.def
	}
	if !ok {
		return s.def
	}
	lang, valid := entities.ParseLanguage(string(raw))
	if !valid {
		return s.def
	}
	return lang
}

func (s *LanguageSlot) Save(ctx context.Context, lang entities.Language) error {
	return s.repo.Put(ctx, KeyLanguage, []byte(lang))
}
