package settings

import (
	"context"
	"log/slog"
	"sync"

	"github.com/labstack/echo/v4"

	"orchardlog/entities"
	"orchardlog/pkg/persistence"
)

// Preferences caches the display language and writes changes through.
type Preferences struct {
	mu   sync.RWMutex
	lang entities.Language
	slot *persistence.LanguageSlot
}

func Open(ctx context.Context, slot *persistence.LanguageSlot) *Preferences {
	return &Preferences{lang: slot.Load(ctx), slot: slot}
}

func (p *Preferences) Language() entities.Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lang
}

// SetLanguage keeps the new value in memory even if the write fails.
func (p *Preferences) SetLanguage(ctx context.Context, lang entities.Language) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lang = lang
	if err := p.slot.Save(ctx, lang); err != nil {
		slog.Error("persist language failed", "lang", lang, "error", err)
	}
}

// FromRequest honours a valid ?lang= override, else the stored language.
func (p *Preferences) FromRequest(c echo.Context) entities.Language {
	if l, ok := entities.ParseLanguage(c.QueryParam("lang")); ok {
		return l
	}
	return p.Language()
}
