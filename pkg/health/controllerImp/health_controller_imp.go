package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"orchardlog/pkg/health/controller"
)

var appStart = time.Now()

// Counter reports the size of one in-memory collection.
type Counter interface{ Len() int }

type HealthCtrl struct {
	db          *gorm.DB
	provider    string
	collections map[string]Counter
}

func NewHealthCtrl(db *gorm.DB, provider string, collections map[string]Counter) controller.HealthController {
	return &HealthCtrl{db: db, provider: provider, collections: collections}
}

func (h *HealthCtrl) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}
	storage := sub{OK: true}
	if h.db == nil {
		storage = sub{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		storage = sub{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		storage = sub{Err: "ping: " + err.Error()}
	}

	counts := make(map[string]int, len(h.collections))
	for name, col := range h.collections {
		counts[name] = col.Len()
	}

	status := http.StatusOK
	if !storage.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":      map[string]any{"ok": storage.OK},
		"uptime_sec":  int(time.Since(appStart).Seconds()),
		"checks":      map[string]any{"storage": storage},
		"collections": counts,
		"advisor":     h.provider,
		"time":        time.Now().Format(time.RFC3339),
	})
}
