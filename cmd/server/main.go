package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"orchardlog/config"
	"orchardlog/database"
	"orchardlog/entities"
	"orchardlog/router"

	"orchardlog/pkg/collection"
	kvRepoImp "orchardlog/pkg/kv/repositoryImp"
	"orchardlog/pkg/persistence"

	// Stores
	actCtrlImp "orchardlog/pkg/activity/controllerImp"
	actSvcImp "orchardlog/pkg/activity/serviceImp"
	blockCtrlImp "orchardlog/pkg/block/controllerImp"
	blockSvcImp "orchardlog/pkg/block/serviceImp"
	logCtrlImp "orchardlog/pkg/logbook/controllerImp"
	logSvcImp "orchardlog/pkg/logbook/serviceImp"

	// Views, transfer, settings
	"orchardlog/pkg/inbox"
	"orchardlog/pkg/settings"
	settingsCtrlImp "orchardlog/pkg/settings/controllerImp"
	statsCtrlImp "orchardlog/pkg/stats/controllerImp"
	"orchardlog/pkg/transfer"
	transferCtrlImp "orchardlog/pkg/transfer/controllerImp"

	// Advisory
	"orchardlog/pkg/advisor"
	advisorCtrlImp "orchardlog/pkg/advisor/controllerImp"
	"orchardlog/pkg/ai"
	"orchardlog/pkg/season"

	// Health
	healthCtrlImp "orchardlog/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logging
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	slog.Info("[cfg] loaded", "config", cfg)
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		slog.Warn("[cfg] unknown timezone, using system zone", "tz", cfg.Timezone, "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2) DB (sqlite) + kv table
	db := database.OpenSQLite(cfg.DBPath)
	kv := kvRepoImp.NewSQLite(db)

	// 3) Collections, loaded once
	logs := collection.Open[entities.LogRecord](ctx, persistence.NewLogSlot(kv, cfg.SeedDemoData))
	defs := collection.Open[entities.ActivityDefinition](ctx, persistence.NewActivitySlot(kv))
	blocks := collection.Open[entities.BlockDefinition](ctx, persistence.NewBlockSlot(kv))
	prefs := settings.Open(ctx, persistence.NewLanguageSlot(kv, cfg.DefaultLanguage))

	logSvc := logSvcImp.New(logs, nil)
	actSvc := actSvcImp.NewActivityService(defs)
	blockSvc := blockSvcImp.NewBlockService(blocks)
	importer := &transfer.Importer{Logs: logSvc, ActivityDefs: actSvc, Blocks: blockSvc}

	// 4) Season rules (built-in unless a table is configured)
	cal := season.Default()
	if cfg.SeasonRulesFile != "" {
		if c, err := season.LoadFile(cfg.SeasonRulesFile); err != nil {
			slog.Warn("season rules not loaded, using built-in calendar", "file", cfg.SeasonRulesFile, "error", err)
		} else {
			cal = c
		}
	}

	// 5) LLM (mock fallback)
	llm := newLLM(ctx, cfg)
	sess := advisor.NewSession(advisor.New(llm, cal))

	// 6) Import inbox
	if cfg.ImportInboxDir != "" {
		w := inbox.New(cfg.ImportInboxDir, importer)
		go func() {
			if err := w.Run(ctx); err != nil {
				slog.Error("import inbox stopped", "error", err)
			}
		}()
	}

	// 7) Router
	e := router.New(echo.New(), logger,
		healthCtrlImp.NewHealthCtrl(db, cfg.LLMProvider, map[string]healthCtrlImp.Counter{
			"logs": logs, "activityDefs": defs, "blocks": blocks,
		}),
		logCtrlImp.New(logSvc, prefs),
		actCtrlImp.New(actSvc),
		blockCtrlImp.New(blockSvc, logSvc),
		statsCtrlImp.New(logSvc, actSvc, prefs),
		transferCtrlImp.New(logSvc, actSvc, blockSvc, importer, prefs),
		advisorCtrlImp.New(sess, logSvc, prefs),
		settingsCtrlImp.New(prefs),
	)

	// 8) Start
	go func() {
		slog.Info("listening", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}

func newLLM(ctx context.Context, cfg config.AppConfig) ai.Client {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		key := cfg.GeminiAPIKey
		if key == "" {
			key = cfg.LLMAPIKey
		}
		g, err := ai.NewGemini(ctx, key, cfg.LLMModel)
		if err != nil {
			slog.Warn("gemini unavailable, using mock advisor", "error", err)
			return ai.NewMock()
		}
		return g
	case config.ProviderOpenAI:
		if cfg.LLMEndpoint != "" {
			return ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
		}
		slog.Warn("LLM_ENDPOINT not set, using mock advisor")
	}
	return ai.NewMock()
}
