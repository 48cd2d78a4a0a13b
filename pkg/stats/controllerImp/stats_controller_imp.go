package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	asvc "orchardlog/pkg/activity/service"
	lsvc "orchardlog/pkg/logbook/service"
	"orchardlog/pkg/settings"
	"orchardlog/pkg/stats"
	"orchardlog/pkg/stats/controller"
)

type StatsCtrl struct {
	logs  lsvc.LogService
	defs  asvc.ActivityService
	prefs *settings.Preferences
}

func New(logs lsvc.LogService, defs asvc.ActivityService, prefs *settings.Preferences) controller.StatsController {
	return &StatsCtrl{logs: logs, defs: defs, prefs: prefs}
}

func (h *StatsCtrl) Register(e *echo.Echo) {
	e.GET("/stats", h.Get)
}

// Get returns the summary and chart for the current selectors.
func (h *StatsCtrl) Get(c echo.Context) error {
	mode, err := stats.ParseMode(c.QueryParam("mode"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	lang := h.prefs.FromRequest(c)
	filtered := stats.Apply(h.logs.List(), stats.FilterFrom(c.QueryParam("block"), c.QueryParam("type")))
	return c.JSON(http.StatusOK, echo.Map{
		"mode":    mode,
		"summary": stats.Summarize(filtered, lang),
		"chart":   stats.Chart(filtered, h.defs.List(), lang, mode),
	})
}
