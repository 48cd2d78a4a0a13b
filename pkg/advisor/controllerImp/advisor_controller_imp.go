package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"orchardlog/entities"
	"orchardlog/pkg/advisor"
	"orchardlog/pkg/advisor/controller"
	"orchardlog/pkg/locale"
	lsvc "orchardlog/pkg/logbook/service"
	"orchardlog/pkg/settings"
	"orchardlog/pkg/stats"
)

type AdvisorCtrl struct {
	sess  *advisor.Session
	logs  lsvc.LogService
	prefs *settings.Preferences
}

func New(sess *advisor.Session, logs lsvc.LogService, prefs *settings.Preferences) controller.AdvisorController {
	return &AdvisorCtrl{sess: sess, logs: logs, prefs: prefs}
}

func (h *AdvisorCtrl) Register(e *echo.Echo) {
	e.POST("/advisor/insights", h.Insights)
	e.POST("/advisor/chat", h.Chat)
}

// Both endpoints see the logs narrowed by the ?block= and ?type= selectors.
func (h *AdvisorCtrl) filtered(c echo.Context) []entities.LogRecord {
	return stats.Apply(h.logs.List(), stats.FilterFrom(c.QueryParam("block"), c.QueryParam("type")))
}

// Insights never reaches the model for an empty selection.
func (h *AdvisorCtrl) Insights(c echo.Context) error {
	lang := h.prefs.FromRequest(c)
	logs := h.filtered(c)
	if len(logs) == 0 {
		return c.JSON(http.StatusOK, advisor.Reply{Text: locale.Text(locale.NoLogs, lang)})
	}
	return c.JSON(http.StatusOK, h.sess.Insights(c.Request().Context(), logs, lang))
}

func (h *AdvisorCtrl) Chat(c echo.Context) error {
	var in struct {
		Question string `json:"question"`
	}
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if strings.TrimSpace(in.Question) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "question is required"})
	}
	reply := h.sess.Chat(c.Request().Context(), h.filtered(c), in.Question, h.prefs.FromRequest(c))
	return c.JSON(http.StatusOK, reply)
}
