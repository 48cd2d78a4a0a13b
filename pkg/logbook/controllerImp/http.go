package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"orchardlog/entities"
	"orchardlog/pkg/locale"
	"orchardlog/pkg/logbook/controller"
	lsvc "orchardlog/pkg/logbook/service"
	"orchardlog/pkg/settings"
	"orchardlog/pkg/stats"
)

type httpCtrl struct {
	s     lsvc.LogService
	prefs *settings.Preferences
}

func New(s lsvc.LogService, prefs *settings.Preferences) controller.LogController {
	return &httpCtrl{s: s, prefs: prefs}
}

func (h *httpCtrl) Register(e *echo.Echo) {
	e.GET("/logs", h.List)
	e.POST("/logs", h.Create)
	e.PUT("/logs/:id", h.Update)
	e.DELETE("/logs/:id", h.Delete)
}

// List applies the block/type selectors and the display order.
func (h *httpCtrl) List(c echo.Context) error {
	f := stats.FilterFrom(c.QueryParam("block"), c.QueryParam("type"))
	return c.JSON(http.StatusOK, stats.SortForDisplay(stats.Apply(h.s.List(), f)))
}

func (h *httpCtrl) Create(c echo.Context) error {
	var in entities.LogDraft
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if msg := validate(in.Date, in.Type, in.BlockID); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if in.Unit == "" {
		in.Unit = locale.DefaultUnit(in.Type, h.prefs.FromRequest(c))
	}
	rec, _ := h.s.AddLog(c.Request().Context(), in)
	return c.JSON(http.StatusCreated, rec)
}

// Update replaces the whole record. A body without createdAt keeps the stored one.
func (h *httpCtrl) Update(c echo.Context) error {
	id := c.Param("id")
	cur, ok := h.s.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var in entities.LogRecord
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if msg := validate(in.Date, in.Type, in.BlockID); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	in.ID = id
	if in.CreatedAt == 0 {
		in.CreatedAt = cur.CreatedAt
	}
	if _, found := h.s.UpdateLog(c.Request().Context(), in); !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	out, _ := h.s.Get(id)
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) Delete(c echo.Context) error {
	h.s.DeleteLog(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func validate(date, typ, block string) string {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "date must be YYYY-MM-DD"
	}
	if typ == "" {
		return "type is required"
	}
	if block == "" {
		return "blockId is required"
	}
	return ""
}
