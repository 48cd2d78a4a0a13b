package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orchardlog/entities"
	"orchardlog/pkg/settings"
	"orchardlog/pkg/settings/controller"
)

type SettingsCtrl struct{ prefs *settings.Preferences }

func New(prefs *settings.Preferences) controller.SettingsController { return &SettingsCtrl{prefs: prefs} }

func (h *SettingsCtrl) Register(e *echo.Echo) {
	e.GET("/settings/language", h.GetLanguage)
	e.PUT("/settings/language", h.PutLanguage)
}

func (h *SettingsCtrl) GetLanguage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"language": h.prefs.Language()})
}

func (h *SettingsCtrl) PutLanguage(c echo.Context) error {
	var in struct {
		Language string `json:"language"`
	}
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	lang, ok := entities.ParseLanguage(in.Language)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "language must be en or tr"})
	}
	h.prefs.SetLanguage(c.Request().Context(), lang)
	return c.JSON(http.StatusOK, echo.Map{"language": lang})
}
