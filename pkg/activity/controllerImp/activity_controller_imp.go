package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"orchardlog/pkg/activity/controller"
	"orchardlog/pkg/activity/service"
)

type ActivityCtrl struct{ s service.ActivityService }

func New(s service.ActivityService) controller.ActivityController { return &ActivityCtrl{s: s} }

func (h *ActivityCtrl) Register(e *echo.Echo) {
	e.GET("/activities", h.List)
	e.POST("/activities", h.Create)
	e.DELETE("/activities/:id", h.Delete)
}

func (h *ActivityCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.s.List())
}

type createReq struct {
	EN string `json:"en"`
	TR string `json:"tr"`
}

func (h *ActivityCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	def, _, err := h.s.Create(c.Request().Context(), req.EN, req.TR)
	if errors.Is(err, service.ErrLabelsRequired) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, def)
}

// Delete does not touch logs that reference the id.
func (h *ActivityCtrl) Delete(c echo.Context) error {
	return c.JSON(http.StatusOK, h.s.Delete(c.Request().Context(), c.Param("id")))
}
