package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"orchardlog/pkg/block/controller"
	"orchardlog/pkg/block/service"
	lsvc "orchardlog/pkg/logbook/service"
	"orchardlog/pkg/stats"
)

type BlockCtrl struct {
	s    service.BlockService
	logs lsvc.LogService
}

func New(s service.BlockService, logs lsvc.LogService) controller.BlockController { return &BlockCtrl{s: s, logs: logs} }

func (h *BlockCtrl) Register(e *echo.Echo) {
	e.GET("/blocks", h.List)
	e.POST("/blocks", h.Create)
	e.GET("/blocks/options", h.Options)
	e.DELETE("/blocks/:id", h.Delete)
}

func (h *BlockCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.s.List())
}

type createReq struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

func (h *BlockCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	b, _, err := h.s.CreateBlock(c.Request().Context(), req.Name, req.Size)
	if errors.Is(err, service.ErrNameRequired) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, b)
}

// Options lists every block name a log can be filtered by.
func (h *BlockCtrl) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, stats.BlockOptions(h.s.List(), h.logs.List()))
}

func (h *BlockCtrl) Delete(c echo.Context) error {
	return c.JSON(http.StatusOK, h.s.Delete(c.Request().Context(), c.Param("id")))
}
