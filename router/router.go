package router

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"orchardlog/pkg/middleware"
)

// Registrar mounts one feature's routes.
type Registrar interface {
	Register(e *echo.Echo)
}

func New(e *echo.Echo, logger *slog.Logger, ctrls ...Registrar) *echo.Echo {
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(logger))
	for _, c := range ctrls {
		c.Register(e)
	}
	return e
}
