package controller

import "github.com/labstack/echo/v4"

type HealthController interface {
	Register(e *echo.Echo)
	Health(c echo.Context) error
}
