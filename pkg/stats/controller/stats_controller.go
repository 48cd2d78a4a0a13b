package controller

import "github.com/labstack/echo/v4"

type StatsController interface {
	Register(e *echo.Echo)
	Get(c echo.Context) error
}
