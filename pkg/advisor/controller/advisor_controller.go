package controller

import "github.com/labstack/echo/v4"

type AdvisorController interface {
	Register(e *echo.Echo)
	Insights(c echo.Context) error
	Chat(c echo.Context) error
}
