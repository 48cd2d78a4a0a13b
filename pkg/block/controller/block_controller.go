package controller

import "github.com/labstack/echo/v4"

type BlockController interface {
	Register(e *echo.Echo)
	List(c echo.Context) error
	Create(c echo.Context) error
	Options(c echo.Context) error
	Delete(c echo.Context) error
}
