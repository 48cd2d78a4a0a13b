package controller

import "github.com/labstack/echo/v4"

type ActivityController interface {
	Register(e *echo.Echo)
	List(c echo.Context) error
	Create(c echo.Context) error
	Delete(c echo.Context) error
}
