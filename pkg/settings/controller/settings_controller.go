package controller

import "github.com/labstack/echo/v4"

type SettingsController interface {
	Register(e *echo.Echo)
	GetLanguage(c echo.Context) error
	PutLanguage(c echo.Context) error
}
