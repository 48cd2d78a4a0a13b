package controller

import "github.com/labstack/echo/v4"

// TransferController serves the export downloads and the backup upload.
type TransferController interface {
	Register(e *echo.Echo)
	Backup(c echo.Context) error
	CSV(c echo.Context) error
	XLSX(c echo.Context) error
	Import(c echo.Context) error
}
