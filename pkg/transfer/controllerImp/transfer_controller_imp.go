package controllerImp

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	asvc "orchardlog/pkg/activity/service"
	bsvc "orchardlog/pkg/block/service"
	lsvc "orchardlog/pkg/logbook/service"
	"orchardlog/pkg/settings"
	"orchardlog/pkg/transfer"
	"orchardlog/pkg/transfer/controller"
)

// maxBackupBytes bounds an uploaded backup.
const maxBackupBytes = 32 << 20

type TransferCtrl struct {
	logs     lsvc.LogService
	defs     asvc.ActivityService
	blocks   bsvc.BlockService
	importer *transfer.Importer
	prefs    *settings.Preferences
	now      func() time.Time
}

func New(logs lsvc.LogService, defs asvc.ActivityService, blocks bsvc.BlockService, importer *transfer.Importer, prefs *settings.Preferences) controller.TransferController {
	return &TransferCtrl{logs: logs, defs: defs, blocks: blocks, importer: importer, prefs: prefs, now: time.Now}
}

func (h *TransferCtrl) Register(e *echo.Echo) {
	e.GET("/export/backup", h.Backup)
	e.GET("/export/csv", h.CSV)
	e.GET("/export/xlsx", h.XLSX)
	e.POST("/import/backup", h.Import)
}

func attach(c echo.Context, name, contentType string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().WriteHeader(http.StatusOK)
}

func (h *TransferCtrl) Backup(c echo.Context) error {
	now := h.now()
	b := transfer.ExportBackup(h.logs.List(), h.defs.List(), h.blocks.List(), now)
	var buf bytes.Buffer
	if err := transfer.EncodeBackup(&buf, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	attach(c, transfer.BackupFileName(now), echo.MIMEApplicationJSONCharsetUTF8)
	_, err := buf.WriteTo(c.Response())
	return err
}

func (h *TransferCtrl) CSV(c echo.Context) error {
	var buf bytes.Buffer
	if err := transfer.WriteCSV(&buf, h.logs.List(), h.defs.List(), h.prefs.FromRequest(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	attach(c, transfer.CSVFileName(h.now()), "text/csv; charset=utf-8")
	_, err := buf.WriteTo(c.Response())
	return err
}

func (h *TransferCtrl) XLSX(c echo.Context) error {
	var buf bytes.Buffer
	if err := transfer.WriteXLSX(&buf, h.logs.List(), h.defs.List(), h.prefs.FromRequest(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	attach(c, transfer.XLSXFileName(h.now()), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	_, err := buf.WriteTo(c.Response())
	return err
}

// Import accepts the backup as the raw body or as a multipart "file" field.
func (h *TransferCtrl) Import(c echo.Context) error {
	var src io.Reader = io.LimitReader(c.Request().Body, maxBackupBytes)
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing file"})
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		defer f.Close()
		src = io.LimitReader(f, maxBackupBytes)
	}

	res, err := h.importer.Import(c.Request().Context(), src)
	var ie *transfer.ImportError
	if errors.As(err, &ie) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ie.Error(), "kind": ie.Kind})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
