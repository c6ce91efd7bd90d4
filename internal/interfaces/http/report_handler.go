package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/brewflow-pos/internal/application/dto"
	"github.com/jhoicas/brewflow-pos/internal/application/report"
	"github.com/jhoicas/brewflow-pos/internal/domain"
)

// ReportHandler maneja los reportes diarios de ventas (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parseDay lee ?date=yyyy-MM-dd; vacío = hoy.
func parseDay(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

// Daily godoc
// @Summary      Reporte diario de ventas por sucursal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date    query  string  false  "Fecha yyyy-MM-dd (vacío = hoy)"
// @Param        branch  query  string  true   "Sucursal (id o nombre)"
// @Success      200     {object}  dto.DailyReportResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	day, err := parseDay(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "formato de fecha: yyyy-MM-dd"})
	}
	out, err := h.uc.Daily(day, c.Query("branch"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el reporte diario (text, pdf o xml)
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        date    query  string  false  "Fecha yyyy-MM-dd (vacío = hoy)"
// @Param        branch  query  string  true   "Sucursal (id o nombre)"
// @Param        format  query  string  false  "text | pdf | xml"  default(text)
// @Success      200     {string}  string  "Archivo del reporte"
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/reports/daily/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	day, err := parseDay(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "formato de fecha: yyyy-MM-dd"})
	}
	branch := c.Query("branch")
	baseName := fmt.Sprintf("sales_report_%s_%s", day.Format("2006-01-02"), branch)

	var (
		body        []byte
		contentType string
		filename    string
	)
	switch c.Query("format", "text") {
	case "text":
		txt, terr := h.uc.ExportText(day, branch)
		body, err = []byte(txt), terr
		contentType, filename = fiber.MIMETextPlainCharsetUTF8, baseName+".txt"
	case "pdf":
		body, err = h.uc.ExportPDF(c.Context(), day, branch)
		contentType, filename = "application/pdf", baseName+".pdf"
	case "xml":
		body, err = h.uc.ExportXML(day, branch)
		contentType, filename = fiber.MIMEApplicationXML, baseName+".xml"
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser text, pdf o xml"})
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
