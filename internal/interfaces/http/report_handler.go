package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/conteo-api/internal/application/dto"
	"github.com/jhoicas/conteo-api/internal/application/inventory"
	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/report"
	"github.com/jhoicas/conteo-api/internal/infrastructure/excel"
	"github.com/jhoicas/conteo-api/internal/infrastructure/pdf"
)

// ReportHandler deriva y exporta el reporte del almacén activo.
type ReportHandler struct {
	svc      *inventory.Service
	exporter *excel.Exporter
	pdfGen   *pdf.ReportGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(svc *inventory.Service, exporter *excel.Exporter, pdfGen *pdf.ReportGenerator) *ReportHandler {
	return &ReportHandler{svc: svc, exporter: exporter, pdfGen: pdfGen}
}

// reportRows deriva las filas filtradas o mapea el error de precondición.
func (h *ReportHandler) reportRows(c *fiber.Ctx) ([]report.Row, bool) {
	rows, err := h.svc.Report()
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveStore) {
			_ = c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_STORE", Message: "selecciona un almacén primero"})
			return nil, false
		}
		_ = c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		return nil, false
	}
	return report.Filter(rows, c.Query("q")), true
}

// Get godoc
// @Summary      Reporte del almacén activo
// @Tags         report
// @Produce      json
// @Param        q  query  string  false  "Filtro por EAN, descripción o marca"
// @Success      200  {object}  dto.ReportResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/report [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	rows, ok := h.reportRows(c)
	if !ok {
		return nil
	}
	return c.JSON(dto.ReportResponse{
		Store:  h.svc.ActiveStore().Name,
		Rows:   rows,
		Totals: report.Sum(rows),
	})
}

// ExportXLSX godoc
// @Summary      Exportar el reporte como xlsx
// @Description  Textos en mayúsculas, columnas en orden fijo, nombre Reporte_<almacén>_<fecha>.xlsx
// @Tags         report
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q  query  string  false  "Filtro por EAN, descripción o marca"
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/report/export [get]
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	rows, ok := h.reportRows(c)
	if !ok {
		return nil
	}
	data, err := h.exporter.Export(rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := excel.Filename(h.svc.ActiveStore().Name, time.Now())
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar el reporte como PDF
// @Tags         report
// @Produce      application/pdf
// @Param        q  query  string  false  "Filtro por EAN, descripción o marca"
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/report/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	rows, ok := h.reportRows(c)
	if !ok {
		return nil
	}
	store := h.svc.ActiveStore()
	data, err := h.pdfGen.Generate(store.Name, rows, report.Sum(rows), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+pdf.Filename(store.Name, time.Now())+`"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
