package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/conteo-api/internal/application/inventory"
	"github.com/jhoicas/conteo-api/internal/application/scanner"
	"github.com/jhoicas/conteo-api/internal/infrastructure/excel"
	"github.com/jhoicas/conteo-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Service   *inventory.Service
	ScanGuard *scanner.Debouncer
	Importer  *excel.Importer
	Exporter  *excel.Exporter
	PDF       *pdf.ReportGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Almacenes (registro de contextos de conteo)
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.Service)
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Post("/:id/select", storeHandler.Select)
	stores.Delete("/:id", storeHandler.Delete)

	// Catálogo maestro
	products := api.Group("/products")
	catalogHandler := NewCatalogHandler(deps.Service, deps.Importer)
	products.Get("/", catalogHandler.List)
	products.Post("/", catalogHandler.Create)
	products.Post("/import", catalogHandler.Import)

	// Escaneo e inventario del almacén activo
	scanHandler := NewScanHandler(deps.Service, deps.ScanGuard)
	api.Post("/scan", scanHandler.Scan)
	api.Get("/scans/recent", scanHandler.RecentScans)
	api.Delete("/scans/recent", scanHandler.ClearRecentScans)
	api.Put("/inventory/:ean", scanHandler.UpdateItem)
	api.Delete("/inventory/:ean", scanHandler.DeleteItem)

	// Reporte
	reportHandler := NewReportHandler(deps.Service, deps.Exporter, deps.PDF)
	api.Get("/report", reportHandler.Get)
	api.Get("/report/export", reportHandler.ExportXLSX)
	api.Get("/report/export/pdf", reportHandler.ExportPDF)
}
