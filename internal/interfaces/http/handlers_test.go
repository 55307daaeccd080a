package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/conteo-api/internal/application/dto"
	"github.com/jhoicas/conteo-api/internal/application/inventory"
	"github.com/jhoicas/conteo-api/internal/application/scanner"
	"github.com/jhoicas/conteo-api/internal/infrastructure/excel"
	"github.com/jhoicas/conteo-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/conteo-api/internal/interfaces/http"
	"github.com/jhoicas/conteo-api/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la aplicación completa sobre un KV en memoria. La
// ventana de enfriamiento va en 1ns para que los tests secuenciales no se
// supriman entre sí; los tests de supresión construyen su propio guard.
func buildTestApp(t *testing.T, cooldown time.Duration) (*fiber.App, *inventory.Service) {
	t.Helper()
	svc, err := inventory.NewService(context.Background(), storage.NewMemory())
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Service:   svc,
		ScanGuard: scanner.NewDebouncer(cooldown),
		Importer:  excel.NewImporter(),
		Exporter:  excel.NewExporter(),
		PDF:       pdf.NewReportGenerator(),
	})
	return app, svc
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// setupStoreAndCatalog crea un almacén activo y carga el catálogo básico.
func setupStoreAndCatalog(t *testing.T, app *fiber.App) dto.StoreResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/stores", dto.CreateStoreRequest{Name: "Tienda Centro"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	store := decode[dto.StoreResponse](t, resp)

	resp = doJSON(t, app, fiber.MethodPost, "/api/products", dto.CreateProductRequest{EAN: "111", Description: "Widget", Marca: "SMART"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// Almacenes
// ──────────────────────────────────────────────────────────────────────────────

func TestStores_CrearListarYActivar(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)

	resp := doJSON(t, app, fiber.MethodPost, "/api/stores", dto.CreateStoreRequest{Name: "Centro"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	first := decode[dto.StoreResponse](t, resp)
	assert.True(t, first.Active, "el primer almacén queda activo")

	resp = doJSON(t, app, fiber.MethodPost, "/api/stores", dto.CreateStoreRequest{Name: "Norte"})
	second := decode[dto.StoreResponse](t, resp)
	assert.False(t, second.Active)

	resp = doJSON(t, app, fiber.MethodPost, "/api/stores/"+second.ID+"/select", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/stores", nil)
	list := decode[dto.StoreListResponse](t, resp)
	require.Len(t, list.Stores, 2)
	for _, s := range list.Stores {
		assert.Equal(t, s.ID == second.ID, s.Active)
	}
}

func TestStores_NombreVacio(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)
	resp := doJSON(t, app, fiber.MethodPost, "/api/stores", dto.CreateStoreRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStores_EliminarDejaElReporteIndisponible(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)
	store := setupStoreAndCatalog(t, app)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/stores/"+store.ID, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/report", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NO_ACTIVE_STORE", errBody.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_EANDuplicado(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)
	setupStoreAndCatalog(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/products", dto.CreateProductRequest{EAN: "111", Description: "Otro"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", errBody.Code)
}

func TestProducts_ImportarXLSX(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)

	// Hoja con una fila sin EAN, que debe saltarse
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"EAN", "DESCRIPCION"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"111", "Widget"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"222", "Gadget"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"", "Ignored"}))
	var xlsxBuf bytes.Buffer
	require.NoError(t, f.Write(&xlsxBuf))
	require.NoError(t, f.Close())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "catalogo.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsxBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/products/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	imported := decode[dto.ImportResponse](t, resp)
	assert.Equal(t, 2, imported.Imported)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products", nil)
	list := decode[dto.ProductListResponse](t, resp)
	assert.Equal(t, 2, list.Total)
}

func TestProducts_ImportarSinColumnasObligatorias(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &[]any{"CODIGO", "NOMBRE"}))
	var xlsxBuf bytes.Buffer
	require.NoError(t, f.Write(&xlsxBuf))
	require.NoError(t, f.Close())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "malo.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsxBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/products/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "IMPORT_VALIDATION", errBody.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escaneo
// ──────────────────────────────────────────────────────────────────────────────

func TestScan_TresEscaneosSumanTres(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)
	setupStoreAndCatalog(t, app)

	for i := 1; i <= 3; i++ {
		resp := doJSON(t, app, fiber.MethodPost, "/api/scan", dto.ScanRequest{EAN: "111", Location: "Bodega"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		time.Sleep(time.Millisecond) // deja vencer la ventana de enfriamiento
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/report", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rep := decode[dto.ReportResponse](t, resp)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 3, rep.Rows[0].Bodega)
	assert.Equal(t, 3, rep.Rows[0].Inventario)
	assert.Equal(t, 3, rep.Totals.Inventario)
}

func TestScan_EANDesconocido(t *testing.T) {
	app, svc := buildTestApp(t, time.Nanosecond)
	setupStoreAndCatalog(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/scan", dto.ScanRequest{EAN: "999", Location: "Mueble"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "UNKNOWN_PRODUCT", errBody.Code)
	assert.Empty(t, svc.RecentScans(), "un escaneo fallido no se registra")
}

func TestScan_SinAlmacenActivo(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)

	resp := doJSON(t, app, fiber.MethodPost, "/api/scan", dto.ScanRequest{EAN: "111", Location: "Bodega"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NO_ACTIVE_STORE", errBody.Code)
}

func TestScan_DuplicadoDentroDelEnfriamiento(t *testing.T) {
	// Ventana larga: la segunda lectura del mismo código debe suprimirse
	app, _ := buildTestApp(t, time.Minute)
	setupStoreAndCatalog(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/scan", dto.ScanRequest{EAN: "111", Location: "Bodega"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/scan", dto.ScanRequest{EAN: "111", Location: "Bodega"})
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/report", nil)
	rep := decode[dto.ReportResponse](t, resp)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 1, rep.Rows[0].Bodega, "exactamente un incremento")
}

func TestScan_HistorialRecienteYLimpieza(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)
	setupStoreAndCatalog(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/scan", dto.ScanRequest{EAN: "111", Location: "Mueble"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/scans/recent", nil)
	recent := decode[dto.RecentScansResponse](t, resp)
	require.Len(t, recent.Scans, 1)
	assert.Equal(t, 1, recent.Scans[0].Quantity)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/scans/recent", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/scans/recent", nil)
	recent = decode[dto.RecentScansResponse](t, resp)
	assert.Empty(t, recent.Scans)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_EditarYEliminar(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)
	setupStoreAndCatalog(t, app)

	// Cantidad negativa se recorta a 0
	resp := doJSON(t, app, fiber.MethodPut, "/api/inventory/111", dto.UpdateItemRequest{Location: "Bodega", Quantity: -5})
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPut, "/api/inventory/111", dto.UpdateItemRequest{Location: "Mueble", Quantity: 4})
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/report", nil)
	rep := decode[dto.ReportResponse](t, resp)
	require.Len(t, rep.Rows, 1)
	assert.Zero(t, rep.Rows[0].Bodega)
	assert.Equal(t, 4, rep.Rows[0].Mueble)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/inventory/111", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/report", nil)
	rep = decode[dto.ReportResponse](t, resp)
	require.Len(t, rep.Rows, 1, "la fila sigue saliendo del catálogo")
	assert.Zero(t, rep.Rows[0].Inventario)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte y exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestReport_FiltroPorTermino(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)
	setupStoreAndCatalog(t, app)
	resp := doJSON(t, app, fiber.MethodPost, "/api/products", dto.CreateProductRequest{EAN: "222", Description: "Gadget", Marca: "ACME"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/report?q=acme", nil)
	rep := decode[dto.ReportResponse](t, resp)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "222", rep.Rows[0].EAN)
}

func TestReport_ExportXLSX(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)
	setupStoreAndCatalog(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/scan", dto.ScanRequest{EAN: "111", Location: "Bodega"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/report/export", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	disposition := resp.Header.Get(fiber.HeaderContentDisposition)
	assert.Contains(t, disposition, "Reporte_Tienda_Centro_")
	assert.Contains(t, disposition, ".xlsx")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reporte")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "WIDGET", rows[1][5])
	assert.Equal(t, "1", rows[1][7], "BODEGA refleja el escaneo")
}

func TestReport_ExportPDF(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)
	setupStoreAndCatalog(t, app)

	resp := doJSON(t, app, fiber.MethodGet, "/api/report/export/pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

func TestReport_SinAlmacenActivo(t *testing.T) {
	app, _ := buildTestApp(t, time.Nanosecond)
	for _, path := range []string{"/api/report", "/api/report/export", "/api/report/export/pdf"} {
		resp := doJSON(t, app, fiber.MethodGet, path, nil)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode, path)
	}
}
