package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/conteo-api/internal/application/dto"
	"github.com/jhoicas/conteo-api/internal/application/inventory"
	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/infrastructure/excel"
)

// CatalogHandler maneja el catálogo maestro: listado, alta manual e
// importación desde Excel.
type CatalogHandler struct {
	svc      *inventory.Service
	importer *excel.Importer
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(svc *inventory.Service, importer *excel.Importer) *CatalogHandler {
	return &CatalogHandler{svc: svc, importer: importer}
}

// List godoc
// @Summary      Listar catálogo maestro
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products := h.svc.Products()
	return c.JSON(dto.ProductListResponse{Products: products, Total: len(products)})
}

// Create godoc
// @Summary      Agregar producto al catálogo
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product := in.ToEntity()
	if err := h.svc.AddProduct(c.Context(), product); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un producto con este código EAN"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ean y description son requeridos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Import godoc
// @Summary      Importar catálogo desde un archivo xlsx
// @Description  Mezcla por EAN sobre el catálogo existente (última escritura gana). Filas sin EAN se saltan.
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx con columnas EAN y DESCRIPCION"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *CatalogHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el archivo en el campo file"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	products, err := h.importer.ImportFile(file)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidImport) || errors.Is(err, domain.ErrEmptySheet) {
			// Error de validación: se aborta sin tocar el catálogo
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	imported, err := h.svc.LoadCatalog(c.Context(), products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ImportResponse{Imported: imported})
}
