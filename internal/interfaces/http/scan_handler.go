package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/conteo-api/internal/application/dto"
	"github.com/jhoicas/conteo-api/internal/application/inventory"
	"github.com/jhoicas/conteo-api/internal/application/scanner"
	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/entity"
)

// ScanHandler maneja el flujo de escaneo y las ediciones manuales del
// inventario. El guard filtra los cuadros duplicados que el lector emite
// durante la ventana de enfriamiento.
type ScanHandler struct {
	svc   *inventory.Service
	guard *scanner.Debouncer
}

// NewScanHandler construye el handler.
func NewScanHandler(svc *inventory.Service, guard *scanner.Debouncer) *ScanHandler {
	return &ScanHandler{svc: svc, guard: guard}
}

// Scan godoc
// @Summary      Registrar una unidad escaneada
// @Description  Incrementa en 1 el conteo del EAN en la ubicación indicada. Lecturas duplicadas dentro de la ventana de enfriamiento se suprimen.
// @Tags         scan
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "EAN decodificado y ubicación"
// @Success      200   {object}  entity.RecentScan
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Location = locationOrDefault(in.Location)
	if in.EAN == "" || !in.Location.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ean y location son requeridos"})
	}

	if !h.guard.Accept(in.EAN) {
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "COOLDOWN", Message: "lectura duplicada suprimida"})
	}
	defer h.guard.Done()

	scan, err := h.svc.Scan(c.Context(), in.EAN, in.Location)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownProduct):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_PRODUCT", Message: "el EAN \"" + in.EAN + "\" no se encontró en la base de datos"})
		case errors.Is(err, domain.ErrNoActiveStore):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_STORE", Message: "selecciona un almacén primero"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(scan)
}

// RecentScans godoc
// @Summary      Listar escaneos recientes del almacén activo
// @Tags         scan
// @Produce      json
// @Success      200  {object}  dto.RecentScansResponse
// @Router       /api/scans/recent [get]
func (h *ScanHandler) RecentScans(c *fiber.Ctx) error {
	return c.JSON(dto.RecentScansResponse{Scans: h.svc.RecentScans()})
}

// ClearRecentScans godoc
// @Summary      Vaciar el historial de escaneos recientes
// @Tags         scan
// @Success      204
// @Router       /api/scans/recent [delete]
func (h *ScanHandler) ClearRecentScans(c *fiber.Ctx) error {
	h.svc.ClearRecentScans()
	h.guard.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateItem godoc
// @Summary      Fijar el conteo de una ubicación para un EAN
// @Description  Cantidades negativas se recortan a 0. Si el EAN no tiene entrada se crea con todas las ubicaciones en 0.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        ean   path  string  true  "EAN"
// @Param        body  body  dto.UpdateItemRequest  true  "Ubicación y cantidad"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{ean} [put]
func (h *ScanHandler) UpdateItem(c *fiber.Ctx) error {
	ean := c.Params("ean")
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.UpdateItem(c.Context(), ean, in.Location, in.Quantity); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoActiveStore):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_STORE", Message: "selecciona un almacén primero"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location inválida"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteItem godoc
// @Summary      Eliminar la entrada de un EAN del inventario activo
// @Tags         inventory
// @Produce      json
// @Param        ean  path  string  true  "EAN"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{ean} [delete]
func (h *ScanHandler) DeleteItem(c *fiber.Ctx) error {
	ean := c.Params("ean")
	if err := h.svc.DeleteItem(c.Context(), ean); err != nil {
		if errors.Is(err, domain.ErrNoActiveStore) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_STORE", Message: "selecciona un almacén primero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// locationOrDefault compatibilidad con lectores que no mandan ubicación.
func locationOrDefault(l entity.Location) entity.Location {
	if l == "" {
		return entity.LocationMueble
	}
	return l
}
