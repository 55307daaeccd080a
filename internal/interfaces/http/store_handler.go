package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/conteo-api/internal/application/dto"
	"github.com/jhoicas/conteo-api/internal/application/inventory"
	"github.com/jhoicas/conteo-api/internal/domain"
)

// StoreHandler maneja las peticiones HTTP del registro de almacenes.
type StoreHandler struct {
	svc *inventory.Service
}

// NewStoreHandler construye el handler.
func NewStoreHandler(svc *inventory.Service) *StoreHandler {
	return &StoreHandler{svc: svc}
}

// List godoc
// @Summary      Listar almacenes
// @Tags         stores
// @Produce      json
// @Success      200  {object}  dto.StoreListResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	activeID := ""
	if active := h.svc.ActiveStore(); active != nil {
		activeID = active.ID
	}
	stores := h.svc.Stores()
	out := dto.StoreListResponse{Stores: make([]dto.StoreResponse, 0, len(stores))}
	for _, s := range stores {
		out.Stores = append(out.Stores, dto.ToStoreResponse(s, activeID))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear almacén
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "Nombre del almacén"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	store, err := h.svc.AddStore(c.Context(), in.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	activeID := ""
	if active := h.svc.ActiveStore(); active != nil {
		activeID = active.ID
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToStoreResponse(*store, activeID))
}

// Select godoc
// @Summary      Activar almacén (vacía los escaneos recientes)
// @Tags         stores
// @Produce      json
// @Param        id  path  string  true  "ID del almacén"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/select [post]
func (h *StoreHandler) Select(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.svc.SelectStore(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "almacén no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar almacén y su inventario
// @Tags         stores
// @Produce      json
// @Param        id  path  string  true  "ID del almacén"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.svc.DeleteStore(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "almacén no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
