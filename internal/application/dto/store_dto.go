package dto

import "github.com/jhoicas/conteo-api/internal/domain/entity"

// CreateStoreRequest alta de un almacén.
type CreateStoreRequest struct {
	Name string `json:"name"`
}

// StoreResponse almacén con su marca de activo.
type StoreResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

// StoreListResponse listado de almacenes.
type StoreListResponse struct {
	Stores []StoreResponse `json:"stores"`
}

// ToStoreResponse convierte la entidad marcando el activo.
func ToStoreResponse(s entity.Store, activeID string) StoreResponse {
	return StoreResponse{
		ID:     s.ID,
		Name:   s.Name,
		Color:  s.Color,
		Active: s.ID == activeID,
	}
}
