package dto

import "github.com/jhoicas/conteo-api/internal/domain/entity"

// CreateProductRequest alta manual de un producto del catálogo.
type CreateProductRequest struct {
	EAN         string `json:"ean"`
	Mat         string `json:"mat"`
	Marca       string `json:"marca"`
	Familia     string `json:"familia"`
	Subfamilia  string `json:"subfamilia"`
	Description string `json:"description"`
	Tip         string `json:"tip"`
}

// ToEntity convierte la petición en entidad de dominio.
func (r CreateProductRequest) ToEntity() entity.Product {
	return entity.Product{
		EAN:         r.EAN,
		Mat:         r.Mat,
		Marca:       r.Marca,
		Familia:     r.Familia,
		Subfamilia:  r.Subfamilia,
		Description: r.Description,
		Tip:         r.Tip,
	}
}

// ProductListResponse catálogo maestro.
type ProductListResponse struct {
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
}

// ImportResponse resultado de una importación de catálogo.
type ImportResponse struct {
	Imported int `json:"imported"`
}
