package dto

import "github.com/jhoicas/conteo-api/internal/domain/entity"

// ScanRequest un código decodificado por el lector o ingresado a mano.
type ScanRequest struct {
	EAN      string          `json:"ean"`
	Location entity.Location `json:"location"`
}

// RecentScansResponse historial efímero de escaneos.
type RecentScansResponse struct {
	Scans []entity.RecentScan `json:"scans"`
}

// UpdateItemRequest edición manual de un conteo.
type UpdateItemRequest struct {
	Location entity.Location `json:"location"`
	Quantity int             `json:"quantity"`
}
