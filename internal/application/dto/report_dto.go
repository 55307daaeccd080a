package dto

import "github.com/jhoicas/conteo-api/internal/domain/report"

// ReportResponse filas derivadas del reporte más sus totales.
type ReportResponse struct {
	Store  string        `json:"store"`
	Rows   []report.Row  `json:"rows"`
	Totals report.Totals `json:"totals"`
}
