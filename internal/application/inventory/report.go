package inventory

import (
	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/report"
)

// Report deriva las filas del reporte para el almacén activo. Falla con
// domain.ErrNoActiveStore si no hay selección; el reporte nunca mezcla
// inventarios de almacenes distintos.
func (s *Service) Report() ([]report.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeStoreID == "" {
		return nil, domain.ErrNoActiveStore
	}
	return report.Build(s.catalog, s.inventories[s.activeStoreID]), nil
}
