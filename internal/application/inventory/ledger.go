package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/entity"
	"github.com/jhoicas/conteo-api/internal/domain/repository"
)

// Scan registra una unidad contada: busca el EAN en el catálogo, inicializa
// perezosamente la entrada del inventario, incrementa la ubicación en 1 y
// persiste. Devuelve el registro efímero con el total posterior al
// incremento. Un EAN desconocido no muta nada (domain.ErrUnknownProduct) y
// sin almacén activo tampoco (domain.ErrNoActiveStore).
func (s *Service) Scan(ctx context.Context, ean string, location entity.Location) (*entity.RecentScan, error) {
	if ean == "" || !location.Valid() {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeStoreID == "" {
		return nil, domain.ErrNoActiveStore
	}
	product := s.findProduct(ean)
	if product == nil {
		return nil, domain.ErrUnknownProduct
	}

	inv, err := s.activeInventory()
	if err != nil {
		return nil, err
	}
	counts := inv[ean] // cero-valuado en el primer escaneo del EAN
	total := counts.Add(location, 1)
	inv[ean] = counts

	if err := s.persist(ctx, repository.KeyInventories, s.inventories); err != nil {
		return nil, err
	}

	scan := entity.RecentScan{
		ID:          fmt.Sprintf("%d-%s", time.Now().UnixMilli(), ean),
		EAN:         ean,
		Description: product.Description,
		Location:    location,
		Quantity:    total,
	}
	s.pushRecentScan(scan)
	return &scan, nil
}

// pushRecentScan antepone el escaneo y recorta el historial al tope.
// Llamar con el mutex tomado.
func (s *Service) pushRecentScan(scan entity.RecentScan) {
	s.recentScans = append([]entity.RecentScan{scan}, s.recentScans...)
	if len(s.recentScans) > maxRecentScans {
		s.recentScans = s.recentScans[:maxRecentScans]
	}
}

// UpdateItem fija directamente el conteo de una ubicación. Cantidades
// negativas se recortan a 0. Si el EAN no tiene entrada en el inventario se
// crea una con todas las ubicaciones en 0 antes de aplicar el valor.
func (s *Service) UpdateItem(ctx context.Context, ean string, location entity.Location, quantity int) error {
	if ean == "" || !location.Valid() {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.activeInventory()
	if err != nil {
		return err
	}
	counts := inv[ean]
	counts.Set(location, quantity)
	inv[ean] = counts

	return s.persist(ctx, repository.KeyInventories, s.inventories)
}

// DeleteItem elimina la entrada del EAN en el inventario del almacén activo.
// El catálogo no se toca.
func (s *Service) DeleteItem(ctx context.Context, ean string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.activeInventory()
	if err != nil {
		return err
	}
	delete(inv, ean)
	return s.persist(ctx, repository.KeyInventories, s.inventories)
}

// RecentScans devuelve el historial efímero, del más reciente al más viejo.
func (s *Service) RecentScans() []entity.RecentScan {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.RecentScan, len(s.recentScans))
	copy(out, s.recentScans)
	return out
}

// ClearRecentScans vacía el historial efímero; el inventario no cambia.
func (s *Service) ClearRecentScans() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recentScans = nil
}
