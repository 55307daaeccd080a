package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/entity"
	"github.com/jhoicas/conteo-api/internal/domain/repository"
)

// AddStore crea un almacén con id único y color de la paleta (cíclico según
// la cantidad actual). Si no hay almacén activo, el nuevo queda activo.
func (s *Service) AddStore(ctx context.Context, name string) (*entity.Store, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	store := entity.Store{
		ID:    uuid.New().String(),
		Name:  name,
		Color: entity.StoreColors[len(s.stores)%len(entity.StoreColors)],
	}
	s.stores = append(s.stores, store)
	if err := s.persist(ctx, repository.KeyStores, s.stores); err != nil {
		return nil, err
	}

	if s.activeStoreID == "" {
		s.activeStoreID = store.ID
		if err := s.persist(ctx, repository.KeyActiveStoreID, s.activeStoreID); err != nil {
			return nil, err
		}
	}
	return &store, nil
}

// SelectStore activa el almacén indicado y vacía los escaneos recientes:
// el historial es por almacén y no debe filtrarse entre contextos.
func (s *Service) SelectStore(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.storeExists(id) {
		return domain.ErrStoreNotFound
	}
	s.activeStoreID = id
	s.recentScans = nil
	return s.persist(ctx, repository.KeyActiveStoreID, s.activeStoreID)
}

// DeleteStore elimina el almacén y su inventario completo (borrado en
// cascada). Si era el activo, queda sin selección.
func (s *Service) DeleteStore(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.storeExists(id) {
		return domain.ErrStoreNotFound
	}

	if s.activeStoreID == id {
		s.activeStoreID = ""
		s.recentScans = nil
		if err := s.persist(ctx, repository.KeyActiveStoreID, s.activeStoreID); err != nil {
			return err
		}
	}

	filtered := s.stores[:0]
	for _, st := range s.stores {
		if st.ID != id {
			filtered = append(filtered, st)
		}
	}
	s.stores = filtered
	if err := s.persist(ctx, repository.KeyStores, s.stores); err != nil {
		return err
	}

	delete(s.inventories, id)
	return s.persist(ctx, repository.KeyInventories, s.inventories)
}

// Stores devuelve una copia del registro de almacenes.
func (s *Service) Stores() []entity.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Store, len(s.stores))
	copy(out, s.stores)
	return out
}

// ActiveStore devuelve el almacén activo o nil si no hay selección.
func (s *Service) ActiveStore() *entity.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stores {
		if s.stores[i].ID == s.activeStoreID {
			st := s.stores[i]
			return &st
		}
	}
	return nil
}

// storeExists verifica el id contra el registro. Llamar con el mutex tomado.
func (s *Service) storeExists(id string) bool {
	for _, st := range s.stores {
		if st.ID == id {
			return true
		}
	}
	return false
}
