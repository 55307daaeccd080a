// Package inventory implementa el modelo de estado del conteo: catálogo
// maestro, registro de almacenes, inventarios por almacén y escaneos
// recientes. Toda mutación pasa por las operaciones públicas del Service y
// se persiste en el puerto clave-valor al terminar.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/entity"
	"github.com/jhoicas/conteo-api/internal/domain/repository"
)

// maxRecentScans tope del historial efímero de escaneos.
const maxRecentScans = 10

// Service dueño del estado del conteo. Los handlers de Fiber corren en
// paralelo, así que el estado va protegido por un mutex; la persistencia es
// última-escritura-gana sobre el puerto KV.
type Service struct {
	kv repository.KV

	mu            sync.Mutex
	stores        []entity.Store
	activeStoreID string
	catalog       []entity.Product
	inventories   entity.Inventories
	recentScans   []entity.RecentScan
}

// NewService construye el servicio y carga el estado persistido. Las claves
// ausentes se tratan como colecciones vacías (primera ejecución).
func NewService(ctx context.Context, kv repository.KV) (*Service, error) {
	s := &Service{
		kv:          kv,
		inventories: make(entity.Inventories),
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) load(ctx context.Context) error {
	if err := s.loadKey(ctx, repository.KeyStores, &s.stores); err != nil {
		return err
	}
	if err := s.loadKey(ctx, repository.KeyActiveStoreID, &s.activeStoreID); err != nil {
		return err
	}
	if err := s.loadKey(ctx, repository.KeyCatalog, &s.catalog); err != nil {
		return err
	}
	if err := s.loadKey(ctx, repository.KeyInventories, &s.inventories); err != nil {
		return err
	}
	if s.inventories == nil {
		s.inventories = make(entity.Inventories)
	}
	return nil
}

func (s *Service) loadKey(ctx context.Context, key string, dst any) error {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("cargar %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("deserializar %s: %w", key, err)
	}
	return nil
}

// persist serializa y guarda una clave. Llamar con el mutex tomado.
func (s *Service) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("persistir %s: %w", key, err)
	}
	return nil
}

// activeInventory devuelve el inventario del almacén activo, creándolo si
// hace falta. Llamar con el mutex tomado; error si no hay almacén activo.
func (s *Service) activeInventory() (entity.Inventory, error) {
	if s.activeStoreID == "" {
		return nil, domain.ErrNoActiveStore
	}
	inv, ok := s.inventories[s.activeStoreID]
	if !ok {
		inv = make(entity.Inventory)
		s.inventories[s.activeStoreID] = inv
	}
	return inv, nil
}
