package inventory

import (
	"context"

	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/entity"
	"github.com/jhoicas/conteo-api/internal/domain/repository"
)

// LoadCatalog mezcla los productos importados sobre el catálogo existente,
// por EAN con última-escritura-gana según el orden de importación. Los
// conteos existentes no se tocan: el catálogo y los inventarios son
// colecciones independientes. Devuelve cuántos productos quedaron aplicados.
func (s *Service) LoadCatalog(ctx context.Context, products []entity.Product) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int, len(s.catalog))
	for i, p := range s.catalog {
		index[p.EAN] = i
	}

	applied := 0
	for _, p := range products {
		if p.EAN == "" {
			continue
		}
		if i, ok := index[p.EAN]; ok {
			s.catalog[i] = p
		} else {
			index[p.EAN] = len(s.catalog)
			s.catalog = append(s.catalog, p)
		}
		applied++
	}

	if err := s.persist(ctx, repository.KeyCatalog, s.catalog); err != nil {
		return 0, err
	}
	return applied, nil
}

// AddProduct agrega un producto individual. Falla con domain.ErrDuplicate si
// el EAN ya existe en el catálogo (el tamaño no cambia).
func (s *Service) AddProduct(ctx context.Context, p entity.Product) error {
	if p.EAN == "" || p.Description == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.catalog {
		if existing.EAN == p.EAN {
			return domain.ErrDuplicate
		}
	}
	s.catalog = append(s.catalog, p)
	return s.persist(ctx, repository.KeyCatalog, s.catalog)
}

// Products devuelve una copia del catálogo maestro.
func (s *Service) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// FindProduct busca un producto por EAN; nil si no existe.
func (s *Service) FindProduct(ean string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findProduct(ean)
}

// findProduct versión interna sin lock.
func (s *Service) findProduct(ean string) *entity.Product {
	for i := range s.catalog {
		if s.catalog[i].EAN == ean {
			p := s.catalog[i]
			return &p
		}
	}
	return nil
}
