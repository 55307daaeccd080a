package storage

import (
	"context"
	"sync"

	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/repository"
)

var _ repository.KV = (*Memory)(nil)

// Memory almacén clave-valor en memoria. Backend por defecto en tests y
// útil en desarrollo; el estado se pierde al terminar el proceso.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory construye el almacén vacío.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get devuelve el valor de la clave o domain.ErrNotFound.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put guarda el valor bajo la clave (última escritura gana).
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Delete elimina la clave; no es error si no existe.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
