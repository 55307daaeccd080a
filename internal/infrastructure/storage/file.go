package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/repository"
)

var _ repository.KV = (*File)(nil)

// File almacén clave-valor sobre el sistema de archivos: un archivo JSON por
// clave dentro de un directorio de datos. Equivalente en servidor del
// almacenamiento local de la versión móvil: última escritura gana, un solo
// escritor por directorio.
type File struct {
	dir string
	mu  sync.Mutex
}

// NewFile crea el directorio de datos si no existe y construye el almacén.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get lee el archivo de la clave o devuelve domain.ErrNotFound.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	return data, nil
}

// Put escribe el valor en un archivo temporal y lo renombra, para no dejar
// un archivo a medias si el proceso muere durante la escritura.
func (f *File) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("renombrar %s: %w", key, err)
	}
	return nil
}

// Delete elimina el archivo de la clave; no es error si no existe.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar %s: %w", key, err)
	}
	return nil
}
