package repository

import "context"

// Claves fijas bajo las que persiste el estado del conteo. Mismo layout que
// la versión móvil: una entrada serializada por colección.
const (
	KeyStores        = "stores"
	KeyActiveStoreID = "activeStoreId"
	KeyCatalog       = "masterProducts"
	KeyInventories   = "inventories"
)

// KV puerto de persistencia clave-valor. El núcleo depende solo de esta
// interfaz; los backends (memoria, archivo, PostgreSQL) son intercambiables.
// Get devuelve domain.ErrNotFound si la clave no existe.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
