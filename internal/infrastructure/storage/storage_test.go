package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/conteo-api/internal/domain"
	"github.com/jhoicas/conteo-api/internal/domain/repository"
	"github.com/jhoicas/conteo-api/internal/infrastructure/storage"
)

// Los backends comparten el contrato del puerto KV; el de PostgreSQL se
// prueba contra una base real y queda fuera de la suite unitaria.
func kvBackends(t *testing.T) map[string]repository.KV {
	t.Helper()
	fileStore, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)
	return map[string]repository.KV{
		"memory": storage.NewMemory(),
		"file":   fileStore,
	}
}

func TestKV_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(ctx, "stores")
			assert.ErrorIs(t, err, domain.ErrNotFound, "clave inexistente")

			require.NoError(t, kv.Put(ctx, "stores", []byte(`[{"id":"1"}]`)))
			got, err := kv.Get(ctx, "stores")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"1"}]`, string(got))

			// Última escritura gana
			require.NoError(t, kv.Put(ctx, "stores", []byte(`[]`)))
			got, err = kv.Get(ctx, "stores")
			require.NoError(t, err)
			assert.JSONEq(t, `[]`, string(got))

			require.NoError(t, kv.Delete(ctx, "stores"))
			_, err = kv.Get(ctx, "stores")
			assert.ErrorIs(t, err, domain.ErrNotFound)

			require.NoError(t, kv.Delete(ctx, "stores"), "borrar una clave ausente no es error")
		})
	}
}

func TestFile_SobreviveReapertura(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := storage.NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "activeStoreId", []byte(`"abc"`)))

	second, err := storage.NewFile(dir)
	require.NoError(t, err)
	got, err := second.Get(ctx, "activeStoreId")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(got))
}
