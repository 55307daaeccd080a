package scanner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanSource fuente de prueba respaldada por un canal.
type chanSource struct {
	codes <-chan string
	err   error
}

func (s *chanSource) Open(context.Context) (<-chan string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.codes, nil
}

func TestFeed_AplicaCadaCodigoYTerminaAlCerrar(t *testing.T) {
	codes := make(chan string, 4)
	codes <- "111"
	codes <- "222"
	codes <- ""
	codes <- "333"
	close(codes)

	g, clock := newTestDebouncer(400 * time.Millisecond)
	feed := NewFeed(g)

	var applied []string
	err := feed.Run(context.Background(), &chanSource{codes: codes}, func(_ context.Context, code string) {
		applied = append(applied, code)
		clock.advance(time.Second) // entre lecturas pasa tiempo real
	})

	require.NoError(t, err, "el cierre del canal termina el bucle sin error")
	assert.Equal(t, []string{"111", "222", "333"}, applied, "los códigos vacíos se descartan")
}

func TestFeed_SuprimeDuplicadosDelMismoCuadro(t *testing.T) {
	codes := make(chan string, 3)
	codes <- "111"
	codes <- "111"
	codes <- "111"
	close(codes)

	g, _ := newTestDebouncer(400 * time.Millisecond)
	feed := NewFeed(g)

	applied := 0
	err := feed.Run(context.Background(), &chanSource{codes: codes}, func(context.Context, string) {
		applied++
	})

	require.NoError(t, err)
	assert.Equal(t, 1, applied, "una ráfaga del mismo cuadro produce un solo incremento")
}

func TestFeed_CancelarElContextoDetieneLaCaptura(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	codes := make(chan string) // nunca emite

	g, _ := newTestDebouncer(400 * time.Millisecond)
	feed := NewFeed(g)

	done := make(chan error, 1)
	go func() {
		done <- feed.Run(ctx, &chanSource{codes: codes}, func(context.Context, string) {})
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("el bucle de captura no se detuvo al cancelar")
	}
}

func TestFeed_ErroresDeDispositivo(t *testing.T) {
	g, _ := newTestDebouncer(400 * time.Millisecond)
	feed := NewFeed(g)

	err := feed.Run(context.Background(), &chanSource{err: ErrNoDevice}, func(context.Context, string) {})
	assert.ErrorIs(t, err, ErrNoDevice)

	err = feed.Run(context.Background(), &chanSource{err: ErrPermissionDenied}, func(context.Context, string) {})
	assert.ErrorIs(t, err, ErrPermissionDenied, "permiso denegado se distingue de no-hay-cámara")
}
