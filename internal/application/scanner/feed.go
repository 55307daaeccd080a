package scanner

import "context"

// Source productor de códigos decodificados: la cámara u otro lector que
// emite un evento por cuadro reconocido. Open puede fallar con
// ErrPermissionDenied o ErrNoDevice; el canal se cierra cuando el productor
// termina.
type Source interface {
	Open(ctx context.Context) (<-chan string, error)
}

// Apply aplica un código aceptado al conteo (típicamente Service.Scan).
type Apply func(ctx context.Context, code string)

// Feed consume un Source de a un código a la vez, filtrando duplicados con
// el Debouncer. Cancelar el contexto detiene el bucle de captura de forma
// síncrona y libera el dispositivo.
type Feed struct {
	guard *Debouncer
}

// NewFeed construye el consumidor sobre el guard dado.
func NewFeed(guard *Debouncer) *Feed {
	return &Feed{guard: guard}
}

// Run abre la fuente y procesa códigos hasta que el contexto se cancele o la
// fuente cierre su canal. Cada código aceptado se aplica de forma síncrona;
// los suprimidos por la ventana de enfriamiento se descartan sin efecto.
func (f *Feed) Run(ctx context.Context, src Source, apply Apply) error {
	codes, err := src.Open(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case code, ok := <-codes:
			if !ok {
				return nil
			}
			if code == "" || !f.guard.Accept(code) {
				continue
			}
			apply(ctx, code)
			f.guard.Done()
		}
	}
}
