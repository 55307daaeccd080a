// Package scanner modela la alimentación de códigos decodificados por el
// lector: el productor emite cuadros más rápido de lo que el conteo puede
// reaccionar, así que un mismo código puede llegar repetido. El Debouncer es
// la máquina de estados que garantiza un solo incremento por lectura física.
package scanner

import (
	"errors"
	"sync"
	"time"
)

// Errores de dispositivo del lector, para distinguirlos en el mensaje al usuario.
var (
	ErrPermissionDenied = errors.New("permiso de cámara denegado")
	ErrNoDevice         = errors.New("no se encontró ninguna cámara")
)

// DefaultCooldown ventana por defecto de supresión de cuadros duplicados.
const DefaultCooldown = 400 * time.Millisecond

// State estado del flujo de escaneo.
type State int

const (
	StateIdle State = iota
	StateProcessing
	StateCooldown
)

// Debouncer máquina de estados Idle → Processing → Cooldown → Idle.
// Accept admite un código solo en Idle, o en Cooldown cuando es un código
// distinto o ya venció la ventana. Done marca el fin del procesamiento y
// arranca el periodo de enfriamiento.
type Debouncer struct {
	mu       sync.Mutex
	cooldown time.Duration
	now      func() time.Time

	state    State
	lastCode string
	until    time.Time
}

// NewDebouncer construye el guard con la ventana indicada (DefaultCooldown si d <= 0).
func NewDebouncer(d time.Duration) *Debouncer {
	if d <= 0 {
		d = DefaultCooldown
	}
	return &Debouncer{cooldown: d, now: time.Now}
}

// Accept decide si el código pasa al conteo. Devuelve false mientras hay un
// escaneo en proceso, y false para el mismo código dentro de la ventana de
// enfriamiento. Si acepta, el estado queda en Processing hasta Done.
func (g *Debouncer) Accept(code string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateProcessing:
		return false
	case StateCooldown:
		if code == g.lastCode && g.now().Before(g.until) {
			return false
		}
	}

	g.state = StateProcessing
	g.lastCode = code
	return true
}

// Done cierra el escaneo en proceso y arranca el enfriamiento.
func (g *Debouncer) Done() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateProcessing {
		return
	}
	g.state = StateCooldown
	g.until = g.now().Add(g.cooldown)
}

// Reset vuelve a Idle descartando el historial (cambio de almacén o cierre del lector).
func (g *Debouncer) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateIdle
	g.lastCode = ""
}

// CurrentState expone el estado para inspección (tests, métricas de UI).
func (g *Debouncer) CurrentState() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateCooldown && !g.now().Before(g.until) {
		return StateIdle
	}
	return g.state
}
