// Package identity implementa el proveedor de identidad como fuente push de
// snapshots: quien se suscribe recibe cada cambio de estado (user, rol,
// loading, error). El Access Guard se ata a este contrato; nunca consulta
// estado ambiente.
package identity

import (
	"sync"

	"github.com/jhoicas/brewflow-pos/internal/domain/access"
)

// Provider mantiene el IdentitySnapshot vigente y notifica a los suscriptores
// en cada cambio. Arranca en Loading hasta la primera observación real.
type Provider struct {
	mu     sync.Mutex
	snap   access.IdentitySnapshot
	subs   map[int]func(access.IdentitySnapshot)
	nextID int
}

// NewProvider construye el proveedor en estado de carga inicial.
func NewProvider() *Provider {
	return &Provider{
		snap: access.IdentitySnapshot{Loading: true},
		subs: make(map[int]func(access.IdentitySnapshot)),
	}
}

// Subscribe registra un suscriptor, le entrega de inmediato el snapshot
// vigente y devuelve la función de cancelación. La cancelación es idempotente.
func (p *Provider) Subscribe(fn func(access.IdentitySnapshot)) (cancel func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	snap := p.snap
	p.mu.Unlock()

	fn(snap)

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}

// Snapshot devuelve el estado vigente.
func (p *Provider) Snapshot() access.IdentitySnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// SetSession publica una sesión activa (login completado).
func (p *Provider) SetSession(user access.Identity, role string) {
	p.publish(access.IdentitySnapshot{User: &user, Role: role})
}

// ClearSession publica el fin de sesión (logout o expiración).
func (p *Provider) ClearSession() {
	p.publish(access.IdentitySnapshot{})
}

// SetError publica un error de configuración/inicialización del proveedor.
func (p *Provider) SetError(msg string) {
	p.publish(access.IdentitySnapshot{Err: msg})
}

func (p *Provider) publish(snap access.IdentitySnapshot) {
	p.mu.Lock()
	p.snap = snap
	fns := make([]func(access.IdentitySnapshot), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	// Notificación fuera del lock: un suscriptor puede cancelarse a sí mismo.
	for _, fn := range fns {
		fn(snap)
	}
}
