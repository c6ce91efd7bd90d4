// Package access implementa la máquina de decisiones de control de acceso
// que protege las páginas del POS.
//
// La decisión es una función pura sobre (IdentitySnapshot, roles requeridos);
// el único efecto secundario es la navegación al login en la transición a
// Unauthenticated, y está a cargo de Guard, que lo dispara a lo sumo una vez
// por entrada a ese estado.
package access

import "sync"

// Identity es el usuario que reporta el proveedor de identidad externo.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// IdentitySnapshot es la vista puntual del proveedor de identidad.
// El guard solo la lee; nunca autentica por sí mismo.
type IdentitySnapshot struct {
	User    *Identity // nil = sin sesión
	Role    string    // rol del usuario, vacío si no tiene
	Loading bool      // el proveedor aún no completa su primera observación
	Err     string    // error de configuración/inicialización del proveedor
}

// Decision es el resultado único de evaluar el estado de autenticación y
// autorización contra los roles requeridos por una página.
type Decision int

const (
	// DecisionInitializing: aún no hay una observación completa del proveedor.
	// Se muestra un indicador de carga, sin efectos secundarios.
	DecisionInitializing Decision = iota
	// DecisionAuthError: el proveedor reporta un error de configuración y no
	// hay usuario. Se muestra el error al operador; no se redirige, porque una
	// redirección lo ocultaría.
	DecisionAuthError
	// DecisionUnauthenticated: carga terminada, sin error y sin usuario.
	// Dispara una única navegación al login.
	DecisionUnauthenticated
	// DecisionUnauthorized: hay usuario pero su rol no está en el conjunto
	// requerido. Se muestra acceso denegado nombrando rol actual y requeridos;
	// no se navega, para que el mensaje sea visible.
	DecisionUnauthorized
	// DecisionAuthorized: ninguna de las anteriores aplica; se renderiza el
	// contenido protegido sin cambios.
	DecisionAuthorized
)

// String devuelve el nombre de la decisión para logs y respuestas.
func (d Decision) String() string {
	switch d {
	case DecisionInitializing:
		return "initializing"
	case DecisionAuthError:
		return "auth_error"
	case DecisionUnauthenticated:
		return "unauthenticated"
	case DecisionUnauthorized:
		return "unauthorized"
	case DecisionAuthorized:
		return "authorized"
	}
	return "unknown"
}

// Evaluate aplica la máquina de estados de arriba hacia abajo; gana la primera
// coincidencia. requiredRoles vacío significa que basta con estar autenticado.
func Evaluate(snap IdentitySnapshot, requiredRoles []string) Decision {
	if snap.Loading {
		return DecisionInitializing
	}
	if snap.Err != "" && snap.User == nil {
		return DecisionAuthError
	}
	if snap.User == nil {
		return DecisionUnauthenticated
	}
	if len(requiredRoles) > 0 && !containsRole(requiredRoles, snap.Role) {
		return DecisionUnauthorized
	}
	return DecisionAuthorized
}

func containsRole(roles []string, role string) bool {
	if role == "" {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Provider es el contrato de suscripción del proveedor de identidad:
// entrega snapshots por push y devuelve una función para cancelar.
type Provider interface {
	Subscribe(fn func(IdentitySnapshot)) (cancel func())
}

// Guard envuelve una página protegida: se suscribe al proveedor, reevalúa la
// decisión en cada cambio de snapshot y dispara la navegación al login a lo
// sumo una vez por entrada a Unauthenticated. El flag de navegación se rearma
// en la transición a Authorized, de modo que un cierre de sesión externo
// vuelve a redirigir. Close libera la suscripción (desmontaje) para que un
// guard obsoleto jamás navegue.
type Guard struct {
	requiredRoles []string
	navigate      func()

	mu        sync.Mutex
	observed  bool // llegó al menos un snapshot
	snap      IdentitySnapshot
	navigated bool
	cancel    func()
	closed    bool
}

// NewGuard construye un guard para el conjunto de roles requeridos.
// navigate es el callback de redirección al login; puede ser nil.
func NewGuard(requiredRoles []string, navigate func()) *Guard {
	return &Guard{requiredRoles: requiredRoles, navigate: navigate}
}

// Bind suscribe el guard al proveedor. Los snapshots ya publicados antes del
// Bind no se observan; el estado inicial es Initializing hasta el primer push.
func (g *Guard) Bind(p Provider) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()
	cancel := p.Subscribe(g.onSnapshot)
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		cancel()
		return
	}
	g.cancel = cancel
	g.mu.Unlock()
}

func (g *Guard) onSnapshot(snap IdentitySnapshot) {
	var fire func()

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.observed = true
	g.snap = snap

	switch Evaluate(snap, g.requiredRoles) {
	case DecisionUnauthenticated:
		if !g.navigated {
			g.navigated = true
			fire = g.navigate
		}
	case DecisionAuthorized:
		// Sesión genuina: rearmar para un eventual sign-out posterior.
		g.navigated = false
	}
	g.mu.Unlock()

	if fire != nil {
		fire()
	}
}

// Decision devuelve la decisión vigente. Antes de la primera observación del
// proveedor la decisión es Initializing.
func (g *Guard) Decision() Decision {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.observed {
		return DecisionInitializing
	}
	return Evaluate(g.snap, g.requiredRoles)
}

// Snapshot devuelve el último snapshot observado.
func (g *Guard) Snapshot() IdentitySnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snap
}

// RequiredRoles devuelve los roles que exige la página protegida.
func (g *Guard) RequiredRoles() []string {
	out := make([]string, len(g.requiredRoles))
	copy(out, g.requiredRoles)
	return out
}

// Close libera la suscripción al proveedor. Tras Close no se procesan más
// snapshots ni se dispara navegación alguna.
func (g *Guard) Close() {
	g.mu.Lock()
	cancel := g.cancel
	g.cancel = nil
	g.closed = true
	g.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
