package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brewflow-pos/internal/domain/access"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func usuario(role string) access.IdentitySnapshot {
	return access.IdentitySnapshot{
		User: &access.Identity{ID: "u1", Email: "ana@brewflow.dev", Name: "Ana"},
		Role: role,
	}
}

// fakeProvider implementa access.Provider con publicación manual.
type fakeProvider struct {
	subs      []func(access.IdentitySnapshot)
	cancelled int
}

func (p *fakeProvider) Subscribe(fn func(access.IdentitySnapshot)) func() {
	p.subs = append(p.subs, fn)
	return func() { p.cancelled++ }
}

func (p *fakeProvider) push(snap access.IdentitySnapshot) {
	for _, fn := range p.subs {
		fn(snap)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate (función pura)
// ──────────────────────────────────────────────────────────────────────────────

// loading=true domina sobre todo lo demás, incluso con usuario y error presentes.
func TestEvaluate_LoadingSiempreEsInitializing(t *testing.T) {
	casos := []access.IdentitySnapshot{
		{Loading: true},
		{Loading: true, Err: "firebase mal configurado"},
		{Loading: true, User: &access.Identity{ID: "u1"}, Role: "manager"},
	}
	for _, snap := range casos {
		assert.Equal(t, access.DecisionInitializing, access.Evaluate(snap, []string{"manager"}))
	}
}

// Error de configuración sin usuario ni carga → AuthError (no Unauthenticated).
func TestEvaluate_ErrorDeProveedorSinUsuario(t *testing.T) {
	snap := access.IdentitySnapshot{Err: "api key inválida"}
	assert.Equal(t, access.DecisionAuthError, access.Evaluate(snap, nil))
}

// Si hay usuario, un error residual del proveedor no bloquea la sesión.
func TestEvaluate_ErrorConUsuarioNoEsAuthError(t *testing.T) {
	snap := usuario("manager")
	snap.Err = "warning previo"
	assert.Equal(t, access.DecisionAuthorized, access.Evaluate(snap, []string{"manager"}))
}

func TestEvaluate_SinUsuarioEsUnauthenticated(t *testing.T) {
	assert.Equal(t, access.DecisionUnauthenticated,
		access.Evaluate(access.IdentitySnapshot{}, []string{"cashier"}))
}

// Cajero intentando entrar a una página de gerencia → Unauthorized.
func TestEvaluate_RolInsuficiente(t *testing.T) {
	assert.Equal(t, access.DecisionUnauthorized,
		access.Evaluate(usuario("cashier"), []string{"manager"}))
}

// Gerente en la página POS (cashier o manager) → Authorized.
func TestEvaluate_RolEnConjuntoRequerido(t *testing.T) {
	assert.Equal(t, access.DecisionAuthorized,
		access.Evaluate(usuario("manager"), []string{"cashier", "manager"}))
}

// Sin roles requeridos basta con estar autenticado.
func TestEvaluate_SinRolesRequeridos(t *testing.T) {
	assert.Equal(t, access.DecisionAuthorized, access.Evaluate(usuario(""), nil))
}

// Usuario sin rol frente a una página con roles requeridos → Unauthorized.
func TestEvaluate_UsuarioSinRol(t *testing.T) {
	assert.Equal(t, access.DecisionUnauthorized,
		access.Evaluate(usuario(""), []string{"cashier"}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard (suscripción + navegación one-shot)
// ──────────────────────────────────────────────────────────────────────────────

// Antes del primer snapshot la decisión es Initializing.
func TestGuard_SinObservacionEsInitializing(t *testing.T) {
	g := access.NewGuard([]string{"cashier"}, nil)
	assert.Equal(t, access.DecisionInitializing, g.Decision())
}

// La navegación al login dispara exactamente una vez aunque lleguen
// snapshots Unauthenticated repetidos (re-render con estado estable).
func TestGuard_NavegacionDisparaUnaSolaVez(t *testing.T) {
	var navegaciones int
	p := &fakeProvider{}
	g := access.NewGuard(nil, func() { navegaciones++ })
	g.Bind(p)

	p.push(access.IdentitySnapshot{Loading: true})
	assert.Equal(t, 0, navegaciones, "Initializing no debe navegar")

	p.push(access.IdentitySnapshot{})
	p.push(access.IdentitySnapshot{})
	p.push(access.IdentitySnapshot{})

	assert.Equal(t, access.DecisionUnauthenticated, g.Decision())
	assert.Equal(t, 1, navegaciones, "la navegación debe ser one-shot")
}

// Un parpadeo por Initializing no rearma el flag: volver a Unauthenticated
// sin haber pasado por Authorized no vuelve a navegar.
func TestGuard_ParpadeoDeCargaNoRearma(t *testing.T) {
	var navegaciones int
	p := &fakeProvider{}
	g := access.NewGuard(nil, func() { navegaciones++ })
	g.Bind(p)

	p.push(access.IdentitySnapshot{})
	p.push(access.IdentitySnapshot{Loading: true})
	p.push(access.IdentitySnapshot{})

	assert.Equal(t, 1, navegaciones)
}

// Tras una sesión genuina (Authorized), un sign-out externo debe volver a redirigir.
func TestGuard_SignOutExternoRearmaNavegacion(t *testing.T) {
	var navegaciones int
	p := &fakeProvider{}
	g := access.NewGuard([]string{"cashier", "manager"}, func() { navegaciones++ })
	g.Bind(p)

	p.push(access.IdentitySnapshot{})
	require.Equal(t, 1, navegaciones)

	p.push(usuario("cashier"))
	assert.Equal(t, access.DecisionAuthorized, g.Decision())

	p.push(access.IdentitySnapshot{}) // sign-out
	assert.Equal(t, 2, navegaciones, "re-entrada a Unauthenticated debe navegar de nuevo")
}

// AuthError no navega: forzar una redirección ocultaría el error al operador.
func TestGuard_AuthErrorNoNavega(t *testing.T) {
	var navegaciones int
	p := &fakeProvider{}
	g := access.NewGuard(nil, func() { navegaciones++ })
	g.Bind(p)

	p.push(access.IdentitySnapshot{Err: "configuración inválida"})

	assert.Equal(t, access.DecisionAuthError, g.Decision())
	assert.Equal(t, 0, navegaciones)
}

// Unauthorized tampoco navega: el usuario debe poder leer el acceso denegado.
func TestGuard_UnauthorizedNoNavega(t *testing.T) {
	var navegaciones int
	p := &fakeProvider{}
	g := access.NewGuard([]string{"manager"}, func() { navegaciones++ })
	g.Bind(p)

	p.push(usuario("cashier"))

	assert.Equal(t, access.DecisionUnauthorized, g.Decision())
	assert.Equal(t, 0, navegaciones)
}

// Close libera la suscripción: un snapshot posterior no cambia la decisión
// ni dispara navegación contra una página ya desmontada.
func TestGuard_CloseLiberaSuscripcion(t *testing.T) {
	var navegaciones int
	p := &fakeProvider{}
	g := access.NewGuard(nil, func() { navegaciones++ })
	g.Bind(p)

	p.push(usuario("cashier"))
	require.Equal(t, access.DecisionAuthorized, g.Decision())

	g.Close()
	assert.Equal(t, 1, p.cancelled, "Close debe cancelar la suscripción")

	p.push(access.IdentitySnapshot{}) // el proveedor aún no soltó la referencia
	assert.Equal(t, access.DecisionAuthorized, g.Decision(), "guard cerrado no procesa snapshots")
	assert.Equal(t, 0, navegaciones, "guard cerrado no debe navegar")
}
