package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brewflow-pos/internal/application/identity"
	"github.com/jhoicas/brewflow-pos/internal/domain/access"
)

// El proveedor arranca en Loading: todavía no observó nada.
func TestProvider_EstadoInicialEsLoading(t *testing.T) {
	p := identity.NewProvider()
	assert.True(t, p.Snapshot().Loading)
}

// El suscriptor recibe el snapshot vigente al suscribirse y cada cambio posterior.
func TestProvider_EntregaSnapshotInicialYCambios(t *testing.T) {
	p := identity.NewProvider()
	var recibidos []access.IdentitySnapshot
	cancel := p.Subscribe(func(s access.IdentitySnapshot) {
		recibidos = append(recibidos, s)
	})
	defer cancel()

	p.SetSession(access.Identity{ID: "u1", Name: "Ana"}, "cashier")
	p.ClearSession()

	require.Len(t, recibidos, 3)
	assert.True(t, recibidos[0].Loading, "el primer push es el estado vigente (loading)")
	require.NotNil(t, recibidos[1].User)
	assert.Equal(t, "cashier", recibidos[1].Role)
	assert.Nil(t, recibidos[2].User)
}

// Tras cancelar, el suscriptor no recibe más publicaciones; cancelar dos veces es inocuo.
func TestProvider_CancelDetieneNotificaciones(t *testing.T) {
	p := identity.NewProvider()
	var n int
	cancel := p.Subscribe(func(access.IdentitySnapshot) { n++ })
	require.Equal(t, 1, n)

	cancel()
	cancel()
	p.SetError("boom")

	assert.Equal(t, 1, n)
	assert.Equal(t, "boom", p.Snapshot().Err)
}

// Integración con el guard: el flujo login → logout produce la secuencia de
// decisiones Initializing → Unauthenticated → Authorized → Unauthenticated.
func TestProvider_FlujoCompletoConGuard(t *testing.T) {
	p := identity.NewProvider()
	var navegaciones int
	g := access.NewGuard([]string{"cashier", "manager"}, func() { navegaciones++ })
	g.Bind(p)

	assert.Equal(t, access.DecisionInitializing, g.Decision())

	p.ClearSession()
	assert.Equal(t, access.DecisionUnauthenticated, g.Decision())
	assert.Equal(t, 1, navegaciones)

	p.SetSession(access.Identity{ID: "u1"}, "manager")
	assert.Equal(t, access.DecisionAuthorized, g.Decision())

	p.ClearSession()
	assert.Equal(t, 2, navegaciones, "sign-out externo vuelve a disparar la navegación")

	g.Close()
	p.SetSession(access.Identity{ID: "u1"}, "manager")
	assert.Equal(t, access.DecisionUnauthenticated, g.Decision(), "guard cerrado queda congelado")
}
