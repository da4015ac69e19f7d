package authorizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/papelsur/cartera-api/internal/domain"
)

func TestResolveScope_AdminVeTodo(t *testing.T) {
	scope := ResolveScope(domain.RolAdmin, "")

	assert.True(t, scope.All)
	assert.False(t, scope.Vacio())
}

func TestResolveScope_SupervisorVeTodo(t *testing.T) {
	scope := ResolveScope(domain.RolSupervisor, "PEDRO MARTINEZ")

	assert.True(t, scope.All)
}

func TestResolveScope_ComercialLimitadoASuVendedor(t *testing.T) {
	scope := ResolveScope(domain.RolComercial, "PEDRO MARTINEZ")

	assert.False(t, scope.All)
	assert.Equal(t, "PEDRO MARTINEZ", scope.Vendedor)
}

func TestResolveScope_ConsultaSinVendedor(t *testing.T) {
	// Rol restringido sin vendedor asignado: cero filas, nunca todas.
	scope := ResolveScope(domain.RolConsulta, "")

	assert.False(t, scope.All)
	assert.True(t, scope.Vacio())
}

func TestResolveScope_RolDesconocido(t *testing.T) {
	scope := ResolveScope(99, "PEDRO MARTINEZ")

	assert.True(t, scope.Vacio())
}

func TestPuedeVer(t *testing.T) {
	vendedor := "PEDRO MARTINEZ"
	otro := "ANA GOMEZ"

	tests := []struct {
		name     string
		scope    domain.VendorScope
		vendedor *string
		want     bool
	}{
		{"alcance total ve todo", domain.ScopeTotal, &vendedor, true},
		{"alcance total ve filas sin vendedor", domain.ScopeTotal, nil, true},
		{"vendedor propio", domain.VendorScope{Vendedor: vendedor}, &vendedor, true},
		{"vendedor ajeno", domain.VendorScope{Vendedor: vendedor}, &otro, false},
		{"fila sin vendedor con alcance restringido", domain.VendorScope{Vendedor: vendedor}, nil, false},
		{"alcance vacío no ve nada", domain.VendorScope{}, &vendedor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PuedeVer(tt.scope, tt.vendedor))
		})
	}
}
