package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elparadero/inventario-api/internal/domain/entity"
	"github.com/elparadero/inventario-api/internal/domain/rbac"
)

// La tabla de permisos es total y determinista: admin puede todo, empleado
// solo consultar y agregar, sin sesión se niega todo.
func TestCan_TablaCompleta(t *testing.T) {
	cases := []struct {
		role     string
		action   rbac.Action
		expected bool
	}{
		{entity.RoleAdmin, rbac.ActionView, true},
		{entity.RoleAdmin, rbac.ActionAdd, true},
		{entity.RoleAdmin, rbac.ActionEdit, true},
		{entity.RoleAdmin, rbac.ActionDelete, true},

		{entity.RoleEmpleado, rbac.ActionView, true},
		{entity.RoleEmpleado, rbac.ActionAdd, true},
		{entity.RoleEmpleado, rbac.ActionEdit, false},
		{entity.RoleEmpleado, rbac.ActionDelete, false},
	}
	for _, tc := range cases {
		got := rbac.Can(tc.role, tc.action)
		assert.Equal(t, tc.expected, got, "rol %q acción %q", tc.role, tc.action)
	}
}

func TestCan_SinSesionNiegaTodo(t *testing.T) {
	for _, action := range rbac.Actions() {
		assert.False(t, rbac.Can("", action), "sin rol debe negar %q", action)
	}
}

func TestCan_RolDesconocidoNiegaTodo(t *testing.T) {
	for _, action := range rbac.Actions() {
		assert.False(t, rbac.Can("gerente", action), "rol desconocido debe negar %q", action)
	}
}

// Llamar Can repetidamente con los mismos argumentos siempre devuelve lo mismo.
func TestCan_Determinista(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.True(t, rbac.Can(entity.RoleAdmin, rbac.ActionDelete))
		assert.False(t, rbac.Can(entity.RoleEmpleado, rbac.ActionDelete))
	}
}
