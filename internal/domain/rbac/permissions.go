// Package rbac define la tabla de permisos por rol. La decisión es una función
// pura de (rol, acción): no consulta la base de datos ni tiene efectos.
package rbac

import "github.com/elparadero/inventario-api/internal/domain/entity"

// Action es una acción sobre un recurso. El conjunto es cerrado: agregar un rol
// o una acción implica extender la tabla, no ramificar lógica.
type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Actions devuelve el conjunto cerrado de acciones.
func Actions() []Action {
	return []Action{ActionView, ActionAdd, ActionEdit, ActionDelete}
}

// tabla de permisos: rol → acciones permitidas.
var permissions = map[string]map[Action]bool{
	entity.RoleAdmin: {
		ActionView:   true,
		ActionAdd:    true,
		ActionEdit:   true,
		ActionDelete: true,
	},
	entity.RoleEmpleado: {
		ActionView: true,
		ActionAdd:  true,
	},
}

// Can decide si el rol puede ejecutar la acción. Un rol vacío o desconocido
// (sin sesión) niega todo.
func Can(role string, action Action) bool {
	allowed, ok := permissions[role]
	if !ok {
		return false
	}
	return allowed[action]
}
