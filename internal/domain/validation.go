package domain

import (
	"sort"
	"strings"
)

// ValidationErrors acumula errores de validación por campo. Se devuelve (nunca
// se lanza) desde los casos de uso de usuarios; el caller muestra cada mensaje
// junto al campo correspondiente y no ocurre ninguna mutación.
type ValidationErrors map[string]string

// Error implementa error con los campos en orden estable.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validación fallida"
	}
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v[k])
	}
	return b.String()
}

// Has indica si hay un error registrado para el campo.
func (v ValidationErrors) Has(field string) bool {
	_, ok := v[field]
	return ok
}
