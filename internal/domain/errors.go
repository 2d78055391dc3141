package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrSelfDeletion       = errors.New("no puedes eliminar tu propio usuario")
	ErrSelfDeactivation   = errors.New("no puedes desactivar tu propio usuario")
	ErrInvalidFormat      = errors.New("formato de archivo inválido")
	ErrImportNotConfirmed = errors.New("la importación requiere confirmación explícita")
)
