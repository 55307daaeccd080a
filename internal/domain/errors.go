package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnknownProduct = errors.New("producto desconocido")
	ErrNoActiveStore  = errors.New("no hay almacén activo")
	ErrStoreNotFound  = errors.New("almacén no encontrado")
	ErrInvalidImport  = errors.New("archivo de importación inválido")
	ErrEmptySheet     = errors.New("el archivo Excel está vacío")
)
