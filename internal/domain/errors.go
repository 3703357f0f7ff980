package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrInvalidInput y ErrInvalidPrice son errores del cliente y nunca se
// reintentan; cualquier otro error que salga de la persistencia es un error
// del servidor y se propaga envuelto, nunca tumba el proceso.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInvalidPrice = errors.New("precio inválido")
)
