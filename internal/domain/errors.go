package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Motor de comisiones y parcelas.
	ErrInvalidTierList    = errors.New("lista de faixas inválida")
	ErrInvalidRule        = errors.New("regla de comisión inválida")
	ErrInvalidPaymentTerm = errors.New("condición de pago inválida")
	ErrInstallmentIndex   = errors.New("índice de parcela fuera de rango")
	ErrNegativeLine       = errors.New("línea con cantidad o valor negativo")
)
