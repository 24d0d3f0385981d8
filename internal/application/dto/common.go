package dto

// Límites de paginación comunes a todos los listados.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize acota Limit a [1, MaxPageLimit] (0 o negativo usa DefaultPageLimit) y Offset a >= 0.
func (p PageRequest) Normalize() PageRequest {
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultPageLimit
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Response metadatos de la página pedida.
func (p PageRequest) Response() PageResponse {
	return PageResponse{Limit: p.Limit, Offset: p.Offset}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP. Code es estable para el cliente; Message es informativo.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
