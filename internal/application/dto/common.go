package dto

import "encoding/json"

// PageRequest paginación 1-based para listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Default aplica página 1 y el límite por defecto del recurso si faltan valores.
func (p *PageRequest) Default(defaultLimit int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
}

// Offset calcula el desplazamiento SQL: (page-1)*limit.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPageResponse construye los metadatos a partir del total de filas.
func NewPageResponse(page, limit, total int) PageResponse {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PageResponse{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// MessageResponse respuesta mínima con solo un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// OptionalID campo FK con detección de presencia en el JSON.
// A diferencia de un *string, distingue "ausente" de "null": en updates,
// un FK presente (aunque sea null) sobreescribe el valor almacenado,
// mientras que un FK ausente lo preserva.
type OptionalID struct {
	Present bool
	Value   *string
}

// UnmarshalJSON marca el campo como presente; null deja Value en nil.
func (o *OptionalID) UnmarshalJSON(b []byte) error {
	o.Present = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}
