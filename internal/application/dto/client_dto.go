package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
