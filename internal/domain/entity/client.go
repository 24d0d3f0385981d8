package entity

import "time"

// Client comprador al que el representante le vende en nombre de una pasta.
type Client struct {
	ID        string
	UserID    string
	Name      string
	Document  string // CPF/CNPJ, validado por dígitos verificadores
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
