package entity

import "time"

// Customer representa um cliente do técnico (dono = UserID).
type Customer struct {
	ID        string
	UserID    string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
