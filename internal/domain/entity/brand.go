package entity

import "time"

// Brand representa una marca de productos.
type Brand struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
