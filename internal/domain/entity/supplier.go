package entity

import "time"

// Supplier representa un proveedor. Contact, Phone y Email son opcionales.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Phone     string
	Email     string
	CreatedAt time.Time
}
