package entity

import "time"

// Branch representa una sucursal o punto de venta donde se almacena inventario.
type Branch struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
