package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeSALE        = "SALE"
	MovementTypePURCHASE    = "PURCHASE"
	MovementTypeADJUSTMENT  = "ADJUSTMENT"
	MovementTypeTRANSFERIN  = "TRANSFER_IN"
	MovementTypeTRANSFEROUT = "TRANSFER_OUT"
	MovementTypeRETURN      = "RETURN"
)

// ValidMovementType indica si el tipo pertenece al enumerado de movimientos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeSALE, MovementTypePURCHASE, MovementTypeADJUSTMENT,
		MovementTypeTRANSFERIN, MovementTypeTRANSFEROUT, MovementTypeRETURN:
		return true
	}
	return false
}

// StockMovement representa un cambio firmado de cantidad sobre un par
// (producto, sucursal). El log de movimientos es append-only: nunca se
// actualiza ni se borra, y la suma de Quantity por par reconstruye el
// StockRecord.Quantity actual.
type StockMovement struct {
	ID          string
	ProductID   string
	BranchID    string
	Type        string // SALE, PURCHASE, ADJUSTMENT, TRANSFER_IN, TRANSFER_OUT, RETURN
	Quantity    int64  // delta firmado: negativo salida, positivo entrada
	ReferenceID *string // venta, traslado, etc. que originó el movimiento
	CreatedBy   string  // UserID
	CreatedAt   time.Time
}
