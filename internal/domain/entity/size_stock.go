package entity

// SizeStock línea de inventario: existencias de una talla para un producto.
// No existe sin su Product; se crea solo en la misma transacción que él.
type SizeStock struct {
	ProductID int64
	Size      string
	Quantity  int // nunca negativo
}
