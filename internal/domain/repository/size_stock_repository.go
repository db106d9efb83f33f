package repository

import "github.com/jhoicas/tutu-catalog/internal/domain/entity"

// SizeStockRepository define el puerto de persistencia para SizeStock (DIP).
// Las escrituras solo ocurren dentro de la transacción del producto dueño.
type SizeStockRepository interface {
	Create(s *entity.SizeStock) error
	ListByProduct(productID int64) ([]entity.SizeStock, error)
	DeleteByProduct(productID int64) error
}
