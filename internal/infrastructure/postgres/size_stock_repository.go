package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tutu-catalog/internal/domain"
	"github.com/jhoicas/tutu-catalog/internal/domain/entity"
	"github.com/jhoicas/tutu-catalog/internal/domain/repository"
)

var _ repository.SizeStockRepository = (*SizeStockRepo)(nil)

// SizeStockRepo implementación de SizeStockRepository sobre PostgreSQL (usable con pool o tx).
type SizeStockRepo struct {
	q Querier
}

// NewSizeStockRepository construye el adaptador de tallas. Pasar pool o tx (Querier).
func NewSizeStockRepository(q Querier) *SizeStockRepo {
	return &SizeStockRepo{q: q}
}

// Create persiste una línea talla/cantidad para un producto.
func (r *SizeStockRepo) Create(s *entity.SizeStock) error {
	query := `
		INSERT INTO size_stock (product_id, size, quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, s.ProductID, s.Size, s.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert size stock: %w", err)
	}
	return nil
}

// ListByProduct devuelve las líneas talla/cantidad de un producto.
func (r *SizeStockRepo) ListByProduct(productID int64) ([]entity.SizeStock, error) {
	query := `
		SELECT product_id, size, quantity
		FROM size_stock WHERE product_id = $1 ORDER BY size`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list size stock: %w", err)
	}
	defer rows.Close()
	var list []entity.SizeStock
	for rows.Next() {
		var s entity.SizeStock
		if err := rows.Scan(&s.ProductID, &s.Size, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan size stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// DeleteByProduct elimina todas las líneas de un producto (misma tx que el borrado del producto).
func (r *SizeStockRepo) DeleteByProduct(productID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM size_stock WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete size stock: %w", err)
	}
	return nil
}
