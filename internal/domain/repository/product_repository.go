package repository

import "github.com/jhoicas/tutu-catalog/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create inserta el producto y asigna p.ID desde la secuencia del store.
	Create(p *entity.Product) error
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(id int64) (*entity.Product, error)
	// FindParentByIdentity busca un padre (parent_id IS NULL) que coincida
	// exactamente con la tupla de identidad. Ante duplicados devuelve el de
	// menor id. Devuelve (nil, nil) si no hay coincidencia.
	FindParentByIdentity(category, gender, ptype, name string) (*entity.Product, error)
	// ListFiltered devuelve las filas planas que cumplen el filtro, ordenadas por id.
	ListFiltered(f entity.ProductFilter) ([]entity.Product, error)
	// ListByParent devuelve todas las filas cuyo parent_id es parentID, ordenadas por id.
	ListByParent(parentID int64) ([]entity.Product, error)
	// DistinctTypes proyección deduplicada de type para una categoría.
	DistinctTypes(category string) ([]string, error)
	Delete(id int64) error
}
