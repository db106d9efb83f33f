package catalog

import (
	"github.com/jhoicas/tutu-catalog/internal/domain"
	"github.com/jhoicas/tutu-catalog/internal/domain/repository"
)

// VariantResolver clasifica un ítem entrante como padre nuevo o variante de un
// padre existente, a partir de la tupla de identidad (category, gender, type, name).
// Solo lectura, sin efectos secundarios.
type VariantResolver struct {
	products repository.ProductRepository
}

// NewVariantResolver construye el resolver sobre el repositorio dado
// (normalmente el atado a la transacción de escritura en curso).
func NewVariantResolver(products repository.ProductRepository) *VariantResolver {
	return &VariantResolver{products: products}
}

// Resolve devuelve nil si la tupla no tiene padre (la fila nueva será raíz) o
// el id del padre si ya existe. La búsqueda se limita a filas con parent_id
// nulo y ante duplicados gana el menor id, así decisiones repetidas sobre el
// mismo estado son idénticas. Rechaza un padre que a su vez tenga padre: el
// árbol es de un solo nivel.
func (r *VariantResolver) Resolve(category, gender, ptype, name string) (*int64, error) {
	parent, err := r.products.FindParentByIdentity(category, gender, ptype, name)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, nil
	}
	if parent.ParentID != nil {
		return nil, domain.ErrInvalidInput
	}
	id := parent.ID
	return &id, nil
}
