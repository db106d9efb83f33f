package catalog

import (
	"github.com/jhoicas/tutu-catalog/internal/application/dto"
	"github.com/jhoicas/tutu-catalog/internal/domain"
	"github.com/jhoicas/tutu-catalog/internal/domain/repository"
)

// DetailUseCase resuelve un producto con su contexto: padre (si es variante),
// miembros de su familia y líneas talla/cantidad. Solo lectura.
type DetailUseCase struct {
	products repository.ProductRepository
	sizes    repository.SizeStockRepository
}

// NewDetailUseCase construye el caso de uso.
func NewDetailUseCase(products repository.ProductRepository, sizes repository.SizeStockRepository) *DetailUseCase {
	return &DetailUseCase{products: products, sizes: sizes}
}

// Get devuelve el producto pedido. Id inexistente es domain.ErrNotFound,
// distinto de una falla del store. Family lista todas las filas cuyo parent_id
// es el id de familia (padre si existe, si no el propio id): cuando el producto
// consultado es una variante, él mismo viene incluido en Family — política
// deliberada y cubierta por tests.
func (uc *DetailUseCase) Get(id int64) (*dto.ProductDetailResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.ProductDetailResponse{Product: *toProductResponse(product)}

	if product.ParentID != nil {
		parent, err := uc.products.GetByID(*product.ParentID)
		if err != nil {
			return nil, err
		}
		out.Parent = toProductResponse(parent)
	}

	family, err := uc.products.ListByParent(product.FamilyID())
	if err != nil {
		return nil, err
	}
	out.Family = make([]dto.ProductResponse, 0, len(family))
	for i := range family {
		out.Family = append(out.Family, *toProductResponse(&family[i]))
	}

	sizes, err := uc.sizes.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	out.Sizes = make([]dto.SizeStockResponse, 0, len(sizes))
	for _, s := range sizes {
		out.Sizes = append(out.Sizes, dto.SizeStockResponse{Size: s.Size, Quantity: s.Quantity})
	}
	return out, nil
}
