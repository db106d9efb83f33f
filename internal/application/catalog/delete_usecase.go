package catalog

import (
	"context"

	"github.com/jhoicas/tutu-catalog/internal/domain"
	"github.com/jhoicas/tutu-catalog/internal/domain/repository"
)

// DeleteUseCase borra un producto junto con sus líneas talla/cantidad en una
// sola transacción. La autorización (solo admin) la impone la capa HTTP; el
// contrato aquí es que el borrado nunca deja tallas huérfanas.
type DeleteUseCase struct {
	txRunner TxRunner
	products repository.ProductRepository
}

// NewDeleteUseCase construye el caso de uso.
func NewDeleteUseCase(txRunner TxRunner, products repository.ProductRepository) *DeleteUseCase {
	return &DeleteUseCase{txRunner: txRunner, products: products}
}

// Delete elimina producto + tallas atómicamente. Id inexistente es ErrNotFound.
// Si el producto era padre, sus variantes quedan promovidas a raíz por el
// ON DELETE SET NULL de parent_id, dentro de la misma unidad atómica.
func (uc *DeleteUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		sizeRepo repository.SizeStockRepository,
	) error {
		if err := sizeRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}
