package catalog

import (
	"context"
	"io"

	"github.com/jhoicas/tutu-catalog/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para la escritura producto + tallas y para el borrado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		sizeRepo repository.SizeStockRepository,
	) error) error
}

// ImageStorage puerto del colaborador de uploads: guarda el asset y devuelve
// el nombre generado y la ruta de almacenamiento. El catálogo nunca genera
// ni valida nombres de archivo.
type ImageStorage interface {
	Save(originalName string, r io.Reader) (filename, path string, err error)
}
