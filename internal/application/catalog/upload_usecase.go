package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tutu-catalog/internal/application/dto"
	"github.com/jhoicas/tutu-catalog/internal/domain"
	"github.com/jhoicas/tutu-catalog/internal/domain/entity"
	"github.com/jhoicas/tutu-catalog/internal/domain/repository"
)

// UploadUseCase persiste de forma atómica un producto nuevo con sus líneas
// talla/cantidad. La decisión padre/variante, el insert del producto y los
// inserts de tallas ocurren en una sola transacción: o se confirma todo o no
// queda nada visible.
type UploadUseCase struct {
	txRunner TxRunner
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(txRunner TxRunner) *UploadUseCase {
	return &UploadUseCase{txRunner: txRunner}
}

// Upload valida el payload, resuelve padre/variante y escribe producto + tallas.
// La imagen ya fue guardada por el colaborador de uploads; aquí solo se persiste
// su referencia. Toda falla del store hace rollback completo.
func (uc *UploadUseCase) Upload(ctx context.Context, in dto.UploadProductRequest) (*dto.ProductResponse, error) {
	gender := in.Gender
	if gender == "" {
		gender = entity.GenderUnisex
	}
	ptype, err := resolveType(in, gender)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	switch gender {
	case entity.GenderMen, entity.GenderWomen, entity.GenderUnisex:
	default:
		return nil, domain.ErrInvalidInput
	}
	if len(in.Sizes) != len(in.Quantities) {
		return nil, domain.ErrInvalidInput
	}
	for i, size := range in.Sizes {
		if size == "" || in.Quantities[i] < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	price := decimal.Zero
	if in.Price != "" {
		price, err = decimal.NewFromString(in.Price)
		if err != nil || price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	product := &entity.Product{
		Category:      in.Category,
		Gender:        gender,
		Type:          ptype,
		Name:          in.Name,
		Color:         in.Color,
		Details:       in.Details,
		Price:         price,
		ImageFilename: in.ImageFilename,
		ImagePath:     in.ImagePath,
		CreatedAt:     time.Now(),
	}

	// Transacción única: resolver + insert producto + insert tallas.
	// El resolver corre dentro de la tx para que la búsqueda de identidad y el
	// insert compartan snapshot; la carrera residual de doble padre la corta el
	// índice único parcial (llega como ErrDuplicate, reintentable).
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		sizeRepo repository.SizeStockRepository,
	) error {
		parentID, err := NewVariantResolver(productRepo).Resolve(
			product.Category, product.Gender, product.Type, product.Name)
		if err != nil {
			return err
		}
		product.ParentID = parentID
		if err := productRepo.Create(product); err != nil {
			return err
		}
		for i, size := range in.Sizes {
			s := &entity.SizeStock{ProductID: product.ID, Size: size, Quantity: in.Quantities[i]}
			if err := sizeRepo.Create(s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// resolveType elige el sub-campo de type según categoría y género:
// "hat" usa hat_type_women para gender women y hat_type_men para el resto;
// "accessory" usa accessory_type. Categoría desconocida o type vacío es inválido.
func resolveType(in dto.UploadProductRequest, gender string) (string, error) {
	var ptype string
	switch in.Category {
	case entity.CategoryHat:
		if gender == entity.GenderWomen {
			ptype = in.HatTypeWomen
		} else {
			ptype = in.HatTypeMen
		}
	case entity.CategoryAccessory:
		ptype = in.AccessoryType
	default:
		return "", domain.ErrInvalidInput
	}
	if ptype == "" {
		return "", domain.ErrInvalidInput
	}
	return ptype, nil
}
