package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tutu-catalog/internal/application/dto"
	"github.com/jhoicas/tutu-catalog/internal/domain"
	domaincatalog "github.com/jhoicas/tutu-catalog/internal/domain/catalog"
	"github.com/jhoicas/tutu-catalog/internal/domain/entity"
	"github.com/jhoicas/tutu-catalog/internal/domain/repository"
)

// QueryUseCase responde el listado filtrado del catálogo agrupado en familias
// y la proyección de types por categoría. Solo lectura.
type QueryUseCase struct {
	products repository.ProductRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(products repository.ProductRepository) *QueryUseCase {
	return &QueryUseCase{products: products}
}

// List aplica los filtros presentes (AND) sobre las filas planas y las
// reagrupa en árboles padre→hijos. Un hijo cuyo padre quedó filtrado fuera
// no aparece en el resultado.
func (uc *QueryUseCase) List(in dto.CatalogFilterRequest) (*dto.CatalogListResponse, error) {
	filter := entity.ProductFilter{
		Category: in.Category,
		Gender:   in.Gender,
		Type:     in.Type,
		Color:    in.Color,
	}
	var err error
	if filter.MinPrice, err = parsePrice(in.MinPrice); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = parsePrice(in.MaxPrice); err != nil {
		return nil, err
	}

	rows, err := uc.products.ListFiltered(filter)
	if err != nil {
		return nil, err
	}

	families := domaincatalog.BuildFamilies(rows)
	items := make([]dto.FamilyResponse, 0, len(families))
	for _, f := range families {
		fam := dto.FamilyResponse{
			Parent:   *toProductResponse(&f.Parent),
			Children: make([]dto.ProductResponse, 0, len(f.Children)),
		}
		for i := range f.Children {
			fam.Children = append(fam.Children, *toProductResponse(&f.Children[i]))
		}
		items = append(items, fam)
	}
	return &dto.CatalogListResponse{Items: items}, nil
}

// DistinctTypes devuelve los types registrados para una categoría (para poblar filtros).
func (uc *QueryUseCase) DistinctTypes(category string) (*dto.TypeListResponse, error) {
	if category == "" {
		return nil, domain.ErrInvalidInput
	}
	types, err := uc.products.DistinctTypes(category)
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []string{}
	}
	return &dto.TypeListResponse{Category: category, Types: types}, nil
}

func parsePrice(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	return &d, nil
}
