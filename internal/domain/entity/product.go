package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías y géneros válidos para Product.
const (
	CategoryHat       = "hat"
	CategoryAccessory = "accessory"

	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// Product representa una entrada del catálogo: un estilo padre (ParentID nil)
// o una variante hija de ese estilo (ParentID apunta al padre).
// Invariante: un hijo siempre referencia una fila cuyo propio ParentID es nil
// (un solo nivel, sin nietos).
type Product struct {
	ID            int64
	Category      string // hat, accessory
	Gender        string // men, women, unisex
	Type          string // subestilo dentro de la categoría (beanie, fedora, scarf...)
	Name          string
	Color         string
	Details       string
	Price         decimal.Decimal
	ImageFilename string // nombre generado por el colaborador de uploads
	ImagePath     string // ruta de almacenamiento, opaca para el catálogo
	ParentID      *int64
	CreatedAt     time.Time
}

// IsParent indica si el producto es un estilo canónico (raíz de familia).
func (p *Product) IsParent() bool {
	return p.ParentID == nil
}

// FamilyID devuelve el id de la familia: el padre si existe, si no el propio id.
func (p *Product) FamilyID() int64 {
	if p.ParentID != nil {
		return *p.ParentID
	}
	return p.ID
}

// ProductFilter filtros opcionales para el listado del catálogo.
// Cada campo presente restringe con AND; campo vacío/nil no filtra.
type ProductFilter struct {
	Category string
	Gender   string
	Type     string
	Color    string // subcadena, sin distinguir mayúsculas
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}
