package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UploadProductRequest entrada para subir un producto al catálogo.
// El formulario trae el sub-campo de type según la categoría: para "hat" el
// campo depende del género (hat_type_men / hat_type_women), para "accessory"
// viene en accessory_type. Sizes y Quantities son listas paralelas.
// ImageFilename/ImagePath los rellena el handler tras guardar la imagen.
type UploadProductRequest struct {
	Category      string `form:"category" validate:"required"`
	Gender        string `form:"gender"` // vacío => unisex
	HatTypeMen    string `form:"hat_type_men"`
	HatTypeWomen  string `form:"hat_type_women"`
	AccessoryType string `form:"accessory_type"`
	Name          string `form:"name" validate:"required,min=1,max=200"`
	Color         string `form:"color"`
	Details       string `form:"details"`
	Price         string `form:"price"` // decimal en texto, ej. "19.90"

	Sizes      []string `form:"sizes"`
	Quantities []int    `form:"quantities"`

	ImageFilename string `form:"-"`
	ImagePath     string `form:"-"`
}

// CatalogFilterRequest filtros opcionales del listado (query params).
// Min/MaxPrice llegan como texto y se validan en el caso de uso.
type CatalogFilterRequest struct {
	Category string `query:"category"`
	Gender   string `query:"gender"`
	Type     string `query:"type"`
	Color    string `query:"color"`
	MinPrice string `query:"min_price"`
	MaxPrice string `query:"max_price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Category      string          `json:"category"`
	Gender        string          `json:"gender"`
	Type          string          `json:"type"`
	Name          string          `json:"name"`
	Color         string          `json:"color,omitempty"`
	Details       string          `json:"details,omitempty"`
	Price         decimal.Decimal `json:"price"`
	ImageFilename string          `json:"image_filename"`
	ImagePath     string          `json:"image_path"`
	ParentID      *int64          `json:"parent_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SizeStockResponse línea talla/cantidad de un producto.
type SizeStockResponse struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// FamilyResponse un padre con sus variantes hijas.
type FamilyResponse struct {
	Parent   ProductResponse   `json:"parent"`
	Children []ProductResponse `json:"children"`
}

// CatalogListResponse listado del catálogo agrupado en familias.
type CatalogListResponse struct {
	Items []FamilyResponse `json:"items"`
}

// TypeListResponse proyección de types de una categoría (opciones de filtro).
type TypeListResponse struct {
	Category string   `json:"category"`
	Types    []string `json:"types"`
}

// ProductDetailResponse detalle de un producto con su contexto familiar e inventario.
type ProductDetailResponse struct {
	Product ProductResponse     `json:"product"`
	Parent  *ProductResponse    `json:"parent"`
	Family  []ProductResponse   `json:"family"`
	Sizes   []SizeStockResponse `json:"sizes"`
}
