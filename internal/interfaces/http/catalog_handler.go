package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tutu-catalog/internal/application/catalog"
	"github.com/jhoicas/tutu-catalog/internal/application/dto"
	"github.com/jhoicas/tutu-catalog/internal/domain"
)

// CatalogHandler maneja las lecturas públicas del catálogo (galería y detalle).
type CatalogHandler struct {
	queryUC  *catalog.QueryUseCase
	detailUC *catalog.DetailUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(queryUC *catalog.QueryUseCase, detailUC *catalog.DetailUseCase) *CatalogHandler {
	return &CatalogHandler{queryUC: queryUC, detailUC: detailUC}
}

// List godoc
// @Summary      Listar catálogo agrupado en familias
// @Tags         catalog
// @Produce      json
// @Param        category   query  string  false  "hat | accessory"
// @Param        gender     query  string  false  "men | women | unisex"
// @Param        type       query  string  false  "subestilo"
// @Param        color      query  string  false  "subcadena, sin distinguir mayúsculas"
// @Param        min_price  query  string  false  "precio mínimo"
// @Param        max_price  query  string  false  "precio máximo"
// @Success      200  {object}  dto.CatalogListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var in dto.CatalogFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.queryUC.List(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min_price/max_price deben ser decimales no negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Types godoc
// @Summary      Types registrados para una categoría
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  true  "hat | accessory"
// @Success      200  {object}  dto.TypeListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog/types [get]
func (h *CatalogHandler) Types(c *fiber.Ctx) error {
	out, err := h.queryUC.DistinctTypes(c.Query("category"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de un producto con padre, familia y tallas
// @Tags         catalog
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{id} [get]
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.detailUC.Get(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
