package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tutu-catalog/internal/application/catalog"
	"github.com/jhoicas/tutu-catalog/internal/application/dto"
	"github.com/jhoicas/tutu-catalog/internal/domain"
)

// ProductHandler maneja la escritura del catálogo (subida y borrado, solo admin).
type ProductHandler struct {
	uploadUC *catalog.UploadUseCase
	deleteUC *catalog.DeleteUseCase
	storage  catalog.ImageStorage
}

// NewProductHandler construye el handler.
func NewProductHandler(uploadUC *catalog.UploadUseCase, deleteUC *catalog.DeleteUseCase, storage catalog.ImageStorage) *ProductHandler {
	return &ProductHandler{uploadUC: uploadUC, deleteUC: deleteUC, storage: storage}
}

// Upload godoc
// @Summary      Subir un producto (multipart: imagen + campos)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image       formData  file    true   "imagen del producto"
// @Param        category    formData  string  true   "hat | accessory"
// @Param        name        formData  string  true   "nombre del estilo"
// @Param        gender      formData  string  false  "men | women; vacío = unisex"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_IMAGE", Message: "la imagen es requerida"})
	}

	in := dto.UploadProductRequest{
		Category:      c.FormValue("category"),
		Gender:        c.FormValue("gender"),
		HatTypeMen:    c.FormValue("hat_type_men"),
		HatTypeWomen:  c.FormValue("hat_type_women"),
		AccessoryType: c.FormValue("accessory_type"),
		Name:          c.FormValue("name"),
		Color:         c.FormValue("color"),
		Details:       c.FormValue("details"),
		Price:         c.FormValue("price"),
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	in.Sizes = form.Value["sizes"]
	for _, q := range form.Value["quantities"] {
		n, err := strconv.Atoi(q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantities deben ser enteros"})
		}
		in.Quantities = append(in.Quantities, n)
	}

	// El colaborador de uploads guarda el asset antes de la escritura en BD;
	// el catálogo solo persiste la referencia (filename, path).
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: "no se pudo leer la imagen"})
	}
	defer file.Close()
	filename, path, err := h.storage.Save(fileHeader.Filename, file)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: "formato de imagen no soportado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	in.ImageFilename = filename
	in.ImagePath = path

	out, err := h.uploadUC.Upload(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payload inválido (identidad, tallas o precio)"})
		}
		if err == domain.ErrDuplicate {
			// Carrera de doble padre cortada por el índice único: reintentable.
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "conflicto al crear el padre, reintente la subida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Borrar un producto y sus tallas
// @Tags         products
// @Security     Bearer
// @Param        id   path  int  true  "ID del producto"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.deleteUC.Delete(c.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
