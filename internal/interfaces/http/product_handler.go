package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lotes-api/internal/application/dto"
	"github.com/jhoicas/lotes-api/internal/application/usecase"
)

// ProductHandler lectura del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRODUCT_ID", Message: "id de producto inválido"})
	}
	p, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}
