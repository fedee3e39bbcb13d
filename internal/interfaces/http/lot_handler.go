package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lotes-api/internal/application/dto"
	"github.com/jhoicas/lotes-api/internal/application/lots"
	"github.com/jhoicas/lotes-api/internal/domain"
)

// LotHandler maneja las peticiones HTTP de lotes por producto.
type LotHandler struct {
	uc *lots.UseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *lots.UseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// List godoc
// @Summary      Listar lotes de un producto
// @Description  Devuelve los lotes ordenados por fecha de vencimiento ascendente (empate por id).
// @Tags         lots
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.LotListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/lots [get]
func (h *LotHandler) List(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRODUCT_ID", Message: "id de producto inválido"})
	}

	list, err := h.uc.ListByProduct(c.Context(), int64(productID))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.LotListResponse{OK: true, Lots: dto.ToLotDTOs(list)})
}

// Merge godoc
// @Summary      Crear o reconciliar un lote
// @Description  Upsert atómico sobre el par (producto, exp). mode "set" sobrescribe los
// @Description  campos presentes; mode "delta" los suma con piso en cero. En el alta el
// @Description  delta se aplica contra cero implícito.
// @Tags         lots
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.MergeLotRequest  true  "exp (YYYY-MM-DD), qty_back?, qty_display?, mode?"
// @Success      200   {object}  dto.LotMergeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/lots [post]
func (h *LotHandler) Merge(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRODUCT_ID", Message: "id de producto inválido"})
	}
	var in dto.MergeLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.uc.Merge(c.Context(), int64(productID), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.LotMergeResponse{OK: true, Lot: dto.ToLotDTO(result)})
}

// writeError mapea errores de dominio a respuestas HTTP. Un StorageError conserva
// mensaje y SQLSTATE en detail para que el operador pueda diagnosticar sin logs
// del lado del servidor.
func writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	var se *domain.StorageError
	if errors.As(err, &se) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "error de almacenamiento",
			Detail:  se.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
