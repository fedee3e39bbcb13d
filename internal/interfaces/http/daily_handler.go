package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lotes-api/internal/application/daily"
	"github.com/jhoicas/lotes-api/internal/domain/lot"
)

// DailyHandler maneja el tablero diario de conteo.
type DailyHandler struct {
	uc *daily.UseCase
}

// NewDailyHandler construye el handler.
func NewDailyHandler(uc *daily.UseCase) *DailyHandler {
	return &DailyHandler{uc: uc}
}

// Board godoc
// @Summary      Tablero diario
// @Description  Lotes con exp <= hoy+7 (incluye vencidos), agrupados por producto y
// @Description  particionados en secciones EXPIRED, TODAY, TOMORROW, REFILL, SOON, OK.
// @Tags         daily
// @Produce      json
// @Param        today  query  string  false  "Fecha de referencia YYYY-MM-DD (por defecto, hoy en UTC)"
// @Success      200  {object}  dto.DailyBoardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/daily [get]
func (h *DailyHandler) Board(c *fiber.Ctx) error {
	// "hoy" se fija una sola vez en el borde HTTP; de aquí hacia abajo nadie
	// lee el reloj. El query param permite clientes y tests deterministas.
	today := c.Query("today")
	if today == "" {
		today = lot.TodayUTC(time.Now())
	}

	board, err := h.uc.Board(c.Context(), today)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(board)
}
