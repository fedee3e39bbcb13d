package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lotes-api/internal/application/daily"
	"github.com/jhoicas/lotes-api/internal/application/lots"
	"github.com/jhoicas/lotes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	LotUC     *lots.UseCase
	DailyUC   *daily.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (colaborador externo, solo lectura)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Lotes por producto: listado ordenado y merge atómico
	lotHandler := NewLotHandler(deps.LotUC)
	products.Get("/:id/lots", lotHandler.List)
	products.Post("/:id/lots", lotHandler.Merge)

	// Tablero diario de conteo
	dailyHandler := NewDailyHandler(deps.DailyUC)
	api.Get("/daily", dailyHandler.Board)
}
