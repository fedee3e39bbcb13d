package repository

import (
	"context"

	"github.com/jhoicas/lotes-api/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo de productos.
// El catálogo es un colaborador externo: este motor solo lo consulta.
type ProductRepository interface {
	// List devuelve el catálogo completo, más reciente primero.
	List(ctx context.Context) ([]*entity.Product, error)

	// GetByID devuelve nil sin error si el producto no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}
