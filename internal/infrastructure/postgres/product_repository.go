package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/lotes-api/internal/domain/entity"
	"github.com/jhoicas/lotes-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (solo lectura).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve el catálogo completo, más reciente primero.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, image_url
		FROM products
		ORDER BY id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr("list products", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.ImageURL); err != nil {
			return nil, storageErr("scan product", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list products", err)
	}
	return list, nil
}

// GetByID obtiene un producto por ID. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, image_url
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get product", err)
	}
	return &p, nil
}
