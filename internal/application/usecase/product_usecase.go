package usecase

import (
	"context"

	"github.com/jhoicas/lotes-api/internal/application/dto"
	"github.com/jhoicas/lotes-api/internal/domain"
	"github.com/jhoicas/lotes-api/internal/domain/repository"
)

// ProductUseCase lectura del catálogo de productos (colaborador externo; sin escrituras).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductDTO, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductDTO(p))
	}
	return out, nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductDTO, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToProductDTO(p)
	return &out, nil
}
