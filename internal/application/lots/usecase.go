package lots

import (
	"context"

	"github.com/jhoicas/lotes-api/internal/application/dto"
	"github.com/jhoicas/lotes-api/internal/domain"
	"github.com/jhoicas/lotes-api/internal/domain/entity"
	"github.com/jhoicas/lotes-api/internal/domain/lot"
	"github.com/jhoicas/lotes-api/internal/domain/repository"
)

// UseCase reconciliación de lotes: valida las peticiones antes de tocar el
// almacén y delega el merge atómico en el repositorio. No reintenta: toda
// falla es terminal para la petición que la provocó.
type UseCase struct {
	repo repository.LotRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.LotRepository) *UseCase {
	return &UseCase{repo: repo}
}

// ListByProduct devuelve los lotes de un producto ordenados por exp asc, id asc.
// Un producto sin lotes devuelve lista vacía, no error.
func (uc *UseCase) ListByProduct(ctx context.Context, productID int64) ([]*entity.Lot, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.ListByProduct(ctx, productID)
}

// Merge valida y aplica un merge sobre el par (producto, exp).
// Reglas de validación (todas antes de cualquier interacción con el almacén):
//   - productID positivo;
//   - exp obligatoria y con formato YYYY-MM-DD;
//   - mode vacío, "set" o "delta";
//   - en modo set las cantidades presentes no pueden ser negativas; en modo
//     delta los negativos son decrementos válidos (el piso en cero lo aplica
//     la ley de merge).
func (uc *UseCase) Merge(ctx context.Context, productID int64, in dto.MergeLotRequest) (*entity.Lot, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Exp == "" || !lot.ValidISODate(in.Exp) {
		return nil, domain.ErrInvalidInput
	}
	mode, ok := lot.ParseMode(in.Mode)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if mode == lot.ModeSet {
		if (in.QtyBack != nil && *in.QtyBack < 0) || (in.QtyDisplay != nil && *in.QtyDisplay < 0) {
			return nil, domain.ErrInvalidInput
		}
	}

	return uc.repo.Merge(ctx, repository.MergeParams{
		ProductID:  productID,
		Exp:        in.Exp,
		QtyBack:    in.QtyBack,
		QtyDisplay: in.QtyDisplay,
		Mode:       mode,
	})
}
