package daily

import (
	"context"

	"github.com/jhoicas/lotes-api/internal/application/dto"
	"github.com/jhoicas/lotes-api/internal/domain"
	"github.com/jhoicas/lotes-api/internal/domain/lot"
	"github.com/jhoicas/lotes-api/internal/domain/repository"
)

// windowDays ventana del tablero diario: vencidos hasta hoy+7. Regla de negocio
// fija, no configurable.
const windowDays = 7

// UseCase arma el tablero diario: trae la ventana de lotes del almacén,
// clasifica cada fila respecto a today, agrupa por producto y particiona en
// las seis secciones de estado.
type UseCase struct {
	repo repository.LotRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.LotRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Board devuelve el tablero para la fecha de referencia dada (YYYY-MM-DD, UTC).
// today lo aporta el caller; aquí no se lee el reloj, así el estado derivado
// nunca queda obsoleto por avance del día, solo por entrada obsoleta.
func (uc *UseCase) Board(ctx context.Context, today string) (*dto.DailyBoardResponse, error) {
	if !lot.ValidISODate(today) {
		return nil, domain.ErrInvalidInput
	}
	until := lot.AddDays(today, windowDays)

	rows, err := uc.repo.ListDailyRows(ctx, until)
	if err != nil {
		return nil, err
	}

	groups := lot.GroupByProduct(rows, today)
	sections := lot.PartitionSections(groups)

	out := &dto.DailyBoardResponse{
		OK:       true,
		Today:    today,
		Until:    until,
		Sections: make([]dto.DailySectionDTO, 0, len(lot.SectionOrder)),
	}
	for _, status := range lot.SectionOrder {
		out.Sections = append(out.Sections, dto.DailySectionDTO{
			Status:   string(status),
			Products: dto.ToDailyProductDTOs(sections[status]),
		})
	}
	return out, nil
}
