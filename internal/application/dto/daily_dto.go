package dto

import "github.com/jhoicas/lotes-api/internal/domain/lot"

// DailyLotDTO lote clasificado dentro del tablero diario.
type DailyLotDTO struct {
	LotID      int64  `json:"lot_id"`
	ProductID  int64  `json:"product_id"`
	Exp        string `json:"exp"`
	QtyBack    int    `json:"qty_back"`
	QtyDisplay int    `json:"qty_display"`
	Status     string `json:"status"`
}

// DailyProductDTO producto con el subconjunto de lotes relevante para una sección.
type DailyProductDTO struct {
	ProductID   int64         `json:"product_id"`
	ProductName string        `json:"product_name"`
	ImageURL    *string       `json:"image_url"`
	Lots        []DailyLotDTO `json:"lots"`
}

// DailySectionDTO una sección del tablero (estado fijo + productos coincidentes).
type DailySectionDTO struct {
	Status   string            `json:"status"`
	Products []DailyProductDTO `json:"products"`
}

// DailyBoardResponse respuesta de GET /api/daily. Las secciones vienen siempre
// en orden fijo: EXPIRED, TODAY, TOMORROW, REFILL, SOON, OK.
type DailyBoardResponse struct {
	OK       bool              `json:"ok"`
	Today    string            `json:"today"`
	Until    string            `json:"until"`
	Sections []DailySectionDTO `json:"sections"`
}

// ToDailyProductDTOs convierte los grupos de una sección.
func ToDailyProductDTOs(groups []lot.ProductGroup) []DailyProductDTO {
	out := make([]DailyProductDTO, 0, len(groups))
	for _, g := range groups {
		lots := make([]DailyLotDTO, 0, len(g.Lots))
		for _, l := range g.Lots {
			lots = append(lots, DailyLotDTO{
				LotID:      l.LotID,
				ProductID:  l.ProductID,
				Exp:        l.Exp,
				QtyBack:    l.QtyBack,
				QtyDisplay: l.QtyDisplay,
				Status:     string(l.Status),
			})
		}
		out = append(out, DailyProductDTO{
			ProductID:   g.ProductID,
			ProductName: g.ProductName,
			ImageURL:    g.ImageURL,
			Lots:        lots,
		})
	}
	return out
}
