package dto

import "github.com/jhoicas/lotes-api/internal/domain/entity"

// MergeLotRequest body para POST /api/products/:id/lots.
// Los punteros nil son campos ausentes (permite actualizar un solo contador).
// Mode: "set" (por defecto) sobrescribe; "delta" suma con piso en cero.
type MergeLotRequest struct {
	Exp        string `json:"exp"`
	QtyBack    *int   `json:"qty_back,omitempty"`
	QtyDisplay *int   `json:"qty_display,omitempty"`
	Mode       string `json:"mode,omitempty"`
}

// LotDTO fila de lote en respuestas.
type LotDTO struct {
	ID         int64  `json:"id"`
	ProductID  int64  `json:"product_id"`
	Exp        string `json:"exp"`
	QtyBack    int    `json:"qty_back"`
	QtyDisplay int    `json:"qty_display"`
}

// LotListResponse respuesta de GET /api/products/:id/lots.
type LotListResponse struct {
	OK   bool     `json:"ok"`
	Lots []LotDTO `json:"lots"`
}

// LotMergeResponse respuesta de POST /api/products/:id/lots.
type LotMergeResponse struct {
	OK  bool   `json:"ok"`
	Lot LotDTO `json:"lot"`
}

// ToLotDTO convierte la entidad a su forma de transporte.
func ToLotDTO(l *entity.Lot) LotDTO {
	return LotDTO{
		ID:         l.ID,
		ProductID:  l.ProductID,
		Exp:        l.Exp,
		QtyBack:    l.QtyBack,
		QtyDisplay: l.QtyDisplay,
	}
}

// ToLotDTOs convierte la lista completa preservando el orden.
func ToLotDTOs(lots []*entity.Lot) []LotDTO {
	out := make([]LotDTO, 0, len(lots))
	for _, l := range lots {
		out = append(out, ToLotDTO(l))
	}
	return out
}
