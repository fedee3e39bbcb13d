package repository

import (
	"context"

	"github.com/jhoicas/lotes-api/internal/domain/entity"
	"github.com/jhoicas/lotes-api/internal/domain/lot"
)

// MergeParams parámetros validados para el upsert de un lote.
// Exp ya viene normalizada (YYYY-MM-DD); los punteros nil son campos ausentes.
type MergeParams struct {
	ProductID  int64
	Exp        string
	QtyBack    *int
	QtyDisplay *int
	Mode       lot.Mode
}

// LotRepository define el puerto de persistencia de lotes (DIP).
// La implementación debe garantizar atomicidad a nivel de fila: dos Merge
// concurrentes sobre el mismo par (producto, exp) se serializan en el almacén,
// sin inserts perdidos ni filas duplicadas.
type LotRepository interface {
	// ListByProduct devuelve los lotes de un producto ordenados por exp asc, id asc.
	// Sin lotes devuelve slice vacío, no error.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Lot, error)

	// Merge inserta o actualiza atómicamente el lote (producto, exp) según la ley
	// de merge (lot.ApplyMerge) y devuelve la fila resultante completa.
	Merge(ctx context.Context, p MergeParams) (*entity.Lot, error)

	// ListDailyRows devuelve todos los lotes con exp <= until (incluye vencidos),
	// con nombre e imagen del producto, ordenados por exp asc, nombre asc.
	ListDailyRows(ctx context.Context, until string) ([]lot.DailyRow, error)
}
