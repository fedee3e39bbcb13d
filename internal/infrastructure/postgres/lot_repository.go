package postgres

import (
	"context"

	"github.com/jhoicas/lotes-api/internal/domain/entity"
	"github.com/jhoicas/lotes-api/internal/domain/lot"
	"github.com/jhoicas/lotes-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// ListByProduct devuelve los lotes de un producto ordenados por exp asc, id asc
// (el id desempata lotes del mismo día creados en momentos distintos).
func (r *LotRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Lot, error) {
	query := `
		SELECT id, product_id, exp::text, qty_back, qty_display
		FROM product_lots
		WHERE product_id = $1
		ORDER BY exp ASC, id ASC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, storageErr("list lots", err)
	}
	defer rows.Close()

	list := make([]*entity.Lot, 0)
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Exp, &l.QtyBack, &l.QtyDisplay); err != nil {
			return nil, storageErr("scan lot", err)
		}
		list = append(list, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list lots", err)
	}
	return list, nil
}

// Merge inserta o actualiza el lote (producto, exp) en una sola sentencia atómica:
// INSERT ... ON CONFLICT sobre la unique (product_id, exp). El almacén serializa
// merges concurrentes sobre el mismo par a nivel de fila; no hace falta bloqueo
// en proceso. El CASE replica la ley de merge de lot.ApplyMerge:
//   - fila nueva: delta contra cero implícito, con GREATEST(..., 0) como piso;
//   - set: COALESCE conserva el campo ausente y sobrescribe el presente;
//   - delta: suma con piso en cero.
func (r *LotRepo) Merge(ctx context.Context, p repository.MergeParams) (*entity.Lot, error) {
	query := `
		INSERT INTO product_lots (product_id, exp, qty_back, qty_display)
		VALUES (
			$1,
			$2::date,
			GREATEST(COALESCE($3::int, 0), 0),
			GREATEST(COALESCE($4::int, 0), 0)
		)
		ON CONFLICT (product_id, exp)
		DO UPDATE SET
			qty_back = CASE
				WHEN $5 = 'delta' THEN GREATEST(product_lots.qty_back + COALESCE($3::int, 0), 0)
				ELSE COALESCE($3::int, product_lots.qty_back)
			END,
			qty_display = CASE
				WHEN $5 = 'delta' THEN GREATEST(product_lots.qty_display + COALESCE($4::int, 0), 0)
				ELSE COALESCE($4::int, product_lots.qty_display)
			END
		RETURNING id, product_id, exp::text, qty_back, qty_display`

	var l entity.Lot
	err := r.q.QueryRow(ctx, query, p.ProductID, p.Exp, p.QtyBack, p.QtyDisplay, string(p.Mode)).Scan(
		&l.ID, &l.ProductID, &l.Exp, &l.QtyBack, &l.QtyDisplay,
	)
	if err != nil {
		return nil, storageErr("merge lot", err)
	}
	return &l, nil
}

// ListDailyRows devuelve todos los lotes con exp <= until (incluye los ya vencidos),
// con nombre e imagen del producto. La ventana de 7 días la calcula el caller;
// aquí solo se aplica la cota.
func (r *LotRepo) ListDailyRows(ctx context.Context, until string) ([]lot.DailyRow, error) {
	query := `
		SELECT
			pl.id AS lot_id,
			pl.product_id,
			pl.exp::text AS exp,
			pl.qty_back,
			pl.qty_display,
			p.name AS product_name,
			p.image_url
		FROM product_lots pl
		JOIN products p ON p.id = pl.product_id
		WHERE pl.exp <= $1::date
		ORDER BY pl.exp ASC, p.name ASC`
	rows, err := r.q.Query(ctx, query, until)
	if err != nil {
		return nil, storageErr("list daily rows", err)
	}
	defer rows.Close()

	list := make([]lot.DailyRow, 0)
	for rows.Next() {
		var d lot.DailyRow
		if err := rows.Scan(&d.LotID, &d.ProductID, &d.Exp, &d.QtyBack, &d.QtyDisplay, &d.ProductName, &d.ImageURL); err != nil {
			return nil, storageErr("scan daily row", err)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list daily rows", err)
	}
	return list, nil
}
