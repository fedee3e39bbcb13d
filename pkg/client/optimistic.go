package client

import (
	"context"
	"errors"
	"fmt"
)

// ErrStaleLocalState la mutación optimista falló: el valor local se restauró al
// último estado bueno conocido y el error envuelve la causa. Sin reintento
// automático; decide el usuario.
var ErrStaleLocalState = errors.New("estado local obsoleto: mutación revertida")

// OptimisticLot mantiene la copia local de un lote y aplica ediciones de ±1 con
// latencia imperceptible: primero muta la copia local, después confirma contra
// el servidor.
//
// Las ediciones viajan como merges `delta` de un solo campo, así dos terminales
// contando el mismo lote a la vez conmutan en el almacén en lugar de pisarse
// (el clásico lost update de dos `set` concurrentes). Tras un éxito el
// controlador no confía en su propio valor optimista: relee los lotes del
// producto para reconciliar contra ediciones concurrentes de otras sesiones.
type OptimisticLot struct {
	api *Client
	lot Lot
}

// NewOptimisticLot construye el controlador sobre el último estado conocido del lote.
func NewOptimisticLot(api *Client, known Lot) *OptimisticLot {
	return &OptimisticLot{api: api, lot: known}
}

// Current devuelve la copia local vigente.
func (o *OptimisticLot) Current() Lot {
	return o.lot
}

// IncBack / DecBack / IncDisplay / DecDisplay aplican ±1 sobre un contador.
// Los decrementos con el contador en 0 son no-ops locales: no hay nada que restar
// y no se emite petición.
func (o *OptimisticLot) IncBack(ctx context.Context) (Lot, error) {
	return o.apply(ctx, +1, false)
}

func (o *OptimisticLot) DecBack(ctx context.Context) (Lot, error) {
	return o.apply(ctx, -1, false)
}

func (o *OptimisticLot) IncDisplay(ctx context.Context) (Lot, error) {
	return o.apply(ctx, +1, true)
}

func (o *OptimisticLot) DecDisplay(ctx context.Context) (Lot, error) {
	return o.apply(ctx, -1, true)
}

func (o *OptimisticLot) apply(ctx context.Context, delta int, display bool) (Lot, error) {
	counter := &o.lot.QtyBack
	if display {
		counter = &o.lot.QtyDisplay
	}
	if delta < 0 && *counter == 0 {
		return o.lot, nil
	}

	// 1. Mutación optimista local (se revierte si el servidor rechaza)
	prior := o.lot
	*counter += delta

	// 2. Merge delta de un solo campo
	req := MergeRequest{Exp: o.lot.Exp, Mode: "delta"}
	if display {
		req.QtyDisplay = &delta
	} else {
		req.QtyBack = &delta
	}
	if _, err := o.api.MergeLot(ctx, o.lot.ProductID, req); err != nil {
		o.lot = prior
		return o.lot, fmt.Errorf("%w: %w", ErrStaleLocalState, err)
	}

	// 3. Releer el estado del servidor para reconciliar ediciones concurrentes
	lots, err := o.api.ListLots(ctx, o.lot.ProductID)
	if err != nil {
		// El merge quedó confirmado; solo falló la relectura. Conservamos el
		// valor optimista hasta el próximo refresh explícito.
		return o.lot, nil
	}
	for _, l := range lots {
		if l.Exp == o.lot.Exp {
			o.lot = l
			break
		}
	}
	return o.lot, nil
}
