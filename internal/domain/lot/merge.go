package lot

import "github.com/jhoicas/lotes-api/internal/domain/entity"

// Mode modo de aplicación de cantidades en un merge.
type Mode string

const (
	// ModeSet sobrescribe los campos presentes sin condiciones.
	ModeSet Mode = "set"
	// ModeDelta suma los campos presentes al valor existente, con piso en cero.
	ModeDelta Mode = "delta"
)

// ParseMode normaliza el modo recibido por la API. Cadena vacía equivale a "set".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", string(ModeSet):
		return ModeSet, true
	case string(ModeDelta):
		return ModeDelta, true
	}
	return "", false
}

// MergeInput cantidades a aplicar sobre un lote. Un puntero nil significa
// "campo ausente": ese contador no se toca.
type MergeInput struct {
	QtyBack    *int
	QtyDisplay *int
	Mode       Mode
}

// ApplyMerge calcula las cantidades resultantes de un merge (servicio de dominio, puro).
// current es el lote existente para el par (producto, exp), o nil si no existe.
// El SQL de upsert en infrastructure/postgres expresa exactamente esta misma regla;
// esta función es la referencia ejecutable de la ley de merge.
//
// Regla por campo:
//   - fila nueva: el delta se aplica contra un cero implícito, con piso en cero
//     (un delta negativo inicial inserta 0, nunca un valor negativo);
//   - set + campo presente: sobrescribe;
//   - delta + campo presente: max(existente + delta, 0);
//   - campo ausente: conserva el valor existente (0 en fila nueva).
func ApplyMerge(current *entity.Lot, in MergeInput) (qtyBack, qtyDisplay int) {
	if current == nil {
		return clampZero(deref(in.QtyBack)), clampZero(deref(in.QtyDisplay))
	}
	qtyBack = applyField(current.QtyBack, in.QtyBack, in.Mode)
	qtyDisplay = applyField(current.QtyDisplay, in.QtyDisplay, in.Mode)
	return qtyBack, qtyDisplay
}

func applyField(current int, v *int, mode Mode) int {
	if v == nil {
		return current
	}
	if mode == ModeDelta {
		return clampZero(current + *v)
	}
	return *v
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
