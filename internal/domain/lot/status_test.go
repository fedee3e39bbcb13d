package lot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/lotes-api/internal/domain/lot"
)

// ──────────────────────────────────────────────────────────────────────────────
// Classify es una función total: para todo par (lote, hoy) válido devuelve
// exactamente un estado, y el orden de evaluación codifica la prioridad de
// negocio (vencimiento > reposición > "vence pronto").
// ──────────────────────────────────────────────────────────────────────────────

const hoy = "2026-01-20"

func TestClassify_EscaleraDePrioridad(t *testing.T) {
	cases := []struct {
		name string
		snap lot.Snapshot
		want lot.Status
	}{
		{"vencido ayer", lot.Snapshot{Exp: "2026-01-19", QtyBack: 3, QtyDisplay: 3}, lot.StatusExpired},
		{"vencido hace meses", lot.Snapshot{Exp: "2025-10-01"}, lot.StatusExpired},
		{"vence hoy", lot.Snapshot{Exp: "2026-01-20", QtyBack: 1, QtyDisplay: 1}, lot.StatusToday},
		{"vence mañana", lot.Snapshot{Exp: "2026-01-21", QtyBack: 1, QtyDisplay: 1}, lot.StatusTomorrow},
		{"góndola vacía con trastienda", lot.Snapshot{Exp: "2026-03-01", QtyBack: 4, QtyDisplay: 0}, lot.StatusRefill},
		{"dentro de 7 días", lot.Snapshot{Exp: "2026-01-25", QtyBack: 2, QtyDisplay: 2}, lot.StatusSoon},
		{"borde exacto de 7 días", lot.Snapshot{Exp: "2026-01-27", QtyBack: 2, QtyDisplay: 2}, lot.StatusSoon},
		{"un día después del borde", lot.Snapshot{Exp: "2026-01-28", QtyBack: 2, QtyDisplay: 2}, lot.StatusOK},
		{"lejano y con stock", lot.Snapshot{Exp: "2026-06-01", QtyBack: 2, QtyDisplay: 2}, lot.StatusOK},
		{"todo en cero y lejano", lot.Snapshot{Exp: "2026-06-01", QtyBack: 0, QtyDisplay: 0}, lot.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lot.Classify(tc.snap, hoy))
		})
	}
}

// REFILL gana a SOON: góndola en cero con trastienda disponible, aunque la fecha
// también caiga dentro de la ventana de 7 días (Exp = hoy + 7).
func TestClassify_RefillGanaASoon(t *testing.T) {
	snap := lot.Snapshot{Exp: "2026-01-27", QtyBack: 5, QtyDisplay: 0}
	assert.Equal(t, lot.StatusRefill, lot.Classify(snap, hoy))
}

// La escalera de fechas gana a REFILL: un lote que vence hoy con góndola vacía
// y trastienda disponible es TODAY, nunca REFILL. Lo mismo para mañana y vencido.
func TestClassify_FechaGanaARefill(t *testing.T) {
	sinGondola := func(exp string) lot.Snapshot {
		return lot.Snapshot{Exp: exp, QtyBack: 5, QtyDisplay: 0}
	}
	assert.Equal(t, lot.StatusExpired, lot.Classify(sinGondola("2026-01-10"), hoy))
	assert.Equal(t, lot.StatusToday, lot.Classify(sinGondola("2026-01-20"), hoy))
	assert.Equal(t, lot.StatusTomorrow, lot.Classify(sinGondola("2026-01-21"), hoy))
}

// Cruce de mes y de año: la suma de días se hace en calendario, no sobre el string.
func TestClassify_CruceDeMesYAnio(t *testing.T) {
	assert.Equal(t, lot.StatusTomorrow, lot.Classify(lot.Snapshot{Exp: "2026-02-01", QtyBack: 1, QtyDisplay: 1}, "2026-01-31"))
	assert.Equal(t, lot.StatusTomorrow, lot.Classify(lot.Snapshot{Exp: "2027-01-01", QtyBack: 1, QtyDisplay: 1}, "2026-12-31"))
	assert.Equal(t, lot.StatusSoon, lot.Classify(lot.Snapshot{Exp: "2027-01-06", QtyBack: 1, QtyDisplay: 1}, "2026-12-31"))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2026-01-21", lot.AddDays("2026-01-20", 1))
	assert.Equal(t, "2026-01-27", lot.AddDays("2026-01-20", 7))
	assert.Equal(t, "2026-03-01", lot.AddDays("2026-02-28", 1)) // 2026 no es bisiesto
	assert.Equal(t, "", lot.AddDays("no-es-fecha", 1))
}

func TestValidISODate(t *testing.T) {
	assert.True(t, lot.ValidISODate("2026-01-25"))
	assert.False(t, lot.ValidISODate(""))
	assert.False(t, lot.ValidISODate("2026-13-01"))
	assert.False(t, lot.ValidISODate("25-01-2026"))
	assert.False(t, lot.ValidISODate("2026-01-25T00:00:00Z"))
}
