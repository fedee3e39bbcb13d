package lot

// Status estado operativo de un lote relativo a "hoy". Derivado, nunca persistido.
type Status string

const (
	StatusExpired  Status = "EXPIRED"  // exp < hoy
	StatusToday    Status = "TODAY"    // vence hoy
	StatusTomorrow Status = "TOMORROW" // vence mañana
	StatusRefill   Status = "REFILL"   // góndola vacía con trastienda disponible
	StatusSoon     Status = "SOON"     // vence dentro de 7 días
	StatusOK       Status = "OK"
)

// SectionOrder orden fijo de las secciones del tablero diario (prioridad operativa).
var SectionOrder = []Status{
	StatusExpired,
	StatusToday,
	StatusTomorrow,
	StatusRefill,
	StatusSoon,
	StatusOK,
}

// Snapshot campos de un lote que participan en la clasificación.
type Snapshot struct {
	Exp        string // YYYY-MM-DD, normalizada a UTC por el caller
	QtyBack    int
	QtyDisplay int
}

// Classify deriva el estado operativo de un lote respecto a today (YYYY-MM-DD).
// Función pura: sin reloj, sin I/O. Las fechas se comparan por orden lexicográfico
// ISO, equivalente al orden cronológico, para evitar derivas de zona horaria.
//
// El orden de evaluación codifica prioridad de negocio, no solo cronología:
// primero lo vencido/inminente, luego la reposición, luego "vence pronto".
// Un lote con góndola en cero y trastienda disponible que vence en 3 días es
// REFILL y no SOON: la urgencia de reponer gana salvo que la fecha sea
// hoy/mañana/pasada.
func Classify(s Snapshot, today string) Status {
	switch {
	case s.Exp < today:
		return StatusExpired
	case s.Exp == today:
		return StatusToday
	case s.Exp == AddDays(today, 1):
		return StatusTomorrow
	}

	if s.QtyDisplay == 0 && s.QtyBack > 0 {
		return StatusRefill
	}

	if s.Exp <= AddDays(today, 7) {
		return StatusSoon
	}
	return StatusOK
}
