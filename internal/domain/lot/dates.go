package lot

import "time"

// isoLayout formato de fecha calendario usado en todo el motor (sin componente horario).
const isoLayout = "2006-01-02"

// ValidISODate indica si s es una fecha YYYY-MM-DD válida.
func ValidISODate(s string) bool {
	_, err := time.Parse(isoLayout, s)
	return err == nil
}

// TodayUTC devuelve la fecha de hoy en UTC como YYYY-MM-DD.
// Se calcula una sola vez en el borde HTTP; el clasificador nunca lee el reloj.
func TodayUTC(now time.Time) string {
	return now.UTC().Format(isoLayout)
}

// AddDays suma días a una fecha ISO y devuelve otra fecha ISO.
// Asume que iso ya fue validada; una fecha malformada devuelve cadena vacía.
func AddDays(iso string, days int) string {
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, days).Format(isoLayout)
}
