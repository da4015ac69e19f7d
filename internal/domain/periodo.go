package domain

import "time"

// Nombres de período que entienden los tableros. Son los mismos textos que
// muestran los selectores de las pantallas.
const (
	PeriodoMesActual     = "Mes Actual"
	PeriodoMesAnterior   = "Mes Anterior"
	PeriodoUltimos7Dias  = "Últimos 7 días"
	PeriodoUltimos30Dias = "Últimos 30 días"
	PeriodoTrimestre     = "Trimestre Actual"
	PeriodoPersonalizado = "Personalizado"
)

// Periodo es un rango de fechas calendario cerrado [Desde, Hasta].
type Periodo struct {
	Desde time.Time `json:"desde"`
	Hasta time.Time `json:"hasta"`
}

// ResolverPeriodo convierte un nombre de período en fechas concretas
// relativas a hoy. Un nombre desconocido resuelve como "Mes Actual"
// (fallback documentado, no es un error). "Personalizado" usa los límites
// recibidos tal cual; si faltan o están invertidos cae también en
// "Mes Actual". Todas las fechas son calendario, sin zona horaria.
func ResolverPeriodo(nombre string, desde, hasta *time.Time, hoy time.Time) Periodo {
	hoy = truncarDia(hoy)

	switch nombre {
	case PeriodoMesAnterior:
		primeroMesActual := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, time.UTC)
		finMesAnterior := primeroMesActual.AddDate(0, 0, -1)
		inicioMesAnterior := time.Date(finMesAnterior.Year(), finMesAnterior.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Periodo{Desde: inicioMesAnterior, Hasta: finMesAnterior}

	case PeriodoUltimos7Dias:
		return Periodo{Desde: hoy.AddDate(0, 0, -7), Hasta: hoy}

	case PeriodoUltimos30Dias:
		return Periodo{Desde: hoy.AddDate(0, 0, -30), Hasta: hoy}

	case PeriodoTrimestre:
		trimestre := (int(hoy.Month()) - 1) / 3
		inicio := time.Date(hoy.Year(), time.Month(trimestre*3+1), 1, 0, 0, 0, 0, time.UTC)
		return Periodo{Desde: inicio, Hasta: hoy}

	case PeriodoPersonalizado:
		if desde != nil && hasta != nil && !desde.After(*hasta) {
			return Periodo{Desde: truncarDia(*desde), Hasta: truncarDia(*hasta)}
		}
		// Límites ausentes o invertidos: mismo fallback que nombre desconocido.
		return mesActual(hoy)

	case PeriodoMesActual:
		return mesActual(hoy)

	default:
		return mesActual(hoy)
	}
}

func mesActual(hoy time.Time) Periodo {
	return Periodo{
		Desde: time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, time.UTC),
		Hasta: hoy,
	}
}

func truncarDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
