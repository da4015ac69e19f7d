package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fecha(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestResolverPeriodo_MesActual(t *testing.T) {
	hoy := fecha(2025, time.June, 15)

	periodo := ResolverPeriodo(PeriodoMesActual, nil, nil, hoy)

	assert.Equal(t, fecha(2025, time.June, 1), periodo.Desde)
	assert.Equal(t, fecha(2025, time.June, 15), periodo.Hasta)
}

func TestResolverPeriodo_MesAnterior(t *testing.T) {
	hoy := fecha(2025, time.June, 15)

	periodo := ResolverPeriodo(PeriodoMesAnterior, nil, nil, hoy)

	assert.Equal(t, fecha(2025, time.May, 1), periodo.Desde)
	assert.Equal(t, fecha(2025, time.May, 31), periodo.Hasta)
}

func TestResolverPeriodo_MesAnteriorCruzaAnio(t *testing.T) {
	hoy := fecha(2025, time.January, 10)

	periodo := ResolverPeriodo(PeriodoMesAnterior, nil, nil, hoy)

	assert.Equal(t, fecha(2024, time.December, 1), periodo.Desde)
	assert.Equal(t, fecha(2024, time.December, 31), periodo.Hasta)
}

func TestResolverPeriodo_Ultimos7Dias(t *testing.T) {
	hoy := fecha(2025, time.June, 15)

	periodo := ResolverPeriodo(PeriodoUltimos7Dias, nil, nil, hoy)

	assert.Equal(t, fecha(2025, time.June, 8), periodo.Desde)
	assert.Equal(t, hoy, periodo.Hasta)
}

func TestResolverPeriodo_Ultimos30Dias(t *testing.T) {
	hoy := fecha(2025, time.June, 15)

	periodo := ResolverPeriodo(PeriodoUltimos30Dias, nil, nil, hoy)

	assert.Equal(t, fecha(2025, time.May, 16), periodo.Desde)
	assert.Equal(t, hoy, periodo.Hasta)
}

func TestResolverPeriodo_TrimestreActual(t *testing.T) {
	hoy := fecha(2025, time.August, 20)

	periodo := ResolverPeriodo(PeriodoTrimestre, nil, nil, hoy)

	// Agosto pertenece al tercer trimestre, que arranca el 1 de julio.
	assert.Equal(t, fecha(2025, time.July, 1), periodo.Desde)
	assert.Equal(t, hoy, periodo.Hasta)
}

func TestResolverPeriodo_Personalizado(t *testing.T) {
	hoy := fecha(2025, time.June, 15)
	desde := fecha(2025, time.March, 10)
	hasta := fecha(2025, time.April, 20)

	periodo := ResolverPeriodo(PeriodoPersonalizado, &desde, &hasta, hoy)

	assert.Equal(t, desde, periodo.Desde)
	assert.Equal(t, hasta, periodo.Hasta)
}

func TestResolverPeriodo_PersonalizadoSinLimites(t *testing.T) {
	hoy := fecha(2025, time.June, 15)

	periodo := ResolverPeriodo(PeriodoPersonalizado, nil, nil, hoy)

	// Sin límites cae en "Mes Actual".
	assert.Equal(t, fecha(2025, time.June, 1), periodo.Desde)
	assert.Equal(t, hoy, periodo.Hasta)
}

func TestResolverPeriodo_PersonalizadoInvertido(t *testing.T) {
	hoy := fecha(2025, time.June, 15)
	desde := fecha(2025, time.May, 20)
	hasta := fecha(2025, time.May, 1)

	periodo := ResolverPeriodo(PeriodoPersonalizado, &desde, &hasta, hoy)

	assert.Equal(t, fecha(2025, time.June, 1), periodo.Desde)
	assert.Equal(t, hoy, periodo.Hasta)
}

func TestResolverPeriodo_NombreDesconocido(t *testing.T) {
	hoy := fecha(2025, time.June, 15)

	periodo := ResolverPeriodo("Semana Santa", nil, nil, hoy)

	assert.Equal(t, fecha(2025, time.June, 1), periodo.Desde)
	assert.Equal(t, hoy, periodo.Hasta)
}
