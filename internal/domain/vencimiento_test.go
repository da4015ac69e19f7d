package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func facturaConDias(nit string, dias int, valor float64) *FacturaCartera {
	return &FacturaCartera{NIT: nit, Factura: "F-1", Valor: valor, DiasVencidos: dias}
}

func TestClasificarVencimiento_RangosResumen(t *testing.T) {
	facturas := []*FacturaCartera{
		facturaConDias("900100", 0, 100),
		facturaConDias("900100", 15, 100),
		facturaConDias("900200", 45, 100),
		facturaConDias("900300", 75, 100),
		facturaConDias("900400", 120, 100),
	}

	buckets := ClasificarVencimiento(facturas, RangosResumen)

	assert.Len(t, buckets, 5)
	assert.Equal(t, "Corriente", buckets[0].Etiqueta)
	assert.Equal(t, 100.0, buckets[0].Valor)
	assert.Equal(t, 100.0, buckets[1].Valor) // 1-30
	assert.Equal(t, 100.0, buckets[2].Valor) // 31-60
	assert.Equal(t, 100.0, buckets[3].Valor) // 61-90
	assert.Equal(t, 100.0, buckets[4].Valor) // >90
}

func TestClasificarVencimiento_PreservaTotales(t *testing.T) {
	facturas := []*FacturaCartera{
		facturaConDias("900100", -3, 250.50),
		facturaConDias("900100", 1, 100),
		facturaConDias("900200", 30, 99.99),
		facturaConDias("900200", 31, 500),
		facturaConDias("900300", 366, 1200),
		facturaConDias("900400", 1000, 80),
	}

	var total float64
	for _, f := range facturas {
		total += f.Valor
	}

	for _, rangos := range [][]RangoVencimiento{RangosResumen, RangosAntiguedad} {
		buckets := ClasificarVencimiento(facturas, rangos)

		var suma float64
		var cantidad int
		for _, b := range buckets {
			suma += b.Valor
			cantidad += b.Facturas
		}

		assert.InDelta(t, total, suma, 0.001)
		assert.Equal(t, len(facturas), cantidad)
	}
}

func TestClasificarVencimiento_DiasNegativosSonCorriente(t *testing.T) {
	facturas := []*FacturaCartera{facturaConDias("900100", -10, 500)}

	buckets := ClasificarVencimiento(facturas, RangosResumen)

	assert.Equal(t, 500.0, buckets[0].Valor)
	assert.Equal(t, 1, buckets[0].Facturas)
}

func TestClasificarVencimiento_ClientesDistintosPorRango(t *testing.T) {
	facturas := []*FacturaCartera{
		facturaConDias("900100", 5, 100),
		facturaConDias("900100", 10, 100),
		facturaConDias("900200", 20, 100),
	}

	buckets := ClasificarVencimiento(facturas, RangosResumen)

	// Tres facturas de dos clientes en el rango 1-30.
	assert.Equal(t, 3, buckets[1].Facturas)
	assert.Equal(t, 2, buckets[1].Clientes)
}

func TestContiene_LimitesInclusivos(t *testing.T) {
	rango := RangoVencimiento{Etiqueta: "31-60", DesdeDias: 31, HastaDias: 60}

	assert.False(t, rango.Contiene(30))
	assert.True(t, rango.Contiene(31))
	assert.True(t, rango.Contiene(60))
	assert.False(t, rango.Contiene(61))
}

func TestContiene_RangoSuperiorAbierto(t *testing.T) {
	rango := RangoVencimiento{Etiqueta: ">365", DesdeDias: 366, HastaDias: -1}

	assert.False(t, rango.Contiene(365))
	assert.True(t, rango.Contiene(366))
	assert.True(t, rango.Contiene(10000))
}
