package domain

// RangoVencimiento es un rango cerrado de días vencidos. HastaDias < 0
// marca el rango superior abierto.
type RangoVencimiento struct {
	Etiqueta  string
	DesdeDias int
	HastaDias int
}

// RangosResumen es la partición de 5 rangos de los tableros generales.
var RangosResumen = []RangoVencimiento{
	{Etiqueta: "Corriente", DesdeDias: 0, HastaDias: 0},
	{Etiqueta: "1-30", DesdeDias: 1, HastaDias: 30},
	{Etiqueta: "31-60", DesdeDias: 31, HastaDias: 60},
	{Etiqueta: "61-90", DesdeDias: 61, HastaDias: 90},
	{Etiqueta: ">90", DesdeDias: 91, HastaDias: -1},
}

// RangosAntiguedad es la partición fina de 8 rangos del informe de
// antigüedad de saldos.
var RangosAntiguedad = []RangoVencimiento{
	{Etiqueta: "Corriente", DesdeDias: 0, HastaDias: 0},
	{Etiqueta: "1-15", DesdeDias: 1, HastaDias: 15},
	{Etiqueta: "16-30", DesdeDias: 16, HastaDias: 30},
	{Etiqueta: "31-60", DesdeDias: 31, HastaDias: 60},
	{Etiqueta: "61-90", DesdeDias: 61, HastaDias: 90},
	{Etiqueta: "91-180", DesdeDias: 91, HastaDias: 180},
	{Etiqueta: "181-365", DesdeDias: 181, HastaDias: 365},
	{Etiqueta: ">365", DesdeDias: 366, HastaDias: -1},
}

// BucketVencimiento acumula valor, facturas y clientes distintos de un rango.
type BucketVencimiento struct {
	Etiqueta string  `json:"etiqueta"`
	Valor    float64 `json:"valor"`
	Facturas int     `json:"facturas"`
	Clientes int     `json:"clientes"`
}

// Contiene indica si los días vencidos caen dentro del rango. Los límites
// son inclusivos en ambos extremos; días negativos cuentan como corriente.
func (r RangoVencimiento) Contiene(dias int) bool {
	if dias < 0 {
		dias = 0
	}
	if dias < r.DesdeDias {
		return false
	}
	return r.HastaDias < 0 || dias <= r.HastaDias
}

// ClasificarVencimiento particiona las facturas en los rangos dados. La suma
// de los valores de los buckets siempre es igual a la suma de las facturas.
func ClasificarVencimiento(facturas []*FacturaCartera, rangos []RangoVencimiento) []BucketVencimiento {
	buckets := make([]BucketVencimiento, len(rangos))
	clientesPorRango := make([]map[string]bool, len(rangos))

	for i, r := range rangos {
		buckets[i] = BucketVencimiento{Etiqueta: r.Etiqueta}
		clientesPorRango[i] = make(map[string]bool)
	}

	for _, f := range facturas {
		for i, r := range rangos {
			if !r.Contiene(f.DiasVencidos) {
				continue
			}
			buckets[i].Valor += f.Valor
			buckets[i].Facturas++
			clientesPorRango[i][f.NIT] = true
			break
		}
	}

	for i := range buckets {
		buckets[i].Clientes = len(clientesPorRango[i])
	}

	return buckets
}
