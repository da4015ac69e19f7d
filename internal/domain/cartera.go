package domain

import "time"

// FacturaCartera es una factura pendiente dentro de la foto actual de
// cartera. La tabla completa se reemplaza en cada importación.
type FacturaCartera struct {
	ID               int        `json:"id"`
	NIT              string     `json:"nit"`
	Factura          string     `json:"factura"`
	Valor            float64    `json:"valor"`
	FechaEmision     *time.Time `json:"fecha_emision"`
	FechaVencimiento *time.Time `json:"fecha_vencimiento"`
	CondicionPago    *string    `json:"condicion_pago"`
	DiasVencidos     int        `json:"dias_vencidos"`
	Vendedor         *string    `json:"vendedor"`
	CentroOperativo  *string    `json:"centro_operativo"`
	CargaID          string     `json:"carga_id"`
}

// FiltrosCartera son los filtros opcionales de las consultas de cartera.
type FiltrosCartera struct {
	NIT      string
	Vendedor string
	// SoloVencidas limita a facturas con días vencidos > 0.
	SoloVencidas bool
}

// ResumenCartera es la cabecera del tablero: totales más la partición por
// rangos de vencimiento.
type ResumenCartera struct {
	TotalValor    float64             `json:"total_valor"`
	TotalVencido  float64             `json:"total_vencido"`
	TotalFacturas int                 `json:"total_facturas"`
	TotalClientes int                 `json:"total_clientes"`
	Rangos        []BucketVencimiento `json:"rangos"`
}

// PuntoTendencia es un punto de la serie histórica diaria.
type PuntoTendencia struct {
	Fecha        time.Time `json:"fecha"`
	ValorTotal   float64   `json:"valor_total"`
	ValorVencido float64   `json:"valor_vencido"`
	Facturas     int       `json:"facturas"`
}

// AvanceGestion resume el progreso de cobro en un período: cuántos clientes
// del alcance tienen al menos una gestión registrada.
type AvanceGestion struct {
	TotalClientes       int     `json:"total_clientes"`
	ClientesGestionados int     `json:"clientes_gestionados"`
	MoraTotal           int     `json:"mora_total"`
	MoraGestionados     int     `json:"mora_gestionados"`
	PorcentajeGeneral   float64 `json:"porcentaje_general"`
	PorcentajeMora      float64 `json:"porcentaje_mora"`
}

// ResultadoImportacion es la respuesta de una importación de cartera.
type ResultadoImportacion struct {
	CargaID    string `json:"carga_id"`
	Facturas   int    `json:"facturas"`
	Clientes   int    `json:"clientes"`
	Vendedores int    `json:"vendedores"`
}
