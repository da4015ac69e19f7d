package domain

import "time"

type Cliente struct {
	NIT           string    `json:"nit"`
	RazonSocial   string    `json:"razon_social"`
	Telefono      *string   `json:"telefono"`
	Celular       *string   `json:"celular"`
	Direccion     *string   `json:"direccion"`
	Email         *string   `json:"email"`
	Ciudad        *string   `json:"ciudad"`
	Vendedor      *string   `json:"vendedor"`
	CupoActivo    bool      `json:"cupo_activo"`
	ActualizadoEn time.Time `json:"actualizado_en"`
}

// ClienteDetalle agrega al cliente su saldo actual y las últimas gestiones.
type ClienteDetalle struct {
	Cliente      Cliente           `json:"cliente"`
	SaldoTotal   float64           `json:"saldo_total"`
	SaldoVencido float64           `json:"saldo_vencido"`
	Facturas     []*FacturaCartera `json:"facturas"`
	Gestiones    []*GestionCobro   `json:"gestiones"`
}
