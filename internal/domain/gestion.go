package domain

import "time"

// GestionCobro es un contacto de cobranza registrado con un cliente.
// El registro es de solo inserción: una fila por gestión.
type GestionCobro struct {
	ID                 int        `json:"id"`
	NIT                string     `json:"nit"`
	TipoContacto       string     `json:"tipo_contacto"`
	Resultado          string     `json:"resultado"`
	Fecha              time.Time  `json:"fecha"`
	UsuarioID          int        `json:"usuario_id"`
	Notas              string     `json:"notas"`
	FechaPromesaPago   *time.Time `json:"fecha_promesa_pago,omitempty"`
	ValorPromesaPago   *float64   `json:"valor_promesa_pago,omitempty"`
	ProximoSeguimiento *time.Time `json:"proximo_seguimiento,omitempty"`
	CreadoEn           time.Time  `json:"creado_en"`
}

// Canales de contacto válidos.
var TiposContacto = []string{
	"Llamada",
	"WhatsApp",
	"Correo",
	"Visita",
	"SMS",
}

// Resultados válidos de una gestión, agrupados por categoría.
var ResultadosGestion = map[string][]string{
	"Contacto efectivo": {
		"Promesa de pago",
		"Pago confirmado",
		"Pago parcial",
		"Acuerdo de pago",
		"Informa pago en tránsito",
		"Solicita refinanciación",
		"Solicita copia de factura",
		"Solicita nota crédito",
		"Reclama por diferencias",
		"Disputa factura",
	},
	"Contacto no efectivo": {
		"No contesta",
		"Buzón de voz",
		"Ocupado",
		"Teléfono apagado",
		"Número equivocado",
		"Fuera de servicio",
	},
	"Otros": {
		"Volver a llamar",
		"Cliente ilocalizable",
		"Cliente en liquidación",
		"Escalado a jurídica",
		"Gestión administrativa",
	},
}

func TipoContactoValido(tipo string) bool {
	for _, t := range TiposContacto {
		if t == tipo {
			return true
		}
	}
	return false
}

func ResultadoGestionValido(resultado string) bool {
	for _, grupo := range ResultadosGestion {
		for _, r := range grupo {
			if r == resultado {
				return true
			}
		}
	}
	return false
}
