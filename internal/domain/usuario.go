package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Usuario struct {
	ID               int        `json:"id"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	NombreCompleto   string     `json:"nombre_completo"`
	RolID            int        `json:"rol_id"`
	VendedorAsignado *string    `json:"vendedor_asignado"`
	Activo           bool       `json:"activo"`
	Eliminado        bool       `json:"eliminado"`
	EliminadoEn      *time.Time `json:"eliminado_en,omitempty"`
	UltimoAcceso     *time.Time `json:"ultimo_acceso,omitempty"`
	CreadoEn         time.Time  `json:"creado_en"`
	ActualizadoEn    time.Time  `json:"actualizado_en"`
}

type UpdateUsuarioRequest struct {
	ID               int     `json:"id"`
	Email            *string `json:"email"`
	NombreCompleto   *string `json:"nombre_completo"`
	RolID            *int    `json:"rol_id"`
	VendedorAsignado *string `json:"vendedor_asignado"`
	Activo           *bool   `json:"activo"`
	Eliminado        *bool   `json:"eliminado"`
}

type Claims struct {
	UserID           int
	UserEmail        string
	UserNombre       string
	UserRolID        int
	UserVendedor     string
	UserActivo       bool
	jwt.RegisteredClaims
}
