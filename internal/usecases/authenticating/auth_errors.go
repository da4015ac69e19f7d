package authenticating

import (
	"errors"
	"fmt"
)

// Errores de autenticación y de administración de usuarios.
var (
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrUsuarioDesactivado    = errors.New("usuario desactivado")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrTokenInvalido         = errors.New("token inválido")
	ErrUsuarioYaExiste       = errors.New("usuario ya existe")
	ErrUltimoAdmin           = errors.New("no se puede eliminar o desactivar al último administrador activo")
	ErrDominioNoPermitido    = errors.New("dominio de correo no permitido")

	ErrDatosObligatorios = errors.New("datos obligatorios ausentes")
	ErrFormatoInvalido   = errors.New("formato de datos inválido")

	ErrPasswordDebil      = errors.New("contraseña débil")
	ErrSoloAdministrador  = errors.New("solo administradores pueden realizar esta acción")
	ErrOperacionBaseDatos = errors.New("error al realizar la operación en la base de datos")
)

// AuthError agrega contexto a un error de autenticación.
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError indica si el error corresponde a credenciales inválidas.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrCredencialesInvalidas) ||
		errors.Is(err, ErrUsuarioDesactivado)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
