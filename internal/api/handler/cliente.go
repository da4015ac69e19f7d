package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/internal/usecases/gestionando"
	"github.com/papelsur/cartera-api/pkg/apiErrors"
)

func ListClientes(service gestionando.Gestionador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		clientes, err := service.ListClientes(scopeDeClaims(userClaims))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(clientes)
	}
}

// GetClienteDetalle devuelve la ficha del cliente: datos de contacto, saldo
// actual y gestiones del período.
func GetClienteDetalle(service gestionando.Gestionador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		nit := httprouter.ParamsFromContext(r.Context()).ByName("nit")
		if nit == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "NIT no especificado", nil)
			return
		}

		detalle, err := service.DetalleCliente(scopeDeClaims(userClaims), nit, periodoDeQuery(r))
		if err != nil {
			logrus.Error(err)
			handleGestionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(detalle)
	}
}

func ListVendedores(service gestionando.Gestionador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendedores, err := service.ListVendedores()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar vendedores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(vendedores)
	}
}

// handleGestionError traduce los errores del caso de uso de gestiones a la
// respuesta estándar de la API.
func handleGestionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gestionando.ErrClienteNoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente no encontrado", nil)

	case errors.Is(err, gestionando.ErrClienteFueraAlcance):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "El cliente no pertenece a su alcance", nil)

	case errors.Is(err, gestionando.ErrTipoContactoInvalido),
		errors.Is(err, gestionando.ErrResultadoInvalido),
		errors.Is(err, gestionando.ErrNotasObligatorias):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno", nil)
	}
}
