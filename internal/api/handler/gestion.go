package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/internal/usecases/gestionando"
	"github.com/papelsur/cartera-api/pkg/apiErrors"
	"github.com/papelsur/cartera-api/pkg/utils"
)

type CrearGestionRequest struct {
	NIT                string   `json:"nit"`
	TipoContacto       string   `json:"tipo_contacto"`
	Resultado          string   `json:"resultado"`
	Notas              string   `json:"notas"`
	FechaPromesaPago   string   `json:"fecha_promesa_pago"`
	ValorPromesaPago   *float64 `json:"valor_promesa_pago"`
	ProximoSeguimiento string   `json:"proximo_seguimiento"`
}

// CrearGestion registra una gestión de cobro del usuario autenticado sobre
// un cliente de su alcance.
func CrearGestion(service gestionando.Gestionador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		var req CrearGestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		fechaPromesa, err := utils.ParseDate(req.FechaPromesaPago)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha de promesa de pago inválida", nil)
			return
		}

		proximoSeguimiento, err := utils.ParseDate(req.ProximoSeguimiento)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha de próximo seguimiento inválida", nil)
			return
		}

		gestion := &domain.GestionCobro{
			NIT:                req.NIT,
			TipoContacto:       req.TipoContacto,
			Resultado:          req.Resultado,
			Fecha:              time.Now(),
			UsuarioID:          userClaims.UserID,
			Notas:              req.Notas,
			FechaPromesaPago:   fechaPromesa,
			ValorPromesaPago:   req.ValorPromesaPago,
			ProximoSeguimiento: proximoSeguimiento,
		}

		creada, err := service.RegistrarGestion(scopeDeClaims(userClaims), gestion)
		if err != nil {
			logrus.Error(err)
			handleGestionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(creada)
	}
}

// ListGestionesCliente lista las gestiones de un cliente en el período.
func ListGestionesCliente(service gestionando.Gestionador) http.HandlerFunc {
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

		gestiones, err := service.GestionesCliente(scopeDeClaims(userClaims), nit, periodoDeQuery(r))
		if err != nil {
			logrus.Error(err)
			handleGestionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(gestiones)
	}
}

// ListSeguimientos lista las gestiones con próximo seguimiento dentro del
// período, filtradas por el alcance del usuario.
func ListSeguimientos(service gestionando.Gestionador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		seguimientos, err := service.SeguimientosPendientes(scopeDeClaims(userClaims), periodoDeQuery(r))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar seguimientos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(seguimientos)
	}
}

// GetCatalogosGestion expone los catálogos de canales y resultados que usan
// los formularios.
func GetCatalogosGestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"tipos_contacto": domain.TiposContacto,
			"resultados":     domain.ResultadosGestion,
		})
	}
}
