package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/internal/usecases/reporting"
	"github.com/papelsur/cartera-api/pkg/apiErrors"
)

// GetAvanceGestion devuelve el avance de cobro del período: qué porcentaje
// de los clientes visibles tiene al menos una gestión registrada.
func GetAvanceGestion(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		avance, err := service.AvanceGestion(scopeDeClaims(userClaims), periodoDeQuery(r))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular el avance de gestión", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(avance)
	}
}

// GetTendencia devuelve la serie diaria de saldos del histórico para el
// período pedido.
func GetTendencia(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		puntos, err := service.Tendencia(scopeDeClaims(userClaims), periodoDeQuery(r))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la tendencia", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(puntos)
	}
}
