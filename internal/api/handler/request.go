package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/internal/usecases/authorizing"
	"github.com/papelsur/cartera-api/pkg/middleware"
	"github.com/papelsur/cartera-api/pkg/utils"
)

// json codifica las peticiones y respuestas de todos los handlers.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// claimsDeContexto obtiene los claims que dejó el middleware de
// autenticación.
func claimsDeContexto(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// scopeDeClaims resuelve el alcance por vendedor a partir de los claims.
func scopeDeClaims(claims *domain.Claims) domain.VendorScope {
	return authorizing.ResolveScope(claims.UserRolID, claims.UserVendedor)
}

// periodoDeQuery resuelve el período desde los parámetros de la URL:
// ?periodo=<nombre>&desde=YYYY-MM-DD&hasta=YYYY-MM-DD. Nombres desconocidos
// y fechas inválidas caen en "Mes Actual".
func periodoDeQuery(r *http.Request) domain.Periodo {
	query := r.URL.Query()

	desde, err := utils.ParseDate(query.Get("desde"))
	if err != nil {
		desde = nil
	}

	hasta, err := utils.ParseDate(query.Get("hasta"))
	if err != nil {
		hasta = nil
	}

	return domain.ResolverPeriodo(query.Get("periodo"), desde, hasta, time.Now())
}
