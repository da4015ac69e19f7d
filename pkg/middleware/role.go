package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/pkg/apiErrors"
)

// RoleMiddleware restringe el acceso a los roles indicados.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Intento de acceso sin autenticación")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRolID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acceso denegado para usuario ID=%d, Rol=%d", userClaims.UserID, userClaims.UserRolID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "No tiene permiso para acceder a este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireCapacidad restringe el acceso según el mapa estático de
// capacidades por rol.
func RequireCapacidad(c domain.Capacidad) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
				return
			}

			if !domain.RolTieneCapacidad(userClaims.UserRolID, c) {
				logrus.Warningf("Capacidad %s denegada para usuario ID=%d, Rol=%s",
					c, userClaims.UserID, domain.NombreRol(userClaims.UserRolID))
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "No tiene permiso para esta operación", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acceso solo a administradores.
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RolAdmin})
}

// AdminOrSupervisor permite acceso a administradores y supervisores.
func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RolAdmin, domain.RolSupervisor})
}

// AllRoles permite acceso a cualquier usuario autenticado con rol conocido.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RolAdmin, domain.RolSupervisor, domain.RolComercial, domain.RolConsulta})
}
