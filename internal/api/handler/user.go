package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/internal/usecases/authenticating"
	"github.com/papelsur/cartera-api/pkg/apiErrors"
)

type CreateUserRequest struct {
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	NombreCompleto   string  `json:"nombre_completo"`
	RolID            int     `json:"rol_id"`
	VendedorAsignado *string `json:"vendedor_asignado"`
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		usuario := &domain.Usuario{
			Email:            req.Email,
			NombreCompleto:   req.NombreCompleto,
			RolID:            req.RolID,
			VendedorAsignado: req.VendedorAsignado,
		}

		creado, err := service.CreateUsuario(usuario, req.Password)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(creado)
	}
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		usuarios, err := service.ListUsuarios()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar usuarios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(usuarios)
	}
}

func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de usuario inválido", nil)
			return
		}

		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		// Un usuario sin capacidad de administración solo ve su propio perfil.
		if userClaims.UserID != userID && !domain.RolTieneCapacidad(userClaims.UserRolID, domain.CapGestionarUsuarios) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "No tiene permiso para ver este usuario", nil)
			return
		}

		usuario, err := service.GetUserProfile(userID)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(usuario)
	}
}

func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de usuario inválido", nil)
			return
		}

		var req domain.UpdateUsuarioRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}
		req.ID = userID

		if err := service.UpdateUsuario(&req); err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteUser hace borrado lógico. El último administrador activo no se puede
// eliminar.
func DeleteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de usuario inválido", nil)
			return
		}

		if err := service.EliminarUsuario(userID); err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
