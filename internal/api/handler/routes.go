package handler

import (
	"net/http"

	"github.com/papelsur/cartera-api/internal/api/handler/router"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/internal/usecases/authenticating"
	"github.com/papelsur/cartera-api/internal/usecases/gestionando"
	"github.com/papelsur/cartera-api/internal/usecases/importing"
	"github.com/papelsur/cartera-api/internal/usecases/reporting"
	"github.com/papelsur/cartera-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapGestionarUsuarios)},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapGestionarUsuarios)},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapGestionarUsuarios)},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapGestionarUsuarios)},
		},
	}
}

func Cartera(reportes reporting.Reporter, importador importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cartera",
			Method:      http.MethodGet,
			Handler:     ListCartera(reportes),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapVerCartera)},
		},
		{
			Path:        "/v1/cartera/resumen",
			Method:      http.MethodGet,
			Handler:     GetResumenCartera(reportes),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapVerCartera)},
		},
		{
			Path:        "/v1/cartera/antiguedad",
			Method:      http.MethodGet,
			Handler:     GetAntiguedadSaldos(reportes),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapVerReportes)},
		},
		{
			Path:        "/v1/cartera/exportar",
			Method:      http.MethodGet,
			Handler:     ExportarCartera(reportes),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapExportarDatos)},
		},
		{
			Path:        "/v1/cartera/importar",
			Method:      http.MethodPost,
			Handler:     ImportarCartera(importador),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapImportarDatos)},
		},
	}
}

func Clientes(service gestionando.Gestionador) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clientes",
			Method:      http.MethodGet,
			Handler:     ListClientes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapVerCartera)},
		},
		{
			Path:        "/v1/clientes/:nit",
			Method:      http.MethodGet,
			Handler:     GetClienteDetalle(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapVerCartera)},
		},
		{
			Path:        "/v1/vendedores",
			Method:      http.MethodGet,
			Handler:     ListVendedores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Gestiones(service gestionando.Gestionador) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/gestiones",
			Method:      http.MethodPost,
			Handler:     CrearGestion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapRegistrarGestion)},
		},
		{
			Path:        "/v1/clientes/:nit/gestiones",
			Method:      http.MethodGet,
			Handler:     ListGestionesCliente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapVerCartera)},
		},
		{
			Path:        "/v1/gestiones/seguimientos",
			Method:      http.MethodGet,
			Handler:     ListSeguimientos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapVerCartera)},
		},
		{
			Path:        "/v1/gestiones/catalogos",
			Method:      http.MethodGet,
			Handler:     GetCatalogosGestion(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/avance",
			Method:      http.MethodGet,
			Handler:     GetAvanceGestion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapVerReportes)},
		},
		{
			Path:        "/v1/dashboard/tendencia",
			Method:      http.MethodGet,
			Handler:     GetTendencia(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCapacidad(domain.CapVerReportes)},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
