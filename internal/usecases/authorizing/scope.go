// Package authorizing resuelve el alcance de visibilidad por vendedor y las
// verificaciones de capacidad. El alcance se calcula una vez por petición a
// partir de los claims y se pasa explícito a las consultas.
package authorizing

import (
	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/internal/domain"
)

// ResolveScope determina qué filas puede ver un usuario según su rol.
// Admin y supervisor ven todo. Comercial y consulta ven solo las filas de su
// vendedor asignado; sin vendedor asignado el alcance es vacío (cero filas).
// La versión anterior del sistema tenía dos comportamientos distintos para
// ese caso; aquí se fija el restrictivo y se deja rastro en el log.
func ResolveScope(rolID int, vendedorAsignado string) domain.VendorScope {
	switch rolID {
	case domain.RolAdmin, domain.RolSupervisor:
		return domain.ScopeTotal

	case domain.RolComercial, domain.RolConsulta:
		if vendedorAsignado == "" {
			logrus.WithField("rol", domain.NombreRol(rolID)).
				Warn("Usuario con rol restringido sin vendedor asignado: alcance vacío")
			return domain.VendorScope{}
		}
		return domain.VendorScope{Vendedor: vendedorAsignado}

	default:
		logrus.WithField("rol_id", rolID).Warn("Rol desconocido: alcance vacío")
		return domain.VendorScope{}
	}
}

// PuedeVer filtra una lista de facturas por alcance en memoria. Se usa en
// los agregados que ya tienen las filas cargadas.
func PuedeVer(scope domain.VendorScope, vendedor *string) bool {
	if scope.All {
		return true
	}
	if scope.Vacio() || vendedor == nil {
		return false
	}
	return *vendedor == scope.Vendedor
}
