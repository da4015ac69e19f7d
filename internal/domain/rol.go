package domain

// Roles fijos del sistema. Los IDs se persisten en la tabla usuarios.
const (
	RolAdmin      = 1
	RolSupervisor = 2
	RolComercial  = 3
	RolConsulta   = 4
)

// Capacidades nombradas que un rol puede tener.
type Capacidad string

const (
	CapGestionarUsuarios Capacidad = "manage_users"
	CapImportarDatos     Capacidad = "import_data"
	CapExportarDatos     Capacidad = "export_data"
	CapVerReportes       Capacidad = "view_reports"
	CapRegistrarGestion  Capacidad = "log_gestion"
	CapVerCartera        Capacidad = "view_cartera"
)

// capacidadesPorRol es el mapa estático rol -> capacidades permitidas.
var capacidadesPorRol = map[int]map[Capacidad]bool{
	RolAdmin: {
		CapGestionarUsuarios: true,
		CapImportarDatos:     true,
		CapExportarDatos:     true,
		CapVerReportes:       true,
		CapRegistrarGestion:  true,
		CapVerCartera:        true,
	},
	RolSupervisor: {
		CapImportarDatos:    true,
		CapExportarDatos:    true,
		CapVerReportes:      true,
		CapRegistrarGestion: true,
		CapVerCartera:       true,
	},
	RolComercial: {
		CapExportarDatos:    true,
		CapVerReportes:      true,
		CapRegistrarGestion: true,
		CapVerCartera:       true,
	},
	RolConsulta: {
		CapVerReportes: true,
		CapVerCartera:  true,
	},
}

// RolTieneCapacidad es una consulta pura de pertenencia, sin efectos.
func RolTieneCapacidad(rolID int, c Capacidad) bool {
	caps, ok := capacidadesPorRol[rolID]
	if !ok {
		return false
	}
	return caps[c]
}

// NombreRol devuelve el nombre legible del rol.
func NombreRol(rolID int) string {
	switch rolID {
	case RolAdmin:
		return "admin"
	case RolSupervisor:
		return "supervisor"
	case RolComercial:
		return "comercial"
	case RolConsulta:
		return "consulta"
	default:
		return "desconocido"
	}
}

// VendorScope delimita qué filas de cartera/clientes puede ver un usuario.
// Se pasa explícitamente a cada consulta del repositorio; ninguna función
// lee estado ambiental de sesión.
type VendorScope struct {
	// All concede visibilidad total (admin y supervisor).
	All bool
	// Vendedor restringe a las filas cuyo vendedor coincide. Si All es
	// false y Vendedor está vacío, el alcance es vacío: cero filas.
	Vendedor string
}

// ScopeTotal es el alcance sin restricciones.
var ScopeTotal = VendorScope{All: true}

// Vacio indica que el alcance no permite ver ninguna fila.
func (s VendorScope) Vacio() bool {
	return !s.All && s.Vendedor == ""
}
