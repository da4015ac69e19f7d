package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/papelsur/cartera-api/infrastructure/database/sqlite"
	"github.com/papelsur/cartera-api/internal/domain"
	_ "modernc.org/sqlite"
)

func nuevaConexion(t *testing.T) *sqlite.Connection {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := &sqlite.Connection{DB: db}
	require.NoError(t, conn.Migrate(context.Background()))

	return conn
}

func strPtr(s string) *string { return &s }

func cargarSnapshot(t *testing.T, conn *sqlite.Connection, facturas []*domain.FacturaCartera) {
	t.Helper()

	repo := NewCarteraRepository(conn)
	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return repo.ReemplazarSnapshotTx(tx, "abc123", facturas)
	})
	require.NoError(t, err)
}

func TestUsuarioRepository_CRUD(t *testing.T) {
	conn := nuevaConexion(t)
	repo := NewUsuarioRepository(conn)

	vendedor := "PEDRO MARTINEZ"
	creado, err := repo.CreateUsuario(&domain.Usuario{
		Email:            "pedro@papelsur.com",
		PasswordHash:     "hash",
		NombreCompleto:   "Pedro Martinez",
		RolID:            domain.RolComercial,
		VendedorAsignado: &vendedor,
		Activo:           true,
	})
	require.NoError(t, err)
	require.NotZero(t, creado.ID)

	porEmail, err := repo.GetUsuarioByEmail("pedro@papelsur.com")
	require.NoError(t, err)
	require.NotNil(t, porEmail)
	assert.Equal(t, creado.ID, porEmail.ID)
	require.NotNil(t, porEmail.VendedorAsignado)
	assert.Equal(t, vendedor, *porEmail.VendedorAsignado)

	inexistente, err := repo.GetUsuarioByEmail("nadie@papelsur.com")
	require.NoError(t, err)
	assert.Nil(t, inexistente)

	porEmail.NombreCompleto = "Pedro A. Martinez"
	porEmail.Activo = false
	require.NoError(t, repo.UpdateUsuario(porEmail))

	porID, err := repo.GetUsuarioByID(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pedro A. Martinez", porID.NombreCompleto)
	assert.False(t, porID.Activo)
}

func TestUsuarioRepository_CountAdminsActivos(t *testing.T) {
	conn := nuevaConexion(t)
	repo := NewUsuarioRepository(conn)

	_, err := repo.CreateUsuario(&domain.Usuario{
		Email: "admin@papelsur.com", PasswordHash: "h", NombreCompleto: "Admin",
		RolID: domain.RolAdmin, Activo: true,
	})
	require.NoError(t, err)

	_, err = repo.CreateUsuario(&domain.Usuario{
		Email: "admin2@papelsur.com", PasswordHash: "h", NombreCompleto: "Admin Inactivo",
		RolID: domain.RolAdmin, Activo: false,
	})
	require.NoError(t, err)

	_, err = repo.CreateUsuario(&domain.Usuario{
		Email: "pedro@papelsur.com", PasswordHash: "h", NombreCompleto: "Pedro",
		RolID: domain.RolComercial, Activo: true,
	})
	require.NoError(t, err)

	admins, err := repo.CountAdminsActivos()
	require.NoError(t, err)
	assert.Equal(t, 1, admins)

	total, err := repo.CountUsuarios()
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestCarteraRepository_Filtros(t *testing.T) {
	conn := nuevaConexion(t)
	repo := NewCarteraRepository(conn)

	cargarSnapshot(t, conn, []*domain.FacturaCartera{
		{NIT: "900100", Factura: "F-1", Valor: 100, DiasVencidos: 10, Vendedor: strPtr("PEDRO MARTINEZ")},
		{NIT: "900100", Factura: "F-2", Valor: 200, DiasVencidos: 0, Vendedor: strPtr("PEDRO MARTINEZ")},
		{NIT: "900200", Factura: "F-3", Valor: 300, DiasVencidos: 40, Vendedor: strPtr("ANA GOMEZ")},
	})

	todas, err := repo.ListFacturas(domain.ScopeTotal, nil)
	require.NoError(t, err)
	assert.Len(t, todas, 3)

	vencidas, err := repo.ListFacturas(domain.ScopeTotal, &domain.FiltrosCartera{SoloVencidas: true})
	require.NoError(t, err)
	assert.Len(t, vencidas, 2)

	porNIT, err := repo.ListFacturas(domain.ScopeTotal, &domain.FiltrosCartera{NIT: "900100"})
	require.NoError(t, err)
	assert.Len(t, porNIT, 2)

	porVendedor, err := repo.ListFacturas(domain.VendorScope{Vendedor: "ANA GOMEZ"}, nil)
	require.NoError(t, err)
	require.Len(t, porVendedor, 1)
	assert.Equal(t, "F-3", porVendedor[0].Factura)

	sinAlcance, err := repo.ListFacturas(domain.VendorScope{}, nil)
	require.NoError(t, err)
	assert.Empty(t, sinAlcance)
}

func TestCarteraRepository_ReemplazoFallidoConservaFoto(t *testing.T) {
	conn := nuevaConexion(t)
	repo := NewCarteraRepository(conn)

	cargarSnapshot(t, conn, []*domain.FacturaCartera{
		{NIT: "900100", Factura: "F-1", Valor: 100, DiasVencidos: 10, Vendedor: strPtr("PEDRO MARTINEZ")},
		{NIT: "900200", Factura: "F-2", Valor: 200, DiasVencidos: 0, Vendedor: strPtr("ANA GOMEZ")},
	})

	// Un fallo después del borrado revierte la transacción completa.
	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if err := repo.ReemplazarSnapshotTx(tx, "zzz999", []*domain.FacturaCartera{
			{NIT: "900300", Factura: "F-9", Valor: 50},
		}); err != nil {
			return err
		}
		return errors.New("fallo posterior al reemplazo")
	})
	require.Error(t, err)

	facturas, err := repo.ListFacturas(domain.ScopeTotal, nil)
	require.NoError(t, err)
	require.Len(t, facturas, 2)
	for _, f := range facturas {
		assert.Equal(t, "abc123", f.CargaID)
		assert.NotEqual(t, "900300", f.NIT)
	}
}

func TestGestionRepository(t *testing.T) {
	conn := nuevaConexion(t)
	repo := NewGestionRepository(conn)

	hoy := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	seguimiento := hoy.AddDate(0, 0, 5)

	creada, err := repo.CrearGestion(&domain.GestionCobro{
		NIT:                "900100",
		TipoContacto:       "Llamada",
		Resultado:          "Promesa de pago",
		Fecha:              hoy,
		UsuarioID:          1,
		Notas:              "Promete pagar el viernes",
		ProximoSeguimiento: &seguimiento,
	})
	require.NoError(t, err)
	assert.NotZero(t, creada.ID)

	_, err = repo.CrearGestion(&domain.GestionCobro{
		NIT:          "900200",
		TipoContacto: "Correo",
		Resultado:    "No contesta",
		Fecha:        hoy.AddDate(0, -2, 0),
		UsuarioID:    1,
		Notas:        "Sin respuesta",
	})
	require.NoError(t, err)

	periodo := domain.Periodo{
		Desde: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Hasta: time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	}

	gestiones, err := repo.ListGestionesPorNIT("900100", periodo)
	require.NoError(t, err)
	require.Len(t, gestiones, 1)
	assert.Equal(t, "Promesa de pago", gestiones[0].Resultado)

	// La gestión de abril queda fuera del período.
	nits, err := repo.NITsConGestion(periodo)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"900100": true}, nits)

	pendientes, err := repo.SeguimientosPendientes(periodo)
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.Equal(t, "900100", pendientes[0].NIT)
}

func TestHistoricoRepository_FotoDiariaIdempotente(t *testing.T) {
	conn := nuevaConexion(t)
	repo := NewHistoricoRepository(conn)

	cargarSnapshot(t, conn, []*domain.FacturaCartera{
		{NIT: "900100", Factura: "F-1", Valor: 100, DiasVencidos: 10, Vendedor: strPtr("PEDRO MARTINEZ")},
		{NIT: "900200", Factura: "F-2", Valor: 200, DiasVencidos: 0, Vendedor: strPtr("ANA GOMEZ")},
	})

	hoy := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	filas, err := repo.AppendFotoDiaria(hoy)
	require.NoError(t, err)
	assert.Equal(t, 2, filas)

	// La segunda corrida del mismo día no duplica filas.
	filas, err = repo.AppendFotoDiaria(hoy)
	require.NoError(t, err)
	assert.Equal(t, 0, filas)

	periodo := domain.Periodo{Desde: hoy.AddDate(0, 0, -7), Hasta: hoy}

	puntos, err := repo.Tendencia(domain.ScopeTotal, periodo)
	require.NoError(t, err)
	require.Len(t, puntos, 1)
	assert.Equal(t, 300.0, puntos[0].ValorTotal)
	assert.Equal(t, 100.0, puntos[0].ValorVencido)
	assert.Equal(t, 2, puntos[0].Facturas)

	soloPedro, err := repo.Tendencia(domain.VendorScope{Vendedor: "PEDRO MARTINEZ"}, periodo)
	require.NoError(t, err)
	require.Len(t, soloPedro, 1)
	assert.Equal(t, 100.0, soloPedro[0].ValorTotal)
}

func TestClienteRepository_Upsert(t *testing.T) {
	conn := nuevaConexion(t)
	repo := NewClienteRepository(conn)

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if err := repo.UpsertClienteTx(tx, &domain.Cliente{
			NIT:         "900100",
			RazonSocial: "Distribuciones El Roble",
			Telefono:    strPtr("6015551234"),
			Vendedor:    strPtr("PEDRO MARTINEZ"),
			CupoActivo:  true,
		}); err != nil {
			return err
		}
		return repo.UpsertVendedorTx(tx, "PEDRO MARTINEZ")
	})
	require.NoError(t, err)

	// Segunda importación sin teléfono: el dato existente se conserva.
	err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return repo.UpsertClienteTx(tx, &domain.Cliente{
			NIT:         "900100",
			RazonSocial: "Distribuciones El Roble SAS",
			Vendedor:    strPtr("PEDRO MARTINEZ"),
			CupoActivo:  true,
		})
	})
	require.NoError(t, err)

	cliente, err := repo.GetClienteByNIT("900100")
	require.NoError(t, err)
	require.NotNil(t, cliente)
	assert.Equal(t, "Distribuciones El Roble SAS", cliente.RazonSocial)
	require.NotNil(t, cliente.Telefono)
	assert.Equal(t, "6015551234", *cliente.Telefono)

	vendedores, err := repo.ListVendedores()
	require.NoError(t, err)
	assert.Equal(t, []string{"PEDRO MARTINEZ"}, vendedores)
}
