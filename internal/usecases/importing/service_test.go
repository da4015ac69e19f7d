package importing

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/papelsur/cartera-api/infrastructure/database/sqlite"
	"github.com/papelsur/cartera-api/infrastructure/repository"
	"github.com/papelsur/cartera-api/internal/domain"
	_ "modernc.org/sqlite"
)

const cabeceraERP = "Nit;Razon Social;Factura;Valor;Fecha Emision;Fecha Vencimiento;Condicion Pago;Dias Vencidos;Vendedor;Centro Operativo"

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

func nuevoImportador(conn *sqlite.Connection) (Importer, repository.CarteraRepository, repository.ClienteRepository) {
	carteraRepo := repository.NewCarteraRepository(conn)
	clienteRepo := repository.NewClienteRepository(conn)
	historicoRepo := repository.NewHistoricoRepository(conn)
	return NewService(conn, carteraRepo, clienteRepo, historicoRepo), carteraRepo, clienteRepo
}

func TestImportarSnapshot(t *testing.T) {
	conn := nuevaConexion(t)
	service, carteraRepo, clienteRepo := nuevoImportador(conn)

	archivo := strings.Join([]string{
		cabeceraERP,
		"900100;Distribuciones El Roble;F-001;1000.50;2025-05-01;2025-06-01;30 dias;15;PEDRO MARTINEZ;BOGOTA",
		"900100;Distribuciones El Roble;F-002;250;2025-05-10;2025-06-10;30 dias;5;PEDRO MARTINEZ;BOGOTA",
		"900200;Papeles del Valle;F-003;4000;2025-05-15;2025-07-15;60 dias;0;ANA GOMEZ;CALI",
	}, "\n")

	resultado, err := service.ImportarSnapshot(context.Background(), strings.NewReader(archivo))

	require.NoError(t, err)
	assert.Equal(t, 3, resultado.Facturas)
	assert.Equal(t, 2, resultado.Clientes)
	assert.Equal(t, 2, resultado.Vendedores)
	assert.Len(t, resultado.CargaID, 6)

	facturas, err := carteraRepo.ListFacturas(domain.ScopeTotal, nil)
	require.NoError(t, err)
	assert.Len(t, facturas, 3)
	for _, f := range facturas {
		assert.Equal(t, resultado.CargaID, f.CargaID)
	}

	cliente, err := clienteRepo.GetClienteByNIT("900100")
	require.NoError(t, err)
	require.NotNil(t, cliente)
	assert.Equal(t, "Distribuciones El Roble", cliente.RazonSocial)
	require.NotNil(t, cliente.Vendedor)
	assert.Equal(t, "PEDRO MARTINEZ", *cliente.Vendedor)
}

func TestImportarSnapshot_ReemplazaFotoAnterior(t *testing.T) {
	conn := nuevaConexion(t)
	service, carteraRepo, _ := nuevoImportador(conn)

	primera := strings.Join([]string{
		cabeceraERP,
		"900100;Distribuciones El Roble;F-001;1000;2025-05-01;2025-06-01;30 dias;15;PEDRO MARTINEZ;BOGOTA",
		"900200;Papeles del Valle;F-002;2000;2025-05-01;2025-06-01;30 dias;3;ANA GOMEZ;CALI",
	}, "\n")

	_, err := service.ImportarSnapshot(context.Background(), strings.NewReader(primera))
	require.NoError(t, err)

	segunda := strings.Join([]string{
		cabeceraERP,
		"900300;Carton Andino;F-100;500;2025-06-01;2025-07-01;30 dias;0;PEDRO MARTINEZ;BOGOTA",
	}, "\n")

	resultado, err := service.ImportarSnapshot(context.Background(), strings.NewReader(segunda))
	require.NoError(t, err)
	assert.Equal(t, 1, resultado.Facturas)

	// La foto anterior desaparece por completo: solo quedan las filas del
	// archivo nuevo.
	facturas, err := carteraRepo.ListFacturas(domain.ScopeTotal, nil)
	require.NoError(t, err)
	require.Len(t, facturas, 1)
	assert.Equal(t, "900300", facturas[0].NIT)
	assert.Equal(t, "F-100", facturas[0].Factura)
}

func TestImportarSnapshot_FilasSinNITSeDescartan(t *testing.T) {
	conn := nuevaConexion(t)
	service, carteraRepo, _ := nuevoImportador(conn)

	archivo := strings.Join([]string{
		cabeceraERP,
		"900100;Distribuciones El Roble;F-001;1000;2025-05-01;2025-06-01;30 dias;15;PEDRO MARTINEZ;BOGOTA",
		";Sin Nit;F-002;100;2025-05-01;2025-06-01;30 dias;1;PEDRO MARTINEZ;BOGOTA",
	}, "\n")

	resultado, err := service.ImportarSnapshot(context.Background(), strings.NewReader(archivo))

	require.NoError(t, err)
	assert.Equal(t, 1, resultado.Facturas)

	facturas, err := carteraRepo.ListFacturas(domain.ScopeTotal, nil)
	require.NoError(t, err)
	assert.Len(t, facturas, 1)
}

func TestImportarSnapshot_SinFilas(t *testing.T) {
	conn := nuevaConexion(t)
	service, _, _ := nuevoImportador(conn)

	_, err := service.ImportarSnapshot(context.Background(), strings.NewReader(cabeceraERP))

	assert.Error(t, err)
}

func TestImportarSnapshot_AlcanceFiltraVendedor(t *testing.T) {
	conn := nuevaConexion(t)
	service, carteraRepo, _ := nuevoImportador(conn)

	archivo := strings.Join([]string{
		cabeceraERP,
		"900100;Distribuciones El Roble;F-001;1000;2025-05-01;2025-06-01;30 dias;15;PEDRO MARTINEZ;BOGOTA",
		"900200;Papeles del Valle;F-002;2000;2025-05-01;2025-06-01;30 dias;3;ANA GOMEZ;CALI",
	}, "\n")

	_, err := service.ImportarSnapshot(context.Background(), strings.NewReader(archivo))
	require.NoError(t, err)

	propias, err := carteraRepo.ListFacturas(domain.VendorScope{Vendedor: "PEDRO MARTINEZ"}, nil)
	require.NoError(t, err)
	require.Len(t, propias, 1)
	assert.Equal(t, "900100", propias[0].NIT)

	vacias, err := carteraRepo.ListFacturas(domain.VendorScope{}, nil)
	require.NoError(t, err)
	assert.Empty(t, vacias)
}

func TestParseValor(t *testing.T) {
	tests := []struct {
		entrada string
		want    float64
	}{
		{"1000.50", 1000.50},
		{"1.234.567,89", 1234567.89},
		{"$ 500", 500},
		{"", 0},
		{"no-numerico", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseValor(tt.entrada), "entrada %q", tt.entrada)
	}
}
