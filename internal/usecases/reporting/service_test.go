package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/papelsur/cartera-api/infrastructure/repository/mocks"
	"github.com/papelsur/cartera-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func periodoJunio() domain.Periodo {
	return domain.Periodo{
		Desde: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Hasta: time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestResumenCartera(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCartera := mocks.NewMockCarteraRepository(ctrl)
	service := &Service{carteraRepo: mockCartera}

	facturas := []*domain.FacturaCartera{
		{NIT: "900100", Factura: "F-1", Valor: 1000, DiasVencidos: 0},
		{NIT: "900100", Factura: "F-2", Valor: 500, DiasVencidos: 45},
		{NIT: "900200", Factura: "F-3", Valor: 2000, DiasVencidos: 120},
	}

	mockCartera.EXPECT().
		ListFacturas(domain.ScopeTotal, nil).
		Return(facturas, nil)

	resumen, err := service.ResumenCartera(domain.ScopeTotal)

	assert.NoError(t, err)
	assert.Equal(t, 3500.0, resumen.TotalValor)
	assert.Equal(t, 2500.0, resumen.TotalVencido)
	assert.Equal(t, 3, resumen.TotalFacturas)
	assert.Equal(t, 2, resumen.TotalClientes)
	assert.Len(t, resumen.Rangos, 5)
}

func TestAntiguedadSaldos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCartera := mocks.NewMockCarteraRepository(ctrl)
	service := &Service{carteraRepo: mockCartera}

	scope := domain.VendorScope{Vendedor: "PEDRO MARTINEZ"}
	mockCartera.EXPECT().
		ListFacturas(scope, nil).
		Return([]*domain.FacturaCartera{
			{NIT: "900100", Factura: "F-1", Valor: 100, DiasVencidos: 200},
		}, nil)

	rangos, err := service.AntiguedadSaldos(scope)

	assert.NoError(t, err)
	assert.Len(t, rangos, 8)
	assert.Equal(t, "181-365", rangos[6].Etiqueta)
	assert.Equal(t, 100.0, rangos[6].Valor)
}

func TestAvanceGestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCartera := mocks.NewMockCarteraRepository(ctrl)
	mockGestion := mocks.NewMockGestionRepository(ctrl)
	service := &Service{carteraRepo: mockCartera, gestionRepo: mockGestion}

	periodo := periodoJunio()

	facturas := []*domain.FacturaCartera{
		{NIT: "900100", Valor: 100, DiasVencidos: 10, Vendedor: strPtr("PEDRO MARTINEZ")},
		{NIT: "900200", Valor: 200, DiasVencidos: 0, Vendedor: strPtr("PEDRO MARTINEZ")},
		{NIT: "900300", Valor: 300, DiasVencidos: 45, Vendedor: strPtr("ANA GOMEZ")},
		{NIT: "900400", Valor: 400, DiasVencidos: 0, Vendedor: strPtr("ANA GOMEZ")},
	}

	mockCartera.EXPECT().
		ListFacturas(domain.ScopeTotal, nil).
		Return(facturas, nil)

	mockGestion.EXPECT().
		NITsConGestion(periodo).
		Return(map[string]bool{"900100": true, "900200": true}, nil)

	avance, err := service.AvanceGestion(domain.ScopeTotal, periodo)

	assert.NoError(t, err)
	assert.Equal(t, 4, avance.TotalClientes)
	assert.Equal(t, 2, avance.ClientesGestionados)
	assert.Equal(t, 2, avance.MoraTotal)
	assert.Equal(t, 1, avance.MoraGestionados)
	assert.Equal(t, 50.0, avance.PorcentajeGeneral)
	assert.Equal(t, 50.0, avance.PorcentajeMora)
}

func TestAvanceGestion_SinClientes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCartera := mocks.NewMockCarteraRepository(ctrl)
	mockGestion := mocks.NewMockGestionRepository(ctrl)
	service := &Service{carteraRepo: mockCartera, gestionRepo: mockGestion}

	periodo := periodoJunio()

	mockCartera.EXPECT().
		ListFacturas(gomock.Any(), nil).
		Return(nil, nil)

	mockGestion.EXPECT().
		NITsConGestion(periodo).
		Return(map[string]bool{}, nil)

	avance, err := service.AvanceGestion(domain.VendorScope{}, periodo)

	assert.NoError(t, err)
	// Sin clientes los porcentajes son 0, no NaN.
	assert.Equal(t, 0.0, avance.PorcentajeGeneral)
	assert.Equal(t, 0.0, avance.PorcentajeMora)
}

func TestTendencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistorico := mocks.NewMockHistoricoRepository(ctrl)
	service := &Service{historicoRepo: mockHistorico}

	periodo := periodoJunio()
	puntos := []*domain.PuntoTendencia{
		{Fecha: periodo.Desde, ValorTotal: 5000, ValorVencido: 1200, Facturas: 40},
	}

	mockHistorico.EXPECT().
		Tendencia(domain.ScopeTotal, periodo).
		Return(puntos, nil)

	resultado, err := service.Tendencia(domain.ScopeTotal, periodo)

	assert.NoError(t, err)
	assert.Equal(t, puntos, resultado)
}
