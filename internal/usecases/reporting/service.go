// Package reporting calcula los agregados de cartera que alimentan los
// tableros: resumen por rangos de vencimiento, antigüedad de saldos, avance
// de gestión y tendencia histórica.
package reporting

import (
	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/infrastructure/repository"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/pkg/utils"
)

type Reporter interface {
	ListFacturas(scope domain.VendorScope, filtros *domain.FiltrosCartera) ([]*domain.FacturaCartera, error)
	ResumenCartera(scope domain.VendorScope) (*domain.ResumenCartera, error)
	AntiguedadSaldos(scope domain.VendorScope) ([]domain.BucketVencimiento, error)
	AvanceGestion(scope domain.VendorScope, periodo domain.Periodo) (*domain.AvanceGestion, error)
	Tendencia(scope domain.VendorScope, periodo domain.Periodo) ([]*domain.PuntoTendencia, error)
}

type Service struct {
	carteraRepo   repository.CarteraRepository
	gestionRepo   repository.GestionRepository
	historicoRepo repository.HistoricoRepository
}

func NewService(
	carteraRepo repository.CarteraRepository,
	gestionRepo repository.GestionRepository,
	historicoRepo repository.HistoricoRepository,
) Reporter {
	return &Service{
		carteraRepo:   carteraRepo,
		gestionRepo:   gestionRepo,
		historicoRepo: historicoRepo,
	}
}

func (s *Service) ListFacturas(scope domain.VendorScope, filtros *domain.FiltrosCartera) ([]*domain.FacturaCartera, error) {
	return s.carteraRepo.ListFacturas(scope, filtros)
}

// ResumenCartera arma la cabecera del tablero general con la partición de
// 5 rangos de vencimiento.
func (s *Service) ResumenCartera(scope domain.VendorScope) (*domain.ResumenCartera, error) {
	facturas, err := s.carteraRepo.ListFacturas(scope, nil)
	if err != nil {
		return nil, err
	}

	resumen := &domain.ResumenCartera{
		TotalFacturas: len(facturas),
		Rangos:        domain.ClasificarVencimiento(facturas, domain.RangosResumen),
	}

	clientes := make(map[string]bool)
	for _, f := range facturas {
		resumen.TotalValor += f.Valor
		if f.DiasVencidos > 0 {
			resumen.TotalVencido += f.Valor
		}
		clientes[f.NIT] = true
	}
	resumen.TotalClientes = len(clientes)

	return resumen, nil
}

// AntiguedadSaldos devuelve la partición fina de 8 rangos del informe de
// antigüedad.
func (s *Service) AntiguedadSaldos(scope domain.VendorScope) ([]domain.BucketVencimiento, error) {
	facturas, err := s.carteraRepo.ListFacturas(scope, nil)
	if err != nil {
		return nil, err
	}

	return domain.ClasificarVencimiento(facturas, domain.RangosAntiguedad), nil
}

// AvanceGestion cruza los clientes visibles de la cartera con las gestiones
// registradas en el período. Los porcentajes se protegen contra división
// por cero devolviendo 0.
func (s *Service) AvanceGestion(scope domain.VendorScope, periodo domain.Periodo) (*domain.AvanceGestion, error) {
	facturas, err := s.carteraRepo.ListFacturas(scope, nil)
	if err != nil {
		return nil, err
	}

	gestionados, err := s.gestionRepo.NITsConGestion(periodo)
	if err != nil {
		return nil, err
	}

	clientes := make(map[string]bool)
	clientesMora := make(map[string]bool)
	for _, f := range facturas {
		clientes[f.NIT] = true
		if f.DiasVencidos > 0 && f.Valor > 0 {
			clientesMora[f.NIT] = true
		}
	}

	avance := &domain.AvanceGestion{
		TotalClientes: len(clientes),
		MoraTotal:     len(clientesMora),
	}

	for nit := range clientes {
		if gestionados[nit] {
			avance.ClientesGestionados++
		}
	}

	for nit := range clientesMora {
		if gestionados[nit] {
			avance.MoraGestionados++
		}
	}

	avance.PorcentajeGeneral = porcentaje(avance.ClientesGestionados, avance.TotalClientes)
	avance.PorcentajeMora = porcentaje(avance.MoraGestionados, avance.MoraTotal)

	logrus.WithFields(logrus.Fields{
		"total_clientes":       avance.TotalClientes,
		"clientes_gestionados": avance.ClientesGestionados,
		"porcentaje_general":   avance.PorcentajeGeneral,
	}).Debug("Avance de gestión calculado")

	return avance, nil
}

func (s *Service) Tendencia(scope domain.VendorScope, periodo domain.Periodo) ([]*domain.PuntoTendencia, error) {
	return s.historicoRepo.Tendencia(scope, periodo)
}

func porcentaje(parte, total int) float64 {
	if total == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(parte) / float64(total) * 100)
}
