// Package gestionando registra y consulta las gestiones de cobro sobre los
// clientes de la cartera.
package gestionando

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/papelsur/cartera-api/infrastructure/repository"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/internal/usecases/authorizing"
)

var (
	ErrClienteNoEncontrado  = errors.New("cliente no encontrado")
	ErrClienteFueraAlcance  = errors.New("el cliente no pertenece al alcance del usuario")
	ErrTipoContactoInvalido = errors.New("tipo de contacto inválido")
	ErrResultadoInvalido    = errors.New("resultado de gestión inválido")
	ErrNotasObligatorias    = errors.New("las notas de la gestión son obligatorias")
)

type Gestionador interface {
	RegistrarGestion(scope domain.VendorScope, gestion *domain.GestionCobro) (*domain.GestionCobro, error)
	GestionesCliente(scope domain.VendorScope, nit string, periodo domain.Periodo) ([]*domain.GestionCobro, error)
	SeguimientosPendientes(scope domain.VendorScope, periodo domain.Periodo) ([]*domain.GestionCobro, error)
	DetalleCliente(scope domain.VendorScope, nit string, periodo domain.Periodo) (*domain.ClienteDetalle, error)
	ListClientes(scope domain.VendorScope) ([]*domain.Cliente, error)
	ListVendedores() ([]string, error)
}

type Service struct {
	gestionRepo repository.GestionRepository
	clienteRepo repository.ClienteRepository
	carteraRepo repository.CarteraRepository
}

func NewService(
	gestionRepo repository.GestionRepository,
	clienteRepo repository.ClienteRepository,
	carteraRepo repository.CarteraRepository,
) Gestionador {
	return &Service{
		gestionRepo: gestionRepo,
		clienteRepo: clienteRepo,
		carteraRepo: carteraRepo,
	}
}

// RegistrarGestion valida el canal y el resultado contra los catálogos y
// verifica que el cliente exista y esté dentro del alcance del usuario.
func (s *Service) RegistrarGestion(scope domain.VendorScope, gestion *domain.GestionCobro) (*domain.GestionCobro, error) {
	if !domain.TipoContactoValido(gestion.TipoContacto) {
		return nil, ErrTipoContactoInvalido
	}
	if !domain.ResultadoGestionValido(gestion.Resultado) {
		return nil, ErrResultadoInvalido
	}
	if gestion.Notas == "" {
		return nil, ErrNotasObligatorias
	}

	cliente, err := s.clienteRepo.GetClienteByNIT(gestion.NIT)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, ErrClienteNoEncontrado
	}
	if !authorizing.PuedeVer(scope, cliente.Vendedor) {
		return nil, ErrClienteFueraAlcance
	}

	if gestion.Fecha.IsZero() {
		gestion.Fecha = time.Now()
	}

	creada, err := s.gestionRepo.CrearGestion(gestion)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"gestion_id": creada.ID,
		"nit":        creada.NIT,
		"resultado":  creada.Resultado,
	}).Info("Gestión de cobro registrada")

	return creada, nil
}

func (s *Service) GestionesCliente(scope domain.VendorScope, nit string, periodo domain.Periodo) ([]*domain.GestionCobro, error) {
	cliente, err := s.clienteRepo.GetClienteByNIT(nit)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, ErrClienteNoEncontrado
	}
	if !authorizing.PuedeVer(scope, cliente.Vendedor) {
		return nil, ErrClienteFueraAlcance
	}

	return s.gestionRepo.ListGestionesPorNIT(nit, periodo)
}

// SeguimientosPendientes lista los seguimientos del período filtrados en
// memoria por el alcance del usuario.
func (s *Service) SeguimientosPendientes(scope domain.VendorScope, periodo domain.Periodo) ([]*domain.GestionCobro, error) {
	seguimientos, err := s.gestionRepo.SeguimientosPendientes(periodo)
	if err != nil {
		return nil, err
	}
	if scope.All {
		return seguimientos, nil
	}

	visibles := make(map[string]bool)
	clientes, err := s.clienteRepo.ListClientes(scope)
	if err != nil {
		return nil, err
	}
	for _, cliente := range clientes {
		visibles[cliente.NIT] = true
	}

	filtrados := make([]*domain.GestionCobro, 0, len(seguimientos))
	for _, seguimiento := range seguimientos {
		if visibles[seguimiento.NIT] {
			filtrados = append(filtrados, seguimiento)
		}
	}

	return filtrados, nil
}

// DetalleCliente arma la ficha del cliente: datos de contacto, saldo actual
// y las gestiones del período.
func (s *Service) DetalleCliente(scope domain.VendorScope, nit string, periodo domain.Periodo) (*domain.ClienteDetalle, error) {
	cliente, err := s.clienteRepo.GetClienteByNIT(nit)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, ErrClienteNoEncontrado
	}
	if !authorizing.PuedeVer(scope, cliente.Vendedor) {
		return nil, ErrClienteFueraAlcance
	}

	facturas, err := s.carteraRepo.ListFacturas(domain.ScopeTotal, &domain.FiltrosCartera{NIT: nit})
	if err != nil {
		return nil, err
	}

	gestiones, err := s.gestionRepo.ListGestionesPorNIT(nit, periodo)
	if err != nil {
		return nil, err
	}

	detalle := &domain.ClienteDetalle{
		Cliente:   *cliente,
		Facturas:  facturas,
		Gestiones: gestiones,
	}

	for _, factura := range facturas {
		detalle.SaldoTotal += factura.Valor
		if factura.DiasVencidos > 0 {
			detalle.SaldoVencido += factura.Valor
		}
	}

	return detalle, nil
}

func (s *Service) ListClientes(scope domain.VendorScope) ([]*domain.Cliente, error) {
	return s.clienteRepo.ListClientes(scope)
}

func (s *Service) ListVendedores() ([]string, error) {
	return s.clienteRepo.ListVendedores()
}
