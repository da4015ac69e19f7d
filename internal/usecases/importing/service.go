// Package importing procesa el archivo de cartera exportado del ERP y
// reemplaza la foto actual en una sola transacción.
package importing

import (
	"context"
	"database/sql"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"

	"github.com/papelsur/cartera-api/infrastructure/database/sqlite"
	"github.com/papelsur/cartera-api/infrastructure/repository"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/pkg/utils"
)

// Columnas del archivo del ERP. Las que no llegan se toleran y las
// desconocidas se ignoran.
const (
	colNIT              = "Nit"
	colRazonSocial      = "Razon Social"
	colFactura          = "Factura"
	colValor            = "Valor"
	colFechaEmision     = "Fecha Emision"
	colFechaVencimiento = "Fecha Vencimiento"
	colCondicionPago    = "Condicion Pago"
	colDiasVencidos     = "Dias Vencidos"
	colVendedor         = "Vendedor"
	colCentroOperativo  = "Centro Operativo"
	colTelefono         = "Telefono"
	colCelular          = "Celular"
	colDireccion        = "Direccion"
	colEmail            = "Email"
	colCiudad           = "Ciudad"
)

var ErrArchivoVacio = errors.New("el archivo de cartera no tiene filas")

type Importer interface {
	ImportarSnapshot(ctx context.Context, archivo io.Reader) (*domain.ResultadoImportacion, error)
}

type Service struct {
	conn          *sqlite.Connection
	carteraRepo   repository.CarteraRepository
	clienteRepo   repository.ClienteRepository
	historicoRepo repository.HistoricoRepository
}

func NewService(
	conn *sqlite.Connection,
	carteraRepo repository.CarteraRepository,
	clienteRepo repository.ClienteRepository,
	historicoRepo repository.HistoricoRepository,
) Importer {
	return &Service{
		conn:          conn,
		carteraRepo:   carteraRepo,
		clienteRepo:   clienteRepo,
		historicoRepo: historicoRepo,
	}
}

// ImportarSnapshot parsea el CSV del ERP y reemplaza la foto actual de
// cartera. Borrado, reinserción, upserts de clientes y foto histórica
// comparten una transacción: si algo falla la foto anterior sobrevive.
func (s *Service) ImportarSnapshot(ctx context.Context, archivo io.Reader) (*domain.ResultadoImportacion, error) {
	// Los exportes del ERP llegan en windows-1252, no en UTF-8.
	decoded := charmap.Windows1252.NewDecoder().Reader(archivo)
	df := dataframe.ReadCSV(decoded, dataframe.WithDelimiter(';'), dataframe.WithLazyQuotes(true))
	if df.Error() != nil {
		return nil, errors.Wrap(df.Error(), "no se pudo leer el archivo de cartera")
	}
	if df.Nrow() == 0 {
		return nil, ErrArchivoVacio
	}

	cargaID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	facturas, clientes, vendedores := extraerFilas(df)
	if len(facturas) == 0 {
		return nil, ErrArchivoVacio
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.carteraRepo.ReemplazarSnapshotTx(tx, cargaID, facturas); err != nil {
			return err
		}

		for _, cliente := range clientes {
			if err := s.clienteRepo.UpsertClienteTx(tx, cliente); err != nil {
				return err
			}
		}

		for _, vendedor := range vendedores {
			if err := s.clienteRepo.UpsertVendedorTx(tx, vendedor); err != nil {
				return err
			}
		}

		return s.historicoRepo.AppendFotoDiariaTx(tx, time.Now())
	})
	if err != nil {
		return nil, errors.Wrap(err, "fallo la transacción de importación")
	}

	logrus.WithFields(logrus.Fields{
		"carga_id":   cargaID,
		"facturas":   len(facturas),
		"clientes":   len(clientes),
		"vendedores": len(vendedores),
	}).Info("Importación de cartera completada")

	return &domain.ResultadoImportacion{
		CargaID:    cargaID,
		Facturas:   len(facturas),
		Clientes:   len(clientes),
		Vendedores: len(vendedores),
	}, nil
}

// extraerFilas recorre el dataframe y arma facturas, clientes únicos por NIT
// y vendedores únicos. Las filas sin NIT o sin número de factura se descartan.
func extraerFilas(df dataframe.DataFrame) ([]*domain.FacturaCartera, []*domain.Cliente, []string) {
	nombres := df.Names()
	existe := make(map[string]bool, len(nombres))
	for _, nombre := range nombres {
		existe[nombre] = true
	}

	getStr := func(fila int, col string) string {
		if !existe[col] {
			return ""
		}
		valor := df.Col(col).Elem(fila)
		if valor.IsNA() {
			return ""
		}
		return strings.TrimSpace(valor.String())
	}

	var facturas []*domain.FacturaCartera
	clientes := make(map[string]*domain.Cliente)
	vendedores := make(map[string]bool)

	descartadas := 0
	for fila := 0; fila < df.Nrow(); fila++ {
		nit := getStr(fila, colNIT)
		numero := getStr(fila, colFactura)
		if nit == "" || numero == "" {
			descartadas++
			continue
		}

		factura := &domain.FacturaCartera{
			NIT:              nit,
			Factura:          numero,
			Valor:            parseValor(getStr(fila, colValor)),
			FechaEmision:     parseFecha(getStr(fila, colFechaEmision)),
			FechaVencimiento: parseFecha(getStr(fila, colFechaVencimiento)),
			CondicionPago:    opcional(getStr(fila, colCondicionPago)),
			Vendedor:         opcional(getStr(fila, colVendedor)),
			CentroOperativo:  opcional(getStr(fila, colCentroOperativo)),
		}
		factura.DiasVencidos = parseDias(getStr(fila, colDiasVencidos), factura.FechaVencimiento)
		facturas = append(facturas, factura)

		if vendedor := getStr(fila, colVendedor); vendedor != "" {
			vendedores[vendedor] = true
		}

		if _, ok := clientes[nit]; !ok {
			clientes[nit] = &domain.Cliente{
				NIT:         nit,
				RazonSocial: getStr(fila, colRazonSocial),
				Telefono:    opcional(getStr(fila, colTelefono)),
				Celular:     opcional(getStr(fila, colCelular)),
				Direccion:   opcional(getStr(fila, colDireccion)),
				Email:       opcional(getStr(fila, colEmail)),
				Ciudad:      opcional(getStr(fila, colCiudad)),
				Vendedor:    opcional(getStr(fila, colVendedor)),
				CupoActivo:  true,
			}
		}
	}

	if descartadas > 0 {
		logrus.WithField("filas", descartadas).Warn("Filas sin NIT o sin factura descartadas de la importación")
	}

	listaClientes := make([]*domain.Cliente, 0, len(clientes))
	for _, cliente := range clientes {
		listaClientes = append(listaClientes, cliente)
	}

	listaVendedores := make([]string, 0, len(vendedores))
	for vendedor := range vendedores {
		listaVendedores = append(listaVendedores, vendedor)
	}

	return facturas, listaClientes, listaVendedores
}

// parseValor acepta el formato contable del ERP: separador de miles con
// punto y decimales con coma ("1.234.567,89").
func parseValor(valor string) float64 {
	if valor == "" {
		return 0
	}

	limpio := strings.ReplaceAll(valor, "$", "")
	limpio = strings.ReplaceAll(limpio, " ", "")
	if strings.Contains(limpio, ",") {
		limpio = strings.ReplaceAll(limpio, ".", "")
		limpio = strings.ReplaceAll(limpio, ",", ".")
	}

	parsed, err := strconv.ParseFloat(limpio, 64)
	if err != nil {
		return 0
	}

	return parsed
}

var layoutsFecha = []string{"2006-01-02", "02/01/2006", "2/1/2006"}

func parseFecha(fecha string) *time.Time {
	if fecha == "" {
		return nil
	}

	for _, layout := range layoutsFecha {
		if parsed, err := time.Parse(layout, fecha); err == nil {
			return &parsed
		}
	}

	return nil
}

// parseDias usa la columna del ERP cuando llega; si falta, deriva los días
// desde la fecha de vencimiento.
func parseDias(dias string, vencimiento *time.Time) int {
	if dias != "" {
		if parsed, err := strconv.Atoi(dias); err == nil {
			return parsed
		}
	}

	if vencimiento != nil {
		transcurridos := int(time.Since(*vencimiento).Hours() / 24)
		if transcurridos > 0 {
			return transcurridos
		}
	}

	return 0
}

func opcional(valor string) *string {
	if valor == "" {
		return nil
	}
	return &valor
}
