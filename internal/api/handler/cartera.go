package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/internal/usecases/importing"
	"github.com/papelsur/cartera-api/internal/usecases/reporting"
	"github.com/papelsur/cartera-api/pkg/apiErrors"
)

// Tamaño máximo del archivo de importación: 20 MB.
const maxImportSize = 20 << 20

// ListCartera lista las facturas de la foto actual visibles para el usuario.
// Filtros opcionales: ?nit=, ?vendedor=, ?vencidas=true.
func ListCartera(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		query := r.URL.Query()
		filtros := &domain.FiltrosCartera{
			NIT:          query.Get("nit"),
			Vendedor:     query.Get("vendedor"),
			SoloVencidas: query.Get("vencidas") == "true",
		}

		facturas, err := service.ListFacturas(scopeDeClaims(userClaims), filtros)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la cartera", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(facturas)
	}
}

func GetResumenCartera(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		resumen, err := service.ResumenCartera(scopeDeClaims(userClaims))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular el resumen de cartera", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resumen)
	}
}

func GetAntiguedadSaldos(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		rangos, err := service.AntiguedadSaldos(scopeDeClaims(userClaims))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular la antigüedad de saldos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rangos)
	}
}

// ExportarCartera descarga la cartera visible como CSV. El exporte es un
// volcado ad hoc de la consulta, no un formato de intercambio.
func ExportarCartera(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsDeContexto(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
			return
		}

		facturas, err := service.ListFacturas(scopeDeClaims(userClaims), nil)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la cartera", nil)
			return
		}

		nombre := fmt.Sprintf("cartera_%s.csv", time.Now().Format("20060102"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))

		writer := csv.NewWriter(w)
		defer writer.Flush()

		writer.Write([]string{"nit", "factura", "valor", "fecha_emision", "fecha_vencimiento", "dias_vencidos", "vendedor", "centro_operativo"})
		for _, f := range facturas {
			writer.Write([]string{
				f.NIT,
				f.Factura,
				fmt.Sprintf("%.2f", f.Valor),
				formatoFecha(f.FechaEmision),
				formatoFecha(f.FechaVencimiento),
				fmt.Sprintf("%d", f.DiasVencidos),
				textoOpcional(f.Vendedor),
				textoOpcional(f.CentroOperativo),
			})
		}
	}
}

// ImportarCartera recibe el archivo del ERP por multipart y reemplaza la
// foto actual de cartera.
func ImportarCartera(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Archivo inválido o demasiado grande", nil)
			return
		}

		archivo, _, err := r.FormFile("archivo")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Falta el campo 'archivo' en la petición", nil)
			return
		}
		defer archivo.Close()

		resultado, err := service.ImportarSnapshot(r.Context(), archivo)
		if err != nil {
			logrus.WithError(err).Error("Importación de cartera fallida")
			apiErrors.WriteError(w, apiErrors.ErrImportFailed, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resultado)
	}
}

func formatoFecha(fecha *time.Time) string {
	if fecha == nil {
		return ""
	}
	return fecha.Format(time.DateOnly)
}

func textoOpcional(valor *string) string {
	if valor == nil {
		return ""
	}
	return *valor
}
