package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/internal/scheduler"
	"github.com/papelsur/cartera-api/pkg/apiErrors"
)

// Tipos de cron job disponibles para ejecución manual.
const (
	CronJobTypeFotoDiaria = "foto-diaria"
)

// CronJobServices agrupa los agendadores que se pueden disparar a mano.
type CronJobServices struct {
	FotoDiariaService *scheduler.FotoDiariaService
}

// RunCronJob dispara manualmente un cron job. La ejecución es asíncrona: la
// respuesta confirma el disparo, no la finalización.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeFotoDiaria:
			if services.FotoDiariaService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de foto diaria no disponible", nil)
				return
			}
			go services.FotoDiariaService.Run()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: foto-diaria", nil)
			return
		}

		logrus.WithField("tipo", cronType).Info("Cron job disparado manualmente")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "disparado",
			"tipo":   cronType,
		})
	}
}

// GetCronStatus devuelve el estado de la última ejecución de cada cron job.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.FotoDiariaService != nil {
			running, startedAt, completedAt := services.FotoDiariaService.Status()
			status[CronJobTypeFotoDiaria] = map[string]any{
				"running":      running,
				"started_at":   marcaDeTiempo(startedAt),
				"completed_at": marcaDeTiempo(completedAt),
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

func marcaDeTiempo(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	formato := t.Format(time.RFC3339)
	return &formato
}
