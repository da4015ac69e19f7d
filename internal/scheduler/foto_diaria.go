// Package scheduler agenda la foto diaria de cartera: copia la tabla actual
// al histórico una vez al día para alimentar las series de tendencia.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/infrastructure/repository"
	"github.com/papelsur/cartera-api/internal/config"
)

// FotoDiariaService gestiona el agendamiento de la foto diaria de cartera.
type FotoDiariaService struct {
	scheduler           *gocron.Scheduler
	cfg                 config.SnapshotSync
	historicoRepo       repository.HistoricoRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewFotoDiariaService(
	historicoRepo repository.HistoricoRepository,
	cfg *config.Config,
) *FotoDiariaService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.SnapshotSync.CronSchedule,
		"sync_enabled":  cfg.SnapshotSync.Enabled,
	}).Info("Configuración del agendador de foto diaria cargada")

	return &FotoDiariaService{
		scheduler:     gocron.NewScheduler(time.Local),
		cfg:           cfg.SnapshotSync,
		historicoRepo: historicoRepo,
	}
}

// Start agenda la foto diaria y detiene el agendador al cancelar el contexto.
func (s *FotoDiariaService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Foto diaria de cartera deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando agendador de foto diaria de cartera")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.Run()
	})
	if err != nil {
		return fmt.Errorf("error al agendar la foto diaria de cartera: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de foto diaria de cartera")
		s.scheduler.Stop()
	}()

	return nil
}

// Run ejecuta la foto diaria. También la dispara el endpoint manual de cron.
// Si ya hay una ejecución en curso se ignora la nueva.
func (s *FotoDiariaService) Run() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Foto diaria de cartera ya en curso, ignorando")
		return
	}
	s.syncRunning = true
	inicio := time.Now()
	s.lastSyncStartedAt = inicio
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	filas, err := s.historicoRepo.AppendFotoDiaria(time.Now())
	if err != nil {
		logrus.WithError(err).Error("Error al copiar la foto diaria de cartera al histórico")
		return
	}

	// Las marcas de tiempo se escriben bajo el candado porque Status las lee
	// mientras una corrida sigue en curso.
	fin := time.Now()
	s.syncMutex.Lock()
	s.lastSyncCompletedAt = fin
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"filas":    filas,
		"duracion": fin.Sub(inicio).String(),
	}).Info("Foto diaria de cartera copiada al histórico")
}

// Status expone las marcas de tiempo de la última ejecución.
func (s *FotoDiariaService) Status() (running bool, startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}
