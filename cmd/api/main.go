package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/infrastructure/database/sqlite"
	"github.com/papelsur/cartera-api/infrastructure/repository"
	"github.com/papelsur/cartera-api/internal/api"
	"github.com/papelsur/cartera-api/internal/config"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/internal/scheduler"
	"github.com/papelsur/cartera-api/internal/usecases/authenticating"
	"github.com/papelsur/cartera-api/internal/usecases/gestionando"
	"github.com/papelsur/cartera-api/internal/usecases/importing"
	"github.com/papelsur/cartera-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := sqliteConn(ctx, cfg.Database)
	defer conn.Close()

	if err := conn.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("Error al aplicar las migraciones")
	}

	usuarioRepo := repository.NewUsuarioRepository(conn)
	carteraRepo := repository.NewCarteraRepository(conn)
	clienteRepo := repository.NewClienteRepository(conn)
	gestionRepo := repository.NewGestionRepository(conn)
	historicoRepo := repository.NewHistoricoRepository(conn)

	authenticator := authenticating.NewService(usuarioRepo, cfg)
	reportes := reporting.NewService(carteraRepo, gestionRepo, historicoRepo)
	importador := importing.NewService(conn, carteraRepo, clienteRepo, historicoRepo)
	gestionador := gestionando.NewService(gestionRepo, clienteRepo, carteraRepo)

	bootstrapAdmin(cfg, usuarioRepo, authenticator)

	fotoDiariaService := scheduler.NewFotoDiariaService(historicoRepo, cfg)
	if err := fotoDiariaService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de foto diaria")
	} else {
		logrus.Info("Agendador de foto diaria iniciado")
	}

	server, err := api.New(
		cfg,
		authenticator,
		reportes,
		importador,
		gestionador,
		fotoDiariaService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// sqliteConn abre la base SQLite local
func sqliteConn(ctx context.Context, dbConfig config.Database) *sqlite.Connection {
	conn, err := sqlite.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al abrir la base SQLite")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Error al verificar la conexión con SQLite")
	}

	logrus.WithField("path", dbConfig.Path).Info("Conexión con SQLite establecida")
	return conn
}

// bootstrapAdmin crea el administrador inicial cuando la base está vacía y
// la configuración trae credenciales de arranque.
func bootstrapAdmin(cfg *config.Config, usuarioRepo repository.UsuarioRepository, authenticator authenticating.Authenticator) {
	if cfg.AdminBootstrap.Email == "" || cfg.AdminBootstrap.Password == "" {
		return
	}

	total, err := usuarioRepo.CountUsuarios()
	if err != nil {
		logrus.WithError(err).Error("Error al contar usuarios para el bootstrap")
		return
	}
	if total > 0 {
		return
	}

	_, err = authenticator.CreateUsuario(&domain.Usuario{
		Email:          cfg.AdminBootstrap.Email,
		NombreCompleto: "Administrador",
		RolID:          domain.RolAdmin,
	}, cfg.AdminBootstrap.Password)
	if err != nil {
		logrus.WithError(err).Error("Error al crear el administrador inicial")
		return
	}

	logrus.WithField("email", cfg.AdminBootstrap.Email).Info("Administrador inicial creado")
}
