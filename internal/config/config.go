package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	SnapshotSync   SnapshotSync   `mapstructure:",squash"`
	AdminBootstrap AdminBootstrap `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	Path          string `mapstructure:"database_path"`
	BusyTimeoutMS int    `mapstructure:"database_busy_timeout_ms"`
}

type Auth struct {
	SecretKey string `mapstructure:"secret_key"`
	// Dominio de correo permitido para cuentas nuevas, ej. "papelsur.com".
	// Vacío desactiva la restricción.
	AllowedEmailDomain string `mapstructure:"allowed_email_domain"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

type AdminBootstrap struct {
	Email    string `mapstructure:"admin_bootstrap_email"`
	Password string `mapstructure:"admin_bootstrap_password"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_PATH", "cartera.db")
	viper.SetDefault("DATABASE_BUSY_TIMEOUT_MS", 5000)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("ALLOWED_EMAIL_DOMAIN", "papelsur.com")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 6 * * *") // Todos los días a las 6h
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("ADMIN_BOOTSTRAP_EMAIL", "")
	viper.SetDefault("ADMIN_BOOTSTRAP_PASSWORD", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // SOLO LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Intentar leer el .env con Viper (opcional, ya usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile carga el archivo .env desde las ubicaciones conocidas.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No fue posible obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Archivo .env cargado desde:", location)
			return
		}
	}

	logrus.Warn("No fue posible cargar el archivo .env de ninguna ubicación conocida")
}
