package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa la configuración del proceso leída del entorno.
type Config struct {
	MongoURI            string
	DBName              string
	Port                string
	Env                 string
	LogLevel            string
	CORSOrigins         []string
	RequestTimeout      time.Duration
	HealthcheckInterval time.Duration
	ShutdownTimeout     time.Duration
	JWTSecret           string
	MetricsAllowedIPs   []string
}

const (
	DefaultDBName = "resort_cashless"
	DefaultPort   = "3000"
)

// Load lee .env (si existe) y después las variables de entorno.
// La ausencia de MONGODB_URI no es un error: el proceso arranca sin base de datos.
func Load() Config {
	// .env es opcional
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = os.Getenv("MONGO_URI")
	}

	return Config{
		MongoURI:            strings.TrimSpace(uri),
		DBName:              getEnv("DB_NAME", DefaultDBName),
		Port:                getEnv("PORT", DefaultPort),
		Env:                 getEnv("APP_ENV", "dev"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CORSOrigins:         splitList(getEnv("CORS_ORIGINS", "*")),
		RequestTimeout:      getDuration("REQUEST_TIMEOUT", 10*time.Second),
		HealthcheckInterval: getDuration("HEALTHCHECK_INTERVAL", time.Minute),
		ShutdownTimeout:     getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		MetricsAllowedIPs:   splitList(os.Getenv("METRICS_ALLOWED_IPS")),
	}
}

// HasDatabase indica si se configuró una cadena de conexión.
func (c Config) HasDatabase() bool {
	return c.MongoURI != ""
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
