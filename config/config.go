package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config armazena todas as configurações do aplicativo GoFinanceiro.
type Config struct {
	// Geral
	Port        string
	APIPrefix   string
	Environment string
	LogLevel    string
	LogFormat   string

	// Banco de Dados (PostgreSQL)
	DatabaseURL    string
	DBTimeout      time.Duration
	DBMaxOpenConns int
	DBMaxIdleConns int

	// Rate Limiting (contadores no Redis; vazio desativa)
	RedisAddr            string
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// CORS
	AllowedOrigins []string

	// Console (cliente da API)
	APIBaseURL string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("API_PORT", getEnv("PORT", "3001")),
		APIPrefix:   normalizePrefix(getEnv("API_PREFIX", "/api")),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),

		// 2. Banco de Dados (PostgreSQL)
		DatabaseURL:    databaseURL(),
		DBTimeout:      getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second, // 5s padrão
		DBMaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 10),

		// 3. Rate Limiting
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute, // 1 min padrão

		// 4. CORS
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		// 5. Console
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:3001/api"),
	}

	return cfg
}

// databaseURL usa DATABASE_URL quando definida; caso contrário monta a DSN
// a partir de DB_USER, DB_PASSWORD, DB_HOST, DB_PORT e DB_DATABASE.
func databaseURL() string {
	if dsn := getEnv("DATABASE_URL", ""); dsn != "" {
		return dsn
	}

	database := getEnv("DB_DATABASE", "")
	if database == "" {
		log.Fatalf("❌ Erro de Configuração: defina DATABASE_URL ou DB_DATABASE.")
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%s", getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432")),
		Path:   "/" + database,
	}
	user := getEnv("DB_USER", "postgres")
	if password, ok := os.LookupEnv("DB_PASSWORD"); ok {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	q := url.Values{}
	q.Set("sslmode", getEnv("DB_SSLMODE", "disable"))
	u.RawQuery = q.Encode()

	return u.String()
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
