package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do serviço de inventário da livraria.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Cache (Redis). RedisAddr vazio desliga rate limit e idempotência.
	RedisAddr      string
	CacheTimeout   time.Duration
	IdempotencyTTL time.Duration

	// Segurança (JWT + conta administrativa)
	JWTSecretKey      string
	TokenExpiry       time.Duration
	AdminUsername     string
	AdminPasswordHash string
	AdminPassword     string

	// Rate Limiting
	RateLimitEnabled     bool
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Regras de negócio
	MaxOrderValue      int
	MaxRestockQuantity int

	// Eventos (RabbitMQ). RabbitMQURL vazio desliga a publicação.
	RabbitMQURL    string
	EventsExchange string

	// Tracing (OTLP/HTTP). OTELEndpoint vazio desliga a exportação.
	OTELEndpoint string
	OTELInsecure bool
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Cache (Redis)
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		CacheTimeout:   getDurationEnv("CACHE_TIMEOUT_SEC", 10) * time.Second,     // 10s padrão
		IdempotencyTTL: getDurationEnv("IDEMPOTENCY_TTL_MIN", 1440) * time.Minute, // 24h padrão

		// 3. Segurança (JWT)
		JWTSecretKey:      mustGetEnv("JWT_SECRET_KEY"),
		TokenExpiry:       getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute, // 60 min padrão
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),

		// 4. Rate Limiting
		RateLimitEnabled:     getBoolEnv("RATE_LIMIT_ENABLED", true),
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute, // 1 min padrão

		// 5. Regras de negócio
		MaxOrderValue:      getIntEnv("MAX_ORDER_VALUE", 120),
		MaxRestockQuantity: getIntEnv("MAX_RESTOCK_QUANTITY", 1000),

		// 6. Eventos
		RabbitMQURL:    getEnv("RABBITMQ_URL", ""),
		EventsExchange: getEnv("EVENTS_EXCHANGE", "bookstore.inventory"),

		// 7. Tracing
		OTELEndpoint: getEnv("OTEL_ENDPOINT", ""),
		OTELInsecure: getBoolEnv("OTEL_INSECURE", true),
	}

	return cfg
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a variável de ambiente, fatal se não estiver presente.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	log.Fatalf("❌ Erro de Configuração: A variável de ambiente %s deve ser definida.", key)
	return ""
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

// getBoolEnv lê uma variável de ambiente booleana (true/false, 1/0).
func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um booleano válido. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
