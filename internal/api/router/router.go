package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "bookstore/docs" // registra a especificação Swagger gerada
	"bookstore/internal/api/auth"
	"bookstore/internal/api/order"
	"bookstore/internal/api/restock"
	"bookstore/internal/api/stock"
	"bookstore/internal/domain"
	"bookstore/internal/pkg/cache"
	"bookstore/internal/pkg/logger"
	"bookstore/internal/pkg/middleware"
)

// Options reúne os Handlers e a infraestrutura usada pelos middlewares.
type Options struct {
	StockHandler   *stock.Handler
	OrderHandler   *order.Handler
	RestockHandler *restock.Handler
	AuthHandler    *auth.Handler

	TokenService middleware.TokenService
	Logger       logger.Logger

	// Cache habilita rate limit e idempotência. Nil desliga ambos.
	Cache                cache.Client
	RateLimitEnabled     bool
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
	IdempotencyTTL       time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(opts Options) http.Handler {
	mux := http.NewServeMux()
	log := opts.Logger

	// --- 1. Health Check e Documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. Inventário ---
	mux.HandleFunc("GET /api/books", opts.StockHandler.ListBooksHandler)

	// Escritas passam pela idempotência quando há Redis
	writes := func(h http.HandlerFunc) http.Handler {
		if opts.Cache == nil {
			return h
		}
		return middleware.Idempotency(opts.Cache, log, opts.IdempotencyTTL)(h)
	}

	mux.Handle("POST /api/order", writes(opts.OrderHandler.PlaceOrderHandler))

	// POST /api/restock exige um token de administrador
	mux.Handle("POST /api/restock", middleware.Chain(
		writes(opts.RestockHandler.RestockHandler),
		middleware.NewAuthMiddleware(opts.TokenService, log),
		middleware.PermissionMiddleware(log, domain.RoleAdmin),
	))

	// --- 3. Autenticação ---
	mux.HandleFunc("POST /api/login", opts.AuthHandler.LoginHandler)

	// --- 4. Middlewares Globais ---
	global := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Tracing,
		middleware.Logging(log),
	}
	if opts.Cache != nil && opts.RateLimitEnabled {
		global = append(global, middleware.RateLimiter(opts.Cache, log, opts.RateLimitMaxRequests, opts.RateLimitPeriod))
	}

	return middleware.Chain(mux, global...)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
