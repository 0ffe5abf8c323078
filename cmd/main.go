package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"bookstore/config"
	"bookstore/internal/domain"
	"bookstore/internal/pkg/cache"
	"bookstore/internal/pkg/events"
	"bookstore/internal/pkg/logger"
	"bookstore/internal/pkg/observability"
	"bookstore/internal/pkg/token"

	// Camadas do inventário para Injeção de Dependências
	"bookstore/internal/api/auth"
	"bookstore/internal/api/order"
	"bookstore/internal/api/restock"
	"bookstore/internal/api/router"
	"bookstore/internal/api/stock"
	"bookstore/internal/repository/stockrepo"
	"bookstore/internal/service/authservice"
	"bookstore/internal/service/orderservice"
	"bookstore/internal/service/restockservice"
	"bookstore/internal/service/stockservice"
)

// @title Bookstore Inventory API
// @version 1.0
// @description Catálogo fixo de livros, pedidos e reabastecimentos em lote (tudo ou nada).
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	stdlog.Println("⚡ Inicializando serviço de inventário da livraria...")
	if err := godotenv.Load(); err != nil {
		stdlog.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer zl.Sync()
	}
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	ctx := context.Background()

	// 2. Tracing (OpenTelemetry)
	shutdownTracing, err := observability.SetupTracing(ctx, observability.TracingConfig{
		Endpoint: cfg.OTELEndpoint,
		Insecure: cfg.OTELInsecure,
	})
	if err != nil {
		log.Warn("Tracing desabilitado: falha ao configurar exportador.", map[string]interface{}{"error": err.Error()})
	}

	// 3. Infraestrutura opcional

	// A. Cache (Redis) para rate limit e idempotência
	var cacheClient cache.Client
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
		if err != nil {
			log.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer redisClient.Close()
		cacheClient = redisClient
		log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	} else {
		log.Warn("REDIS_ADDR não definido: rate limit e idempotência desligados.", nil)
	}

	// B. Eventos (RabbitMQ)
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbit, err := events.NewRabbitPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
		if err != nil {
			log.Fatal("Falha ao conectar ao RabbitMQ.", err)
		}
		defer rabbit.Close()
		publisher = rabbit
		log.Info("Publicação de eventos habilitada.", map[string]interface{}{"exchange": cfg.EventsExchange})
	}

	// C. Conta administrativa
	adminHash := cfg.AdminPasswordHash
	if adminHash == "" {
		if cfg.AdminPassword == "" {
			log.Fatal("Configuração inválida.", errors.New("ADMIN_PASSWORD_HASH ou ADMIN_PASSWORD deve ser definido"))
		}
		adminHash, err = authservice.HashPassword(cfg.AdminPassword)
		if err != nil {
			log.Fatal("Falha ao gerar hash da senha administrativa.", err)
		}
	}

	// 4. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Ledger -> Service -> Handler

	// A. Ledger (estado em memória, semeado a cada início de processo)
	ledger := stockrepo.NewLedger(domain.InitialStock(), log)

	// B. Serviços
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	stockSvc := stockservice.NewService(ledger, log)
	orderSvc := orderservice.NewService(ledger, publisher, log, cfg.MaxOrderValue)
	restockSvc := restockservice.NewService(ledger, publisher, log, cfg.MaxRestockQuantity)
	authSvc := authservice.NewService(cfg.AdminUsername, adminHash, tokenSvc, log)
	log.Debug("Serviços inicializados.", nil)

	// C. Handlers e Roteador
	r := router.NewRouter(router.Options{
		StockHandler:         stock.NewHandler(stockSvc, log),
		OrderHandler:         order.NewHandler(orderSvc, log),
		RestockHandler:       restock.NewHandler(restockSvc, log),
		AuthHandler:          auth.NewHandler(authSvc, log),
		TokenService:         tokenSvc,
		Logger:               log,
		Cache:                cacheClient,
		RateLimitEnabled:     cfg.RateLimitEnabled,
		RateLimitMaxRequests: cfg.RateLimitMaxRequests,
		RateLimitPeriod:      cfg.RateLimitPeriod,
		IdempotencyTTL:       cfg.IdempotencyTTL,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("Falha ao encerrar o tracing.", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
