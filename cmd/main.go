package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	// Nossos pacotes de infraestrutura e utilitários
	"gofinanceiro/config"
	"gofinanceiro/internal/pkg/cache"
	"gofinanceiro/internal/pkg/database"
	"gofinanceiro/internal/pkg/logger"
	"gofinanceiro/internal/pkg/middleware"

	// Handlers e roteador central
	"gofinanceiro/internal/api/router"
)

// @title GoFinanceiro API
// @version 1.0
// @description API REST de gestão financeira: clientes, produtos, pedidos, contas a receber e relatórios.
// @BasePath /api
func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço GoFinanceiro...")
	if err := godotenv.Load(); err != nil {
		// Sem .env seguimos com as variáveis do ambiente (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	appLog := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "prefix": cfg.APIPrefix})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	pool := database.DefaultPoolConfig()
	pool.MaxOpenConns = cfg.DBMaxOpenConns
	pool.MaxIdleConns = cfg.DBMaxIdleConns
	db, err := database.NewPostgresDB(cfg.DatabaseURL, pool)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	exec := database.NewExecutor(db, cfg.DBTimeout, appLog)

	// B. Rate limiting (Redis). Sem Redis a API segue sem limite.
	var rateLimit func(http.Handler) http.Handler
	if cfg.RedisAddr != "" {
		cacheClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			appLog.Warn("Redis indisponível; rate limiting desativado.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		} else {
			defer cacheClient.Close()
			rateLimit = middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, appLog)
			appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"limit": cfg.RateLimitMaxRequests, "window": cfg.RateLimitPeriod.String()})
		}
	}

	// 3. Injeção de dependências: Repository -> Service -> Handler
	handlers := router.NewHandlers(exec, appLog, bcrypt.DefaultCost)
	appLog.Debug("Handlers inicializados.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, router.Options{
		Prefix:         cfg.APIPrefix,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit:      rateLimit,
		Health:         exec,
		Logger:         appLog,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLog.Info("Servidor GoFinanceiro ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLog.Error("Servidor encerrado com erro.", err)
		return
	}
	appLog.Info("Servidor encerrado com sucesso.", nil)
}
