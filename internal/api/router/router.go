package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Documentação gerada pelo swag
	_ "gofinanceiro/docs"
	"gofinanceiro/internal/api/response"
	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/logger"
	"gofinanceiro/internal/pkg/middleware"
)

// HealthChecker é satisfeito pelo Executor do banco.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Options configura o roteador principal.
type Options struct {
	Prefix         string // e.g. "/api"
	AllowedOrigins []string
	// RateLimit é aplicado às rotas da API quando não for nil.
	RateLimit func(http.Handler) http.Handler
	Health    HealthChecker
	Logger    logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(h Handlers, opts Options) http.Handler {
	wr := response.NewWriter(opts.Logger)
	r := chi.NewRouter()

	// --- 1. Middlewares Globais ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		wr.Error(w, r, apperror.NewNotFoundError("rota "+r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		wr.JSON(w, http.StatusMethodNotAllowed, map[string]interface{}{
			"code":     http.StatusMethodNotAllowed,
			"category": "METHOD_NOT_ALLOWED",
			"message":  "Método não permitido",
		})
	})

	// --- 2. Rotas de Health Check e Documentação ---
	r.Get("/ping", PingHandler)
	r.Get("/health", healthHandler(opts.Health, wr))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("doc.json")))

	// --- 3. Rotas da API ---
	api := func(r chi.Router) {
		if opts.RateLimit != nil {
			r.Use(opts.RateLimit)
		}

		r.Route("/clientes", clientesRoutes.mount(h.Clientes))
		r.Route("/produtos", produtosRoutes.mount(h.Produtos))
		r.Route("/categorias", categoriasRoutes.mount(h.Categorias))
		r.Route("/pedidos", func(r chi.Router) {
			pedidosRoutes.mount(h.Pedidos)(r)
			r.Get("/{id}/itens", listItensDoPedido(h.ItensPedido))
		})
		r.Route("/itens_pedido", itensPedidoRoutes.mount(h.ItensPedido))
		r.Route("/contas-receber", contasReceberRoutes.mount(h.ContasReceber))
		r.Route("/formas-pagamento", formasPagamentoRoutes.mount(h.FormasPagamento))
		r.Route("/usuarios", usuariosRoutes.mount(h.Usuarios))
		r.Get("/logs", listLogs(h.Logs))

		for _, rep := range reportRoutes {
			for _, path := range rep.paths {
				r.Get(path, rep.handler(h.Reports))
			}
		}
	}

	if opts.Prefix == "" {
		r.Group(api)
	} else {
		r.Route(opts.Prefix, api)
	}

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// healthHandler confirma que o banco responde.
func healthHandler(hc HealthChecker, wr *response.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hc == nil {
			wr.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := hc.Ping(ctx); err != nil {
			wr.Error(w, r, err)
			return
		}
		wr.JSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "up"})
	}
}
