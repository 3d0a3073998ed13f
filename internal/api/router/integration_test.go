//go:build integration

package router_test

// Testes de integração com PostgreSQL e Redis reais via testcontainers.
// Executar com: go test -tags integration ./internal/api/router/... -v

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"gofinanceiro/internal/api/router"
	"gofinanceiro/internal/client"
	"gofinanceiro/internal/domain"
	"gofinanceiro/internal/pkg/cache"
	"gofinanceiro/internal/pkg/database"
	"gofinanceiro/internal/pkg/logger"
	"gofinanceiro/internal/pkg/middleware"
)

type testEnv struct {
	db  *sql.DB
	api *client.Client
}

func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("financeiro_test"),
		tcPostgres.WithUsername("financeiro"),
		tcPostgres.WithPassword("financeiro"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewPostgresDB(dsn, database.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	goose.SetLogger(goose.NopLogger())
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "../../../sql"))
	return db
}

func setupTestEnv(t *testing.T, rateLimit func(http.Handler) http.Handler) *testEnv {
	t.Helper()
	db := setupPostgres(t)

	exec := database.NewExecutor(db, 5*time.Second, logger.Nop())
	h := router.NewRouter(router.NewHandlers(exec, logger.Nop(), bcrypt.MinCost), router.Options{
		Prefix:         "/api",
		AllowedOrigins: []string{"*"},
		RateLimit:      rateLimit,
		Health:         exec,
		Logger:         logger.Nop(),
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return &testEnv{db: db, api: client.New(srv.URL+"/api", client.WithHTTPClient(srv.Client()))}
}

func TestIntegration_CRUDAndConstraints(t *testing.T) {
	env := setupTestEnv(t, nil)
	ctx := context.Background()

	// Lista vazia responde 204 e o cliente devolve lista vazia.
	clientes, err := env.api.Clientes().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clientes)

	ana, err := env.api.Clientes().Create(ctx, domain.ClienteInput{Nome: "Ana", CpfCnpj: "123.456.789-00"})
	require.NoError(t, err)
	assert.NotZero(t, ana.IDCliente)

	got, ok, err := env.api.Clientes().Get(ctx, ana.IDCliente)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ana, got)

	_, ok, err = env.api.Clientes().Get(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	// CPF duplicado viola UNIQUE.
	_, err = env.api.Clientes().Create(ctx, domain.ClienteInput{Nome: "Outra", CpfCnpj: "123.456.789-00"})
	assert.True(t, client.IsStatus(err, http.StatusConflict), "err = %v", err)

	pedido, err := env.api.Pedidos().Create(ctx, domain.PedidoInput{
		IDCliente:  ana.IDCliente,
		DataPedido: domain.NewDate(2025, time.January, 10),
		ValorTotal: decimal.RequireFromString("150.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendente, pedido.Status)
	require.NotNil(t, pedido.NomeCliente)
	assert.Equal(t, "Ana", *pedido.NomeCliente)

	// Cliente com pedido não pode ser removido e continua existindo.
	err = env.api.Clientes().Delete(ctx, ana.IDCliente)
	assert.True(t, client.IsStatus(err, http.StatusConflict), "err = %v", err)
	_, ok, err = env.api.Clientes().Get(ctx, ana.IDCliente)
	require.NoError(t, err)
	assert.True(t, ok)

	// Atualizar id inexistente responde 404.
	_, err = env.api.Clientes().Update(ctx, 999, domain.ClienteInput{Nome: "X", CpfCnpj: "000"})
	assert.True(t, client.IsStatus(err, http.StatusNotFound), "err = %v", err)

	_, err = env.api.ItensPedido().Create(ctx, domain.ItemPedidoInput{
		IDPedido: pedido.IDPedido, Descricao: "Consultoria", Quantidade: 1, PrecoUnitario: decimal.RequireFromString("150.50"),
	})
	require.NoError(t, err)
	itens, err := env.api.ItensDoPedido(ctx, pedido.IDPedido)
	require.NoError(t, err)
	require.Len(t, itens, 1)
	assert.True(t, decimal.RequireFromString("150.5").Equal(itens[0].PrecoUnitario))
}

func TestIntegration_UsuarioSenhaMantidaNaEdicao(t *testing.T) {
	env := setupTestEnv(t, nil)
	ctx := context.Background()

	senha := "segredo123"
	u, err := env.api.Usuarios().Create(ctx, domain.UsuarioInput{Nome: "Bia", Email: "bia@x.com", Senha: &senha})
	require.NoError(t, err)

	_, err = env.api.Usuarios().Update(ctx, u.IDUsuario, domain.UsuarioInput{Nome: "Bia Souza", Email: "bia@x.com"})
	require.NoError(t, err)

	var hash string
	require.NoError(t, env.db.QueryRow(`SELECT senha FROM FINANCEIRO.USUARIO WHERE id_usuario = $1`, u.IDUsuario).Scan(&hash))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)))
}

func TestIntegration_TriggerGravaLogEReports(t *testing.T) {
	env := setupTestEnv(t, nil)
	ctx := context.Background()

	cat, err := env.api.Categorias().Create(ctx, domain.CategoriaInput{Nome: "Serviços"})
	require.NoError(t, err)
	p, err := env.api.Produtos().Create(ctx, domain.ProdutoInput{
		Nome: "Hora técnica", Preco: decimal.RequireFromString("100"), IDCategoria: cat.IDCategoria, Estoque: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, p.NomeCategoria)
	assert.Equal(t, "Serviços", *p.NomeCategoria)

	_, err = env.api.Produtos().Update(ctx, p.IDProduto, domain.ProdutoInput{
		Nome: "Hora técnica", Preco: decimal.RequireFromString("100"), IDCategoria: cat.IDCategoria, Estoque: 7,
	})
	require.NoError(t, err)

	logs, err := env.api.Logs(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	require.NotNil(t, logs[0].IDProduto)
	assert.Equal(t, p.IDProduto, *logs[0].IDProduto)

	rows, err := env.api.Report(ctx, "/relatorios/financeiro", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = env.api.Report(ctx, "/functions/relatorio_financeiro", map[string][]string{"data_inicio": {"ontem"}})
	assert.True(t, client.IsStatus(err, http.StatusBadRequest), "err = %v", err)
}

func TestIntegration_RateLimitWithRedis(t *testing.T) {
	ctx := context.Background()

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	addr, err := rdC.Endpoint(ctx, "")
	require.NoError(t, err)
	rc, err := cache.NewRedisClient(addr)
	require.NoError(t, err)
	t.Cleanup(func() { rc.Close() })

	env := setupTestEnv(t, middleware.RateLimiter(rc, 2, time.Minute, logger.Nop()))

	for i := 0; i < 2; i++ {
		_, err := env.api.FormasPagamento().List(ctx)
		require.NoError(t, err)
	}
	_, err = env.api.FormasPagamento().List(ctx)
	assert.True(t, client.IsStatus(err, http.StatusTooManyRequests), "err = %v", err)
}
