package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofinanceiro/internal/client"
	"gofinanceiro/internal/domain"
)

func newServer(t *testing.T, h http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/api/")
}

func TestResource_ListNoContentIsEmpty(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categorias", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	items, err := c.Categorias().List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestResource_CreateReturnsServerRow(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"nome":"Eletrônicos"}`, string(body))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id_categoria":1,"nome":"Eletrônicos"}]`))
	})

	got, err := c.Categorias().Create(context.Background(), domain.CategoriaInput{Nome: "Eletrônicos"})

	require.NoError(t, err)
	assert.Equal(t, domain.CategoriaProduto{IDCategoria: 1, Nome: "Eletrônicos"}, got)
}

func TestResource_GetMissing(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/clientes/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	_, ok, err := c.Clientes().Get(context.Background(), 42)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResource_ErrorBodyDecoded(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(domain.ErrorResponse{
			Code:     http.StatusConflict,
			Category: "CONFLICT",
			Message:  "Conflito de estado: Falha ao executar a query",
			Details:  "violates foreign key constraint",
		})
	})

	err := c.Clientes().Delete(context.Background(), 1)

	require.Error(t, err)
	var se *client.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.StatusCode)
	assert.Equal(t, "violates foreign key constraint", se.Detail())
	assert.True(t, client.IsStatus(err, http.StatusConflict))
}

func TestUsuarios_SenhaOmittedWhenNil(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.NotContains(t, string(body), "senha")
		w.Write([]byte(`[{"id_usuario":2,"nome":"Bia","email":"bia@ex.com","cargo":null}]`))
	})

	got, err := c.Usuarios().Update(context.Background(), 2, domain.UsuarioInput{Nome: "Bia", Email: "bia@ex.com"})

	require.NoError(t, err)
	assert.Nil(t, got.Cargo)
}

func TestReport_PassesQuery(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/relatorios/financeiro", r.URL.Path)
		assert.Equal(t, "2025-01-01", r.URL.Query().Get("data_inicio"))
		w.Write([]byte(`[{"cliente_id":1,"cliente_nome":"Ana"}]`))
	})

	rows, err := c.Report(context.Background(), "/relatorios/financeiro", url.Values{"data_inicio": {"2025-01-01"}})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0]["cliente_nome"])
}

func TestItensDoPedido(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pedidos/9/itens", r.URL.Path)
		w.Write([]byte(`[{"id_item":1,"id_pedido":9,"descricao":"Cabo","quantidade":2,"preco_unitario":"10.00"}]`))
	})

	items, err := c.ItensDoPedido(context.Background(), 9)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "10", items[0].PrecoUnitario.String())
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_WithHTTPClientIsUsed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gofinanceiro-console", r.Header.Get("X-Origem"))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	calls := 0
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		r.Header.Set("X-Origem", "gofinanceiro-console")
		return http.DefaultTransport.RoundTrip(r)
	})}
	c := client.New(srv.URL, client.WithHTTPClient(hc))

	items, err := c.Usuarios().List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, calls)
}
