package client

import (
	"context"
	"fmt"
	"net/http"

	"gofinanceiro/internal/domain"
)

// Resource é o acesso tipado a um recurso CRUD da API.
type Resource[T any, In any] struct {
	c    *Client
	path string
}

// NewResource cria o acesso ao recurso montado em path (e.g. "/clientes").
func NewResource[T any, In any](c *Client, path string) *Resource[T, In] {
	return &Resource[T, In]{c: c, path: path}
}

// List devolve todas as linhas; 204 resulta numa lista vazia.
func (r *Resource[T, In]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	if _, err := r.c.do(ctx, http.MethodGet, r.path, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get devolve o registro, ou ok=false se o id não existir.
func (r *Resource[T, In]) Get(ctx context.Context, id int64) (item T, ok bool, err error) {
	var items []T
	if _, err = r.c.do(ctx, http.MethodGet, r.itemPath(id), nil, nil, &items); err != nil || len(items) == 0 {
		return item, false, err
	}
	return items[0], true, nil
}

// Create envia o payload e devolve o registro criado pelo servidor.
func (r *Resource[T, In]) Create(ctx context.Context, in In) (T, error) {
	return r.one(ctx, http.MethodPost, r.path, in)
}

// Update substitui os campos editáveis e devolve o registro atualizado.
func (r *Resource[T, In]) Update(ctx context.Context, id int64, in In) (T, error) {
	return r.one(ctx, http.MethodPut, r.itemPath(id), in)
}

// Delete remove o registro.
func (r *Resource[T, In]) Delete(ctx context.Context, id int64) error {
	_, err := r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
	return err
}

func (r *Resource[T, In]) one(ctx context.Context, method, path string, in In) (T, error) {
	var zero T
	var items []T
	if _, err := r.c.do(ctx, method, path, nil, in, &items); err != nil {
		return zero, err
	}
	if len(items) == 0 {
		return zero, fmt.Errorf("%s %s: resposta sem registro", method, path)
	}
	return items[0], nil
}

func (r *Resource[T, In]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

// Recursos da API.

func (c *Client) Clientes() *Resource[domain.Cliente, domain.ClienteInput] {
	return NewResource[domain.Cliente, domain.ClienteInput](c, "/clientes")
}

func (c *Client) Produtos() *Resource[domain.Produto, domain.ProdutoInput] {
	return NewResource[domain.Produto, domain.ProdutoInput](c, "/produtos")
}

func (c *Client) Categorias() *Resource[domain.CategoriaProduto, domain.CategoriaInput] {
	return NewResource[domain.CategoriaProduto, domain.CategoriaInput](c, "/categorias")
}

func (c *Client) Pedidos() *Resource[domain.Pedido, domain.PedidoInput] {
	return NewResource[domain.Pedido, domain.PedidoInput](c, "/pedidos")
}

func (c *Client) ItensPedido() *Resource[domain.ItemPedido, domain.ItemPedidoInput] {
	return NewResource[domain.ItemPedido, domain.ItemPedidoInput](c, "/itens_pedido")
}

func (c *Client) ContasReceber() *Resource[domain.ContaReceber, domain.ContaReceberInput] {
	return NewResource[domain.ContaReceber, domain.ContaReceberInput](c, "/contas-receber")
}

func (c *Client) FormasPagamento() *Resource[domain.FormaPagamento, domain.FormaPagamentoInput] {
	return NewResource[domain.FormaPagamento, domain.FormaPagamentoInput](c, "/formas-pagamento")
}

func (c *Client) Usuarios() *Resource[domain.Usuario, domain.UsuarioInput] {
	return NewResource[domain.Usuario, domain.UsuarioInput](c, "/usuarios")
}

// ItensDoPedido lista os itens de um pedido.
func (c *Client) ItensDoPedido(ctx context.Context, idPedido int64) ([]domain.ItemPedido, error) {
	items := []domain.ItemPedido{}
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pedidos/%d/itens", idPedido), nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Logs lista o log de alterações, do mais recente ao mais antigo.
func (c *Client) Logs(ctx context.Context) ([]domain.Log, error) {
	items := []domain.Log{}
	if _, err := c.do(ctx, http.MethodGet, "/logs", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
