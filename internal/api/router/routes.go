package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gofinanceiro/internal/api/crud"
	"gofinanceiro/internal/api/report"
	"gofinanceiro/internal/domain"
)

// Este arquivo concentra as anotações do swag. O docs/docs.go é gerado a
// partir delas com: swag init -g cmd/main.go -o docs --parseInternal

// crudRoutes guarda os handlers documentados de um recurso CRUD.
type crudRoutes[T any, In any] struct {
	list, get, create, update, remove func(*crud.Handler[T, In]) http.HandlerFunc
}

// mount registra GET /, POST /, GET /{id}, PUT /{id} e DELETE /{id}.
func (c crudRoutes[T, In]) mount(h *crud.Handler[T, In]) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", c.list(h))
		r.Post("/", c.create(h))
		r.Get("/{id}", c.get(h))
		r.Put("/{id}", c.update(h))
		r.Delete("/{id}", c.remove(h))
	}
}

var clientesRoutes = crudRoutes[domain.Cliente, domain.ClienteInput]{
	list:   listClientes,
	get:    getCliente,
	create: createCliente,
	update: updateCliente,
	remove: deleteCliente,
}

// listClientes godoc
// @Summary Lista clientes
// @Tags clientes
// @Produce json
// @Success 200 {array} domain.Cliente "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /clientes [get]
func listClientes(h *crud.Handler[domain.Cliente, domain.ClienteInput]) http.HandlerFunc { return h.List }

// getCliente godoc
// @Summary Obtém registro de clientes por ID
// @Tags clientes
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.Cliente "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /clientes/{id} [get]
func getCliente(h *crud.Handler[domain.Cliente, domain.ClienteInput]) http.HandlerFunc { return h.Get }

// createCliente godoc
// @Summary Cria registro em clientes
// @Tags clientes
// @Accept json
// @Produce json
// @Param payload body domain.ClienteInput true "Payload"
// @Success 201 {array} domain.Cliente "Criado"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /clientes [post]
func createCliente(h *crud.Handler[domain.Cliente, domain.ClienteInput]) http.HandlerFunc { return h.Create }

// updateCliente godoc
// @Summary Atualiza registro de clientes
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body domain.ClienteInput true "Payload"
// @Success 200 {array} domain.Cliente "OK"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /clientes/{id} [put]
func updateCliente(h *crud.Handler[domain.Cliente, domain.ClienteInput]) http.HandlerFunc { return h.Update }

// deleteCliente godoc
// @Summary Exclui registro de clientes
// @Tags clientes
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.Cliente "OK"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /clientes/{id} [delete]
func deleteCliente(h *crud.Handler[domain.Cliente, domain.ClienteInput]) http.HandlerFunc { return h.Delete }

var produtosRoutes = crudRoutes[domain.Produto, domain.ProdutoInput]{
	list:   listProdutos,
	get:    getProduto,
	create: createProduto,
	update: updateProduto,
	remove: deleteProduto,
}

// listProdutos godoc
// @Summary Lista produtos
// @Tags produtos
// @Produce json
// @Success 200 {array} domain.Produto "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /produtos [get]
func listProdutos(h *crud.Handler[domain.Produto, domain.ProdutoInput]) http.HandlerFunc { return h.List }

// getProduto godoc
// @Summary Obtém registro de produtos por ID
// @Tags produtos
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.Produto "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /produtos/{id} [get]
func getProduto(h *crud.Handler[domain.Produto, domain.ProdutoInput]) http.HandlerFunc { return h.Get }

// createProduto godoc
// @Summary Cria registro em produtos
// @Tags produtos
// @Accept json
// @Produce json
// @Param payload body domain.ProdutoInput true "Payload"
// @Success 201 {array} domain.Produto "Criado"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /produtos [post]
func createProduto(h *crud.Handler[domain.Produto, domain.ProdutoInput]) http.HandlerFunc { return h.Create }

// updateProduto godoc
// @Summary Atualiza registro de produtos
// @Tags produtos
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body domain.ProdutoInput true "Payload"
// @Success 200 {array} domain.Produto "OK"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /produtos/{id} [put]
func updateProduto(h *crud.Handler[domain.Produto, domain.ProdutoInput]) http.HandlerFunc { return h.Update }

// deleteProduto godoc
// @Summary Exclui registro de produtos
// @Tags produtos
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.Produto "OK"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /produtos/{id} [delete]
func deleteProduto(h *crud.Handler[domain.Produto, domain.ProdutoInput]) http.HandlerFunc { return h.Delete }

var categoriasRoutes = crudRoutes[domain.CategoriaProduto, domain.CategoriaInput]{
	list:   listCategorias,
	get:    getCategoria,
	create: createCategoria,
	update: updateCategoria,
	remove: deleteCategoria,
}

// listCategorias godoc
// @Summary Lista categorias
// @Tags categorias
// @Produce json
// @Success 200 {array} domain.CategoriaProduto "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /categorias [get]
func listCategorias(h *crud.Handler[domain.CategoriaProduto, domain.CategoriaInput]) http.HandlerFunc { return h.List }

// getCategoria godoc
// @Summary Obtém registro de categorias por ID
// @Tags categorias
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.CategoriaProduto "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /categorias/{id} [get]
func getCategoria(h *crud.Handler[domain.CategoriaProduto, domain.CategoriaInput]) http.HandlerFunc { return h.Get }

// createCategoria godoc
// @Summary Cria registro em categorias
// @Tags categorias
// @Accept json
// @Produce json
// @Param payload body domain.CategoriaInput true "Payload"
// @Success 201 {array} domain.CategoriaProduto "Criado"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /categorias [post]
func createCategoria(h *crud.Handler[domain.CategoriaProduto, domain.CategoriaInput]) http.HandlerFunc { return h.Create }

// updateCategoria godoc
// @Summary Atualiza registro de categorias
// @Tags categorias
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body domain.CategoriaInput true "Payload"
// @Success 200 {array} domain.CategoriaProduto "OK"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /categorias/{id} [put]
func updateCategoria(h *crud.Handler[domain.CategoriaProduto, domain.CategoriaInput]) http.HandlerFunc { return h.Update }

// deleteCategoria godoc
// @Summary Exclui registro de categorias
// @Tags categorias
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.CategoriaProduto "OK"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /categorias/{id} [delete]
func deleteCategoria(h *crud.Handler[domain.CategoriaProduto, domain.CategoriaInput]) http.HandlerFunc { return h.Delete }

var pedidosRoutes = crudRoutes[domain.Pedido, domain.PedidoInput]{
	list:   listPedidos,
	get:    getPedido,
	create: createPedido,
	update: updatePedido,
	remove: deletePedido,
}

// listPedidos godoc
// @Summary Lista pedidos
// @Tags pedidos
// @Produce json
// @Success 200 {array} domain.Pedido "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /pedidos [get]
func listPedidos(h *crud.Handler[domain.Pedido, domain.PedidoInput]) http.HandlerFunc { return h.List }

// getPedido godoc
// @Summary Obtém registro de pedidos por ID
// @Tags pedidos
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.Pedido "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /pedidos/{id} [get]
func getPedido(h *crud.Handler[domain.Pedido, domain.PedidoInput]) http.HandlerFunc { return h.Get }

// createPedido godoc
// @Summary Cria registro em pedidos
// @Tags pedidos
// @Accept json
// @Produce json
// @Param payload body domain.PedidoInput true "Payload"
// @Success 201 {array} domain.Pedido "Criado"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /pedidos [post]
func createPedido(h *crud.Handler[domain.Pedido, domain.PedidoInput]) http.HandlerFunc { return h.Create }

// updatePedido godoc
// @Summary Atualiza registro de pedidos
// @Tags pedidos
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body domain.PedidoInput true "Payload"
// @Success 200 {array} domain.Pedido "OK"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /pedidos/{id} [put]
func updatePedido(h *crud.Handler[domain.Pedido, domain.PedidoInput]) http.HandlerFunc { return h.Update }

// deletePedido godoc
// @Summary Exclui registro de pedidos
// @Tags pedidos
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.Pedido "OK"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /pedidos/{id} [delete]
func deletePedido(h *crud.Handler[domain.Pedido, domain.PedidoInput]) http.HandlerFunc { return h.Delete }

var itensPedidoRoutes = crudRoutes[domain.ItemPedido, domain.ItemPedidoInput]{
	list:   listItensPedido,
	get:    getItemPedido,
	create: createItemPedido,
	update: updateItemPedido,
	remove: deleteItemPedido,
}

// listItensPedido godoc
// @Summary Lista itens de pedido
// @Tags itens_pedido
// @Produce json
// @Success 200 {array} domain.ItemPedido "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /itens_pedido [get]
func listItensPedido(h *crud.Handler[domain.ItemPedido, domain.ItemPedidoInput]) http.HandlerFunc { return h.List }

// getItemPedido godoc
// @Summary Obtém registro de itens_pedido por ID
// @Tags itens_pedido
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.ItemPedido "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /itens_pedido/{id} [get]
func getItemPedido(h *crud.Handler[domain.ItemPedido, domain.ItemPedidoInput]) http.HandlerFunc { return h.Get }

// createItemPedido godoc
// @Summary Cria registro em itens_pedido
// @Tags itens_pedido
// @Accept json
// @Produce json
// @Param payload body domain.ItemPedidoInput true "Payload"
// @Success 201 {array} domain.ItemPedido "Criado"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /itens_pedido [post]
func createItemPedido(h *crud.Handler[domain.ItemPedido, domain.ItemPedidoInput]) http.HandlerFunc { return h.Create }

// updateItemPedido godoc
// @Summary Atualiza registro de itens_pedido
// @Tags itens_pedido
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body domain.ItemPedidoInput true "Payload"
// @Success 200 {array} domain.ItemPedido "OK"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /itens_pedido/{id} [put]
func updateItemPedido(h *crud.Handler[domain.ItemPedido, domain.ItemPedidoInput]) http.HandlerFunc { return h.Update }

// deleteItemPedido godoc
// @Summary Exclui registro de itens_pedido
// @Tags itens_pedido
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.ItemPedido "OK"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /itens_pedido/{id} [delete]
func deleteItemPedido(h *crud.Handler[domain.ItemPedido, domain.ItemPedidoInput]) http.HandlerFunc { return h.Delete }

var contasReceberRoutes = crudRoutes[domain.ContaReceber, domain.ContaReceberInput]{
	list:   listContasReceber,
	get:    getContaReceber,
	create: createContaReceber,
	update: updateContaReceber,
	remove: deleteContaReceber,
}

// listContasReceber godoc
// @Summary Lista contas a receber
// @Tags contas-receber
// @Produce json
// @Success 200 {array} domain.ContaReceber "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /contas-receber [get]
func listContasReceber(h *crud.Handler[domain.ContaReceber, domain.ContaReceberInput]) http.HandlerFunc { return h.List }

// getContaReceber godoc
// @Summary Obtém registro de contas-receber por ID
// @Tags contas-receber
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.ContaReceber "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /contas-receber/{id} [get]
func getContaReceber(h *crud.Handler[domain.ContaReceber, domain.ContaReceberInput]) http.HandlerFunc { return h.Get }

// createContaReceber godoc
// @Summary Cria registro em contas-receber
// @Tags contas-receber
// @Accept json
// @Produce json
// @Param payload body domain.ContaReceberInput true "Payload"
// @Success 201 {array} domain.ContaReceber "Criado"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /contas-receber [post]
func createContaReceber(h *crud.Handler[domain.ContaReceber, domain.ContaReceberInput]) http.HandlerFunc { return h.Create }

// updateContaReceber godoc
// @Summary Atualiza registro de contas-receber
// @Tags contas-receber
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body domain.ContaReceberInput true "Payload"
// @Success 200 {array} domain.ContaReceber "OK"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /contas-receber/{id} [put]
func updateContaReceber(h *crud.Handler[domain.ContaReceber, domain.ContaReceberInput]) http.HandlerFunc { return h.Update }

// deleteContaReceber godoc
// @Summary Exclui registro de contas-receber
// @Tags contas-receber
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.ContaReceber "OK"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /contas-receber/{id} [delete]
func deleteContaReceber(h *crud.Handler[domain.ContaReceber, domain.ContaReceberInput]) http.HandlerFunc { return h.Delete }

var formasPagamentoRoutes = crudRoutes[domain.FormaPagamento, domain.FormaPagamentoInput]{
	list:   listFormasPagamento,
	get:    getFormaPagamento,
	create: createFormaPagamento,
	update: updateFormaPagamento,
	remove: deleteFormaPagamento,
}

// listFormasPagamento godoc
// @Summary Lista formas de pagamento
// @Tags formas-pagamento
// @Produce json
// @Success 200 {array} domain.FormaPagamento "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /formas-pagamento [get]
func listFormasPagamento(h *crud.Handler[domain.FormaPagamento, domain.FormaPagamentoInput]) http.HandlerFunc { return h.List }

// getFormaPagamento godoc
// @Summary Obtém registro de formas-pagamento por ID
// @Tags formas-pagamento
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.FormaPagamento "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /formas-pagamento/{id} [get]
func getFormaPagamento(h *crud.Handler[domain.FormaPagamento, domain.FormaPagamentoInput]) http.HandlerFunc { return h.Get }

// createFormaPagamento godoc
// @Summary Cria registro em formas-pagamento
// @Tags formas-pagamento
// @Accept json
// @Produce json
// @Param payload body domain.FormaPagamentoInput true "Payload"
// @Success 201 {array} domain.FormaPagamento "Criado"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /formas-pagamento [post]
func createFormaPagamento(h *crud.Handler[domain.FormaPagamento, domain.FormaPagamentoInput]) http.HandlerFunc { return h.Create }

// updateFormaPagamento godoc
// @Summary Atualiza registro de formas-pagamento
// @Tags formas-pagamento
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body domain.FormaPagamentoInput true "Payload"
// @Success 200 {array} domain.FormaPagamento "OK"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /formas-pagamento/{id} [put]
func updateFormaPagamento(h *crud.Handler[domain.FormaPagamento, domain.FormaPagamentoInput]) http.HandlerFunc { return h.Update }

// deleteFormaPagamento godoc
// @Summary Exclui registro de formas-pagamento
// @Tags formas-pagamento
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.FormaPagamento "OK"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /formas-pagamento/{id} [delete]
func deleteFormaPagamento(h *crud.Handler[domain.FormaPagamento, domain.FormaPagamentoInput]) http.HandlerFunc { return h.Delete }

var usuariosRoutes = crudRoutes[domain.Usuario, domain.UsuarioInput]{
	list:   listUsuarios,
	get:    getUsuario,
	create: createUsuario,
	update: updateUsuario,
	remove: deleteUsuario,
}

// listUsuarios godoc
// @Summary Lista usuários
// @Tags usuarios
// @Produce json
// @Success 200 {array} domain.Usuario "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /usuarios [get]
func listUsuarios(h *crud.Handler[domain.Usuario, domain.UsuarioInput]) http.HandlerFunc { return h.List }

// getUsuario godoc
// @Summary Obtém registro de usuarios por ID
// @Tags usuarios
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.Usuario "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /usuarios/{id} [get]
func getUsuario(h *crud.Handler[domain.Usuario, domain.UsuarioInput]) http.HandlerFunc { return h.Get }

// createUsuario godoc
// @Summary Cria registro em usuarios
// @Tags usuarios
// @Accept json
// @Produce json
// @Param payload body domain.UsuarioInput true "Payload"
// @Success 201 {array} domain.Usuario "Criado"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /usuarios [post]
func createUsuario(h *crud.Handler[domain.Usuario, domain.UsuarioInput]) http.HandlerFunc { return h.Create }

// updateUsuario godoc
// @Summary Atualiza registro de usuarios
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body domain.UsuarioInput true "Payload"
// @Success 200 {array} domain.Usuario "OK"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 413 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /usuarios/{id} [put]
func updateUsuario(h *crud.Handler[domain.Usuario, domain.UsuarioInput]) http.HandlerFunc { return h.Update }

// deleteUsuario godoc
// @Summary Exclui registro de usuarios
// @Tags usuarios
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.Usuario "OK"
// @Failure 404 {object} domain.ErrorResponse "Erro"
// @Failure 409 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /usuarios/{id} [delete]
func deleteUsuario(h *crud.Handler[domain.Usuario, domain.UsuarioInput]) http.HandlerFunc { return h.Delete }

// listItensDoPedido godoc
// @Summary Lista os itens de um pedido
// @Tags pedidos
// @Produce json
// @Param id path int true "ID"
// @Success 200 {array} domain.ItemPedido "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /pedidos/{id}/itens [get]
func listItensDoPedido(h *crud.Handler[domain.ItemPedido, domain.ItemPedidoInput]) http.HandlerFunc {
	return h.ListBy("id_pedido")
}

// listLogs godoc
// @Summary Lista o log de alterações
// @Tags logs
// @Produce json
// @Success 200 {array} domain.Log "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /logs [get]
func listLogs(h *crud.Handler[domain.Log, domain.NoInput]) http.HandlerFunc { return h.List }

// reportRoute liga um relatório às suas rotas. As rotas /relatorios/* são
// as usadas pelas telas de relatório.
type reportRoute struct {
	paths   []string
	handler func(*report.Handler) http.HandlerFunc
}

var reportRoutes = []reportRoute{
	{[]string{"/view/resumo_vendas", "/relatorios/vendas-mensal"}, resumoVendas},
	{[]string{"/view/top5_clientes", "/relatorios/top5-clientes"}, top5Clientes},
	{[]string{"/view/clientes_vip", "/relatorios/clientes-vip"}, clientesVIP},
	{[]string{"/functions/relatorio_financeiro", "/relatorios/financeiro"}, relatorioFinanceiro},
	{[]string{"/functions/clientes_fieis", "/relatorios/clientes-fieis"}, clientesFieis},
	{[]string{"/functions/pedidos_acima_media", "/relatorios/pedidos-acima-media"}, pedidosAcimaMedia},
}

// resumoVendas godoc
// @Summary Resumo de vendas mensal
// @Tags relatorios
// @Produce json
// @Success 200 {array} map[string]interface{} "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /view/resumo_vendas [get]
// @Router /relatorios/vendas-mensal [get]
func resumoVendas(h *report.Handler) http.HandlerFunc { return h.Report("resumo_vendas") }

// top5Clientes godoc
// @Summary Top 5 clientes
// @Tags relatorios
// @Produce json
// @Success 200 {array} map[string]interface{} "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /view/top5_clientes [get]
// @Router /relatorios/top5-clientes [get]
func top5Clientes(h *report.Handler) http.HandlerFunc { return h.Report("top5_clientes") }

// clientesVIP godoc
// @Summary Clientes VIP
// @Tags relatorios
// @Produce json
// @Success 200 {array} map[string]interface{} "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /view/clientes_vip [get]
// @Router /relatorios/clientes-vip [get]
func clientesVIP(h *report.Handler) http.HandlerFunc { return h.Report("clientes_vip") }

// relatorioFinanceiro godoc
// @Summary Relatório financeiro por cliente
// @Tags relatorios
// @Produce json
// @Param data_inicio query string false "data_inicio" Format(date)
// @Param data_fim query string false "data_fim" Format(date)
// @Success 200 {array} map[string]interface{} "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /functions/relatorio_financeiro [get]
// @Router /relatorios/financeiro [get]
func relatorioFinanceiro(h *report.Handler) http.HandlerFunc { return h.Report("relatorio_financeiro") }

// clientesFieis godoc
// @Summary Clientes fiéis
// @Tags relatorios
// @Produce json
// @Param min_pedidos query int false "min_pedidos"
// @Param data_inicio query string false "data_inicio" Format(date)
// @Param data_fim query string false "data_fim" Format(date)
// @Success 200 {array} map[string]interface{} "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /functions/clientes_fieis [get]
// @Router /relatorios/clientes-fieis [get]
func clientesFieis(h *report.Handler) http.HandlerFunc { return h.Report("clientes_fieis") }

// pedidosAcimaMedia godoc
// @Summary Pedidos acima da média
// @Tags relatorios
// @Produce json
// @Success 200 {array} map[string]interface{} "OK"
// @Success 204 "Nenhum conteúdo"
// @Failure 400 {object} domain.ErrorResponse "Erro"
// @Failure 500 {object} domain.ErrorResponse "Erro"
// @Router /functions/pedidos_acima_media [get]
// @Router /relatorios/pedidos-acima-media [get]
func pedidosAcimaMedia(h *report.Handler) http.HandlerFunc { return h.Report("pedidos_acima_media") }
