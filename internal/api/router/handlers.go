package router

import (
	"gofinanceiro/internal/api/crud"
	"gofinanceiro/internal/api/report"
	"gofinanceiro/internal/api/response"
	"gofinanceiro/internal/domain"
	"gofinanceiro/internal/pkg/database"
	"gofinanceiro/internal/pkg/logger"
	"gofinanceiro/internal/repository/crudrepo"
	"gofinanceiro/internal/repository/reportrepo"
	"gofinanceiro/internal/service/crudservice"
	"gofinanceiro/internal/service/reportservice"
)

// Handlers reúne os handlers de todos os recursos da API.
type Handlers struct {
	Clientes        *crud.Handler[domain.Cliente, domain.ClienteInput]
	Produtos        *crud.Handler[domain.Produto, domain.ProdutoInput]
	Categorias      *crud.Handler[domain.CategoriaProduto, domain.CategoriaInput]
	Pedidos         *crud.Handler[domain.Pedido, domain.PedidoInput]
	ItensPedido     *crud.Handler[domain.ItemPedido, domain.ItemPedidoInput]
	ContasReceber   *crud.Handler[domain.ContaReceber, domain.ContaReceberInput]
	FormasPagamento *crud.Handler[domain.FormaPagamento, domain.FormaPagamentoInput]
	Usuarios        *crud.Handler[domain.Usuario, domain.UsuarioInput]
	Logs            *crud.Handler[domain.Log, domain.NoInput]
	Reports         *report.Handler
}

// NewHandlers monta Repository -> Service -> Handler de cada recurso sobre o mesmo Executor.
func NewHandlers(exec *database.Executor, log logger.Logger, bcryptCost int) Handlers {
	wr := response.NewWriter(log)

	return Handlers{
		Clientes:   newCRUD("clientes", exec, crudrepo.Clientes, wr, log),
		Produtos:   newCRUD("produtos", exec, crudrepo.Produtos, wr, log),
		Categorias: newCRUD("categorias", exec, crudrepo.Categorias, wr, log),
		Pedidos: newCRUD("pedidos", exec, crudrepo.Pedidos, wr, log,
			crudservice.WithPrepare(crudservice.DefaultPedidoStatus)),
		ItensPedido: newCRUD("itens_pedido", exec, crudrepo.ItensPedido, wr, log),
		ContasReceber: newCRUD("contas-receber", exec, crudrepo.ContasReceber, wr, log,
			crudservice.WithPrepare(crudservice.DefaultContaStatus)),
		FormasPagamento: newCRUD("formas-pagamento", exec, crudrepo.FormasPagamento, wr, log),
		Usuarios: newCRUD("usuarios", exec, crudrepo.Usuarios, wr, log,
			crudservice.WithPrepare(crudservice.HashSenha(bcryptCost))),
		Logs:    newCRUD("logs", exec, crudrepo.Logs, wr, log),
		Reports: report.NewHandler(reportservice.NewService(reportrepo.NewRepository(exec), log), wr),
	}
}

func newCRUD[T any, In any](
	resource string,
	exec *database.Executor,
	table crudrepo.Table[T, In],
	wr *response.Writer,
	log logger.Logger,
	opts ...crudservice.Option[In],
) *crud.Handler[T, In] {
	repo := crudrepo.NewRepository(exec, table)
	svc := crudservice.NewService[T, In](resource, repo, log, opts...)
	return crud.NewHandler[T, In](svc, wr)
}
