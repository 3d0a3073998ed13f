package crudrepo

import (
	"gofinanceiro/internal/domain"
	"gofinanceiro/internal/pkg/database"
)

// Tabelas do schema FINANCEIRO servidas pela API.

var Clientes = Table[domain.Cliente, domain.ClienteInput]{
	Name:  "FINANCEIRO.CLIENTE",
	Label: "cliente",
	Key:   "id_cliente",
	Columns: []Column{
		{Name: "nome"}, {Name: "cpf_cnpj"}, {Name: "email"}, {Name: "telefone"}, {Name: "endereco"},
	},
	Projection: "t.id_cliente, t.nome, t.cpf_cnpj, t.email, t.telefone, t.endereco",
	OrderBy:    "t.nome",
	Args: func(in domain.ClienteInput) []interface{} {
		return []interface{}{in.Nome, in.CpfCnpj, in.Email, in.Telefone, in.Endereco}
	},
	Scan: func(s database.Scanner) (domain.Cliente, error) {
		var c domain.Cliente
		err := s.Scan(&c.IDCliente, &c.Nome, &c.CpfCnpj, &c.Email, &c.Telefone, &c.Endereco)
		return c, err
	},
}

var Produtos = Table[domain.Produto, domain.ProdutoInput]{
	Name:  "FINANCEIRO.PRODUTO",
	Label: "produto",
	Key:   "id_produto",
	Columns: []Column{
		{Name: "nome"}, {Name: "preco"}, {Name: "id_categoria"}, {Name: "estoque"},
	},
	Projection: "t.id_produto, t.nome, t.preco, t.estoque, t.id_categoria, c.nome AS nome_categoria",
	Joins:      "LEFT JOIN FINANCEIRO.CATEGORIA_PRODUTO c ON c.id_categoria = t.id_categoria",
	OrderBy:    "t.nome",
	Args: func(in domain.ProdutoInput) []interface{} {
		return []interface{}{in.Nome, in.Preco, in.IDCategoria, in.Estoque}
	},
	Scan: func(s database.Scanner) (domain.Produto, error) {
		var p domain.Produto
		err := s.Scan(&p.IDProduto, &p.Nome, &p.Preco, &p.Estoque, &p.IDCategoria, &p.NomeCategoria)
		return p, err
	},
}

var Categorias = Table[domain.CategoriaProduto, domain.CategoriaInput]{
	Name:       "FINANCEIRO.CATEGORIA_PRODUTO",
	Label:      "categoria",
	Key:        "id_categoria",
	Columns:    []Column{{Name: "nome"}},
	Projection: "t.id_categoria, t.nome",
	OrderBy:    "t.nome",
	Args: func(in domain.CategoriaInput) []interface{} {
		return []interface{}{in.Nome}
	},
	Scan: func(s database.Scanner) (domain.CategoriaProduto, error) {
		var c domain.CategoriaProduto
		err := s.Scan(&c.IDCategoria, &c.Nome)
		return c, err
	},
}

var Pedidos = Table[domain.Pedido, domain.PedidoInput]{
	Name:  "FINANCEIRO.PEDIDO",
	Label: "pedido",
	Key:   "id_pedido",
	Columns: []Column{
		{Name: "id_cliente"}, {Name: "data_pedido"}, {Name: "valor_total"},
		{Name: "status"}, {Name: "id_usuario"}, {Name: "id_forma_pagamento"},
	},
	Projection: "t.id_pedido, t.id_cliente, t.data_pedido, t.valor_total, t.status, t.id_usuario, t.id_forma_pagamento, c.nome AS nome_cliente",
	Joins:      "LEFT JOIN FINANCEIRO.CLIENTE c ON c.id_cliente = t.id_cliente",
	OrderBy:    "t.data_pedido DESC",
	Args: func(in domain.PedidoInput) []interface{} {
		return []interface{}{in.IDCliente, in.DataPedido, in.ValorTotal, string(in.Status), in.IDUsuario, in.IDFormaPagamento}
	},
	Scan: func(s database.Scanner) (domain.Pedido, error) {
		var p domain.Pedido
		var status string
		err := s.Scan(&p.IDPedido, &p.IDCliente, &p.DataPedido, &p.ValorTotal, &status,
			&p.IDUsuario, &p.IDFormaPagamento, &p.NomeCliente)
		p.Status = domain.StatusPedido(status)
		return p, err
	},
}

var ItensPedido = Table[domain.ItemPedido, domain.ItemPedidoInput]{
	Name:  "FINANCEIRO.ITEM_PEDIDO",
	Label: "item de pedido",
	Key:   "id_item",
	Columns: []Column{
		{Name: "id_pedido"}, {Name: "descricao"}, {Name: "quantidade"}, {Name: "preco_unitario"},
	},
	Projection: "t.id_item, t.id_pedido, t.descricao, t.quantidade, t.preco_unitario",
	OrderBy:    "t.id_item",
	Args: func(in domain.ItemPedidoInput) []interface{} {
		return []interface{}{in.IDPedido, in.Descricao, in.Quantidade, in.PrecoUnitario}
	},
	Scan: func(s database.Scanner) (domain.ItemPedido, error) {
		var i domain.ItemPedido
		err := s.Scan(&i.IDItem, &i.IDPedido, &i.Descricao, &i.Quantidade, &i.PrecoUnitario)
		return i, err
	},
}

var ContasReceber = Table[domain.ContaReceber, domain.ContaReceberInput]{
	Name:  "FINANCEIRO.CONTA_RECEBER",
	Label: "conta a receber",
	Key:   "id_conta",
	Columns: []Column{
		{Name: "id_pedido"}, {Name: "data_vencimento"}, {Name: "valor"},
		{Name: "data_pagamento"}, {Name: "status_pagamento"}, {Name: "id_forma_pagamento"},
	},
	Projection: "t.id_conta, t.id_pedido, t.data_vencimento, t.valor, t.data_pagamento, t.status_pagamento, t.id_forma_pagamento",
	OrderBy:    "t.data_vencimento",
	Args: func(in domain.ContaReceberInput) []interface{} {
		return []interface{}{in.IDPedido, in.DataVencimento, in.Valor, in.DataPagamento, string(in.StatusPagamento), in.IDFormaPagamento}
	},
	Scan: func(s database.Scanner) (domain.ContaReceber, error) {
		var c domain.ContaReceber
		var status string
		err := s.Scan(&c.IDConta, &c.IDPedido, &c.DataVencimento, &c.Valor, &c.DataPagamento, &status, &c.IDFormaPagamento)
		c.StatusPagamento = domain.StatusPagamento(status)
		return c, err
	},
}

var FormasPagamento = Table[domain.FormaPagamento, domain.FormaPagamentoInput]{
	Name:       "FINANCEIRO.FORMA_PAGAMENTO",
	Label:      "forma de pagamento",
	Key:        "id_forma",
	Columns:    []Column{{Name: "descricao"}},
	Projection: "t.id_forma, t.descricao",
	OrderBy:    "t.descricao",
	Args: func(in domain.FormaPagamentoInput) []interface{} {
		return []interface{}{in.Descricao}
	},
	Scan: func(s database.Scanner) (domain.FormaPagamento, error) {
		var f domain.FormaPagamento
		err := s.Scan(&f.IDForma, &f.Descricao)
		return f, err
	},
}

// Usuarios nunca projeta a senha. Na atualização, senha NULL mantém a gravada.
var Usuarios = Table[domain.Usuario, domain.UsuarioInput]{
	Name:  "FINANCEIRO.USUARIO",
	Label: "usuário",
	Key:   "id_usuario",
	Columns: []Column{
		{Name: "nome"}, {Name: "email"}, {Name: "senha", KeepWhenNull: true}, {Name: "cargo"},
	},
	Projection: "t.id_usuario, t.nome, t.email, t.cargo",
	OrderBy:    "t.nome",
	Args: func(in domain.UsuarioInput) []interface{} {
		return []interface{}{in.Nome, in.Email, in.Senha, in.Cargo}
	},
	Scan: func(s database.Scanner) (domain.Usuario, error) {
		var u domain.Usuario
		err := s.Scan(&u.IDUsuario, &u.Nome, &u.Email, &u.Cargo)
		return u, err
	},
}

// Logs é gravada por gatilho no banco, fora do schema FINANCEIRO; aqui é somente leitura.
var Logs = Table[domain.Log, domain.NoInput]{
	Name:       "LOG",
	Label:      "log",
	Key:        "id_log",
	Projection: "t.id_log, t.data, t.id_produto, t.mensagem",
	OrderBy:    "t.data DESC",
	Scan: func(s database.Scanner) (domain.Log, error) {
		var l domain.Log
		err := s.Scan(&l.IDLog, &l.Data, &l.IDProduto, &l.Mensagem)
		return l, err
	},
}
