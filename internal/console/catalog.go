package console

import (
	"context"
	"io"
	"strconv"
	"strings"

	"gofinanceiro/internal/client"
	"gofinanceiro/internal/domain"
)

// Page é uma tela que busca dados e se desenha.
type Page interface {
	Load(ctx context.Context) error
	Render(w io.Writer) error
}

// Editor é uma tela de recurso com formulário.
type Editor interface {
	Page
	Submit(ctx context.Context, form Form, id int64) (string, error)
	Remove(ctx context.Context, id int64, confirm func(question string) bool) (string, error)
	FormFor(id int64) (Form, bool)
	FormFields() []Field
	RenderForm(w io.Writer)
	Warnings() []string
}

// Catalog reúne as telas do console.
type Catalog struct {
	Resources map[string]Editor
	Logs      Page
	Reports   map[string]*ReportPage

	api *client.Client
}

// NewCatalog monta todas as telas sobre o cliente da API.
func NewCatalog(api *client.Client) *Catalog {
	return &Catalog{
		Resources: map[string]Editor{
			"clientes":         clientesPage(api),
			"produtos":         produtosPage(api),
			"categorias":       categoriasPage(api),
			"pedidos":          pedidosPage(api),
			"itens-pedido":     itensPedidoPage(api),
			"contas-receber":   contasReceberPage(api),
			"formas-pagamento": formasPagamentoPage(api),
			"usuarios":         usuariosPage(api),
		},
		Logs:    logsPage(api),
		Reports: reportPages(api),
		api:     api,
	}
}

// ItensDoPedido monta a tela com os itens de um pedido.
func (c *Catalog) ItensDoPedido(idPedido int64) Page {
	p := NewListPage[domain.ItemPedido]("Itens do pedido "+strconv.FormatInt(idPedido, 10),
		ListerFunc[domain.ItemPedido](func(ctx context.Context) ([]domain.ItemPedido, error) {
			return c.api.ItensDoPedido(ctx, idPedido)
		}), itemColumns)
	p.LoadingText = "Carregando itens..."
	p.LoadError = "Falha ao carregar os itens do pedido. Tente novamente."
	p.EmptyMessage = "Este pedido não possui itens."
	return p
}

func clientesPage(api *client.Client) *ResourcePage[domain.Cliente, domain.ClienteInput] {
	p := NewResourcePage[domain.Cliente, domain.ClienteInput]("Clientes", api.Clientes(), []Column[domain.Cliente]{
		{"ID", func(c domain.Cliente) string { return strconv.FormatInt(c.IDCliente, 10) }},
		{"Nome", func(c domain.Cliente) string { return c.Nome }},
		{"CPF/CNPJ", func(c domain.Cliente) string { return c.CpfCnpj }},
		{"Email", func(c domain.Cliente) string { return Text(c.Email) }},
		{"Telefone", func(c domain.Cliente) string { return Text(c.Telefone) }},
	})
	p.LoadingText = "Carregando clientes..."
	p.LoadError = "Falha ao carregar clientes. Tente recarregar a página."
	p.EmptyMessage = "Nenhum cliente cadastrado."
	p.Fields = []Field{
		{Name: "nome", Label: "Nome", Required: true},
		{Name: "cpf_cnpj", Label: "CPF/CNPJ", Required: true},
		{Name: "email", Label: "Email"},
		{Name: "telefone", Label: "Telefone"},
		{Name: "endereco", Label: "Endereço"},
	}
	p.Messages = Messages{
		Missing:       "Por favor, preencha os campos Nome e CPF/CNPJ.",
		Added:         "Cliente adicionado com sucesso!",
		Updated:       "Cliente atualizado com sucesso!",
		Removed:       "Cliente removido com sucesso!",
		SaveError:     "Erro ao salvar cliente: ",
		ConfirmRemove: "Tem certeza que deseja remover este cliente? A ação não pode ser desfeita.",
		RemoveError:   "Falha ao remover o cliente. Verifique se ele não possui pedidos associados.",
	}
	p.ID = func(c domain.Cliente) int64 { return c.IDCliente }
	p.FromItem = func(c domain.Cliente) Form {
		return Form{
			"nome":     c.Nome,
			"cpf_cnpj": c.CpfCnpj,
			"email":    optionalString(c.Email),
			"telefone": optionalString(c.Telefone),
			"endereco": optionalString(c.Endereco),
		}
	}
	p.ToInput = func(f Form, _ bool) (domain.ClienteInput, error) {
		return domain.ClienteInput{
			Nome:     strings.TrimSpace(f["nome"]),
			CpfCnpj:  strings.TrimSpace(f["cpf_cnpj"]),
			Email:    strings.TrimSpace(f["email"]),
			Telefone: strings.TrimSpace(f["telefone"]),
			Endereco: strings.TrimSpace(f["endereco"]),
		}, nil
	}
	return p
}

func categoriasPage(api *client.Client) *ResourcePage[domain.CategoriaProduto, domain.CategoriaInput] {
	p := NewResourcePage[domain.CategoriaProduto, domain.CategoriaInput]("Categorias", api.Categorias(), []Column[domain.CategoriaProduto]{
		{"ID", func(c domain.CategoriaProduto) string { return strconv.FormatInt(c.IDCategoria, 10) }},
		{"Nome", func(c domain.CategoriaProduto) string { return c.Nome }},
	})
	p.LoadError = "Falha ao carregar categorias. Tente recarregar a página."
	p.EmptyMessage = "Nenhuma categoria cadastrada."
	p.Fields = []Field{{Name: "nome", Label: "Nome", Required: true}}
	p.Messages = Messages{
		Missing:       "Por favor, preencha o nome da categoria.",
		Added:         "Categoria adicionada com sucesso!",
		Updated:       "Categoria atualizada com sucesso!",
		Removed:       "Categoria removida com sucesso!",
		SaveError:     "Erro ao salvar categoria: ",
		ConfirmRemove: "Tem certeza que deseja remover esta categoria? A ação não pode ser desfeita.",
		RemoveError:   "Falha ao remover a categoria. Verifique se ela não está sendo usada por algum produto.",
	}
	p.ID = func(c domain.CategoriaProduto) int64 { return c.IDCategoria }
	p.FromItem = func(c domain.CategoriaProduto) Form { return Form{"nome": c.Nome} }
	p.ToInput = func(f Form, _ bool) (domain.CategoriaInput, error) {
		return domain.CategoriaInput{Nome: strings.TrimSpace(f["nome"])}, nil
	}
	return p
}

func produtosPage(api *client.Client) *ResourcePage[domain.Produto, domain.ProdutoInput] {
	p := NewResourcePage[domain.Produto, domain.ProdutoInput]("Produtos", api.Produtos(), []Column[domain.Produto]{
		{"ID", func(p domain.Produto) string { return strconv.FormatInt(p.IDProduto, 10) }},
		{"Nome", func(p domain.Produto) string { return p.Nome }},
		{"Preço", func(p domain.Produto) string { return Money(p.Preco) }},
		{"Estoque", func(p domain.Produto) string { return strconv.Itoa(p.Estoque) }},
		{"Categoria", func(p domain.Produto) string { return Text(p.NomeCategoria) }},
	})
	p.LoadingText = "Carregando produtos e categorias..."
	p.LoadError = "Falha ao carregar dados. Tente recarregar a página."
	p.EmptyMessage = "Nenhum produto cadastrado."
	p.Lookups = []Lookup{{
		Name:        "categorias",
		Essential:   true,
		Placeholder: "Nenhuma categoria cadastrada",
		Load:        categoriaOptions(api),
	}}
	p.Fields = []Field{
		{Name: "nome", Label: "Nome", Required: true},
		{Name: "preco", Label: "Preço", Required: true},
		{Name: "id_categoria", Label: "Categoria", Required: true, Lookup: "categorias"},
		{Name: "estoque", Label: "Estoque"},
	}
	p.Messages = Messages{
		Missing:       "Por favor, preencha todos os campos obrigatórios.",
		Added:         "Produto adicionado com sucesso!",
		Updated:       "Produto atualizado com sucesso!",
		Removed:       "Produto removido com sucesso!",
		SaveError:     "Erro ao salvar produto: ",
		ConfirmRemove: "Tem certeza que deseja remover este produto? A ação não pode ser desfeita.",
		RemoveError:   "Falha ao remover o produto. Verifique se ele não está associado a um pedido.",
	}
	p.ID = func(p domain.Produto) int64 { return p.IDProduto }
	p.FromItem = func(p domain.Produto) Form {
		return Form{
			"nome":         p.Nome,
			"preco":        p.Preco.String(),
			"id_categoria": optionalID(p.IDCategoria),
			"estoque":      strconv.Itoa(p.Estoque),
		}
	}
	p.ToInput = func(f Form, _ bool) (in domain.ProdutoInput, err error) {
		in.Nome = strings.TrimSpace(f["nome"])
		if in.Preco, err = parseDecimal("Preço", f["preco"]); err != nil {
			return in, err
		}
		if in.IDCategoria, err = parseInt64("Categoria", f["id_categoria"]); err != nil {
			return in, err
		}
		in.Estoque, err = parseInt("Estoque", f["estoque"])
		return in, err
	}
	return p
}

func pedidosPage(api *client.Client) *ResourcePage[domain.Pedido, domain.PedidoInput] {
	p := NewResourcePage[domain.Pedido, domain.PedidoInput]("Pedidos", api.Pedidos(), []Column[domain.Pedido]{
		{"ID", func(p domain.Pedido) string { return strconv.FormatInt(p.IDPedido, 10) }},
		{"Cliente", func(p domain.Pedido) string { return Text(p.NomeCliente) }},
		{"Data", func(p domain.Pedido) string { return DateBR(p.DataPedido) }},
		{"Valor Total", func(p domain.Pedido) string { return Money(p.ValorTotal) }},
		{"Status", func(p domain.Pedido) string { return string(p.Status) }},
	})
	p.LoadingText = "Carregando dados..."
	p.LoadError = "Falha ao carregar dados essenciais (pedidos/clientes). A API está online?"
	p.EmptyMessage = "Nenhum pedido cadastrado."
	p.Lookups = []Lookup{
		{Name: "clientes", Essential: true, Placeholder: "Nenhum cliente cadastrado", Load: clienteOptions(api)},
		{Name: "usuarios", Placeholder: "Nenhum (Usuários não carregados)", Load: usuarioOptions(api)},
		{Name: "formas-pagamento", Placeholder: "Nenhuma (Formas de Pagamento não carregadas)", Load: formaOptions(api)},
	}
	p.Fields = []Field{
		{Name: "id_cliente", Label: "Cliente", Required: true, Lookup: "clientes"},
		{Name: "data_pedido", Label: "Data do Pedido", Required: true},
		{Name: "valor_total", Label: "Valor Total", Required: true},
		{Name: "status", Label: "Status (PENDENTE, FINALIZADO, CANCELADO)"},
		{Name: "id_usuario", Label: "Usuário", Lookup: "usuarios"},
		{Name: "id_forma_pagamento", Label: "Forma de Pagamento", Lookup: "formas-pagamento"},
	}
	p.Messages = Messages{
		Missing:       "Por favor, preencha Cliente, Data do Pedido e Valor Total.",
		Added:         "Pedido adicionado com sucesso!",
		Updated:       "Pedido atualizado com sucesso!",
		Removed:       "Pedido removido com sucesso!",
		SaveError:     "Erro ao salvar pedido: ",
		ConfirmRemove: "Tem certeza que deseja remover este pedido? A ação não pode ser desfeita.",
		RemoveError:   "Falha ao remover o pedido. Verifique as dependências.",
	}
	p.ID = func(p domain.Pedido) int64 { return p.IDPedido }
	p.FromItem = func(p domain.Pedido) Form {
		return Form{
			"id_cliente":         strconv.FormatInt(p.IDCliente, 10),
			"data_pedido":        p.DataPedido.String(),
			"valor_total":        p.ValorTotal.String(),
			"status":             string(p.Status),
			"id_usuario":         optionalID(p.IDUsuario),
			"id_forma_pagamento": optionalID(p.IDFormaPagamento),
		}
	}
	p.ToInput = func(f Form, _ bool) (in domain.PedidoInput, err error) {
		if in.IDCliente, err = parseInt64("Cliente", f["id_cliente"]); err != nil {
			return in, err
		}
		if in.DataPedido, err = parseDate("Data do Pedido", f["data_pedido"]); err != nil {
			return in, err
		}
		if in.ValorTotal, err = parseDecimal("Valor Total", f["valor_total"]); err != nil {
			return in, err
		}
		in.Status = domain.StatusPedido(strings.ToUpper(strings.TrimSpace(f["status"])))
		if in.IDUsuario, err = parseOptionalID("Usuário", f["id_usuario"]); err != nil {
			return in, err
		}
		in.IDFormaPagamento, err = parseOptionalID("Forma de Pagamento", f["id_forma_pagamento"])
		return in, err
	}
	return p
}

var itemColumns = []Column[domain.ItemPedido]{
	{"ID", func(i domain.ItemPedido) string { return strconv.FormatInt(i.IDItem, 10) }},
	{"Pedido", func(i domain.ItemPedido) string { return strconv.FormatInt(i.IDPedido, 10) }},
	{"Descrição", func(i domain.ItemPedido) string { return i.Descricao }},
	{"Qtd", func(i domain.ItemPedido) string { return strconv.Itoa(i.Quantidade) }},
	{"Preço Unitário", func(i domain.ItemPedido) string { return Money(i.PrecoUnitario) }},
}

func itensPedidoPage(api *client.Client) *ResourcePage[domain.ItemPedido, domain.ItemPedidoInput] {
	p := NewResourcePage[domain.ItemPedido, domain.ItemPedidoInput]("Itens de Pedido", api.ItensPedido(), itemColumns)
	p.LoadError = "Falha ao carregar itens de pedido. Tente recarregar a página."
	p.EmptyMessage = "Nenhum item de pedido cadastrado."
	p.Fields = []Field{
		{Name: "id_pedido", Label: "Pedido", Required: true},
		{Name: "descricao", Label: "Descrição", Required: true},
		{Name: "quantidade", Label: "Quantidade", Required: true},
		{Name: "preco_unitario", Label: "Preço Unitário", Required: true},
	}
	p.Messages = Messages{
		Missing:       "Por favor, preencha Pedido, Descrição, Quantidade e Preço Unitário.",
		Added:         "Item adicionado com sucesso!",
		Updated:       "Item atualizado com sucesso!",
		Removed:       "Item removido com sucesso!",
		SaveError:     "Erro ao salvar item: ",
		ConfirmRemove: "Tem certeza que deseja remover este item? A ação não pode ser desfeita.",
		RemoveError:   "Falha ao remover o item. Tente novamente.",
	}
	p.ID = func(i domain.ItemPedido) int64 { return i.IDItem }
	p.FromItem = func(i domain.ItemPedido) Form {
		return Form{
			"id_pedido":      strconv.FormatInt(i.IDPedido, 10),
			"descricao":      i.Descricao,
			"quantidade":     strconv.Itoa(i.Quantidade),
			"preco_unitario": i.PrecoUnitario.String(),
		}
	}
	p.ToInput = func(f Form, _ bool) (in domain.ItemPedidoInput, err error) {
		if in.IDPedido, err = parseInt64("Pedido", f["id_pedido"]); err != nil {
			return in, err
		}
		in.Descricao = strings.TrimSpace(f["descricao"])
		if in.Quantidade, err = parseInt("Quantidade", f["quantidade"]); err != nil {
			return in, err
		}
		in.PrecoUnitario, err = parseDecimal("Preço Unitário", f["preco_unitario"])
		return in, err
	}
	return p
}

func contasReceberPage(api *client.Client) *ResourcePage[domain.ContaReceber, domain.ContaReceberInput] {
	p := NewResourcePage[domain.ContaReceber, domain.ContaReceberInput]("Contas a Receber", api.ContasReceber(), []Column[domain.ContaReceber]{
		{"ID", func(c domain.ContaReceber) string { return strconv.FormatInt(c.IDConta, 10) }},
		{"Pedido", func(c domain.ContaReceber) string { return strconv.FormatInt(c.IDPedido, 10) }},
		{"Valor", func(c domain.ContaReceber) string { return Money(c.Valor) }},
		{"Vencimento", func(c domain.ContaReceber) string { return DateBR(c.DataVencimento) }},
		{"Pagamento", func(c domain.ContaReceber) string {
			if c.DataPagamento == nil {
				return "-"
			}
			return DateBR(*c.DataPagamento)
		}},
		{"Status", func(c domain.ContaReceber) string { return string(c.StatusPagamento) }},
	})
	p.LoadError = "Falha ao carregar contas a receber. Verifique se a API está online."
	p.EmptyMessage = "Nenhuma conta a receber cadastrada."
	p.Lookups = []Lookup{
		{Name: "formas-pagamento", Placeholder: "Nenhuma (Formas de Pagamento não carregadas)", Load: formaOptions(api)},
	}
	p.Fields = []Field{
		{Name: "id_pedido", Label: "Pedido", Required: true},
		{Name: "valor", Label: "Valor", Required: true},
		{Name: "data_vencimento", Label: "Data de Vencimento", Required: true},
		{Name: "data_pagamento", Label: "Data de Pagamento"},
		{Name: "status_pagamento", Label: "Status (EM ABERTO, PAGO)"},
		{Name: "id_forma_pagamento", Label: "Forma de Pagamento", Lookup: "formas-pagamento"},
	}
	p.Messages = Messages{
		Missing:       "Por favor, preencha o Pedido, Valor e Data de Vencimento.",
		Added:         "Conta a receber adicionada com sucesso!",
		Updated:       "Conta a receber atualizada com sucesso!",
		Removed:       "Conta a receber removida com sucesso!",
		SaveError:     "Erro ao salvar conta: ",
		ConfirmRemove: "Tem certeza que deseja remover esta conta a receber? A ação não pode ser desfeita.",
		RemoveError:   "Falha ao remover a conta. Verifique o console.",
	}
	p.ID = func(c domain.ContaReceber) int64 { return c.IDConta }
	p.FromItem = func(c domain.ContaReceber) Form {
		pagamento := ""
		if c.DataPagamento != nil {
			pagamento = c.DataPagamento.String()
		}
		return Form{
			"id_pedido":          strconv.FormatInt(c.IDPedido, 10),
			"valor":              c.Valor.String(),
			"data_vencimento":    c.DataVencimento.String(),
			"data_pagamento":     pagamento,
			"status_pagamento":   string(c.StatusPagamento),
			"id_forma_pagamento": optionalID(c.IDFormaPagamento),
		}
	}
	p.ToInput = func(f Form, _ bool) (in domain.ContaReceberInput, err error) {
		if in.IDPedido, err = parseInt64("Pedido", f["id_pedido"]); err != nil {
			return in, err
		}
		if in.Valor, err = parseDecimal("Valor", f["valor"]); err != nil {
			return in, err
		}
		if in.DataVencimento, err = parseDate("Data de Vencimento", f["data_vencimento"]); err != nil {
			return in, err
		}
		if in.DataPagamento, err = parseOptionalDate("Data de Pagamento", f["data_pagamento"]); err != nil {
			return in, err
		}
		in.StatusPagamento = domain.StatusPagamento(strings.ToUpper(strings.TrimSpace(f["status_pagamento"])))
		in.IDFormaPagamento, err = parseOptionalID("Forma de Pagamento", f["id_forma_pagamento"])
		return in, err
	}
	return p
}

func formasPagamentoPage(api *client.Client) *ResourcePage[domain.FormaPagamento, domain.FormaPagamentoInput] {
	p := NewResourcePage[domain.FormaPagamento, domain.FormaPagamentoInput]("Formas de Pagamento", api.FormasPagamento(), []Column[domain.FormaPagamento]{
		{"ID", func(f domain.FormaPagamento) string { return strconv.FormatInt(f.IDForma, 10) }},
		{"Descrição", func(f domain.FormaPagamento) string { return f.Descricao }},
	})
	p.LoadError = "Falha ao carregar formas de pagamento. Tente recarregar a página."
	p.EmptyMessage = "Nenhuma forma de pagamento cadastrada."
	p.Fields = []Field{{Name: "descricao", Label: "Descrição", Required: true}}
	p.Messages = Messages{
		Missing:       "Por favor, preencha a descrição.",
		Added:         "Forma de pagamento adicionada com sucesso!",
		Updated:       "Forma de pagamento atualizada com sucesso!",
		Removed:       "Forma de pagamento removida com sucesso!",
		SaveError:     "Erro ao salvar: ",
		ConfirmRemove: "Tem certeza que deseja remover esta forma de pagamento? A ação não pode ser desfeita.",
		RemoveError:   "Falha ao remover. Verifique se esta forma de pagamento não está vinculada a um pedido ou conta.",
	}
	p.ID = func(f domain.FormaPagamento) int64 { return f.IDForma }
	p.FromItem = func(f domain.FormaPagamento) Form { return Form{"descricao": f.Descricao} }
	p.ToInput = func(f Form, _ bool) (domain.FormaPagamentoInput, error) {
		return domain.FormaPagamentoInput{Descricao: strings.TrimSpace(f["descricao"])}, nil
	}
	return p
}

func usuariosPage(api *client.Client) *ResourcePage[domain.Usuario, domain.UsuarioInput] {
	p := NewResourcePage[domain.Usuario, domain.UsuarioInput]("Usuários", api.Usuarios(), []Column[domain.Usuario]{
		{"ID", func(u domain.Usuario) string { return strconv.FormatInt(u.IDUsuario, 10) }},
		{"Nome", func(u domain.Usuario) string { return u.Nome }},
		{"Email", func(u domain.Usuario) string { return u.Email }},
		{"Cargo", func(u domain.Usuario) string { return Text(u.Cargo) }},
	})
	p.LoadError = "Falha ao carregar usuários. Tente recarregar a página."
	p.EmptyMessage = "Nenhum usuário cadastrado."
	p.Fields = []Field{
		{Name: "nome", Label: "Nome", Required: true},
		{Name: "email", Label: "Email", Required: true},
		{Name: "senha", Label: "Senha (em branco mantém a atual)", Secret: true},
		{Name: "cargo", Label: "Cargo"},
	}
	p.Messages = Messages{
		Missing:         "Por favor, preencha nome e email.",
		MissingOnCreate: "A senha é obrigatória para novos usuários.",
		Added:           "Usuário adicionado com sucesso!",
		Updated:         "Usuário atualizado com sucesso!",
		Removed:         "Usuário removido com sucesso!",
		SaveError:       "Erro ao salvar: ",
		ConfirmRemove:   "Tem certeza que deseja remover este usuário? A ação não pode ser desfeita.",
		RemoveError:     "Falha ao remover o usuário. Verifique se ele não está associado a algum pedido.",
	}
	p.ID = func(u domain.Usuario) int64 { return u.IDUsuario }
	p.FromItem = func(u domain.Usuario) Form {
		return Form{"nome": u.Nome, "email": u.Email, "senha": "", "cargo": optionalString(u.Cargo)}
	}
	p.ToInput = func(f Form, _ bool) (domain.UsuarioInput, error) {
		in := domain.UsuarioInput{
			Nome:  strings.TrimSpace(f["nome"]),
			Email: strings.TrimSpace(f["email"]),
			Cargo: strings.TrimSpace(f["cargo"]),
		}
		// Senha em branco não é enviada; na edição o servidor mantém a atual.
		if senha := f["senha"]; senha != "" {
			in.Senha = &senha
		}
		return in, nil
	}
	return p
}

func logsPage(api *client.Client) *ListPage[domain.Log] {
	p := NewListPage[domain.Log]("Logs do Sistema", ListerFunc[domain.Log](api.Logs), []Column[domain.Log]{
		{"ID", func(l domain.Log) string { return strconv.FormatInt(l.IDLog, 10) }},
		{"Data", func(l domain.Log) string { return DateTimeBR(l.Data) }},
		{"Produto", func(l domain.Log) string { return ID(l.IDProduto) }},
		{"Mensagem", func(l domain.Log) string { return l.Mensagem }},
	})
	p.LoadingText = "Carregando logs do sistema..."
	p.LoadError = "Falha ao carregar os logs. Tente recarregar a página."
	p.EmptyMessage = "Nenhum log registrado."
	return p
}

func reportPages(api *client.Client) map[string]*ReportPage {
	vendas := NewReportPage(api, "Resumo de Vendas Mensal", "/relatorios/vendas-mensal", []ReportColumn{
		{Key: "mes", Header: "Mês", Format: CellMonth},
		{Key: "total_pedidos", Header: "Total de Pedidos"},
		{Key: "total_vendido", Header: "Total Vendido", Format: CellMoney},
	})
	vendas.EmptyMessage = "Nenhum dado de venda finalizada encontrado para exibir no relatório."

	financeiro := NewReportPage(api, "Relatório Financeiro", "/relatorios/financeiro", []ReportColumn{
		{Key: "cliente_id", Header: "ID"},
		{Key: "cliente_nome", Header: "Cliente"},
		{Key: "total_pedidos", Header: "Total em Pedidos", Format: CellMoney},
		{Key: "total_pago", Header: "Total Pago", Format: CellMoney},
		{Key: "total_pendente", Header: "Total Pendente", Format: CellMoney},
		{Key: "pedidos_em_atraso", Header: "Pedidos em Atraso"},
	})
	financeiro.WithRange = true
	financeiro.EmptyMessage = "Nenhum dado financeiro encontrado para o período selecionado."

	vip := NewReportPage(api, "Clientes VIP", "/relatorios/clientes-vip", []ReportColumn{
		{Key: "id_cliente", Header: "ID"},
		{Key: "nome", Header: "Nome"},
		{Key: "total_pedidos", Header: "Total de Pedidos"},
		{Key: "valor_total_compras", Header: "Valor Total", Format: CellMoney},
		{Key: "ticket_medio", Header: "Ticket Médio", Format: CellMoney},
		{Key: "ultima_compra", Header: "Última Compra", Format: CellDate},
	})
	vip.EmptyMessage = "Nenhum cliente com compras finalizadas foi encontrado para exibir no relatório."

	top5 := NewReportPage(api, "Top 5 Clientes", "/relatorios/top5-clientes", []ReportColumn{
		{Key: "id_cliente", Header: "ID"},
		{Key: "nome", Header: "Nome"},
		{Key: "total_gasto", Header: "Total Gasto", Format: CellMoney},
	})
	top5.EmptyMessage = "Nenhum cliente com compras encontrado para exibir no relatório."

	return map[string]*ReportPage{
		"vendas-mensal": vendas,
		"financeiro":    financeiro,
		"clientes-vip":  vip,
		"top5-clientes": top5,
	}
}

func categoriaOptions(api *client.Client) func(ctx context.Context) ([]Option, error) {
	return func(ctx context.Context) ([]Option, error) {
		items, err := api.Categorias().List(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]Option, len(items))
		for i, c := range items {
			opts[i] = Option{Value: strconv.FormatInt(c.IDCategoria, 10), Label: c.Nome}
		}
		return opts, nil
	}
}

func clienteOptions(api *client.Client) func(ctx context.Context) ([]Option, error) {
	return func(ctx context.Context) ([]Option, error) {
		items, err := api.Clientes().List(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]Option, len(items))
		for i, c := range items {
			opts[i] = Option{Value: strconv.FormatInt(c.IDCliente, 10), Label: c.Nome}
		}
		return opts, nil
	}
}

func usuarioOptions(api *client.Client) func(ctx context.Context) ([]Option, error) {
	return func(ctx context.Context) ([]Option, error) {
		items, err := api.Usuarios().List(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]Option, len(items))
		for i, u := range items {
			opts[i] = Option{Value: strconv.FormatInt(u.IDUsuario, 10), Label: u.Nome}
		}
		return opts, nil
	}
}

func formaOptions(api *client.Client) func(ctx context.Context) ([]Option, error) {
	return func(ctx context.Context) ([]Option, error) {
		items, err := api.FormasPagamento().List(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]Option, len(items))
		for i, f := range items {
			opts[i] = Option{Value: strconv.FormatInt(f.IDForma, 10), Label: f.Descricao}
		}
		return opts, nil
	}
}
