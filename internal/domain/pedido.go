package domain

import "github.com/shopspring/decimal"

// StatusPedido é o ciclo de vida de um pedido.
type StatusPedido string

const (
	StatusPendente   StatusPedido = "PENDENTE"
	StatusFinalizado StatusPedido = "FINALIZADO"
	StatusCancelado  StatusPedido = "CANCELADO"
)

// Pedido representa a tabela FINANCEIRO.PEDIDO, acrescida do nome do cliente.
type Pedido struct {
	IDPedido         int64           `json:"id_pedido"`
	IDCliente        int64           `json:"id_cliente"`
	DataPedido       Date            `json:"data_pedido"`
	ValorTotal       decimal.Decimal `json:"valor_total"`
	Status           StatusPedido    `json:"status"`
	IDUsuario        *int64          `json:"id_usuario"`
	IDFormaPagamento *int64          `json:"id_forma_pagamento"`
	NomeCliente      *string         `json:"nome_cliente"`
}

// PedidoInput é o payload de criação/atualização de pedidos.
// Status vazio assume PENDENTE.
type PedidoInput struct {
	IDCliente        int64           `json:"id_cliente" validate:"required"`
	DataPedido       Date            `json:"data_pedido" validate:"required"`
	ValorTotal       decimal.Decimal `json:"valor_total" validate:"required"`
	Status           StatusPedido    `json:"status" validate:"omitempty,oneof=PENDENTE FINALIZADO CANCELADO"`
	IDUsuario        *int64          `json:"id_usuario"`
	IDFormaPagamento *int64          `json:"id_forma_pagamento"`
}

// ItemPedido representa a tabela FINANCEIRO.ITEM_PEDIDO.
type ItemPedido struct {
	IDItem        int64           `json:"id_item"`
	IDPedido      int64           `json:"id_pedido"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

// ItemPedidoInput é o payload de criação/atualização de itens de pedido.
type ItemPedidoInput struct {
	IDPedido      int64           `json:"id_pedido" validate:"required"`
	Descricao     string          `json:"descricao" validate:"required"`
	Quantidade    int             `json:"quantidade" validate:"required"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario" validate:"required"`
}
