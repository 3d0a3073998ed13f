package domain

import "github.com/shopspring/decimal"

// StatusPagamento é a situação de uma conta a receber.
type StatusPagamento string

const (
	StatusEmAberto StatusPagamento = "EM ABERTO"
	StatusPago     StatusPagamento = "PAGO"
)

// ContaReceber representa a tabela FINANCEIRO.CONTA_RECEBER.
type ContaReceber struct {
	IDConta          int64           `json:"id_conta"`
	IDPedido         int64           `json:"id_pedido"`
	DataVencimento   Date            `json:"data_vencimento"`
	Valor            decimal.Decimal `json:"valor"`
	DataPagamento    *Date           `json:"data_pagamento"`
	StatusPagamento  StatusPagamento `json:"status_pagamento"`
	IDFormaPagamento *int64          `json:"id_forma_pagamento"`
}

// ContaReceberInput é o payload de criação/atualização de contas a receber.
// Status vazio assume EM ABERTO.
type ContaReceberInput struct {
	IDPedido         int64           `json:"id_pedido" validate:"required"`
	DataVencimento   Date            `json:"data_vencimento" validate:"required"`
	Valor            decimal.Decimal `json:"valor" validate:"required"`
	DataPagamento    *Date           `json:"data_pagamento"`
	StatusPagamento  StatusPagamento `json:"status_pagamento" validate:"omitempty,oneof='EM ABERTO' PAGO"`
	IDFormaPagamento *int64          `json:"id_forma_pagamento"`
}
