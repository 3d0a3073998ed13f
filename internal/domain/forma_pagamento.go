package domain

// FormaPagamento representa a tabela FINANCEIRO.FORMA_PAGAMENTO.
type FormaPagamento struct {
	IDForma   int64  `json:"id_forma"`
	Descricao string `json:"descricao"`
}

// FormaPagamentoInput é o payload de criação/atualização de formas de pagamento.
type FormaPagamentoInput struct {
	Descricao string `json:"descricao" validate:"required"`
}
