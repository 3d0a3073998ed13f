package domain

import "github.com/shopspring/decimal"

// Produto representa a tabela FINANCEIRO.PRODUTO, acrescida do nome da categoria.
type Produto struct {
	IDProduto     int64           `json:"id_produto"`
	Nome          string          `json:"nome"`
	Preco         decimal.Decimal `json:"preco"`
	Estoque       int             `json:"estoque"`
	IDCategoria   *int64          `json:"id_categoria"`
	NomeCategoria *string         `json:"nome_categoria"`
}

// ProdutoInput é o payload de criação/atualização de produtos.
type ProdutoInput struct {
	Nome        string          `json:"nome" validate:"required"`
	Preco       decimal.Decimal `json:"preco" validate:"required"`
	IDCategoria int64           `json:"id_categoria" validate:"required"`
	Estoque     int             `json:"estoque"`
}
