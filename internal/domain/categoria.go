package domain

// CategoriaProduto representa a tabela FINANCEIRO.CATEGORIA_PRODUTO.
type CategoriaProduto struct {
	IDCategoria int64  `json:"id_categoria"`
	Nome        string `json:"nome"`
}

// CategoriaInput é o payload de criação/atualização de categorias.
type CategoriaInput struct {
	Nome string `json:"nome" validate:"required"`
}
