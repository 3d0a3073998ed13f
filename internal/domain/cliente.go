package domain

// Cliente representa a tabela FINANCEIRO.CLIENTE.
type Cliente struct {
	IDCliente int64   `json:"id_cliente"`
	Nome      string  `json:"nome"`
	CpfCnpj   string  `json:"cpf_cnpj"`
	Email     *string `json:"email"`
	Telefone  *string `json:"telefone"`
	Endereco  *string `json:"endereco"`
}

// ClienteInput é o payload de criação/atualização de clientes.
type ClienteInput struct {
	Nome     string `json:"nome" validate:"required"`
	CpfCnpj  string `json:"cpf_cnpj" validate:"required"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
}
