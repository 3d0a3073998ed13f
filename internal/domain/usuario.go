package domain

// Usuario representa a tabela FINANCEIRO.USUARIO.
// A senha nunca faz parte da projeção de leitura.
type Usuario struct {
	IDUsuario int64   `json:"id_usuario"`
	Nome      string  `json:"nome"`
	Email     string  `json:"email"`
	Cargo     *string `json:"cargo"`
}

// UsuarioInput é o payload de criação/atualização de usuários.
// Senha é obrigatória na criação; na atualização, se omitida, a senha gravada é mantida.
type UsuarioInput struct {
	Nome  string  `json:"nome" validate:"required"`
	Email string  `json:"email" validate:"required"`
	Senha *string `json:"senha,omitempty"`
	Cargo string  `json:"cargo"`
}
