package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int               `json:"code" example:"409"`
	Category string            `json:"category" example:"CONFLICT"`
	Message  string            `json:"message" example:"Conflito de estado: Falha ao excluir categorias"`
	Details  string            `json:"details,omitempty" example:"update or delete on table \"categoria_produto\" violates foreign key constraint"`
	Fields   map[string]string `json:"fields,omitempty"`
}
