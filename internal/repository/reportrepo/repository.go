package reportrepo

import (
	"context"
	"fmt"

	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/database"
)

// ParamKind é o tipo de um filtro aceito por um relatório.
type ParamKind int

const (
	ParamDate ParamKind = iota // AAAA-MM-DD
	ParamInt                   // inteiro >= 0
)

// Param é um filtro opcional repassado posicionalmente à função do banco.
type Param struct {
	Name string
	Kind ParamKind
}

// Report é uma view ou função do banco, opaca para a aplicação.
type Report struct {
	Name   string
	SQL    string
	Params []Param
}

// Reports lista os relatórios expostos pela API.
var Reports = []Report{
	{Name: "resumo_vendas", SQL: "SELECT * FROM FINANCEIRO.view_resumo_vendas_mensal"},
	{Name: "top5_clientes", SQL: "SELECT * FROM FINANCEIRO.view_cliente_top_5"},
	{Name: "clientes_vip", SQL: "SELECT * FROM FINANCEIRO.view_clientes_vip"},
	{
		Name:   "relatorio_financeiro",
		SQL:    "SELECT * FROM FINANCEIRO.relatorio_financeiro($1, $2)",
		Params: []Param{{"data_inicio", ParamDate}, {"data_fim", ParamDate}},
	},
	{
		Name:   "clientes_fieis",
		SQL:    "SELECT * FROM FINANCEIRO.clientes_fieis($1, $2, $3)",
		Params: []Param{{"min_pedidos", ParamInt}, {"data_inicio", ParamDate}, {"data_fim", ParamDate}},
	},
	{Name: "pedidos_acima_media", SQL: "SELECT * FROM FINANCEIRO.pedidos_acima_da_media()"},
}

// Find procura um relatório pelo nome.
func Find(name string) (Report, bool) {
	for _, r := range Reports {
		if r.Name == name {
			return r, true
		}
	}
	return Report{}, false
}

// Repository executa os relatórios sobre o Executor.
type Repository struct {
	exec *database.Executor
}

// NewRepository cria o repositório de relatórios.
func NewRepository(exec *database.Executor) *Repository {
	return &Repository{exec: exec}
}

// Run executa o relatório com os argumentos já convertidos, na ordem de Params.
// Argumentos nil chegam ao banco como NULL e a função aplica seus próprios padrões.
func (r *Repository) Run(ctx context.Context, report Report, args []interface{}) ([]database.Row, error) {
	if len(args) != len(report.Params) {
		return nil, apperror.NewInternalError(
			fmt.Sprintf("relatório %s espera %d parâmetros, recebeu %d", report.Name, len(report.Params), len(args)), nil)
	}
	return r.exec.Query(ctx, report.SQL, args...)
}
