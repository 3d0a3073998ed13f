package console

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gofinanceiro/internal/client"
	"gofinanceiro/internal/domain"
)

// ReportLoadError é o banner exibido quando o relatório não pôde ser carregado.
const ReportLoadError = "Ocorreu um erro inesperado ao carregar o relatório. Tente novamente mais tarde."

// ReportFetcher busca as linhas de um relatório. *client.Client satisfaz esta interface.
type ReportFetcher interface {
	Report(ctx context.Context, path string, query url.Values) ([]map[string]interface{}, error)
}

// ReportColumn é uma coluna do relatório e a formatação do seu valor.
type ReportColumn struct {
	Key    string
	Header string
	Format func(interface{}) string
}

// DateRange é o período de filtro de um relatório.
type DateRange struct {
	Inicio domain.Date
	Fim    domain.Date
}

// LastMonth devolve o período de um mês atrás até hoje.
func LastMonth(now time.Time) DateRange {
	y, m, d := now.Date()
	return DateRange{
		Inicio: domain.NewDate(y, m-1, d),
		Fim:    domain.NewDate(y, m, d),
	}
}

// ReportPage é uma página de relatório sem estado além do último resultado.
type ReportPage struct {
	Title        string
	Path         string
	Columns      []ReportColumn
	EmptyMessage string
	// WithRange indica que o relatório é filtrado por data_inicio/data_fim.
	WithRange bool
	Range     DateRange

	Now func() time.Time

	fetcher ReportFetcher
	rows    []map[string]interface{}
	loaded  bool
	err     string
}

// NewReportPage cria a página do relatório servido em path.
func NewReportPage(fetcher ReportFetcher, title, path string, columns []ReportColumn) *ReportPage {
	return &ReportPage{
		Title:        title,
		Path:         path,
		Columns:      columns,
		EmptyMessage: "Nenhum dado encontrado para exibir no relatório.",
		Now:          time.Now,
		fetcher:      fetcher,
	}
}

// DefaultRange aplica o período padrão quando nenhum foi informado.
func (p *ReportPage) DefaultRange() DateRange {
	r := p.Range
	def := LastMonth(p.Now())
	if r.Inicio.IsZero() {
		r.Inicio = def.Inicio
	}
	if r.Fim.IsZero() {
		r.Fim = def.Fim
	}
	return r
}

// Load busca o relatório. 404 é tratado como relatório vazio; qualquer outra
// falha limpa o resultado e define o banner de erro.
func (p *ReportPage) Load(ctx context.Context) error {
	var query url.Values
	if p.WithRange {
		r := p.DefaultRange()
		p.Range = r
		query = url.Values{}
		query.Set("data_inicio", r.Inicio.String())
		query.Set("data_fim", r.Fim.String())
	}

	p.loaded = true
	rows, err := p.fetcher.Report(ctx, p.Path, query)
	switch {
	case client.IsStatus(err, http.StatusNotFound):
		p.rows, p.err = nil, ""
		return nil
	case err != nil:
		p.rows, p.err = nil, ReportLoadError
		return err
	}
	p.rows, p.err = rows, ""
	return nil
}

// Rows devolve o último resultado.
func (p *ReportPage) Rows() []map[string]interface{} { return p.rows }

// Banner devolve o banner de erro atual, ou vazio.
func (p *ReportPage) Banner() string { return p.err }

// Render escreve o relatório, o banner de erro ou a mensagem de vazio.
func (p *ReportPage) Render(w io.Writer) error {
	fmt.Fprintf(w, "== %s ==\n", p.Title)
	if p.WithRange {
		fmt.Fprintf(w, "Período: %s a %s\n", DateBR(p.Range.Inicio), DateBR(p.Range.Fim))
	}
	switch {
	case !p.loaded:
		_, err := fmt.Fprintln(w, "Carregando relatório...")
		return err
	case p.err != "":
		_, err := fmt.Fprintf(w, "ERRO: %s\n", p.err)
		return err
	case len(p.rows) == 0:
		_, err := fmt.Fprintln(w, p.EmptyMessage)
		return err
	}

	headers := make([]string, len(p.Columns))
	for i, c := range p.Columns {
		headers[i] = c.Header
	}
	rows := make([][]string, len(p.rows))
	for i, row := range p.rows {
		cells := make([]string, len(p.Columns))
		for j, c := range p.Columns {
			format := c.Format
			if format == nil {
				format = CellText
			}
			cells[j] = format(row[c.Key])
		}
		rows[i] = cells
	}
	return writeTable(w, headers, rows)
}
