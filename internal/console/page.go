package console

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

// Column é uma coluna da tabela de uma página.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Lister é a fonte da lista exibida por uma página.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// ListerFunc adapta uma função a Lister.
type ListerFunc[T any] func(ctx context.Context) ([]T, error)

func (f ListerFunc[T]) List(ctx context.Context) ([]T, error) { return f(ctx) }

// ListPage busca a lista uma vez e a exibe como tabela.
// O estado local é uma cópia descartável do último estado conhecido do servidor.
type ListPage[T any] struct {
	Title        string
	Columns      []Column[T]
	LoadingText  string
	LoadError    string // banner exibido quando a busca falha
	EmptyMessage string

	source  Lister[T]
	items   []T
	loading bool
	loaded  bool
	err     string
}

// NewListPage cria uma página de listagem sobre a fonte informada.
func NewListPage[T any](title string, source Lister[T], columns []Column[T]) *ListPage[T] {
	return &ListPage[T]{
		Title:        title,
		Columns:      columns,
		LoadingText:  "Carregando...",
		LoadError:    "Falha ao carregar os dados. Tente novamente.",
		EmptyMessage: "Nenhum registro encontrado.",
		source:       source,
	}
}

// Load busca a lista no servidor. Em caso de falha a lista fica vazia e o
// banner de erro é definido; o erro original é devolvido a quem chamou.
func (p *ListPage[T]) Load(ctx context.Context) error {
	p.loading = true
	defer func() { p.loading, p.loaded = false, true }()

	items, err := p.source.List(ctx)
	if err != nil {
		p.items = nil
		p.err = p.LoadError
		return err
	}
	p.items = items
	p.err = ""
	return nil
}

// Items devolve uma cópia da lista local; alterações posteriores da página
// não afetam o slice devolvido.
func (p *ListPage[T]) Items() []T { return slices.Clone(p.items) }

// Banner devolve o banner de erro atual, ou vazio.
func (p *ListPage[T]) Banner() string { return p.err }

// Loading informa se uma busca está em andamento.
func (p *ListPage[T]) Loading() bool { return p.loading }

// Render escreve a página: placeholder de carregamento, banner de erro,
// mensagem de lista vazia ou a tabela.
func (p *ListPage[T]) Render(w io.Writer) error {
	if p.Title != "" {
		fmt.Fprintf(w, "== %s ==\n", p.Title)
	}
	switch {
	case p.loading || !p.loaded:
		_, err := fmt.Fprintln(w, p.LoadingText)
		return err
	case p.err != "":
		_, err := fmt.Fprintf(w, "ERRO: %s\n", p.err)
		return err
	case len(p.items) == 0:
		_, err := fmt.Fprintln(w, p.EmptyMessage)
		return err
	}

	headers := make([]string, len(p.Columns))
	for i, c := range p.Columns {
		headers[i] = c.Header
	}
	rows := make([][]string, len(p.items))
	for i, item := range p.items {
		row := make([]string, len(p.Columns))
		for j, c := range p.Columns {
			row[j] = c.Value(item)
		}
		rows[i] = row
	}
	return writeTable(w, headers, rows)
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
