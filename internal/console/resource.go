package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gofinanceiro/internal/client"
)

// ErrCanceled indica que o usuário não confirmou a remoção.
var ErrCanceled = errors.New("operação cancelada pelo usuário")

// UserError carrega a mensagem exibida ao usuário e o erro que a originou.
type UserError struct {
	Msg string
	Err error
}

func (e *UserError) Error() string { return e.Msg }
func (e *UserError) Unwrap() error { return e.Err }

// Form guarda os valores digitados, indexados pelo nome do campo.
type Form map[string]string

// Field descreve um campo do formulário de uma página de recurso.
type Field struct {
	Name     string
	Label    string
	Required bool
	Secret   bool   // não é pré-preenchido na edição
	Lookup   string // nome da lista de opções que alimenta o campo, se houver
}

// Option é uma opção de um campo de seleção.
type Option struct {
	Value string
	Label string
}

// Lookup carrega as opções de um campo de seleção. Falha de um lookup
// essencial invalida a página; dos demais apenas gera um aviso.
type Lookup struct {
	Name        string
	Essential   bool
	Placeholder string // exibido quando as opções não puderam ser carregadas
	Load        func(ctx context.Context) ([]Option, error)
}

// Messages são os textos exibidos por uma página de recurso.
type Messages struct {
	Missing         string // campos obrigatórios vazios
	MissingOnCreate string // campo exigido apenas na criação (e.g. senha)
	Added           string
	Updated         string
	Removed         string
	SaveError       string // prefixo do erro de gravação; recebe o detalhe do servidor
	ConfirmRemove   string
	RemoveError     string
}

// Backend é a API de um recurso. *client.Resource satisfaz esta interface.
type Backend[T any, In any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, in In) (T, error)
	Update(ctx context.Context, id int64, in In) (T, error)
	Delete(ctx context.Context, id int64) error
}

// ResourcePage é a página de listagem e edição de um recurso.
// A lista local só é alterada depois que o servidor confirma a operação.
type ResourcePage[T any, In any] struct {
	*ListPage[T]

	Fields   []Field
	Messages Messages
	Lookups  []Lookup

	ID       func(T) int64
	FromItem func(T) Form
	ToInput  func(f Form, creating bool) (In, error)

	backend  Backend[T, In]
	options  map[string][]Option
	warnings []string
}

// NewResourcePage cria a página sobre o backend informado.
func NewResourcePage[T any, In any](title string, backend Backend[T, In], columns []Column[T]) *ResourcePage[T, In] {
	return &ResourcePage[T, In]{
		ListPage: NewListPage[T](title, backend, columns),
		backend:  backend,
		options:  map[string][]Option{},
	}
}

// Load busca a lista e, em seguida, as listas de opções dos campos.
func (p *ResourcePage[T, In]) Load(ctx context.Context) error {
	if err := p.ListPage.Load(ctx); err != nil {
		return err
	}

	p.warnings = nil
	for _, l := range p.Lookups {
		opts, err := l.Load(ctx)
		if err != nil {
			if l.Essential {
				p.items = nil
				p.err = p.LoadError
				return err
			}
			p.warnings = append(p.warnings, fmt.Sprintf("Não foi possível carregar %s: %v", l.Name, err))
			p.options[l.Name] = nil
			continue
		}
		p.options[l.Name] = opts
	}
	return nil
}

// Warnings devolve os avisos dos lookups não essenciais que falharam.
func (p *ResourcePage[T, In]) Warnings() []string { return p.warnings }

// Options devolve as opções carregadas para o lookup.
func (p *ResourcePage[T, In]) Options(lookup string) []Option { return p.options[lookup] }

// Placeholder devolve o texto de um campo de seleção sem opções.
func (p *ResourcePage[T, In]) Placeholder(lookup string) string {
	for _, l := range p.Lookups {
		if l.Name == lookup {
			return l.Placeholder
		}
	}
	return ""
}

// Find devolve o item da lista local com o id informado.
func (p *ResourcePage[T, In]) Find(id int64) (T, bool) {
	for _, item := range p.items {
		if p.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// EditForm devolve o formulário pré-preenchido com o item; campos secretos ficam vazios.
func (p *ResourcePage[T, In]) EditForm(item T) Form {
	form := p.FromItem(item)
	for _, f := range p.Fields {
		if f.Secret {
			form[f.Name] = ""
		}
	}
	return form
}

// Submit cria (id == 0) ou atualiza o registro. Em caso de sucesso a lista
// local recebe a linha devolvida pelo servidor e a mensagem de sucesso é retornada.
func (p *ResourcePage[T, In]) Submit(ctx context.Context, form Form, id int64) (string, error) {
	creating := id == 0
	if msg := p.missing(form, creating); msg != "" {
		return "", &UserError{Msg: msg}
	}

	in, err := p.ToInput(form, creating)
	if err != nil {
		return "", &UserError{Msg: err.Error(), Err: err}
	}

	if creating {
		item, err := p.backend.Create(ctx, in)
		if err != nil {
			return "", p.saveError(err)
		}
		p.items = append(p.items, item)
		return p.Messages.Added, nil
	}

	item, err := p.backend.Update(ctx, id, in)
	if err != nil {
		return "", p.saveError(err)
	}
	for i := range p.items {
		if p.ID(p.items[i]) == id {
			p.items[i] = item
			break
		}
	}
	return p.Messages.Updated, nil
}

// Remove pede confirmação e remove o registro. O item só sai da lista local
// depois que o servidor confirma a remoção.
func (p *ResourcePage[T, In]) Remove(ctx context.Context, id int64, confirm func(question string) bool) (string, error) {
	if confirm != nil && !confirm(p.Messages.ConfirmRemove) {
		return "", ErrCanceled
	}
	if err := p.backend.Delete(ctx, id); err != nil {
		return "", &UserError{Msg: p.Messages.RemoveError, Err: err}
	}
	kept := make([]T, 0, len(p.items))
	for _, item := range p.items {
		if p.ID(item) != id {
			kept = append(kept, item)
		}
	}
	p.items = kept
	return p.Messages.Removed, nil
}

// RenderForm lista os campos do formulário com as opções dos lookups.
func (p *ResourcePage[T, In]) RenderForm(w io.Writer) {
	for _, f := range p.Fields {
		mark := ""
		if f.Required {
			mark = " *"
		}
		fmt.Fprintf(w, "  %s (%s)%s\n", f.Label, f.Name, mark)
		if f.Lookup == "" {
			continue
		}
		opts := p.options[f.Lookup]
		if len(opts) == 0 {
			fmt.Fprintf(w, "      %s\n", p.Placeholder(f.Lookup))
			continue
		}
		for _, o := range opts {
			fmt.Fprintf(w, "      %s = %s\n", o.Value, o.Label)
		}
	}
}

func (p *ResourcePage[T, In]) missing(form Form, creating bool) string {
	for _, f := range p.Fields {
		if f.Required && strings.TrimSpace(form[f.Name]) == "" {
			return p.Messages.Missing
		}
	}
	if creating && p.Messages.MissingOnCreate != "" {
		for _, f := range p.Fields {
			if f.Secret && strings.TrimSpace(form[f.Name]) == "" {
				return p.Messages.MissingOnCreate
			}
		}
	}
	return ""
}

func (p *ResourcePage[T, In]) saveError(err error) error {
	detail := err.Error()
	var se *client.StatusError
	if errors.As(err, &se) {
		detail = se.Detail()
	}
	return &UserError{Msg: p.Messages.SaveError + detail, Err: err}
}

// FormFor devolve o formulário de edição do item com o id informado.
func (p *ResourcePage[T, In]) FormFor(id int64) (Form, bool) {
	item, ok := p.Find(id)
	if !ok {
		return nil, false
	}
	return p.EditForm(item), true
}

// FormFields devolve os campos do formulário.
func (p *ResourcePage[T, In]) FormFields() []Field { return p.Fields }
