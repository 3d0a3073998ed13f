package console

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gofinanceiro/internal/client"
	"gofinanceiro/internal/domain"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) List(ctx context.Context) ([]domain.FormaPagamento, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.FormaPagamento)
	return items, args.Error(1)
}

func (m *MockBackend) Create(ctx context.Context, in domain.FormaPagamentoInput) (domain.FormaPagamento, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.FormaPagamento), args.Error(1)
}

func (m *MockBackend) Update(ctx context.Context, id int64, in domain.FormaPagamentoInput) (domain.FormaPagamento, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.FormaPagamento), args.Error(1)
}

func (m *MockBackend) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newFormasPage(backend *MockBackend) *ResourcePage[domain.FormaPagamento, domain.FormaPagamentoInput] {
	p := NewResourcePage[domain.FormaPagamento, domain.FormaPagamentoInput]("Formas", backend, []Column[domain.FormaPagamento]{
		{"Descrição", func(f domain.FormaPagamento) string { return f.Descricao }},
	})
	p.Fields = []Field{{Name: "descricao", Label: "Descrição", Required: true}}
	p.Messages = Messages{
		Missing:       "Por favor, preencha a descrição.",
		Added:         "Forma de pagamento adicionada com sucesso!",
		Updated:       "Forma de pagamento atualizada com sucesso!",
		Removed:       "Forma de pagamento removida com sucesso!",
		SaveError:     "Erro ao salvar: ",
		ConfirmRemove: "Remover?",
		RemoveError:   "Falha ao remover.",
	}
	p.LoadError = "Falha ao carregar formas de pagamento."
	p.ID = func(f domain.FormaPagamento) int64 { return f.IDForma }
	p.FromItem = func(f domain.FormaPagamento) Form { return Form{"descricao": f.Descricao} }
	p.ToInput = func(f Form, _ bool) (domain.FormaPagamentoInput, error) {
		return domain.FormaPagamentoInput{Descricao: f["descricao"]}, nil
	}
	return p
}

func loadedFormasPage(t *testing.T, backend *MockBackend) *ResourcePage[domain.FormaPagamento, domain.FormaPagamentoInput] {
	t.Helper()
	backend.On("List", mock.Anything).Return([]domain.FormaPagamento{
		{IDForma: 1, Descricao: "PIX"},
		{IDForma: 2, Descricao: "Boleto"},
	}, nil).Once()
	p := newFormasPage(backend)
	require.NoError(t, p.Load(context.Background()))
	return p
}

func TestResourcePage_CreateAppendsServerRow(t *testing.T) {
	backend := new(MockBackend)
	p := loadedFormasPage(t, backend)

	backend.On("Create", mock.Anything, domain.FormaPagamentoInput{Descricao: "Cartão"}).
		Return(domain.FormaPagamento{IDForma: 9, Descricao: "Cartão"}, nil).Once()

	msg, err := p.Submit(context.Background(), Form{"descricao": "Cartão"}, 0)

	require.NoError(t, err)
	assert.Equal(t, "Forma de pagamento adicionada com sucesso!", msg)
	require.Len(t, p.Items(), 3)
	assert.Equal(t, int64(9), p.Items()[2].IDForma)
	backend.AssertExpectations(t)
}

func TestResourcePage_UpdateReplacesMatchingRow(t *testing.T) {
	backend := new(MockBackend)
	p := loadedFormasPage(t, backend)

	backend.On("Update", mock.Anything, int64(2), domain.FormaPagamentoInput{Descricao: "Boleto bancário"}).
		Return(domain.FormaPagamento{IDForma: 2, Descricao: "Boleto bancário"}, nil).Once()

	msg, err := p.Submit(context.Background(), Form{"descricao": "Boleto bancário"}, 2)

	require.NoError(t, err)
	assert.Equal(t, "Forma de pagamento atualizada com sucesso!", msg)
	assert.Equal(t, []domain.FormaPagamento{
		{IDForma: 1, Descricao: "PIX"},
		{IDForma: 2, Descricao: "Boleto bancário"},
	}, p.Items())
}

func TestResourcePage_MissingRequiredFieldSendsNothing(t *testing.T) {
	backend := new(MockBackend)
	p := loadedFormasPage(t, backend)

	_, err := p.Submit(context.Background(), Form{"descricao": "   "}, 0)

	require.Error(t, err)
	assert.Equal(t, "Por favor, preencha a descrição.", err.Error())
	backend.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Len(t, p.Items(), 2)
}

func TestResourcePage_SaveErrorKeepsListAndShowsDetail(t *testing.T) {
	backend := new(MockBackend)
	p := loadedFormasPage(t, backend)

	backend.On("Create", mock.Anything, mock.Anything).
		Return(domain.FormaPagamento{}, &client.StatusError{StatusCode: http.StatusConflict, Message: "Conflito", Details: "duplicate key"}).Once()

	_, err := p.Submit(context.Background(), Form{"descricao": "PIX"}, 0)

	require.Error(t, err)
	assert.Equal(t, "Erro ao salvar: duplicate key", err.Error())
	assert.True(t, client.IsStatus(err, http.StatusConflict))
	assert.Len(t, p.Items(), 2)
}

func TestResourcePage_RemoveAfterConfirmation(t *testing.T) {
	backend := new(MockBackend)
	p := loadedFormasPage(t, backend)

	backend.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	var asked string
	msg, err := p.Remove(context.Background(), 1, func(q string) bool { asked = q; return true })

	require.NoError(t, err)
	assert.Equal(t, "Remover?", asked)
	assert.Equal(t, "Forma de pagamento removida com sucesso!", msg)
	require.Len(t, p.Items(), 1)
	assert.Equal(t, int64(2), p.Items()[0].IDForma)
}

func TestResourcePage_EarlierItemsSnapshotIsUntouched(t *testing.T) {
	backend := new(MockBackend)
	p := loadedFormasPage(t, backend)
	before := p.Items()

	backend.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	_, err := p.Remove(context.Background(), 1, nil)
	require.NoError(t, err)

	backend.On("Update", mock.Anything, int64(2), domain.FormaPagamentoInput{Descricao: "Boleto bancário"}).
		Return(domain.FormaPagamento{IDForma: 2, Descricao: "Boleto bancário"}, nil).Once()
	_, err = p.Submit(context.Background(), Form{"descricao": "Boleto bancário"}, 2)
	require.NoError(t, err)

	assert.Equal(t, []domain.FormaPagamento{
		{IDForma: 1, Descricao: "PIX"},
		{IDForma: 2, Descricao: "Boleto"},
	}, before)
	assert.Equal(t, []domain.FormaPagamento{{IDForma: 2, Descricao: "Boleto bancário"}}, p.Items())
}

func TestResourcePage_RemoveCanceledOrRejected(t *testing.T) {
	backend := new(MockBackend)
	p := loadedFormasPage(t, backend)

	_, err := p.Remove(context.Background(), 1, func(string) bool { return false })
	assert.ErrorIs(t, err, ErrCanceled)
	backend.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	backend.On("Delete", mock.Anything, int64(1)).
		Return(&client.StatusError{StatusCode: http.StatusConflict}).Once()

	_, err = p.Remove(context.Background(), 1, func(string) bool { return true })
	require.Error(t, err)
	assert.Equal(t, "Falha ao remover.", err.Error())
	assert.Len(t, p.Items(), 2)
}

func TestResourcePage_LoadFailureShowsBanner(t *testing.T) {
	backend := new(MockBackend)
	backend.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	p := newFormasPage(backend)

	require.Error(t, p.Load(context.Background()))

	var out strings.Builder
	require.NoError(t, p.Render(&out))
	assert.Contains(t, out.String(), "ERRO: Falha ao carregar formas de pagamento.")
	assert.Empty(t, p.Items())
}

func TestResourcePage_Lookups(t *testing.T) {
	backend := new(MockBackend)
	p := loadedFormasPage(t, backend)
	p.Lookups = []Lookup{
		{Name: "clientes", Essential: true, Load: func(context.Context) ([]Option, error) {
			return []Option{{Value: "1", Label: "Ana"}}, nil
		}},
		{Name: "usuarios", Placeholder: "Nenhum (Usuários não carregados)", Load: func(context.Context) ([]Option, error) {
			return nil, errors.New("timeout")
		}},
	}
	p.Fields = append(p.Fields, Field{Name: "id_usuario", Label: "Usuário", Lookup: "usuarios"})
	backend.On("List", mock.Anything).Return([]domain.FormaPagamento{{IDForma: 1}}, nil).Once()

	require.NoError(t, p.Load(context.Background()))

	assert.Equal(t, []Option{{Value: "1", Label: "Ana"}}, p.Options("clientes"))
	require.Len(t, p.Warnings(), 1)
	assert.Contains(t, p.Warnings()[0], "usuarios")

	var out strings.Builder
	p.RenderForm(&out)
	assert.Contains(t, out.String(), "Nenhum (Usuários não carregados)")
}

func TestResourcePage_EssentialLookupFailureInvalidatesPage(t *testing.T) {
	backend := new(MockBackend)
	backend.On("List", mock.Anything).Return([]domain.FormaPagamento{{IDForma: 1}}, nil).Once()
	p := newFormasPage(backend)
	p.Lookups = []Lookup{{Name: "clientes", Essential: true, Load: func(context.Context) ([]Option, error) {
		return nil, errors.New("500")
	}}}

	require.Error(t, p.Load(context.Background()))
	assert.Equal(t, "Falha ao carregar formas de pagamento.", p.Banner())
	assert.Empty(t, p.Items())
}

func TestResourcePage_SecretFieldRequiredOnlyOnCreate(t *testing.T) {
	api := client.New("http://127.0.0.1:0")
	p := usuariosPage(api)

	_, err := p.Submit(context.Background(), Form{"nome": "Ana", "email": "ana@x.com"}, 0)
	require.Error(t, err)
	assert.Equal(t, "A senha é obrigatória para novos usuários.", err.Error())

	in, err := p.ToInput(Form{"nome": "Ana", "email": "ana@x.com", "senha": ""}, false)
	require.NoError(t, err)
	assert.Nil(t, in.Senha)

	form := p.EditForm(domain.Usuario{IDUsuario: 1, Nome: "Ana", Email: "ana@x.com"})
	assert.Equal(t, "", form["senha"])
}
