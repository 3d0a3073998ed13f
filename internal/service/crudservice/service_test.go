package crudservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gofinanceiro/internal/domain"
	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/logger"
	"gofinanceiro/internal/service/crudservice"
)

// MockRepository é uma implementação mock do Repository genérico.
type MockRepository[T any, In any] struct {
	mock.Mock
}

func (m *MockRepository[T, In]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T, In]) FindByID(ctx context.Context, id int64) ([]T, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T, In]) FindBy(ctx context.Context, column string, value interface{}) ([]T, error) {
	args := m.Called(ctx, column, value)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T, In]) Create(ctx context.Context, in In) ([]T, error) {
	args := m.Called(ctx, in)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T, In]) Update(ctx context.Context, id int64, in In) ([]T, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T, In]) Delete(ctx context.Context, id int64) ([]T, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]T), args.Error(1)
}

type categoriaRepo = MockRepository[domain.CategoriaProduto, domain.CategoriaInput]

// TestCreate_Success testa a criação de uma categoria válida.
func TestCreate_Success(t *testing.T) {
	mockRepo := new(categoriaRepo)
	svc := crudservice.NewService[domain.CategoriaProduto, domain.CategoriaInput]("categorias", mockRepo, logger.Nop())

	in := domain.CategoriaInput{Nome: "Eletrônicos"}
	expected := []domain.CategoriaProduto{{IDCategoria: 1, Nome: "Eletrônicos"}}
	mockRepo.On("Create", mock.Anything, in).Return(expected, nil)

	got, err := svc.Create(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
	mockRepo.AssertExpectations(t)
}

// TestCreate_ValidationFails garante que payload inválido não chega ao repositório.
func TestCreate_ValidationFails(t *testing.T) {
	mockRepo := new(categoriaRepo)
	svc := crudservice.NewService[domain.CategoriaProduto, domain.CategoriaInput]("categorias", mockRepo, logger.Nop())

	_, err := svc.Create(context.Background(), domain.CategoriaInput{})

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestList_RepoErrorBecomesInternal testa que erros não tipados viram InternalError.
func TestList_RepoErrorBecomesInternal(t *testing.T) {
	mockRepo := new(categoriaRepo)
	svc := crudservice.NewService[domain.CategoriaProduto, domain.CategoriaInput]("categorias", mockRepo, logger.Nop())

	repoError := errors.New("database connection lost")
	mockRepo.On("List", mock.Anything).Return([]domain.CategoriaProduto(nil), repoError)

	_, err := svc.List(context.Background())

	assert.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
	assert.ErrorIs(t, err, repoError)
}

// TestDelete_KeepsTypedErrors testa que Conflict e NotFound são propagados sem alteração.
func TestDelete_KeepsTypedErrors(t *testing.T) {
	mockRepo := new(categoriaRepo)
	svc := crudservice.NewService[domain.CategoriaProduto, domain.CategoriaInput]("categorias", mockRepo, logger.Nop())

	conflict := apperror.NewConflictError("Falha ao executar a query")
	mockRepo.On("Delete", mock.Anything, int64(4)).Return([]domain.CategoriaProduto(nil), conflict)
	notFound := apperror.NewNotFoundError("categoria com id 99")
	mockRepo.On("Delete", mock.Anything, int64(99)).Return([]domain.CategoriaProduto(nil), notFound)

	_, err := svc.Delete(context.Background(), 4)
	assert.Same(t, conflict, err)

	_, err = svc.Delete(context.Background(), 99)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

// TestGet_InvalidID testa a rejeição de ids não positivos.
func TestGet_InvalidID(t *testing.T) {
	mockRepo := new(categoriaRepo)
	svc := crudservice.NewService[domain.CategoriaProduto, domain.CategoriaInput]("categorias", mockRepo, logger.Nop())

	_, err := svc.Get(context.Background(), 0)

	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// TestListBy_ItensDoPedido testa a listagem filtrada pela referência ao pedido.
func TestListBy_ItensDoPedido(t *testing.T) {
	mockRepo := new(MockRepository[domain.ItemPedido, domain.ItemPedidoInput])
	svc := crudservice.NewService[domain.ItemPedido, domain.ItemPedidoInput]("itens_pedido", mockRepo, logger.Nop())

	expected := []domain.ItemPedido{{IDItem: 1, IDPedido: 9, Descricao: "Cabo", Quantidade: 2}}
	mockRepo.On("FindBy", mock.Anything, "id_pedido", int64(9)).Return(expected, nil)

	got, err := svc.ListBy(context.Background(), "id_pedido", 9)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

// TestPedido_DefaultStatus testa que o status vazio vira PENDENTE antes do repositório.
func TestPedido_DefaultStatus(t *testing.T) {
	mockRepo := new(MockRepository[domain.Pedido, domain.PedidoInput])
	svc := crudservice.NewService[domain.Pedido, domain.PedidoInput]("pedidos", mockRepo, logger.Nop(),
		crudservice.WithPrepare(crudservice.DefaultPedidoStatus))

	in := domain.PedidoInput{
		IDCliente:  1,
		DataPedido: domain.NewDate(2025, time.May, 2),
		ValorTotal: decimal.NewFromInt(50),
	}
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(got domain.PedidoInput) bool {
		return got.Status == domain.StatusPendente
	})).Return([]domain.Pedido{{IDPedido: 10, Status: domain.StatusPendente}}, nil)

	got, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendente, got[0].Status)
	mockRepo.AssertExpectations(t)
}

// TestConta_DefaultStatus testa que o status de pagamento vazio vira EM ABERTO.
func TestConta_DefaultStatus(t *testing.T) {
	in := domain.ContaReceberInput{}
	require.NoError(t, crudservice.DefaultContaStatus(context.Background(), crudservice.OpCreate, &in))
	assert.Equal(t, domain.StatusEmAberto, in.StatusPagamento)

	in.StatusPagamento = domain.StatusPago
	require.NoError(t, crudservice.DefaultContaStatus(context.Background(), crudservice.OpUpdate, &in))
	assert.Equal(t, domain.StatusPago, in.StatusPagamento)
}

// TestUsuario_CreateRequiresSenha testa que a senha é obrigatória na criação.
func TestUsuario_CreateRequiresSenha(t *testing.T) {
	mockRepo := new(MockRepository[domain.Usuario, domain.UsuarioInput])
	svc := crudservice.NewService[domain.Usuario, domain.UsuarioInput]("usuarios", mockRepo, logger.Nop(),
		crudservice.WithPrepare(crudservice.HashSenha(bcrypt.MinCost)))

	_, err := svc.Create(context.Background(), domain.UsuarioInput{Nome: "Bia", Email: "bia@ex.com"})

	require.Error(t, err)
	assert.Equal(t, map[string]string{"senha": "required"}, apperror.FieldsOf(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestUsuario_CreateHashesSenha testa que apenas o hash chega ao repositório.
func TestUsuario_CreateHashesSenha(t *testing.T) {
	mockRepo := new(MockRepository[domain.Usuario, domain.UsuarioInput])
	svc := crudservice.NewService[domain.Usuario, domain.UsuarioInput]("usuarios", mockRepo, logger.Nop(),
		crudservice.WithPrepare(crudservice.HashSenha(bcrypt.MinCost)))

	senha := "segredo123"
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(got domain.UsuarioInput) bool {
		return got.Senha != nil && *got.Senha != senha &&
			bcrypt.CompareHashAndPassword([]byte(*got.Senha), []byte(senha)) == nil
	})).Return([]domain.Usuario{{IDUsuario: 1, Nome: "Bia", Email: "bia@ex.com"}}, nil)

	got, err := svc.Create(context.Background(), domain.UsuarioInput{Nome: "Bia", Email: "bia@ex.com", Senha: &senha})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got[0].IDUsuario)
	mockRepo.AssertExpectations(t)
}

// TestUsuario_UpdateWithoutSenha testa que senha vazia na atualização mantém a gravada.
func TestUsuario_UpdateWithoutSenha(t *testing.T) {
	mockRepo := new(MockRepository[domain.Usuario, domain.UsuarioInput])
	svc := crudservice.NewService[domain.Usuario, domain.UsuarioInput]("usuarios", mockRepo, logger.Nop(),
		crudservice.WithPrepare(crudservice.HashSenha(bcrypt.MinCost)))

	empty := ""
	mockRepo.On("Update", mock.Anything, int64(2), domain.UsuarioInput{Nome: "Bia", Email: "bia@ex.com"}).
		Return([]domain.Usuario{{IDUsuario: 2, Nome: "Bia", Email: "bia@ex.com"}}, nil)

	_, err := svc.Update(context.Background(), 2, domain.UsuarioInput{Nome: "Bia", Email: "bia@ex.com", Senha: &empty})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
