package crudrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofinanceiro/internal/domain"
	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/database"
	"gofinanceiro/internal/pkg/logger"
	"gofinanceiro/internal/repository/crudrepo"
)

func newMock(t *testing.T) (*database.Executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return database.NewExecutor(db, time.Second, logger.Nop()), mock
}

func TestCategorias_CreateReturnsGeneratedID(t *testing.T) {
	exec, mock := newMock(t)
	repo := crudrepo.NewRepository(exec, crudrepo.Categorias)

	mock.ExpectQuery(`WITH t AS (INSERT INTO FINANCEIRO.CATEGORIA_PRODUTO (nome) VALUES ($1) RETURNING *) SELECT t.id_categoria, t.nome FROM t`).
		WithArgs("Eletrônicos").
		WillReturnRows(sqlmock.NewRows([]string{"id_categoria", "nome"}).AddRow(int64(1), "Eletrônicos"))

	got, err := repo.Create(context.Background(), domain.CategoriaInput{Nome: "Eletrônicos"})

	require.NoError(t, err)
	assert.Equal(t, []domain.CategoriaProduto{{IDCategoria: 1, Nome: "Eletrônicos"}}, got)
}

func TestCategorias_ListEmpty(t *testing.T) {
	exec, mock := newMock(t)
	repo := crudrepo.NewRepository(exec, crudrepo.Categorias)

	mock.ExpectQuery(`SELECT t.id_categoria, t.nome FROM FINANCEIRO.CATEGORIA_PRODUTO t ORDER BY t.nome`).
		WillReturnRows(sqlmock.NewRows([]string{"id_categoria", "nome"}))

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCategorias_DeleteReferencedIsConflict(t *testing.T) {
	exec, mock := newMock(t)
	repo := crudrepo.NewRepository(exec, crudrepo.Categorias)

	mock.ExpectQuery(`WITH t AS (DELETE FROM FINANCEIRO.CATEGORIA_PRODUTO WHERE id_categoria = $1 RETURNING *) SELECT t.id_categoria, t.nome FROM t`).
		WithArgs(int64(4)).
		WillReturnError(&pq.Error{Code: "23503", Message: `update or delete on table "categoria_produto" violates foreign key constraint "produto_id_categoria_fkey" on table "produto"`})

	_, err := repo.Delete(context.Background(), 4)

	require.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Contains(t, apperror.DetailsOf(err), "foreign key")
}

func TestClientes_UpdateMissingIDIsNotFound(t *testing.T) {
	exec, mock := newMock(t)
	repo := crudrepo.NewRepository(exec, crudrepo.Clientes)

	mock.ExpectQuery(`WITH t AS (UPDATE FINANCEIRO.CLIENTE SET nome = $1, cpf_cnpj = $2, email = $3, telefone = $4, endereco = $5 WHERE id_cliente = $6 RETURNING *) SELECT t.id_cliente, t.nome, t.cpf_cnpj, t.email, t.telefone, t.endereco FROM t`).
		WithArgs("Ana", "123", "", "", "", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id_cliente", "nome", "cpf_cnpj", "email", "telefone", "endereco"}))

	_, err := repo.Update(context.Background(), 5, domain.ClienteInput{Nome: "Ana", CpfCnpj: "123"})

	require.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestProdutos_FindByIDJoinsCategoria(t *testing.T) {
	exec, mock := newMock(t)
	repo := crudrepo.NewRepository(exec, crudrepo.Produtos)

	mock.ExpectQuery(`SELECT t.id_produto, t.nome, t.preco, t.estoque, t.id_categoria, c.nome AS nome_categoria FROM FINANCEIRO.PRODUTO t LEFT JOIN FINANCEIRO.CATEGORIA_PRODUTO c ON c.id_categoria = t.id_categoria WHERE t.id_produto = $1 ORDER BY t.nome`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id_produto", "nome", "preco", "estoque", "id_categoria", "nome_categoria"}).
			AddRow(int64(7), "Mouse", []byte("79.90"), int64(12), int64(1), "Periféricos"))

	got, err := repo.FindByID(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mouse", got[0].Nome)
	assert.True(t, decimal.RequireFromString("79.90").Equal(got[0].Preco))
	assert.Equal(t, 12, got[0].Estoque)
	require.NotNil(t, got[0].NomeCategoria)
	assert.Equal(t, "Periféricos", *got[0].NomeCategoria)
}

func TestUsuarios_UpdateWithoutSenhaKeepsStoredValue(t *testing.T) {
	exec, mock := newMock(t)
	repo := crudrepo.NewRepository(exec, crudrepo.Usuarios)

	mock.ExpectQuery(`WITH t AS (UPDATE FINANCEIRO.USUARIO SET nome = $1, email = $2, senha = COALESCE($3, senha), cargo = $4 WHERE id_usuario = $5 RETURNING *) SELECT t.id_usuario, t.nome, t.email, t.cargo FROM t`).
		WithArgs("Bia", "bia@ex.com", nil, "Gerente", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id_usuario", "nome", "email", "cargo"}).
			AddRow(int64(2), "Bia", "bia@ex.com", "Gerente"))

	got, err := repo.Update(context.Background(), 2, domain.UsuarioInput{Nome: "Bia", Email: "bia@ex.com", Cargo: "Gerente"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].IDUsuario)
}

func TestItensPedido_FindByPedido(t *testing.T) {
	exec, mock := newMock(t)
	repo := crudrepo.NewRepository(exec, crudrepo.ItensPedido)

	mock.ExpectQuery(`SELECT t.id_item, t.id_pedido, t.descricao, t.quantidade, t.preco_unitario FROM FINANCEIRO.ITEM_PEDIDO t WHERE t.id_pedido = $1 ORDER BY t.id_item`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id_item", "id_pedido", "descricao", "quantidade", "preco_unitario"}).
			AddRow(int64(1), int64(9), "Cabo", int64(2), []byte("10.00")).
			AddRow(int64(2), int64(9), "Fonte", int64(1), []byte("120.00")))

	got, err := repo.FindBy(context.Background(), "id_pedido", int64(9))

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Fonte", got[1].Descricao)
}

func TestFindBy_RejectsUnknownColumn(t *testing.T) {
	exec, _ := newMock(t)
	repo := crudrepo.NewRepository(exec, crudrepo.ItensPedido)

	_, err := repo.FindBy(context.Background(), "1=1; DROP TABLE x; --", 1)

	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestLogs_IsReadOnly(t *testing.T) {
	exec, mock := newMock(t)
	repo := crudrepo.NewRepository(exec, crudrepo.Logs)

	assert.True(t, crudrepo.Logs.ReadOnly())
	_, err := repo.Create(context.Background(), domain.NoInput{})
	assert.Error(t, err)

	ts := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT t.id_log, t.data, t.id_produto, t.mensagem FROM LOG t ORDER BY t.data DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id_log", "data", "id_produto", "mensagem"}).
			AddRow(int64(1), ts, nil, "Estoque atualizado"))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].IDProduto)
	assert.Equal(t, ts, got[0].Data)
}
