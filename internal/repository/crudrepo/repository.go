package crudrepo

import (
	"context"
	"database/sql"
	"fmt"

	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/database"
)

// Repository é o repositório genérico de um recurso CRUD.
// Cada método executa uma única instrução em autocommit e devolve as linhas
// no formato da projeção de leitura da tabela.
type Repository[T any, In any] struct {
	table Table[T, In]
	exec  *database.Executor
}

// NewRepository cria o repositório de uma tabela sobre o Executor injetado.
func NewRepository[T any, In any](exec *database.Executor, table Table[T, In]) *Repository[T, In] {
	return &Repository[T, In]{table: table, exec: exec}
}

// List devolve todas as linhas na ordem natural do recurso.
func (r *Repository[T, In]) List(ctx context.Context) ([]T, error) {
	return r.query(ctx, r.table.selectSQL(""))
}

// FindByID devolve zero ou uma linha.
func (r *Repository[T, In]) FindByID(ctx context.Context, id int64) ([]T, error) {
	return r.query(ctx, r.table.selectSQL(r.table.Key), id)
}

// FindBy devolve as linhas cuja coluna é igual ao valor (e.g. itens de um pedido).
func (r *Repository[T, In]) FindBy(ctx context.Context, column string, value interface{}) ([]T, error) {
	if !r.table.hasColumn(column) {
		return nil, apperror.NewInternalError(fmt.Sprintf("coluna %q não pertence a %s", column, r.table.Name), nil)
	}
	return r.query(ctx, r.table.selectSQL(column), value)
}

// Create insere a linha e devolve o registro criado, com a chave gerada pelo banco.
func (r *Repository[T, In]) Create(ctx context.Context, in In) ([]T, error) {
	if r.table.ReadOnly() {
		return nil, apperror.NewInternalError(fmt.Sprintf("%s é somente leitura", r.table.Name), nil)
	}
	return r.query(ctx, r.table.insertSQL(), r.table.Args(in)...)
}

// Update substitui todos os campos editáveis da linha.
// Um id que não corresponde a nenhuma linha resulta em NotFoundError.
func (r *Repository[T, In]) Update(ctx context.Context, id int64, in In) ([]T, error) {
	if r.table.ReadOnly() {
		return nil, apperror.NewInternalError(fmt.Sprintf("%s é somente leitura", r.table.Name), nil)
	}
	args := append(r.table.Args(in), id)
	items, err := r.query(ctx, r.table.updateSQL(), args...)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, r.notFound(id)
	}
	return items, nil
}

// Delete remove a linha e devolve o registro removido.
// Um id que não corresponde a nenhuma linha resulta em NotFoundError.
func (r *Repository[T, In]) Delete(ctx context.Context, id int64) ([]T, error) {
	if r.table.ReadOnly() {
		return nil, apperror.NewInternalError(fmt.Sprintf("%s é somente leitura", r.table.Name), nil)
	}
	items, err := r.query(ctx, r.table.deleteSQL(), id)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, r.notFound(id)
	}
	return items, nil
}

func (r *Repository[T, In]) query(ctx context.Context, query string, args ...interface{}) ([]T, error) {
	items := []T{}
	err := r.exec.QueryScan(ctx, query, args, func(rows *sql.Rows) error {
		item, err := r.table.Scan(rows)
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository[T, In]) notFound(id int64) error {
	return apperror.NewNotFoundError(fmt.Sprintf("%s com id %d", r.table.Label, id))
}
