package database_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/database"
	"gofinanceiro/internal/pkg/logger"
)

func newExecutor(t *testing.T) (*database.Executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewExecutor(db, time.Second, logger.Nop()), mock
}

func TestExecutor_QueryReturnsRowsAsMaps(t *testing.T) {
	exec, mock := newExecutor(t)

	const query = `SELECT * FROM FINANCEIRO.relatorio_financeiro($1, $2)`
	mock.ExpectQuery(query).
		WithArgs("2025-01-01", nil).
		WillReturnRows(sqlmock.NewRows([]string{"cliente_id", "cliente_nome", "total_pago"}).
			AddRow(int64(1), "Ana", []byte("150.00")).
			AddRow(int64(2), "Bruno", []byte("0.00")))

	rows, err := exec.Query(context.Background(), query, "2025-01-01", nil)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, database.Row{"cliente_id": int64(1), "cliente_nome": "Ana", "total_pago": "150.00"}, rows[0])
	assert.Equal(t, "Bruno", rows[1]["cliente_nome"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecutor_QueryEmptyResultIsEmptySlice(t *testing.T) {
	exec, mock := newExecutor(t)

	mock.ExpectQuery(`SELECT * FROM FINANCEIRO.view_clientes_vip`).
		WillReturnRows(sqlmock.NewRows([]string{"id_cliente"}))

	rows, err := exec.Query(context.Background(), `SELECT * FROM FINANCEIRO.view_clientes_vip`)

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExecutor_ClassifiesDriverErrors(t *testing.T) {
	exec, mock := newExecutor(t)

	const query = `DELETE FROM FINANCEIRO.CATEGORIA_PRODUTO WHERE id_categoria = $1 RETURNING *`
	mock.ExpectQuery(query).
		WithArgs(int64(3)).
		WillReturnError(&pq.Error{Code: "23503", Message: `update or delete on table "categoria_produto" violates foreign key constraint`})

	_, err := exec.Query(context.Background(), query, int64(3))

	require.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Contains(t, apperror.DetailsOf(err), "violates foreign key constraint")
}

func TestExecutor_QueryScanStopsOnCallbackError(t *testing.T) {
	exec, mock := newExecutor(t)

	mock.ExpectQuery(`SELECT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow("não é número"))

	err := exec.QueryScan(context.Background(), `SELECT 1`, nil, func(rows *sql.Rows) error {
		var n int64
		return rows.Scan(&n)
	})

	require.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestExecutor_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	exec := database.NewExecutor(db, time.Second, logger.Nop())
	mock.ExpectPing()

	assert.NoError(t, exec.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
