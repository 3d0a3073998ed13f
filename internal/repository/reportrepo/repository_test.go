package reportrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofinanceiro/internal/pkg/database"
	"gofinanceiro/internal/pkg/logger"
	"gofinanceiro/internal/repository/reportrepo"
)

func TestFind(t *testing.T) {
	r, ok := reportrepo.Find("clientes_fieis")
	require.True(t, ok)
	assert.Len(t, r.Params, 3)
	assert.Equal(t, "min_pedidos", r.Params[0].Name)

	_, ok = reportrepo.Find("nao_existe")
	assert.False(t, ok)
}

func TestRun_ForwardsNullFilters(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()
	repo := reportrepo.NewRepository(database.NewExecutor(db, time.Second, logger.Nop()))

	report, _ := reportrepo.Find("relatorio_financeiro")
	mock.ExpectQuery(`SELECT * FROM FINANCEIRO.relatorio_financeiro($1, $2)`).
		WithArgs("2025-01-01", nil).
		WillReturnRows(sqlmock.NewRows([]string{"cliente_id", "cliente_nome", "total_pedidos", "total_pago", "total_pendente", "pedidos_em_atraso"}).
			AddRow(int64(1), "Ana", int64(3), []byte("300.00"), []byte("0.00"), int64(0)))

	rows, err := repo.Run(context.Background(), report, []interface{}{"2025-01-01", nil})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "300.00", rows[0]["total_pago"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_ArityMismatch(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := reportrepo.NewRepository(database.NewExecutor(db, time.Second, logger.Nop()))

	report, _ := reportrepo.Find("clientes_vip")
	_, err = repo.Run(context.Background(), report, []interface{}{1})

	assert.Error(t, err)
}
