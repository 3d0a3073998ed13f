package database

import (
	"context"
	"database/sql"
	"time"

	apperror "gofinanceiro/internal/errors"
	"gofinanceiro/internal/pkg/logger"
)

// Row é uma linha de resultado indexada pelo nome da coluna.
type Row map[string]interface{}

// Scanner é o subconjunto de *sql.Rows usado pelos callbacks de leitura tipada.
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Executor executa uma instrução SQL parametrizada por chamada, em autocommit,
// sobre o pool injetado. Não há retry nem transação.
type Executor struct {
	db      *sql.DB
	timeout time.Duration
	logger  logger.Logger
}

// NewExecutor cria o Executor sobre um pool já aberto.
func NewExecutor(db *sql.DB, timeout time.Duration, log logger.Logger) *Executor {
	return &Executor{db: db, timeout: timeout, logger: log}
}

// Query executa a instrução e devolve todas as linhas como mapas coluna -> valor.
// Colunas NUMERIC/TEXT que o driver entrega como []byte são convertidas para string.
func (e *Executor) Query(ctx context.Context, query string, args ...interface{}) ([]Row, error) {
	result := []Row{}
	err := e.QueryScan(ctx, query, args, func(rows *sql.Rows) error {
		columns, err := rows.Columns()
		if err != nil {
			return err
		}
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return err
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		result = append(result, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// QueryScan executa a instrução e entrega cada linha ao callback scan.
// A conexão é adquirida e devolvida ao pool dentro desta chamada.
func (e *Executor) QueryScan(ctx context.Context, query string, args []interface{}, scan func(*sql.Rows) error) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.logger.Debug("Executando query.", map[string]interface{}{"query": query, "params": len(args)})

	rows, err := e.db.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		return e.fail(query, args, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return e.fail(query, args, err)
		}
	}
	if err := rows.Err(); err != nil {
		return e.fail(query, args, err)
	}
	return nil
}

// Ping verifica se o banco responde dentro do timeout.
func (e *Executor) Ping(ctx context.Context) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	if err := e.db.PingContext(ctxTimeout); err != nil {
		return apperror.NewDBError("Banco de dados indisponível", err)
	}
	return nil
}

func (e *Executor) fail(query string, args []interface{}, err error) error {
	e.logger.Warn("Erro ao executar a query.", map[string]interface{}{
		"query":  query,
		"params": len(args),
		"error":  err.Error(),
	})
	return apperror.NewDBError("Falha ao executar a query", err)
}
