package console

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofinanceiro/internal/domain"
)

func TestMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "R$ 0,00",
		"9.5":        "R$ 9,50",
		"1234.567":   "R$ 1.234,57",
		"1000000":    "R$ 1.000.000,00",
		"-250.1":     "-R$ 250,10",
		"123456.789": "R$ 123.456,79",
	}
	for in, want := range cases {
		assert.Equal(t, want, Money(decimal.RequireFromString(in)), in)
	}
}

func TestCells(t *testing.T) {
	assert.Equal(t, "R$ 10,00", CellMoney("10"))
	assert.Equal(t, "R$ 2,50", CellMoney(2.5))
	assert.Equal(t, "-", CellMoney(nil))
	assert.Equal(t, "31/12/2024", CellDate("2024-12-31T00:00:00Z"))
	assert.Equal(t, "03/2025", CellMonth("2025-03-01T00:00:00Z"))
	assert.Equal(t, "7", CellText(float64(7)))
}

func TestParseHelpers(t *testing.T) {
	d, err := parseDecimal("Preço", "1.234,50")
	require.NoError(t, err)
	assert.Equal(t, "1234.5", d.String())

	d, err = parseDecimal("Preço", "19.90")
	require.NoError(t, err)
	assert.Equal(t, "19.9", d.String())

	_, err = parseDecimal("Preço", "abc")
	assert.EqualError(t, err, "Preço deve ser um valor numérico")

	date, err := parseDate("Data", "05/02/2025")
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2025, time.February, 5), date)

	date, err = parseDate("Data", "2025-02-05")
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2025, time.February, 5), date)

	id, err := parseOptionalID("Usuário", "")
	require.NoError(t, err)
	assert.Nil(t, id)
}
