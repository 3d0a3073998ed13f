package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofinanceiro/internal/domain"
)

func TestDate_UnmarshalAcceptsShortAndRFC3339(t *testing.T) {
	var in struct {
		A domain.Date  `json:"a"`
		B domain.Date  `json:"b"`
		C *domain.Date `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a":"2025-01-01","b":"2025-06-01T03:00:00.000Z","c":null}`), &in)
	require.NoError(t, err)

	assert.Equal(t, domain.NewDate(2025, time.January, 1), in.A)
	assert.Equal(t, domain.NewDate(2025, time.June, 1), in.B)
	assert.Nil(t, in.C)
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d domain.Date
	assert.Error(t, json.Unmarshal([]byte(`"01/02/2025"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20250101`), &d))
}

func TestDate_MarshalAndValue(t *testing.T) {
	d := domain.NewDate(2025, time.March, 9)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-09"`, string(b))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", v)

	zero, err := domain.Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, zero)

	b, err = json.Marshal(domain.Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestDate_Scan(t *testing.T) {
	var d domain.Date

	require.NoError(t, d.Scan(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-12-31", d.String())

	require.NoError(t, d.Scan([]byte("2023-02-14")))
	assert.Equal(t, "2023-02-14", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
