package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	v, err := ParseDecimal("quantity", "10.5")
	require.NoError(t, err)
	assert.Equal(t, 10.5, v)

	v, err = ParseDecimal("quantity", " 0 ")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	var ve *ValidationError

	_, err = ParseDecimal("quantity", "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "quantity", ve.Field)

	_, err = ParseDecimal("quantity", "abc")
	require.ErrorAs(t, err, &ve)

	_, err = ParseDecimal("quantity", "-1.5")
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reason, "negativo")
}

func TestParseCount(t *testing.T) {
	v, err := ParseCount("quantity", "120")
	require.NoError(t, err)
	assert.Equal(t, 120, v)

	var ve *ValidationError

	_, err = ParseCount("quantity", "")
	require.ErrorAs(t, err, &ve)

	_, err = ParseCount("quantity", "10.5")
	require.ErrorAs(t, err, &ve)

	_, err = ParseCount("quantity", "-3")
	require.ErrorAs(t, err, &ve)
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("sale_date", "2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local), d)

	var ve *ValidationError
	_, err = ParseDay("sale_date", "10/01/2025")
	require.ErrorAs(t, err, &ve)
}

func TestParseDayTime(t *testing.T) {
	d, err := ParseDayTime("delivery_date", "2025-01-10T08:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 8, 30, 0, 0, time.Local), d)

	var ve *ValidationError
	_, err = ParseDayTime("delivery_date", "2025-01-10")
	require.ErrorAs(t, err, &ve)
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 1, 10, 14, 35, 12, 0, time.Local)
	start, end := DayBounds(at)

	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 1, 10, 23, 59, 59, 0, time.Local), end)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)
	b := time.Date(2025, 1, 10, 23, 59, 59, 0, time.Local)
	c := time.Date(2025, 1, 11, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestSupplierLabel(t *testing.T) {
	names := map[string]string{"abc": "Fornecedor A"}
	id := "abc"
	dangling := "sumido"

	assert.Equal(t, "Fornecedor A", SupplierLabel(names, &id))
	assert.Equal(t, "-", SupplierLabel(names, nil))
	assert.Equal(t, "-", SupplierLabel(names, &dangling))
}
