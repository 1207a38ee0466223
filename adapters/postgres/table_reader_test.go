package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSourceURL(t *testing.T) {
	assert.True(t, IsSourceURL("postgres://localhost/db?table=train"))
	assert.True(t, IsSourceURL("postgresql://localhost/db?table=train"))
	assert.False(t, IsSourceURL("train.csv"))
	assert.False(t, IsSourceURL("/data/postgres/train.csv"))
}

func TestParseSourceURL(t *testing.T) {
	dsn, table, err := ParseSourceURL("postgres://u:p@localhost:5432/shop?sslmode=disable&table=public.train")
	require.NoError(t, err)
	assert.Equal(t, "public.train", table)
	assert.Equal(t, "postgres://u:p@localhost:5432/shop?sslmode=disable", dsn)

	_, _, err = ParseSourceURL("postgres://localhost/shop")
	assert.Error(t, err)
}

func TestQuoteTable(t *testing.T) {
	assert.Equal(t, `"train"`, quoteTable("train"))
	assert.Equal(t, `"public"."train"`, quoteTable("public.train"))
	assert.Equal(t, `"we""ird"`, quoteTable(`we"ird`))
}

func TestFormatCell(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{[]byte("abc"), "abc"},
		{"text", "text"},
		{int64(42), "42"},
		{3.5, "3.5"},
		{true, "true"},
		{ts, "2024-03-01T12:00:00Z"},
		{int32(7), "7"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, formatCell(test.in))
	}
}
