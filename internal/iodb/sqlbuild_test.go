package iodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues(t *testing.T) {
	assert.Equal(t, "($1, $2), ($3, $4)", pgDialect.values(2, 2))
	assert.Equal(t, "(?, ?, ?)", sqliteDialect.values(1, 3))
}

func TestInsertSQL(t *testing.T) {
	q := pgDialect.insertSQL("dim_flow", []string{"flow_description"}, 2,
		"flow_description")
	assert.Equal(t,
		"INSERT INTO dim_flow (flow_description) VALUES ($1), ($2) "+
			"ON CONFLICT (flow_description) DO NOTHING", q)

	q = sqliteDialect.insertSQL("fact_economy",
		[]string{"indicator_key_fk", "date_key_fk"}, 1, "")
	assert.Equal(t,
		"INSERT INTO fact_economy (indicator_key_fk, date_key_fk) VALUES (?, ?)", q)
}

func TestDeleteSQL(t *testing.T) {
	q := pgDialect.deleteSQL("fact_trade", []string{"date_key_fk"}, 3)
	assert.Equal(t, "DELETE FROM fact_trade WHERE date_key_fk IN ($1, $2, $3)", q)

	q = sqliteDialect.deleteSQL("fact_economy",
		[]string{"indicator_key_fk", "date_key_fk"}, 2)
	assert.Equal(t,
		"DELETE FROM fact_economy WHERE (indicator_key_fk, date_key_fk) "+
			"IN (VALUES (?, ?), (?, ?))", q)

	q = pgDialect.deleteSQL("fact_economy",
		[]string{"indicator_key_fk", "date_key_fk"}, 2)
	assert.Equal(t,
		"DELETE FROM fact_economy WHERE "+
			"(indicator_key_fk = $1 AND date_key_fk = $2) OR "+
			"(indicator_key_fk = $3 AND date_key_fk = $4)", q)
}

func TestChunks(t *testing.T) {
	rows := make([][]any, 10)
	d := dialect{maxParams: 9, bind: sqliteDialect.bind}

	res := d.chunks(rows, 3, 0)
	assert.Len(t, res, 4)
	assert.Len(t, res[0], 3)
	assert.Len(t, res[3], 1)

	res = d.chunks(rows, 1, 4)
	assert.Len(t, res, 3)
	assert.Len(t, res[2], 2)

	assert.Empty(t, d.chunks(nil, 3, 0))
}

func TestFlatten(t *testing.T) {
	res := flatten([][]any{{1, "a"}, {2, "b"}})
	assert.Equal(t, []any{1, "a", 2, "b"}, res)
}
