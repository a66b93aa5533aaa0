package iodb

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/egytrade/tradedb/pkg/star"
)

// dialect holds the differences of SQL text between engines.
type dialect struct {
	// maxParams is the bind parameter limit of one statement.
	maxParams int

	// bind returns the placeholder of the n-th parameter, starting at 1.
	bind func(n int) string

	// rowValues matches composite keys with a row value against a VALUES
	// list. SQLite nests OR chains and limits the expression depth to 1000.
	rowValues bool
}

var pgDialect = dialect{
	maxParams: 65535,
	bind:      func(n int) string { return "$" + strconv.Itoa(n) },
}

var sqliteDialect = dialect{
	maxParams: 32766,
	bind:      func(int) string { return "?" },
	rowValues: true,
}

// execFunc runs a statement and returns the number of affected rows.
type execFunc func(ctx context.Context, query string, args []any) (int64, error)

// chunks splits rows so that no statement exceeds the parameter limit.
func (d dialect) chunks(rows [][]any, width, limit int) [][][]any {
	size := d.maxParams / width
	if limit > 0 && limit < size {
		size = limit
	}
	var res [][][]any
	for len(rows) > size {
		res = append(res, rows[:size])
		rows = rows[size:]
	}
	if len(rows) > 0 {
		res = append(res, rows)
	}
	return res
}

// values returns "(p1, p2), (p3, p4)" for rows*cols parameters.
func (d dialect) values(rows, cols int) string {
	var sb strings.Builder
	n := 1
	for i := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j := range cols {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(d.bind(n))
			n++
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

func (d dialect) insertSQL(
	table string,
	cols []string,
	rows int,
	conflict string,
) string {
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table, strings.Join(cols, ", "), d.values(rows, len(cols)))
	if conflict != "" {
		q += fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", conflict)
	}
	return q
}

func (d dialect) deleteSQL(table string, cols []string, tuples int) string {
	if len(cols) == 1 {
		ps := make([]string, tuples)
		for i := range ps {
			ps[i] = d.bind(i + 1)
		}
		return fmt.Sprintf("DELETE FROM %s WHERE %s IN (%s)",
			table, cols[0], strings.Join(ps, ", "))
	}

	if d.rowValues {
		return fmt.Sprintf("DELETE FROM %s WHERE (%s) IN (VALUES %s)",
			table, strings.Join(cols, ", "), d.values(tuples, len(cols)))
	}

	n := 1
	conds := make([]string, tuples)
	for i := range conds {
		parts := make([]string, len(cols))
		for j, c := range cols {
			parts[j] = fmt.Sprintf("%s = %s", c, d.bind(n))
			n++
		}
		conds[i] = "(" + strings.Join(parts, " AND ") + ")"
	}
	return fmt.Sprintf("DELETE FROM %s WHERE %s",
		table, strings.Join(conds, " OR "))
}

func keyMapSQL(dim star.Dimension) string {
	return fmt.Sprintf("SELECT %s, CAST(%s AS TEXT) FROM %s",
		dim.KeyColumn, dim.NaturalColumn(), dim.Table)
}

const tradeRowsSQL = `
SELECT d.year_of_trade, fl.flow_description, c.partner_country_name,
	COALESCE(c.partner_country_iso, ''), comm.commodity_description,
	ft.trade_value, ft.net_weight
FROM fact_trade ft
JOIN dim_date d ON ft.date_key_fk = d.date_key
JOIN dim_country c ON ft.partner_country_key_fk = c.partner_country_key
JOIN dim_commodity comm ON ft.commodity_key_fk = comm.commodity_key
JOIN dim_flow fl ON ft.flow_key_fk = fl.flow_key
ORDER BY ft.trade_key`

const runColumns = `run_id, feed, fingerprint, status, rows_read,
	facts_inserted, facts_replaced, anomalies, error, started_at, finished_at`

func flatten(rows [][]any) []any {
	var n int
	for _, v := range rows {
		n += len(v)
	}
	res := make([]any, 0, n)
	for _, v := range rows {
		res = append(res, v...)
	}
	return res
}

func checkWidth(table string, rows [][]any, width int) error {
	for i, v := range rows {
		if len(v) != width {
			return fmt.Errorf("row %d for %s has %d values, expected %d",
				i, table, len(v), width)
		}
	}
	return nil
}

// ensureKeys inserts dimension tuples with conflict on the natural key
// ignored.
func ensureKeys(
	ctx context.Context,
	d dialect,
	exec execFunc,
	dim star.Dimension,
	tuples [][]any,
) (int64, error) {
	width := len(dim.Columns)
	if err := checkWidth(dim.Table, tuples, width); err != nil {
		return 0, err
	}

	var res int64
	for _, chunk := range d.chunks(tuples, width, 0) {
		q := d.insertSQL(dim.Table, dim.Columns, len(chunk), dim.NaturalColumn())
		n, err := exec(ctx, q, flatten(chunk))
		if err != nil {
			return res, fmt.Errorf("insert into %s: %w", dim.Table, err)
		}
		res += n
	}
	return res, nil
}

func deleteFacts(
	ctx context.Context,
	d dialect,
	exec execFunc,
	fact star.Fact,
	cols []string,
	tuples [][]any,
) (int64, error) {
	if len(cols) == 0 {
		return 0, fmt.Errorf("delete from %s: no columns", fact.Table)
	}
	if err := checkWidth(fact.Table, tuples, len(cols)); err != nil {
		return 0, err
	}

	var res int64
	for _, chunk := range d.chunks(tuples, len(cols), 0) {
		q := d.deleteSQL(fact.Table, cols, len(chunk))
		n, err := exec(ctx, q, flatten(chunk))
		if err != nil {
			return res, fmt.Errorf("delete from %s: %w", fact.Table, err)
		}
		res += n
	}
	return res, nil
}
