package store

import (
	"context"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// valuesRow 依序把 vals 指派給 Scan 的目的指標，型別必須完全相同
type valuesRow struct {
	vals []any
	err  error
}

func (r valuesRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		panic("valuesRow.Scan: unexpected number of dest")
	}
	for i, d := range dest {
		if r.vals[i] == nil {
			continue
		}
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.vals[i]))
	}
	return nil
}

// valuesRows 實作 pgx.Rows，每列交給 valuesRow 掃描
type valuesRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
}

func (r *valuesRows) Close()                                       {}
func (r *valuesRows) Err() error                                   { return r.err }
func (r *valuesRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *valuesRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *valuesRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *valuesRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := valuesRow{vals: r.data[r.idx]}
	r.idx++
	return row.Scan(dest...)
}
func (r *valuesRows) Values() ([]any, error) { return nil, nil }
func (r *valuesRows) RawValues() [][]byte    { return nil }
func (r *valuesRows) Conn() *pgx.Conn        { return nil }

func rowFn(vals ...any) func(context.Context, string, ...any) pgx.Row {
	return func(context.Context, string, ...any) pgx.Row { return valuesRow{vals: vals} }
}

func rowErrFn(err error) func(context.Context, string, ...any) pgx.Row {
	return func(context.Context, string, ...any) pgx.Row { return valuesRow{err: err} }
}

func execFn(tag string, err error) func(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag(tag), err
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
