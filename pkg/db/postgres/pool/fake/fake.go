// Package fake provides in-memory stand-ins for the pool interfaces.
//
// DB layer tests run against these instead of a live PostgreSQL: queue the
// results a query should yield, run the testee, then assert on the journal
// of SQL it sent.
package fake

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgproto3/v2"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	kpool "github.com/auditline/captrack/pkg/db/postgres/pool"
)

// QueryCall is one SQL statement a testee sent, with its arguments.
type QueryCall struct {
	Sql  string
	Args []interface{}
}

type ExecResult struct {
	Tag pgconn.CommandTag
	Err error
}

type QueryResult struct {
	Rows pgx.Rows
	Err  error
}

// FakeQueryer answers Exec/Query/QueryRow from queues of prepared results,
// consuming one per call, and journals every statement into Log.
//
// A call with an empty queue panics: the testee sent more SQL than the test
// declared.
type FakeQueryer struct {
	NextExec     []ExecResult
	NextQuery    []QueryResult
	NextQueryRow []pgx.Row

	Log []QueryCall
}

var _ kpool.Queryer = &FakeQueryer{}

func (q *FakeQueryer) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	q.Log = append(q.Log, QueryCall{Sql: sql, Args: arguments})
	if len(q.NextExec) == 0 {
		panic("FakeQueryer.Exec: no result is queued")
	}
	r := q.NextExec[0]
	q.NextExec = q.NextExec[1:]
	return r.Tag, r.Err
}

func (q *FakeQueryer) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	q.Log = append(q.Log, QueryCall{Sql: sql, Args: args})
	if len(q.NextQuery) == 0 {
		panic("FakeQueryer.Query: no result is queued")
	}
	r := q.NextQuery[0]
	q.NextQuery = q.NextQuery[1:]
	return r.Rows, r.Err
}

func (q *FakeQueryer) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	q.Log = append(q.Log, QueryCall{Sql: sql, Args: args})
	if len(q.NextQueryRow) == 0 {
		panic("FakeQueryer.QueryRow: no result is queued")
	}
	r := q.NextQueryRow[0]
	q.NextQueryRow = q.NextQueryRow[1:]
	return r
}

type FakeTx struct {
	FakeQueryer

	NextCommit   error
	NextRollback error

	Commits   int
	Rollbacks int
}

var _ kpool.Tx = &FakeTx{}

func (tx *FakeTx) Commit(ctx context.Context) error {
	tx.Commits += 1
	return tx.NextCommit
}

func (tx *FakeTx) Rollback(ctx context.Context) error {
	tx.Rollbacks += 1
	return tx.NextRollback
}

type FakeConn struct {
	FakeQueryer

	NextPing error
	Released int
}

var _ kpool.Conn = &FakeConn{}

func (c *FakeConn) Release() {
	c.Released += 1
}

func (c *FakeConn) Ping(ctx context.Context) error {
	return c.NextPing
}

type FakePool struct {
	NextBegin struct {
		Tx  kpool.Tx
		Err error
	}
	NextAcquire struct {
		Conn kpool.Conn
		Err  error
	}
	NextPing error
}

var _ kpool.Pool = &FakePool{}

func (p *FakePool) Begin(ctx context.Context) (kpool.Tx, error) {
	return p.NextBegin.Tx, p.NextBegin.Err
}

func (p *FakePool) Acquire(ctx context.Context) (kpool.Conn, error) {
	return p.NextAcquire.Conn, p.NextAcquire.Err
}

func (p *FakePool) Ping(ctx context.Context) error {
	return p.NextPing
}

// FakeRows plays a result set as pgx.Rows.
type FakeRows struct {
	Fields  []string
	Rows    [][]interface{}
	NextErr error

	index  int
	Closed bool
}

var _ pgx.Rows = &FakeRows{}

func (r *FakeRows) Close() {
	r.Closed = true
}

func (r *FakeRows) Err() error {
	return r.NextErr
}

func (r *FakeRows) CommandTag() pgconn.CommandTag {
	return pgconn.CommandTag{}
}

func (r *FakeRows) FieldDescriptions() []pgproto3.FieldDescription {
	fds := make([]pgproto3.FieldDescription, 0, len(r.Fields))
	for _, name := range r.Fields {
		fds = append(fds, pgproto3.FieldDescription{Name: []byte(name)})
	}
	return fds
}

func (r *FakeRows) Next() bool {
	if r.index < len(r.Rows) {
		r.index += 1
		return true
	}
	return false
}

func (r *FakeRows) Scan(dest ...interface{}) error {
	if r.index == 0 || len(r.Rows) < r.index {
		return fmt.Errorf("fake rows: Scan without Next")
	}
	row := r.Rows[r.index-1]
	if len(row) != len(dest) {
		return fmt.Errorf(
			"fake rows: scanning %d values into %d targets", len(row), len(dest),
		)
	}
	for i, v := range row {
		if err := assign(dest[i], v); err != nil {
			return err
		}
	}
	return nil
}

func (r *FakeRows) Values() ([]interface{}, error) {
	if r.index == 0 || len(r.Rows) < r.index {
		return nil, fmt.Errorf("fake rows: Values without Next")
	}
	return r.Rows[r.index-1], nil
}

func (r *FakeRows) RawValues() [][]byte {
	return nil
}

// FakeRow plays a single-row result as pgx.Row.
//
// Set Err to pgx.ErrNoRows for "no such row".
type FakeRow struct {
	Values []interface{}
	Err    error
}

var _ pgx.Row = &FakeRow{}

func (r *FakeRow) Scan(dest ...interface{}) error {
	if r.Err != nil {
		return r.Err
	}
	if len(r.Values) != len(dest) {
		return fmt.Errorf(
			"fake row: scanning %d values into %d targets", len(r.Values), len(dest),
		)
	}
	for i, v := range r.Values {
		if err := assign(dest[i], v); err != nil {
			return err
		}
	}
	return nil
}

func assign(dest interface{}, v interface{}) error {
	switch d := dest.(type) {
	case *int:
		x, ok := v.(int)
		if !ok {
			return fmt.Errorf("fake rows: %v (%T) is not int", v, v)
		}
		*d = x
	case *string:
		x, ok := v.(string)
		if !ok {
			return fmt.Errorf("fake rows: %v (%T) is not string", v, v)
		}
		*d = x
	case **string:
		if v == nil {
			*d = nil
			return nil
		}
		x, ok := v.(string)
		if !ok {
			return fmt.Errorf("fake rows: %v (%T) is not string", v, v)
		}
		*d = &x
	case *time.Time:
		x, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("fake rows: %v (%T) is not time.Time", v, v)
		}
		*d = x
	case *pgtype.Date:
		return d.Set(v)
	default:
		return fmt.Errorf("fake rows: unsupported scan target: %T", dest)
	}
	return nil
}
