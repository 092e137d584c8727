package testutils

import (
	"context"
	"database/sql"
	"errors"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/session"
)

func NewDbSessionStub(rows *RowsStub) *DbSessionStub {
	stub := &DbSessionStub{Rows: rows}
	stub.conn = &connectionStub{session: stub}
	return stub
}

// DbSessionStub answers every query with Rows and remembers the last query.
type DbSessionStub struct {
	Rows         *RowsStub
	QueryErr     error
	ActualQuery  string
	ActualParams []any
	conn         *connectionStub
}

func (s *DbSessionStub) Context() context.Context {
	return context.Background()
}

func (s *DbSessionStub) Connection() session.DbConnection {
	return s.conn
}

// SessionPoolStub hands the same session to every callback.
type SessionPoolStub struct {
	DbSession session.DbSession
}

func NewSessionPoolStub(s session.DbSession) *SessionPoolStub {
	return &SessionPoolStub{DbSession: s}
}

func (p *SessionPoolStub) Session(ctx context.Context, callback session.SessionPoolCallback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return callback(p.DbSession)
}

type connectionStub struct {
	session *DbSessionStub
}

func (c *connectionStub) Query(query string, args ...any) (session.Rows, error) {
	c.session.ActualQuery = query
	c.session.ActualParams = args
	if c.session.QueryErr != nil {
		return nil, c.session.QueryErr
	}
	return c.session.Rows, nil
}

func (c *connectionStub) QueryRow(query string, args ...any) session.Row {
	c.session.ActualQuery = query
	c.session.ActualParams = args
	return &RowStub{rows: c.session.Rows}
}

func NewRowsStub(rows ...[]any) *RowsStub {
	return &RowsStub{
		rows:   rows,
		idx:    -1,
		Closed: false,
	}
}

type RowsStub struct {
	rows   [][]any
	idx    int
	Closed bool
}

func (r *RowsStub) Close() error {
	r.Closed = true
	return nil
}

func (r *RowsStub) Err() error {
	return nil
}

func (r *RowsStub) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *RowsStub) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.rows) {
		return errors.New("no current row")
	}

	row := r.rows[r.idx]
	for i, val := range row {
		if i >= len(dest) {
			break
		}

		switch d := dest[i].(type) {
		case *int:
			*d = toInt(val)
		case *int64:
			*d = toInt64(val)
		case *string:
			*d = val.(string)
		case *bool:
			*d = val.(bool)
		case *[]byte:
			*d = val.([]byte)
		case sql.Scanner:
			if err := d.Scan(val); err != nil {
				return err
			}
		default:
			return errors.New("unsupported scan type")
		}
	}
	return nil
}

func toInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	default:
		panic("cannot convert to int")
	}
}

func toInt64(val any) int64 {
	switch v := val.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	default:
		panic("cannot convert to int64")
	}
}

type RowStub struct {
	rows *RowsStub
}

func (r *RowStub) Scan(dest ...any) error {
	if !r.rows.Next() {
		return errors.New("no rows in result set")
	}
	return r.rows.Scan(dest...)
}
