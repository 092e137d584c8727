package pgx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/session"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/signals"
)

// Session is a read-only session over a pooled connection.
type Session struct {
	ctx            context.Context
	conn           querier
	onQueryStarted *signals.SignalImp[session.QueryStartedEvent]
	onQueryEnded   *signals.SignalImp[session.QueryEndedEvent]
}

func NewSession(ctx context.Context, conn *pgxpool.Conn) *Session {
	return newSession(ctx, conn)
}

func newSession(ctx context.Context, conn querier) *Session {
	return &Session{
		ctx:            ctx,
		conn:           conn,
		onQueryStarted: signals.NewSignal[session.QueryStartedEvent](),
		onQueryEnded:   signals.NewSignal[session.QueryEndedEvent](),
	}
}

func (s *Session) Context() context.Context {
	return s.ctx
}

func (s *Session) Connection() session.DbConnection {
	return &connection{session: s}
}

func (s *Session) OnQueryStarted() signals.Signal[session.QueryStartedEvent] {
	return s.onQueryStarted
}

func (s *Session) OnQueryEnded() signals.Signal[session.QueryEndedEvent] {
	return s.onQueryEnded
}

// querier is the part of *pgxpool.Conn and pgx.Tx a read-only session uses.
type querier interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}

// connection implements session.DbConnection
type connection struct {
	session *Session
}

func (c *connection) started(query string, args []any) time.Time {
	c.session.onQueryStarted.Notify(session.QueryStartedEvent{
		Query:   query,
		Params:  args,
		Session: c.session,
	})
	return time.Now()
}

func (c *connection) ended(query string, args []any, start time.Time, err error) {
	c.session.onQueryEnded.Notify(session.QueryEndedEvent{
		Query:        query,
		Params:       args,
		Session:      c.session,
		ResponseTime: time.Since(start),
		Err:          err,
	})
}

func (c *connection) Query(query string, args ...any) (session.Rows, error) {
	start := c.started(query, args)
	r, err := c.session.conn.Query(c.session.ctx, query, args...)
	c.ended(query, args, start, err)
	if err != nil {
		return nil, err
	}
	return &rows{Rows: r}, nil
}

func (c *connection) QueryRow(query string, args ...any) session.Row {
	start := c.started(query, args)
	row := c.session.conn.QueryRow(c.session.ctx, query, args...)
	c.ended(query, args, start, nil)
	return row
}

// rows adapts pgx.Rows, whose Close reports nothing, to session.Rows.
type rows struct {
	pgx.Rows
}

func (r *rows) Close() error {
	r.Rows.Close()
	return r.Rows.Err()
}
