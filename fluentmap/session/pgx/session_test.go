package pgx

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/session"
)

type rowStub struct {
	value string
}

func (r rowStub) Scan(dest ...any) error {
	*dest[0].(*string) = r.value
	return nil
}

type querierStub struct {
	err error
}

func (q querierStub) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, q.err
}

func (q querierStub) QueryRow(_ context.Context, query string, _ ...any) pgx.Row {
	return rowStub{value: query}
}

func TestSessionQueryEvents(t *testing.T) {
	boom := errors.New("boom")
	s := newSession(context.Background(), querierStub{err: boom})

	var started []session.QueryStartedEvent
	var ended []session.QueryEndedEvent
	s.OnQueryStarted().Attach(func(e session.QueryStartedEvent) { started = append(started, e) })
	s.OnQueryEnded().Attach(func(e session.QueryEndedEvent) { ended = append(ended, e) })

	var got string
	require.NoError(t, s.Connection().QueryRow("SELECT current_schema()").Scan(&got))
	assert.Equal(t, "SELECT current_schema()", got)

	_, err := s.Connection().Query("SELECT 1 WHERE $1", true)
	assert.ErrorIs(t, err, boom)

	require.Len(t, started, 2)
	assert.Equal(t, "SELECT current_schema()", started[0].Query)
	assert.Equal(t, []any{true}, started[1].Params)
	assert.Same(t, s, started[1].Session)

	require.Len(t, ended, 2)
	assert.NoError(t, ended[0].Err)
	assert.ErrorIs(t, ended[1].Err, boom)
	assert.GreaterOrEqual(t, int64(ended[1].ResponseTime), int64(0))
}

func TestSessionPoolRejectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewSessionPool(nil).Session(ctx, func(session.DbSession) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
