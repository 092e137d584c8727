// Package session is the read-only database access used to inspect a live
// schema.
package session

import (
	"context"
)

type Session interface {
	Context() context.Context
}

type SessionPoolCallback func(DbSession) error

type SessionPool interface {
	Session(context.Context, SessionPoolCallback) error
}

// Db

type Rows interface {
	Close() error
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type DbQuerier interface {
	Query(query string, args ...any) (Rows, error)
}

type DbSingleQuerier interface {
	QueryRow(query string, args ...any) Row
}

type DbConnection interface {
	DbQuerier
	DbSingleQuerier
}

type DbSession interface {
	Session
	Connection() DbConnection
}
