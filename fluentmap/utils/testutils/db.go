package testutils

import (
	"context"
	"os"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/session"
	pgxsession "github.com/krew-solutions/fluent-mapping-go/fluentmap/session/pgx"
)

// DSN returns FLUENTMAP_DSN or a connection string built from the DB_*
// variables, and whether any of them was set.
func DSN() (string, bool) {
	if dsn, ok := os.LookupEnv("FLUENTMAP_DSN"); ok {
		return dsn, true
	}
	_, ok := os.LookupEnv("DB_HOST")
	dbUsername := getEnv("DB_USERNAME", "devel")
	dbPassword := getEnv("DB_PASSWORD", "devel")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_DATABASE", "devel_fluentmap")

	return "postgres://" + dbUsername + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName, ok
}

func NewPgSessionPool() (session.SessionPool, error) {
	dsn, _ := DSN()
	return pgxsession.Connect(context.Background(), dsn)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
