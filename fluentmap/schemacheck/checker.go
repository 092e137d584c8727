package schemacheck

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/session"
)

var (
	ErrMissingTable  = errors.New("schemacheck: table not found")
	ErrMissingColumn = errors.New("schemacheck: column not found")
)

const columnsQuery = `SELECT table_schema, table_name, column_name
FROM information_schema.columns
WHERE table_schema NOT IN ('pg_catalog', 'information_schema')`

// Checker looks up expected tables in information_schema. Names are
// compared case-insensitively, since unquoted identifiers are folded.
type Checker struct {
	// DefaultSchema is used for tables whose mapping names no schema.
	DefaultSchema string
}

func NewChecker() *Checker {
	return &Checker{DefaultSchema: "public"}
}

type schemaColumns map[tableKey]map[string]bool

func (c *Checker) load(s session.DbSession) (schemaColumns, error) {
	rows, err := s.Connection().Query(columnsQuery)
	if err != nil {
		return nil, errors.Wrap(err, "query information_schema")
	}
	defer rows.Close()

	actual := make(schemaColumns)
	for rows.Next() {
		var schema, table, column string
		if err := rows.Scan(&schema, &table, &column); err != nil {
			return nil, err
		}
		k := tableKey{strings.ToLower(schema), strings.ToLower(table)}
		if actual[k] == nil {
			actual[k] = make(map[string]bool)
		}
		actual[k][strings.ToLower(column)] = true
	}
	return actual, rows.Err()
}

// Check reports every expected table or column the database lacks.
func (c *Checker) Check(s session.DbSession, docs ...*model.HibernateMapping) error {
	actual, err := c.load(s)
	if err != nil {
		return err
	}

	var result *multierror.Error
	for _, t := range Expect(docs...) {
		schema := t.Schema
		if schema == "" {
			schema = c.DefaultSchema
		}
		qualified := Table{Schema: schema, Name: t.Name}.QualifiedName()
		cols, ok := actual[tableKey{strings.ToLower(schema), strings.ToLower(t.Name)}]
		if !ok {
			result = multierror.Append(result, errors.Wrapf(ErrMissingTable, "%s", qualified))
			continue
		}
		for _, col := range t.Columns {
			if !cols[strings.ToLower(col)] {
				result = multierror.Append(result, errors.Wrapf(ErrMissingColumn, "%s.%s", qualified, col))
			}
		}
	}
	return result.ErrorOrNil()
}

// CheckPool runs Check in a session taken from pool.
func (c *Checker) CheckPool(ctx context.Context, pool session.SessionPool, docs ...*model.HibernateMapping) error {
	return pool.Session(ctx, func(s session.DbSession) error {
		return c.Check(s, docs...)
	})
}
