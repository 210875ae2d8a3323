// Package neo4j provides the Neo4j-backed implementation of
// core.GraphExecutor plus the candidate ingestion path. It is the only
// package aware of driver-native record types; everything it returns is
// converted into core.Value first.
package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/talentgraph/talentgraph/core"
	"github.com/talentgraph/talentgraph/logging"
)

// Options configure the Neo4j executor.
type Options struct {
	Database string
	Logger   logging.Logger
}

// Executor runs Cypher queries against a Neo4j instance and converts rows
// into core.Record values. Execution errors are returned to the caller as
// recoverable errors; the router degrades them to empty results.
type Executor struct {
	driver   neo4j.DriverWithContext
	database string
	logger   logging.Logger
}

// Compile-time assertion.
var _ core.GraphExecutor = (*Executor)(nil)

// NewExecutor connects to Neo4j with basic auth and verifies connectivity.
func NewExecutor(ctx context.Context, uri, username, password string, optFns ...func(o *Options)) (*Executor, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}
	return NewExecutorFromDriver(driver, optFns...), nil
}

// NewExecutorFromDriver wraps an existing driver.
func NewExecutorFromDriver(driver neo4j.DriverWithContext, optFns ...func(o *Options)) *Executor {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Executor{driver: driver, database: opts.Database, logger: opts.Logger}
}

// Run executes a Cypher query and returns its rows. Empty results are an
// empty slice, never an error.
func (e *Executor) Run(ctx context.Context, query string, params map[string]any) ([]core.Record, error) {
	session := e.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: e.database})
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("run cypher: %w", err)
	}

	records := []core.Record{}
	for result.Next(ctx) {
		rec := result.Record()
		row := make(core.Record, len(rec.Keys))
		for i, key := range rec.Keys {
			row[key] = convertValue(rec.Values[i])
		}
		records = append(records, row)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("consume cypher result: %w", err)
	}

	e.logger.Debug("cypher executed", "rows", len(records))
	return records, nil
}

// Close releases the underlying driver.
func (e *Executor) Close(ctx context.Context) error {
	return e.driver.Close(ctx)
}

// convertValue maps driver-native values onto the core.Value variant. Nodes
// and relationships collapse to their property maps; unknown types
// stringify via core.ValueOf.
func convertValue(v any) core.Value {
	switch t := v.(type) {
	case dbtype.Node:
		return convertProps(t.Props)
	case dbtype.Relationship:
		return convertProps(t.Props)
	case []any:
		vals := make([]core.Value, len(t))
		for i, item := range t {
			vals[i] = convertValue(item)
		}
		return core.Sequence(vals...)
	case map[string]any:
		return convertProps(t)
	default:
		return core.ValueOf(v)
	}
}

func convertProps(props map[string]any) core.Value {
	m := make(map[string]core.Value, len(props))
	for k, v := range props {
		m[k] = convertValue(v)
	}
	return core.Mapping(m)
}
