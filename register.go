/*
Package hstore – driver type registration.
*/
package hstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Option adjusts Register behaviour.
type Option func(*registerConfig)

type registerConfig struct {
	logger   Logger
	typeName string
}

// WithLogger routes registration logging to l instead of the default
// stdlib logger.
func WithLogger(l Logger) Option {
	return func(c *registerConfig) { c.logger = l }
}

// WithTypeName overrides the pg_type name looked up during registration.
func WithTypeName(name string) Option {
	return func(c *registerConfig) { c.typeName = name }
}

// Register makes the hstore codec available on conn's type map so that
// hstore parameters and columns route through the binary wire codec.
// Registration is process-local per connection and idempotent: calling it
// on a connection that already knows the type is a no-op.
//
// The hstore extension assigns its OID at installation time, so Register
// looks it up in pg_type. A missing row yields an UnknownOid error.
func Register(ctx context.Context, conn *pgx.Conn, opts ...Option) error {
	cfg := registerConfig{logger: defaultLogger{}, typeName: TypeName}
	for _, o := range opts {
		o(&cfg)
	}

	tm := conn.TypeMap()
	if _, ok := tm.TypeForName(cfg.typeName); ok {
		cfg.logger.Trace("hstore codec already registered", map[string]any{"type": cfg.typeName})
		return nil
	}

	var oid, arrayOID uint32
	err := conn.QueryRow(ctx,
		"select oid, typarray from pg_type where typname = $1", cfg.typeName,
	).Scan(&oid, &arrayOID)
	if errors.Is(err, pgx.ErrNoRows) {
		return newError(ErrUnknownOID,
			fmt.Sprintf("type %q not in pg_type; is the hstore extension installed?", cfg.typeName))
	}
	if err != nil {
		return fmt.Errorf("hstore: look up type oid: %w", err)
	}

	registerWithName(tm, cfg.typeName, oid, arrayOID)
	cfg.logger.Info("registered hstore codec", map[string]any{
		"type": cfg.typeName, "oid": oid, "arrayOid": arrayOID,
	})
	return nil
}

// RegisterWithOID registers the codec for already-known OIDs, for callers
// that cache OIDs across connections (pool AfterConnect hooks, test maps).
// arrayOID may be zero to skip the array type.
func RegisterWithOID(tm *pgtype.Map, oid, arrayOID uint32) {
	registerWithName(tm, TypeName, oid, arrayOID)
}

// registerWithName registers under the name Register resolved, so the
// idempotency check and TypeForName lookups agree with WithTypeName.
func registerWithName(tm *pgtype.Map, name string, oid, arrayOID uint32) {
	base := &pgtype.Type{Name: name, OID: oid, Codec: Codec{}}
	tm.RegisterType(base)
	if arrayOID != 0 {
		tm.RegisterType(&pgtype.Type{
			Name:  "_" + name,
			OID:   arrayOID,
			Codec: &pgtype.ArrayCodec{ElementType: base},
		})
	}
}
