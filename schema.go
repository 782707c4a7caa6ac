/*
Package hstore – schema declarations.

Hooks for schema-level code that needs to reference the type by name:
DDL fragments for column declarations and the extension bootstrap.
*/
package hstore

// TypeName is the engine-side name of the map type.
const TypeName = "hstore"

// CreateExtensionSQL installs the extension that provides the type.
// Idempotent on the engine side.
const CreateExtensionSQL = "CREATE EXTENSION IF NOT EXISTS hstore"

// ColumnSQL returns the DDL fragment declaring an hstore column.
func ColumnSQL(name string, notNull bool) string {
	s := quoteIdent(name) + " " + TypeName
	if notNull {
		s += " NOT NULL"
	}
	return s
}
