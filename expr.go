/*
Package hstore – typed expression nodes.

The operator and function catalogs build immutable AST fragments for an
outer query builder. Rendering produces SQL text plus positional $n
arguments; value leaves always bind, only LiteralValue splices, and it
splices escaped text.
*/
package hstore

import (
	"strconv"
	"strings"
)

// node is one SQL fragment. Implementations are immutable after
// construction and safe to share between renderers.
type node interface {
	build(b *builder)
}

// builder accumulates rendered SQL and its positional arguments.
type builder struct {
	sql  strings.Builder
	args []any
}

// bind appends v to the argument list and writes its $n placeholder.
func (b *builder) bind(v any) {
	b.args = append(b.args, v)
	b.sql.WriteByte('$')
	b.sql.WriteString(strconv.Itoa(len(b.args)))
}

// Expression is any typed fragment produced by this package.
type Expression interface {
	exprNode() node
}

// The wrapper types below carry the declared result type of a fragment.
// Distinct Go types make operand mismatches compile errors: Concat accepts
// only map-typed expressions, HasAllKeys only text arrays, and so on.

// HstoreExpr is an expression of the map type.
type HstoreExpr struct{ n node }

// TextExpr is a text-typed expression. A lookup on an absent key still
// types as text; the engine returns NULL at run time.
type TextExpr struct{ n node }

// TextArrayExpr is a text[]-typed expression.
type TextArrayExpr struct{ n node }

// BoolExpr is a boolean expression.
type BoolExpr struct{ n node }

func (e HstoreExpr) exprNode() node    { return e.n }
func (e TextExpr) exprNode() node      { return e.n }
func (e TextArrayExpr) exprNode() node { return e.n }
func (e BoolExpr) exprNode() node      { return e.n }

// ─── leaves ──────────────────────────────────────────────────────────────

type columnNode struct {
	table string
	name  string
}

func (c columnNode) build(b *builder) {
	if c.table != "" {
		b.sql.WriteString(quoteIdent(c.table))
		b.sql.WriteByte('.')
	}
	b.sql.WriteString(quoteIdent(c.name))
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Column references an hstore column by name.
func Column(name string) HstoreExpr {
	return HstoreExpr{columnNode{name: name}}
}

// QualifiedColumn references an hstore column as table.name.
func QualifiedColumn(table, name string) HstoreExpr {
	return HstoreExpr{columnNode{table: table, name: name}}
}

// TextColumn references a text column.
func TextColumn(name string) TextExpr {
	return TextExpr{columnNode{name: name}}
}

// TextArrayColumn references a text[] column.
func TextArrayColumn(name string) TextArrayExpr {
	return TextArrayExpr{columnNode{name: name}}
}

type argNode struct{ value any }

func (a argNode) build(b *builder) { b.bind(a.value) }

// Arg binds an Hstore value as a query parameter. The connection must
// have the codec registered for the parameter to encode.
func Arg(h Hstore) HstoreExpr {
	return HstoreExpr{argNode{h}}
}

// TextArg binds a text value.
func TextArg(s string) TextExpr {
	return TextExpr{argNode{s}}
}

// TextArrayArg binds a text[] value.
func TextArrayArg(vals []string) TextArrayExpr {
	return TextArrayExpr{argNode{vals}}
}

type literalNode struct{ h Hstore }

func (l literalNode) build(b *builder) { b.sql.WriteString(l.h.Literal()) }

// LiteralValue splices h as an escaped '…'::hstore literal instead of
// binding it. Only for contexts that cannot carry bound parameters;
// prefer Arg.
func LiteralValue(h Hstore) HstoreExpr {
	return HstoreExpr{literalNode{h}}
}

// ─── composite nodes ─────────────────────────────────────────────────────

type infixNode struct {
	op          string
	left, right node
}

func (n infixNode) build(b *builder) {
	b.sql.WriteByte('(')
	n.left.build(b)
	b.sql.WriteByte(' ')
	b.sql.WriteString(n.op)
	b.sql.WriteByte(' ')
	n.right.build(b)
	b.sql.WriteByte(')')
}

type prefixNode struct {
	op      string
	operand node
}

func (n prefixNode) build(b *builder) {
	b.sql.WriteString(n.op)
	b.sql.WriteString(" (")
	n.operand.build(b)
	b.sql.WriteByte(')')
}

type callNode struct {
	name string
	args []node
}

func (n callNode) build(b *builder) {
	b.sql.WriteString(n.name)
	b.sql.WriteByte('(')
	for i, a := range n.args {
		if i > 0 {
			b.sql.WriteString(", ")
		}
		a.build(b)
	}
	b.sql.WriteByte(')')
}

// ─── rendering ───────────────────────────────────────────────────────────

// Render produces the SQL text and bound arguments for e. Parameters are
// numbered from $1.
func Render(e Expression) (string, []any) {
	b := &builder{}
	e.exprNode().build(b)
	return b.sql.String(), b.args
}

// RenderInto appends e's SQL to sb with parameters numbered after the
// ones already in args, and returns the extended argument list. This is
// the embedding point for an outer query builder.
func RenderInto(e Expression, sb *strings.Builder, args []any) []any {
	b := &builder{args: args}
	e.exprNode().build(b)
	sb.WriteString(b.sql.String())
	return b.args
}
