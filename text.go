/*
Package hstore – text format and literal rendering.

The text format is the engine's own: `"key"=>"value", "k2"=>NULL`. Output
always quotes keys and values and escapes `"` and `\`; input additionally
accepts unquoted tokens. Literal rendering wraps the text form in a SQL
string literal with single quotes doubled, so rendered literals are safe
to splice into generated statements.
*/
package hstore

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// appendTextFormat appends h in text format. Keys are emitted sorted so
// the rendering is deterministic.
func appendTextFormat(h Hstore, buf []byte) []byte {
	for i, k := range h.Keys() {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = appendQuoted(buf, k)
		buf = append(buf, "=>"...)
		if v := h[k]; v.Valid {
			buf = appendQuoted(buf, v.String)
		} else {
			buf = append(buf, "NULL"...)
		}
	}
	return buf
}

func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '"' || c == '\\' {
			buf = append(buf, '\\', c)
		} else {
			buf = append(buf, s[i])
		}
	}
	return append(buf, '"')
}

// Literal renders h as a SQL literal of the form '…'::hstore. An empty
// container renders as ''::hstore, the engine's own empty-map literal.
// Prefer bound parameters (Arg) where the query layer allows them.
func (h Hstore) Literal() string {
	body := string(appendTextFormat(h, nil))
	return "'" + strings.ReplaceAll(body, "'", "''") + "'::" + TypeName
}

// parseText parses the engine's text format. The NULL keyword is
// recognized case-insensitively, but only unquoted: "NULL" is the
// four-character string.
func parseText(src string) (Hstore, error) {
	h := Hstore{}
	p := textParser{src: src}
	p.skipSpace()
	for !p.done() {
		key, _, err := p.token()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.literal("=>") {
			return nil, decodeErr(ErrMalformedText, p.pos, "expected => after key")
		}
		p.skipSpace()
		val, quoted, err := p.token()
		if err != nil {
			return nil, err
		}
		if !quoted && strings.EqualFold(val, "null") {
			h[key] = pgtype.Text{}
		} else {
			h[key] = pgtype.Text{String: val, Valid: true}
		}
		p.skipSpace()
		if p.done() {
			break
		}
		if !p.literal(",") {
			return nil, decodeErr(ErrMalformedText, p.pos, "expected , between entries")
		}
		p.skipSpace()
		if p.done() {
			return nil, decodeErr(ErrMalformedText, p.pos, "expected entry after ,")
		}
	}
	return h, nil
}

type textParser struct {
	src string
	pos int
}

func (p *textParser) done() bool { return p.pos >= len(p.src) }

func (p *textParser) skipSpace() {
	for !p.done() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *textParser) literal(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

// token reads a quoted or unquoted element and reports whether it was
// quoted.
func (p *textParser) token() (string, bool, error) {
	if p.done() {
		return "", false, decodeErr(ErrMalformedText, p.pos, "unexpected end of input")
	}
	if p.src[p.pos] == '"' {
		s, err := p.quoted()
		return s, true, err
	}
	start := p.pos
loop:
	for !p.done() {
		switch p.src[p.pos] {
		case ',', '"', '=', '>', ' ', '\t', '\n', '\r':
			break loop
		default:
			p.pos++
		}
	}
	if p.pos == start {
		return "", false, decodeErr(ErrMalformedText, start, "empty element")
	}
	return p.src[start:p.pos], false, nil
}

func (p *textParser) quoted() (string, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for !p.done() {
		switch c := p.src[p.pos]; c {
		case '\\':
			p.pos++
			if p.done() {
				return "", decodeErr(ErrMalformedText, p.pos, "dangling escape")
			}
			sb.WriteByte(p.src[p.pos])
			p.pos++
		case '"':
			p.pos++
			return sb.String(), nil
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", decodeErr(ErrMalformedText, p.pos, "unterminated quoted string")
}

// Value implements driver.Valuer using the text format, so the type works
// through database/sql as well as through the registered pgx codec. A nil
// Hstore becomes SQL NULL.
func (h Hstore) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return string(appendTextFormat(h, nil)), nil
}

// Scan implements sql.Scanner, accepting the text format as string or
// []byte.
func (h *Hstore) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		return newError(ErrUnexpectedNull, "cannot scan NULL into Hstore; use *Hstore column type or coalesce")
	case string:
		decoded, err := parseText(s)
		if err != nil {
			return err
		}
		*h = decoded
		return nil
	case []byte:
		decoded, err := parseText(string(s))
		if err != nil {
			return err
		}
		*h = decoded
		return nil
	default:
		return fmt.Errorf("hstore: cannot scan %T", src)
	}
}
