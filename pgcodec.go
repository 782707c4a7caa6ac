/*
Package hstore – pgx type-dispatch codec.

Codec plugs the wire codec into pgx's pgtype.Map so hstore parameters and
columns route through it automatically once registered. Binary format is
preferred; text format is supported for connections that negotiate it.
*/
package hstore

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// Codec implements pgtype.Codec for the hstore type.
type Codec struct{}

func (Codec) FormatSupported(format int16) bool {
	return format == pgtype.BinaryFormatCode || format == pgtype.TextFormatCode
}

func (Codec) PreferredFormat() int16 { return pgtype.BinaryFormatCode }

func (Codec) PlanEncode(m *pgtype.Map, oid uint32, format int16, value any) pgtype.EncodePlan {
	switch value.(type) {
	case Hstore, map[string]string:
	default:
		return nil
	}
	switch format {
	case pgtype.BinaryFormatCode:
		return encodePlanBinary{}
	case pgtype.TextFormatCode:
		return encodePlanText{}
	}
	return nil
}

type encodePlanBinary struct{}

func (encodePlanBinary) Encode(value any, buf []byte) ([]byte, error) {
	h, err := asHstore(value)
	if err != nil || h == nil {
		return nil, err
	}
	return encodeBinary(h, buf), nil
}

type encodePlanText struct{}

func (encodePlanText) Encode(value any, buf []byte) ([]byte, error) {
	h, err := asHstore(value)
	if err != nil || h == nil {
		return nil, err
	}
	return appendTextFormat(h, buf), nil
}

func asHstore(value any) (Hstore, error) {
	switch v := value.(type) {
	case Hstore:
		return v, nil
	case map[string]string:
		if v == nil {
			return nil, nil
		}
		return FromMap(v), nil
	}
	return nil, fmt.Errorf("hstore: cannot encode %T", value)
}

func (Codec) PlanScan(m *pgtype.Map, oid uint32, format int16, target any) pgtype.ScanPlan {
	switch target.(type) {
	case *Hstore, *map[string]string:
	default:
		return nil
	}
	switch format {
	case pgtype.BinaryFormatCode:
		return scanPlanBinary{}
	case pgtype.TextFormatCode:
		return scanPlanText{}
	}
	return nil
}

type scanPlanBinary struct{}

func (scanPlanBinary) Scan(src []byte, dst any) error {
	if src == nil {
		return newError(ErrUnexpectedNull, "unexpected NULL for hstore column")
	}
	h, err := decodeBinary(src)
	if err != nil {
		return err
	}
	return assignTo(dst, h)
}

type scanPlanText struct{}

func (scanPlanText) Scan(src []byte, dst any) error {
	if src == nil {
		return newError(ErrUnexpectedNull, "unexpected NULL for hstore column")
	}
	h, err := parseText(string(src))
	if err != nil {
		return err
	}
	return assignTo(dst, h)
}

// assignTo hands the decoded container to the scan target. The plain-map
// target drops NULL-valued entries; the Hstore target preserves them.
func assignTo(dst any, h Hstore) error {
	switch d := dst.(type) {
	case *Hstore:
		*d = h
	case *map[string]string:
		*d = h.StringMap()
	default:
		return fmt.Errorf("hstore: cannot scan into %T", dst)
	}
	return nil
}

func (c Codec) DecodeDatabaseSQLValue(m *pgtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	if src == nil {
		return nil, nil
	}
	h, err := c.decode(format, src)
	if err != nil {
		return nil, err
	}
	return string(appendTextFormat(h, nil)), nil
}

func (c Codec) DecodeValue(m *pgtype.Map, oid uint32, format int16, src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	return c.decode(format, src)
}

func (Codec) decode(format int16, src []byte) (Hstore, error) {
	switch format {
	case pgtype.BinaryFormatCode:
		return decodeBinary(src)
	case pgtype.TextFormatCode:
		return parseText(string(src))
	}
	return nil, fmt.Errorf("hstore: unknown format code %d", format)
}
