package hstore

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// OIDs are assigned by the engine at extension install time; any value
// works against an offline map.
const (
	testOID      = 777001
	testArrayOID = 777002
)

func newTestMap() *pgtype.Map {
	m := pgtype.NewMap()
	RegisterWithOID(m, testOID, testArrayOID)
	return m
}

func TestRegisterWithOID(t *testing.T) {
	m := newTestMap()

	typ, ok := m.TypeForName(TypeName)
	require.True(t, ok)
	assert.Equal(t, uint32(testOID), typ.OID)

	arr, ok := m.TypeForName("_" + TypeName)
	require.True(t, ok)
	assert.Equal(t, uint32(testArrayOID), arr.OID)

	// registering again must not disturb the map
	RegisterWithOID(m, testOID, testArrayOID)
	typ, ok = m.TypeForOID(testOID)
	require.True(t, ok)
	assert.Equal(t, TypeName, typ.Name)
}

func TestRegisterCustomTypeName(t *testing.T) {
	// a custom pg_type name must be registered under that name, or the
	// idempotency check and TypeForName lookups would never find it
	m := pgtype.NewMap()
	registerWithName(m, "mystore", testOID, testArrayOID)

	typ, ok := m.TypeForName("mystore")
	require.True(t, ok)
	assert.Equal(t, uint32(testOID), typ.OID)

	arr, ok := m.TypeForName("_mystore")
	require.True(t, ok)
	assert.Equal(t, uint32(testArrayOID), arr.OID)

	_, ok = m.TypeForName(TypeName)
	assert.False(t, ok)
}

func TestRegisterWithOIDNoArray(t *testing.T) {
	m := pgtype.NewMap()
	RegisterWithOID(m, testOID, 0)
	_, ok := m.TypeForName("_" + TypeName)
	assert.False(t, ok)
}

func TestMapEncodeBinary(t *testing.T) {
	m := newTestMap()
	h := New()
	h.Set("a", "1")
	h.SetNull("b")

	wire, err := m.Encode(testOID, pgtype.BinaryFormatCode, h, nil)
	require.NoError(t, err)

	got, err := decodeBinary(wire)
	require.NoError(t, err)
	assert.True(t, h.Equal(got))
}

func TestMapEncodePlainMap(t *testing.T) {
	m := newTestMap()
	src := map[string]string{"a": "1", "b": "2"}

	wire, err := m.Encode(testOID, pgtype.BinaryFormatCode, src, nil)
	require.NoError(t, err)

	got, err := decodeBinary(wire)
	require.NoError(t, err)
	assert.Equal(t, src, got.StringMap())
}

func TestMapEncodeText(t *testing.T) {
	m := newTestMap()
	h := FromMap(map[string]string{"a": "1"})

	wire, err := m.Encode(testOID, pgtype.TextFormatCode, h, nil)
	require.NoError(t, err)
	assert.Equal(t, `"a"=>"1"`, string(wire))
}

func TestMapScanBinary(t *testing.T) {
	m := newTestMap()
	h := New()
	h.Set("a", "1")
	h.SetNull("b")
	wire := encodeBinary(h, nil)

	var got Hstore
	require.NoError(t, m.Scan(testOID, pgtype.BinaryFormatCode, wire, &got))
	assert.True(t, h.Equal(got))

	// the plain-map target opts into NULL dropping
	var plain map[string]string
	require.NoError(t, m.Scan(testOID, pgtype.BinaryFormatCode, wire, &plain))
	assert.Equal(t, map[string]string{"a": "1"}, plain)
}

func TestMapScanText(t *testing.T) {
	m := newTestMap()

	var got Hstore
	require.NoError(t, m.Scan(testOID, pgtype.TextFormatCode, []byte(`"a"=>"1", "b"=>NULL`), &got))
	require.Equal(t, 2, got.Len())
	v, ok := got.Get("b")
	require.True(t, ok)
	assert.False(t, v.Valid)
}

func TestScanPlanRejectsNull(t *testing.T) {
	plan := Codec{}.PlanScan(nil, testOID, pgtype.BinaryFormatCode, (*Hstore)(nil))
	require.NotNil(t, plan)

	var got Hstore
	err := plan.Scan(nil, &got)
	require.Error(t, err)
	assert.Equal(t, ErrUnexpectedNull, CodeOf(err))
}

func TestCodecFormats(t *testing.T) {
	c := Codec{}
	assert.Equal(t, int16(pgtype.BinaryFormatCode), c.PreferredFormat())
	assert.True(t, c.FormatSupported(pgtype.BinaryFormatCode))
	assert.True(t, c.FormatSupported(pgtype.TextFormatCode))
	assert.False(t, c.FormatSupported(42))
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	c := Codec{}
	assert.Nil(t, c.PlanEncode(nil, testOID, pgtype.BinaryFormatCode, 17))
	assert.Nil(t, c.PlanScan(nil, testOID, pgtype.BinaryFormatCode, &struct{}{}))
}

func TestDecodeValue(t *testing.T) {
	m := newTestMap()
	h := FromMap(map[string]string{"a": "1"})
	wire := encodeBinary(h, nil)

	v, err := Codec{}.DecodeValue(m, testOID, pgtype.BinaryFormatCode, wire)
	require.NoError(t, err)
	got, ok := v.(Hstore)
	require.True(t, ok)
	assert.True(t, h.Equal(got))

	v, err = Codec{}.DecodeValue(m, testOID, pgtype.BinaryFormatCode, nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecodeDatabaseSQLValue(t *testing.T) {
	m := newTestMap()
	h := FromMap(map[string]string{"a": "1"})
	wire := encodeBinary(h, nil)

	v, err := Codec{}.DecodeDatabaseSQLValue(m, testOID, pgtype.BinaryFormatCode, wire)
	require.NoError(t, err)
	assert.Equal(t, `"a"=>"1"`, v)
}

func TestArrayRoundTrip(t *testing.T) {
	m := newTestMap()
	src := []Hstore{
		FromMap(map[string]string{"a": "1"}),
		FromMap(map[string]string{"b": "2"}),
	}

	wire, err := m.Encode(testArrayOID, pgtype.BinaryFormatCode, src, nil)
	require.NoError(t, err)

	var got []Hstore
	require.NoError(t, m.Scan(testArrayOID, pgtype.BinaryFormatCode, wire, &got))
	require.Len(t, got, 2)
	assert.True(t, src[0].Equal(got[0]))
	assert.True(t, src[1].Equal(got[1]))
}
