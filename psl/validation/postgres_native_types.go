package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// PostgresType represents a PostgreSQL native type.
type PostgresType int

const (
	PostgresTypeSmallInt PostgresType = iota
	PostgresTypeInteger
	PostgresTypeBigInt
	PostgresTypeDecimal
	PostgresTypeMoney
	PostgresTypeInet
	PostgresTypeOid
	PostgresTypeCitext
	PostgresTypeReal
	PostgresTypeDoublePrecision
	PostgresTypeVarChar
	PostgresTypeChar
	PostgresTypeText
	PostgresTypeByteA
	PostgresTypeTimestamp
	PostgresTypeTimestamptz
	PostgresTypeDate
	PostgresTypeTime
	PostgresTypeTimetz
	PostgresTypeBoolean
	PostgresTypeBit
	PostgresTypeVarBit
	PostgresTypeUuid
	PostgresTypeXml
	PostgresTypeJson
	PostgresTypeJsonB

	postgresTypeCount
)

// NativeTypeConstructor describes one native type attribute: its name, how many
// optional numeric arguments it takes and which logical field types may carry it.
type NativeTypeConstructor struct {
	Name        string
	Type        PostgresType
	MaxArgs     int
	ScalarTypes []database.ScalarType
}

var postgresNativeTypeConstructors = [postgresTypeCount]NativeTypeConstructor{
	PostgresTypeSmallInt:        {Name: "SmallInt", ScalarTypes: scalars(database.ScalarTypeInt)},
	PostgresTypeInteger:         {Name: "Integer", ScalarTypes: scalars(database.ScalarTypeInt)},
	PostgresTypeBigInt:          {Name: "BigInt", ScalarTypes: scalars(database.ScalarTypeBigInt)},
	PostgresTypeDecimal:         {Name: "Decimal", MaxArgs: 2, ScalarTypes: scalars(database.ScalarTypeDecimal)},
	PostgresTypeMoney:           {Name: "Money", ScalarTypes: scalars(database.ScalarTypeDecimal)},
	PostgresTypeInet:            {Name: "Inet", ScalarTypes: scalars(database.ScalarTypeString)},
	PostgresTypeOid:             {Name: "Oid", ScalarTypes: scalars(database.ScalarTypeInt)},
	PostgresTypeCitext:          {Name: "Citext", ScalarTypes: scalars(database.ScalarTypeString)},
	PostgresTypeReal:            {Name: "Real", ScalarTypes: scalars(database.ScalarTypeFloat)},
	PostgresTypeDoublePrecision: {Name: "DoublePrecision", ScalarTypes: scalars(database.ScalarTypeFloat)},
	PostgresTypeVarChar:         {Name: "VarChar", MaxArgs: 1, ScalarTypes: scalars(database.ScalarTypeString)},
	PostgresTypeChar:            {Name: "Char", MaxArgs: 1, ScalarTypes: scalars(database.ScalarTypeString)},
	PostgresTypeText:            {Name: "Text", ScalarTypes: scalars(database.ScalarTypeString)},
	PostgresTypeByteA:           {Name: "ByteA", ScalarTypes: scalars(database.ScalarTypeBytes)},
	PostgresTypeTimestamp:       {Name: "Timestamp", MaxArgs: 1, ScalarTypes: scalars(database.ScalarTypeDateTime)},
	PostgresTypeTimestamptz:     {Name: "Timestamptz", MaxArgs: 1, ScalarTypes: scalars(database.ScalarTypeDateTime)},
	PostgresTypeDate:            {Name: "Date", ScalarTypes: scalars(database.ScalarTypeDateTime)},
	PostgresTypeTime:            {Name: "Time", MaxArgs: 1, ScalarTypes: scalars(database.ScalarTypeDateTime)},
	PostgresTypeTimetz:          {Name: "Timetz", MaxArgs: 1, ScalarTypes: scalars(database.ScalarTypeDateTime)},
	PostgresTypeBoolean:         {Name: "Boolean", ScalarTypes: scalars(database.ScalarTypeBoolean)},
	PostgresTypeBit:             {Name: "Bit", MaxArgs: 1, ScalarTypes: scalars(database.ScalarTypeString)},
	PostgresTypeVarBit:          {Name: "VarBit", MaxArgs: 1, ScalarTypes: scalars(database.ScalarTypeString)},
	PostgresTypeUuid:            {Name: "Uuid", ScalarTypes: scalars(database.ScalarTypeString)},
	PostgresTypeXml:             {Name: "Xml", ScalarTypes: scalars(database.ScalarTypeString)},
	PostgresTypeJson:            {Name: "Json", ScalarTypes: scalars(database.ScalarTypeJson)},
	PostgresTypeJsonB:           {Name: "JsonB", ScalarTypes: scalars(database.ScalarTypeJson)},
}

func init() {
	for i := range postgresNativeTypeConstructors {
		postgresNativeTypeConstructors[i].Type = PostgresType(i)
	}
}

func scalars(types ...database.ScalarType) []database.ScalarType {
	return types
}

// String returns the schema spelling of the type, e.g. JsonB.
func (t PostgresType) String() string {
	if t < 0 || t >= postgresTypeCount {
		return "Unknown"
	}
	return postgresNativeTypeConstructors[t].Name
}

// PostgresNativeTypeConstructors lists every Postgres native type in declaration order.
func PostgresNativeTypeConstructors() []NativeTypeConstructor {
	return postgresNativeTypeConstructors[:]
}

// FindPostgresNativeTypeConstructor looks a native type up by its schema spelling.
func FindPostgresNativeTypeConstructor(name string) (NativeTypeConstructor, bool) {
	for _, c := range postgresNativeTypeConstructors {
		if c.Name == name {
			return c, true
		}
	}
	return NativeTypeConstructor{}, false
}

// PostgresNativeTypeInstance is a resolved native type with its arguments.
type PostgresNativeTypeInstance struct {
	Type PostgresType
	Args []int
}

// String renders the instance the way it is written in a schema, e.g. VarChar(255).
func (i PostgresNativeTypeInstance) String() string {
	if len(i.Args) == 0 {
		return i.Type.String()
	}
	parts := make([]string, len(i.Args))
	for n, arg := range i.Args {
		parts[n] = strconv.Itoa(arg)
	}
	return fmt.Sprintf("%s(%s)", i.Type, strings.Join(parts, ","))
}

// ParsePostgresNativeType resolves a native type name and its arguments.
// Problems are pushed to diags and nil is returned.
func ParsePostgresNativeType(name string, args []string, span diagnostics.Span, diags *diagnostics.Diagnostics) *PostgresNativeTypeInstance {
	constructor, ok := FindPostgresNativeTypeConstructor(name)
	if !ok {
		diags.PushError(diagnostics.NewNativeTypeNameUnknownError(postgresConnectorName, name, span))
		return nil
	}

	if len(args) != 0 && len(args) != constructor.MaxArgs {
		diags.PushError(diagnostics.NewNativeTypeArgumentCountMismatchError(name, constructor.MaxArgs, len(args), span))
		return nil
	}

	instance := &PostgresNativeTypeInstance{Type: constructor.Type}
	for _, arg := range args {
		value, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			diags.PushError(diagnostics.NewValueParserError("a numeric value", arg, span))
			return nil
		}
		instance.Args = append(instance.Args, value)
	}
	return instance
}

// PostgresNativeTypeAcceptsScalar reports whether a field of the given logical
// type may carry the native type.
func PostgresNativeTypeAcceptsScalar(t PostgresType, scalar database.ScalarType) bool {
	for _, st := range postgresNativeTypeConstructors[t].ScalarTypes {
		if st == scalar {
			return true
		}
	}
	return false
}
