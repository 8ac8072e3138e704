package database

import "github.com/satishbabariya/pslcheck/psl/diagnostics"

// OperatorClass is a Postgres operator class that can be named in an index
// field's `ops:` argument. Classes outside this set are written as raw("...").
type OperatorClass int

const (
	// GiST
	OperatorClassInetOps OperatorClass = iota

	// GIN
	OperatorClassJsonbOps
	OperatorClassJsonbPathOps
	OperatorClassArrayOps

	// SP-GiST
	OperatorClassNetworkOps
	OperatorClassTextOps

	// BRIN
	OperatorClassBitMinMaxOps
	OperatorClassVarBitMinMaxOps
	OperatorClassBpcharBloomOps
	OperatorClassBpcharMinMaxOps
	OperatorClassByteaBloomOps
	OperatorClassByteaMinMaxOps
	OperatorClassDateBloomOps
	OperatorClassDateMinMaxOps
	OperatorClassDateMinMaxMultiOps
	OperatorClassFloat4BloomOps
	OperatorClassFloat4MinMaxOps
	OperatorClassFloat4MinMaxMultiOps
	OperatorClassFloat8BloomOps
	OperatorClassFloat8MinMaxOps
	OperatorClassFloat8MinMaxMultiOps
	OperatorClassInetInclusionOps
	OperatorClassInetBloomOps
	OperatorClassInetMinMaxOps
	OperatorClassInetMinMaxMultiOps
	OperatorClassInt2BloomOps
	OperatorClassInt2MinMaxOps
	OperatorClassInt2MinMaxMultiOps
	OperatorClassInt4BloomOps
	OperatorClassInt4MinMaxOps
	OperatorClassInt4MinMaxMultiOps
	OperatorClassInt8BloomOps
	OperatorClassInt8MinMaxOps
	OperatorClassInt8MinMaxMultiOps
	OperatorClassNumericBloomOps
	OperatorClassNumericMinMaxOps
	OperatorClassNumericMinMaxMultiOps
	OperatorClassOidBloomOps
	OperatorClassOidMinMaxOps
	OperatorClassOidMinMaxMultiOps
	OperatorClassTextBloomOps
	OperatorClassTextMinMaxOps
	OperatorClassTimestampBloomOps
	OperatorClassTimestampMinMaxOps
	OperatorClassTimestampMinMaxMultiOps
	OperatorClassTimestampTzBloomOps
	OperatorClassTimestampTzMinMaxOps
	OperatorClassTimestampTzMinMaxMultiOps
	OperatorClassTimeBloomOps
	OperatorClassTimeMinMaxOps
	OperatorClassTimeMinMaxMultiOps
	OperatorClassTimeTzBloomOps
	OperatorClassTimeTzMinMaxOps
	OperatorClassTimeTzMinMaxMultiOps
	OperatorClassUuidBloomOps
	OperatorClassUuidMinMaxOps
	OperatorClassUuidMinMaxMultiOps

	operatorClassCount
)

var operatorClassNames = [operatorClassCount]string{
	OperatorClassInetOps:                   "InetOps",
	OperatorClassJsonbOps:                  "JsonbOps",
	OperatorClassJsonbPathOps:              "JsonbPathOps",
	OperatorClassArrayOps:                  "ArrayOps",
	OperatorClassNetworkOps:                "NetworkOps",
	OperatorClassTextOps:                   "TextOps",
	OperatorClassBitMinMaxOps:              "BitMinMaxOps",
	OperatorClassVarBitMinMaxOps:           "VarBitMinMaxOps",
	OperatorClassBpcharBloomOps:            "BpcharBloomOps",
	OperatorClassBpcharMinMaxOps:           "BpcharMinMaxOps",
	OperatorClassByteaBloomOps:             "ByteaBloomOps",
	OperatorClassByteaMinMaxOps:            "ByteaMinMaxOps",
	OperatorClassDateBloomOps:              "DateBloomOps",
	OperatorClassDateMinMaxOps:             "DateMinMaxOps",
	OperatorClassDateMinMaxMultiOps:        "DateMinMaxMultiOps",
	OperatorClassFloat4BloomOps:            "Float4BloomOps",
	OperatorClassFloat4MinMaxOps:           "Float4MinMaxOps",
	OperatorClassFloat4MinMaxMultiOps:      "Float4MinMaxMultiOps",
	OperatorClassFloat8BloomOps:            "Float8BloomOps",
	OperatorClassFloat8MinMaxOps:           "Float8MinMaxOps",
	OperatorClassFloat8MinMaxMultiOps:      "Float8MinMaxMultiOps",
	OperatorClassInetInclusionOps:          "InetInclusionOps",
	OperatorClassInetBloomOps:              "InetBloomOps",
	OperatorClassInetMinMaxOps:             "InetMinMaxOps",
	OperatorClassInetMinMaxMultiOps:        "InetMinMaxMultiOps",
	OperatorClassInt2BloomOps:              "Int2BloomOps",
	OperatorClassInt2MinMaxOps:             "Int2MinMaxOps",
	OperatorClassInt2MinMaxMultiOps:        "Int2MinMaxMultiOps",
	OperatorClassInt4BloomOps:              "Int4BloomOps",
	OperatorClassInt4MinMaxOps:             "Int4MinMaxOps",
	OperatorClassInt4MinMaxMultiOps:        "Int4MinMaxMultiOps",
	OperatorClassInt8BloomOps:              "Int8BloomOps",
	OperatorClassInt8MinMaxOps:             "Int8MinMaxOps",
	OperatorClassInt8MinMaxMultiOps:        "Int8MinMaxMultiOps",
	OperatorClassNumericBloomOps:           "NumericBloomOps",
	OperatorClassNumericMinMaxOps:          "NumericMinMaxOps",
	OperatorClassNumericMinMaxMultiOps:     "NumericMinMaxMultiOps",
	OperatorClassOidBloomOps:               "OidBloomOps",
	OperatorClassOidMinMaxOps:              "OidMinMaxOps",
	OperatorClassOidMinMaxMultiOps:         "OidMinMaxMultiOps",
	OperatorClassTextBloomOps:              "TextBloomOps",
	OperatorClassTextMinMaxOps:             "TextMinMaxOps",
	OperatorClassTimestampBloomOps:         "TimestampBloomOps",
	OperatorClassTimestampMinMaxOps:        "TimestampMinMaxOps",
	OperatorClassTimestampMinMaxMultiOps:   "TimestampMinMaxMultiOps",
	OperatorClassTimestampTzBloomOps:       "TimestampTzBloomOps",
	OperatorClassTimestampTzMinMaxOps:      "TimestampTzMinMaxOps",
	OperatorClassTimestampTzMinMaxMultiOps: "TimestampTzMinMaxMultiOps",
	OperatorClassTimeBloomOps:              "TimeBloomOps",
	OperatorClassTimeMinMaxOps:             "TimeMinMaxOps",
	OperatorClassTimeMinMaxMultiOps:        "TimeMinMaxMultiOps",
	OperatorClassTimeTzBloomOps:            "TimeTzBloomOps",
	OperatorClassTimeTzMinMaxOps:           "TimeTzMinMaxOps",
	OperatorClassTimeTzMinMaxMultiOps:      "TimeTzMinMaxMultiOps",
	OperatorClassUuidBloomOps:              "UuidBloomOps",
	OperatorClassUuidMinMaxOps:             "UuidMinMaxOps",
	OperatorClassUuidMinMaxMultiOps:        "UuidMinMaxMultiOps",
}

// OperatorClasses returns every known operator class in declaration order.
func OperatorClasses() []OperatorClass {
	result := make([]OperatorClass, 0, operatorClassCount)
	for c := OperatorClass(0); c < operatorClassCount; c++ {
		result = append(result, c)
	}
	return result
}

// String returns the schema spelling of the operator class, e.g. InetOps.
func (c OperatorClass) String() string {
	if c < 0 || c >= operatorClassCount {
		return "Unknown"
	}
	return operatorClassNames[c]
}

// ParseOperatorClass looks up an operator class by its schema spelling.
func ParseOperatorClass(name string) (OperatorClass, bool) {
	for c, n := range operatorClassNames {
		if n == name {
			return OperatorClass(c), true
		}
	}
	return 0, false
}

// OperatorClassStore is the operator class declared on an index field: either
// a known class or raw text passed through to the database untouched.
type OperatorClassStore struct {
	Class OperatorClass
	Raw   *string
	Span  diagnostics.Span
}

// IsRaw reports whether the class was declared with raw("...").
func (o OperatorClassStore) IsRaw() bool {
	return o.Raw != nil
}

// String returns the class name, or raw("...") for raw classes.
func (o OperatorClassStore) String() string {
	if o.Raw != nil {
		return "raw(\"" + *o.Raw + "\")"
	}
	return o.Class.String()
}
