package validation

import (
	"strings"

	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// Verdict is the outcome of checking an index field against the operator
// class tables.
type Verdict int

const (
	VerdictOk Verdict = iota
	// VerdictWrongNativeType: the field's native type is not one the class accepts.
	VerdictWrongNativeType
	// VerdictWrongLogicalType: no native type, and the logical type is not the class's fallback.
	VerdictWrongLogicalType
	// VerdictNotAList: the class only indexes list fields.
	VerdictNotAList
	// VerdictMissingNativeType: the class needs a native type annotation.
	VerdictMissingNativeType
	// VerdictNoDefaultOperatorClass: no class given and the native type has no default one.
	VerdictNoDefaultOperatorClass
	// VerdictUnsupportedFieldType: no class given and the algorithm cannot index the field.
	VerdictUnsupportedFieldType
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictOk:
		return "Ok"
	case VerdictWrongNativeType:
		return "WrongNativeType"
	case VerdictWrongLogicalType:
		return "WrongLogicalType"
	case VerdictNotAList:
		return "NotAList"
	case VerdictMissingNativeType:
		return "MissingNativeType"
	case VerdictNoDefaultOperatorClass:
		return "NoDefaultOperatorClass"
	case VerdictUnsupportedFieldType:
		return "UnsupportedFieldType"
	default:
		return "Unknown"
	}
}

// ErrorKind maps the verdict onto the diagnostic taxonomy.
func (v Verdict) ErrorKind() diagnostics.ErrorKind {
	switch v {
	case VerdictWrongNativeType:
		return diagnostics.ErrorKindNativeTypeOperatorClassMismatch
	case VerdictWrongLogicalType, VerdictNotAList:
		return diagnostics.ErrorKindLogicalTypeMismatch
	case VerdictMissingNativeType:
		return diagnostics.ErrorKindMissingNativeType
	case VerdictNoDefaultOperatorClass:
		return diagnostics.ErrorKindNoDefaultOperatorClass
	case VerdictUnsupportedFieldType:
		return diagnostics.ErrorKindUnsupportedFieldType
	default:
		return diagnostics.ErrorKindGeneric
	}
}

// IndexFieldType is what the tables need to know about an index field.
type IndexFieldType struct {
	// Native is nil when the field has no (resolvable) native type.
	Native *PostgresType
	// Scalar is nil for enum fields.
	Scalar *database.ScalarType
	IsList bool
}

func (f IndexFieldType) scalarIs(types []database.ScalarType) bool {
	if f.Scalar == nil {
		return false
	}
	for _, st := range types {
		if st == *f.Scalar {
			return true
		}
	}
	return false
}

func (f IndexFieldType) nativeIs(types []PostgresType) bool {
	if f.Native == nil {
		return false
	}
	for _, t := range types {
		if t == *f.Native {
			return true
		}
	}
	return false
}

// OperatorClassRule is one row of the operator class table.
type OperatorClassRule struct {
	Algorithm database.IndexAlgorithm
	// NativeTypes the class accepts. Empty means any native type.
	NativeTypes []PostgresType
	// Fallback is the logical type accepted when the field has no native type.
	Fallback *database.ScalarType
	// NoNativeVerdict is reported when there is no native type and no fallback match.
	NoNativeVerdict Verdict
	// RequiresList restricts the class to list fields.
	RequiresList bool
}

// DefaultOperatorClassRule says which fields an algorithm indexes when no
// operator class is declared.
type DefaultOperatorClassRule struct {
	// Unconstrained algorithms index every field.
	Unconstrained bool
	NativeTypes   []PostgresType
	// ScalarTypes accepted when the field has no native type.
	ScalarTypes []database.ScalarType
	// AnyList accepts every list field.
	AnyList bool
}

func scalarRef(st database.ScalarType) *database.ScalarType {
	return &st
}

func brinRule(fallback *database.ScalarType, natives ...PostgresType) OperatorClassRule {
	rule := OperatorClassRule{
		Algorithm:       database.IndexAlgorithmBrin,
		NativeTypes:     natives,
		Fallback:        fallback,
		NoNativeVerdict: VerdictMissingNativeType,
	}
	if fallback != nil {
		rule.NoNativeVerdict = VerdictWrongLogicalType
	}
	return rule
}

var postgresOperatorClassRules = map[database.OperatorClass]OperatorClassRule{
	database.OperatorClassInetOps: {
		Algorithm:       database.IndexAlgorithmGist,
		NativeTypes:     []PostgresType{PostgresTypeInet},
		NoNativeVerdict: VerdictMissingNativeType,
	},

	database.OperatorClassJsonbOps: {
		Algorithm:       database.IndexAlgorithmGin,
		NativeTypes:     []PostgresType{PostgresTypeJsonB},
		Fallback:        scalarRef(database.ScalarTypeJson),
		NoNativeVerdict: VerdictWrongLogicalType,
	},
	database.OperatorClassJsonbPathOps: {
		Algorithm:       database.IndexAlgorithmGin,
		NativeTypes:     []PostgresType{PostgresTypeJsonB},
		Fallback:        scalarRef(database.ScalarTypeJson),
		NoNativeVerdict: VerdictWrongLogicalType,
	},
	database.OperatorClassArrayOps: {
		Algorithm:    database.IndexAlgorithmGin,
		RequiresList: true,
	},

	database.OperatorClassNetworkOps: {
		Algorithm:       database.IndexAlgorithmSpGist,
		NativeTypes:     []PostgresType{PostgresTypeInet},
		Fallback:        scalarRef(database.ScalarTypeString),
		NoNativeVerdict: VerdictMissingNativeType,
	},
	database.OperatorClassTextOps: {
		Algorithm:       database.IndexAlgorithmSpGist,
		NativeTypes:     []PostgresType{PostgresTypeText},
		Fallback:        scalarRef(database.ScalarTypeString),
		NoNativeVerdict: VerdictWrongLogicalType,
	},

	database.OperatorClassBitMinMaxOps:    brinRule(nil, PostgresTypeBit),
	database.OperatorClassVarBitMinMaxOps: brinRule(nil, PostgresTypeVarBit),

	database.OperatorClassBpcharBloomOps:  brinRule(nil, PostgresTypeChar),
	database.OperatorClassBpcharMinMaxOps: brinRule(nil, PostgresTypeChar),

	database.OperatorClassByteaBloomOps:  brinRule(scalarRef(database.ScalarTypeBytes), PostgresTypeByteA),
	database.OperatorClassByteaMinMaxOps: brinRule(scalarRef(database.ScalarTypeBytes), PostgresTypeByteA),

	database.OperatorClassDateBloomOps:       brinRule(nil, PostgresTypeDate),
	database.OperatorClassDateMinMaxOps:      brinRule(nil, PostgresTypeDate),
	database.OperatorClassDateMinMaxMultiOps: brinRule(nil, PostgresTypeDate),

	database.OperatorClassFloat4BloomOps:       brinRule(nil, PostgresTypeReal),
	database.OperatorClassFloat4MinMaxOps:      brinRule(nil, PostgresTypeReal),
	database.OperatorClassFloat4MinMaxMultiOps: brinRule(nil, PostgresTypeReal),

	database.OperatorClassFloat8BloomOps:       brinRule(scalarRef(database.ScalarTypeFloat), PostgresTypeDoublePrecision),
	database.OperatorClassFloat8MinMaxOps:      brinRule(scalarRef(database.ScalarTypeFloat), PostgresTypeDoublePrecision),
	database.OperatorClassFloat8MinMaxMultiOps: brinRule(scalarRef(database.ScalarTypeFloat), PostgresTypeDoublePrecision),

	database.OperatorClassInetInclusionOps:   brinRule(nil, PostgresTypeInet),
	database.OperatorClassInetBloomOps:       brinRule(nil, PostgresTypeInet),
	database.OperatorClassInetMinMaxOps:      brinRule(nil, PostgresTypeInet),
	database.OperatorClassInetMinMaxMultiOps: brinRule(nil, PostgresTypeInet),

	database.OperatorClassInt2BloomOps:       brinRule(nil, PostgresTypeSmallInt),
	database.OperatorClassInt2MinMaxOps:      brinRule(nil, PostgresTypeSmallInt),
	database.OperatorClassInt2MinMaxMultiOps: brinRule(nil, PostgresTypeSmallInt),

	database.OperatorClassInt4BloomOps:       brinRule(scalarRef(database.ScalarTypeInt), PostgresTypeInteger),
	database.OperatorClassInt4MinMaxOps:      brinRule(scalarRef(database.ScalarTypeInt), PostgresTypeInteger),
	database.OperatorClassInt4MinMaxMultiOps: brinRule(scalarRef(database.ScalarTypeInt), PostgresTypeInteger),

	database.OperatorClassInt8BloomOps:       brinRule(scalarRef(database.ScalarTypeBigInt), PostgresTypeBigInt),
	database.OperatorClassInt8MinMaxOps:      brinRule(scalarRef(database.ScalarTypeBigInt), PostgresTypeBigInt),
	database.OperatorClassInt8MinMaxMultiOps: brinRule(scalarRef(database.ScalarTypeBigInt), PostgresTypeBigInt),

	database.OperatorClassNumericBloomOps:       brinRule(scalarRef(database.ScalarTypeDecimal), PostgresTypeDecimal),
	database.OperatorClassNumericMinMaxOps:      brinRule(scalarRef(database.ScalarTypeDecimal), PostgresTypeDecimal),
	database.OperatorClassNumericMinMaxMultiOps: brinRule(scalarRef(database.ScalarTypeDecimal), PostgresTypeDecimal),

	database.OperatorClassOidBloomOps:       brinRule(nil, PostgresTypeOid),
	database.OperatorClassOidMinMaxOps:      brinRule(nil, PostgresTypeOid),
	database.OperatorClassOidMinMaxMultiOps: brinRule(nil, PostgresTypeOid),

	database.OperatorClassTextBloomOps:  brinRule(scalarRef(database.ScalarTypeString), PostgresTypeText, PostgresTypeVarChar),
	database.OperatorClassTextMinMaxOps: brinRule(scalarRef(database.ScalarTypeString), PostgresTypeText, PostgresTypeVarChar),

	database.OperatorClassTimestampBloomOps:       brinRule(scalarRef(database.ScalarTypeDateTime), PostgresTypeTimestamp),
	database.OperatorClassTimestampMinMaxOps:      brinRule(scalarRef(database.ScalarTypeDateTime), PostgresTypeTimestamp),
	database.OperatorClassTimestampMinMaxMultiOps: brinRule(scalarRef(database.ScalarTypeDateTime), PostgresTypeTimestamp),

	database.OperatorClassTimestampTzBloomOps:       brinRule(nil, PostgresTypeTimestamptz),
	database.OperatorClassTimestampTzMinMaxOps:      brinRule(nil, PostgresTypeTimestamptz),
	database.OperatorClassTimestampTzMinMaxMultiOps: brinRule(nil, PostgresTypeTimestamptz),

	database.OperatorClassTimeBloomOps:       brinRule(nil, PostgresTypeTime),
	database.OperatorClassTimeMinMaxOps:      brinRule(nil, PostgresTypeTime),
	database.OperatorClassTimeMinMaxMultiOps: brinRule(nil, PostgresTypeTime),

	database.OperatorClassTimeTzBloomOps:       brinRule(nil, PostgresTypeTimetz),
	database.OperatorClassTimeTzMinMaxOps:      brinRule(nil, PostgresTypeTimetz),
	database.OperatorClassTimeTzMinMaxMultiOps: brinRule(nil, PostgresTypeTimetz),

	database.OperatorClassUuidBloomOps:       brinRule(nil, PostgresTypeUuid),
	database.OperatorClassUuidMinMaxOps:      brinRule(nil, PostgresTypeUuid),
	database.OperatorClassUuidMinMaxMultiOps: brinRule(nil, PostgresTypeUuid),
}

var postgresDefaultOperatorClassRules = map[database.IndexAlgorithm]DefaultOperatorClassRule{
	database.IndexAlgorithmBTree: {Unconstrained: true},
	database.IndexAlgorithmHash:  {Unconstrained: true},
	database.IndexAlgorithmGist: {
		NativeTypes: []PostgresType{PostgresTypeInet},
	},
	database.IndexAlgorithmGin: {
		NativeTypes: []PostgresType{PostgresTypeJsonB},
		ScalarTypes: []database.ScalarType{database.ScalarTypeJson},
		AnyList:     true,
	},
	database.IndexAlgorithmSpGist: {
		NativeTypes: []PostgresType{PostgresTypeInet, PostgresTypeText},
		ScalarTypes: []database.ScalarType{database.ScalarTypeString},
	},
	database.IndexAlgorithmBrin: {
		NativeTypes: brinMinMaxNativeTypes(),
		ScalarTypes: []database.ScalarType{
			database.ScalarTypeInt,
			database.ScalarTypeBigInt,
			database.ScalarTypeFloat,
			database.ScalarTypeDecimal,
			database.ScalarTypeString,
			database.ScalarTypeBytes,
			database.ScalarTypeDateTime,
		},
	},
}

// brinMinMaxNativeTypes collects the native types that have a BRIN minmax class,
// which Postgres picks as their default.
func brinMinMaxNativeTypes() []PostgresType {
	seen := make(map[PostgresType]bool)
	var result []PostgresType
	for _, class := range database.OperatorClasses() {
		rule, ok := postgresOperatorClassRules[class]
		if !ok || rule.Algorithm != database.IndexAlgorithmBrin || !isMinMaxClass(class) {
			continue
		}
		for _, t := range rule.NativeTypes {
			if !seen[t] {
				seen[t] = true
				result = append(result, t)
			}
		}
	}
	return result
}

func isMinMaxClass(class database.OperatorClass) bool {
	return strings.HasSuffix(class.String(), "MinMaxOps")
}

// PostgresOperatorClassRule returns the table row of a known operator class.
func PostgresOperatorClassRule(class database.OperatorClass) (OperatorClassRule, bool) {
	rule, ok := postgresOperatorClassRules[class]
	return rule, ok
}

// PostgresDefaultOperatorClassRule returns the default-class row of an algorithm.
func PostgresDefaultOperatorClassRule(algo database.IndexAlgorithm) DefaultOperatorClassRule {
	return postgresDefaultOperatorClassRules[algo]
}

// AlgorithmAccepts reports whether a known operator class may be used with the algorithm.
// BTree and Hash accept no named class.
func AlgorithmAccepts(class database.OperatorClass, algo database.IndexAlgorithm) bool {
	rule, ok := postgresOperatorClassRules[class]
	return ok && rule.Algorithm == algo
}

// OperatorClassAccepts checks a field against a declared operator class, or
// against the algorithm's default class when class is nil.
func OperatorClassAccepts(class *database.OperatorClass, field IndexFieldType, algo database.IndexAlgorithm) Verdict {
	if class == nil {
		return defaultClassAccepts(postgresDefaultOperatorClassRules[algo], field)
	}

	rule, ok := postgresOperatorClassRules[*class]
	if !ok {
		return VerdictUnsupportedFieldType
	}

	if rule.RequiresList {
		if !field.IsList {
			return VerdictNotAList
		}
		return VerdictOk
	}

	if field.Native != nil {
		if len(rule.NativeTypes) == 0 || field.nativeIs(rule.NativeTypes) {
			return VerdictOk
		}
		return VerdictWrongNativeType
	}

	if rule.Fallback != nil && field.scalarIs([]database.ScalarType{*rule.Fallback}) {
		return VerdictOk
	}
	return rule.NoNativeVerdict
}

func defaultClassAccepts(rule DefaultOperatorClassRule, field IndexFieldType) Verdict {
	switch {
	case rule.Unconstrained:
		return VerdictOk
	case rule.AnyList && field.IsList:
		return VerdictOk
	case field.Native != nil:
		if field.nativeIs(rule.NativeTypes) {
			return VerdictOk
		}
		return VerdictNoDefaultOperatorClass
	case field.scalarIs(rule.ScalarTypes):
		return VerdictOk
	default:
		return VerdictUnsupportedFieldType
	}
}
