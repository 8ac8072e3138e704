package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

func nativeField(t PostgresType) IndexFieldType {
	return IndexFieldType{Native: &t}
}

func scalarField(st database.ScalarType) IndexFieldType {
	return IndexFieldType{Scalar: &st}
}

func classRef(c database.OperatorClass) *database.OperatorClass {
	return &c
}

func TestEveryOperatorClassHasARule(t *testing.T) {
	for _, class := range database.OperatorClasses() {
		rule, ok := PostgresOperatorClassRule(class)
		require.True(t, ok, "missing rule for %s", class)
		assert.True(t, AlgorithmAccepts(class, rule.Algorithm))
	}
}

func TestBTreeAndHashAcceptNoNamedClass(t *testing.T) {
	for _, class := range database.OperatorClasses() {
		assert.False(t, AlgorithmAccepts(class, database.IndexAlgorithmBTree), class.String())
		assert.False(t, AlgorithmAccepts(class, database.IndexAlgorithmHash), class.String())
	}
}

func TestOperatorClassAccepts(t *testing.T) {
	tests := []struct {
		name     string
		class    database.OperatorClass
		field    IndexFieldType
		algo     database.IndexAlgorithm
		expected Verdict
	}{
		{"inet ops on inet", database.OperatorClassInetOps, nativeField(PostgresTypeInet), database.IndexAlgorithmGist, VerdictOk},
		{"inet ops on text", database.OperatorClassInetOps, nativeField(PostgresTypeText), database.IndexAlgorithmGist, VerdictWrongNativeType},
		{"inet ops on string", database.OperatorClassInetOps, scalarField(database.ScalarTypeString), database.IndexAlgorithmGist, VerdictMissingNativeType},
		{"jsonb ops on json", database.OperatorClassJsonbOps, scalarField(database.ScalarTypeJson), database.IndexAlgorithmGin, VerdictOk},
		{"jsonb ops on int", database.OperatorClassJsonbOps, scalarField(database.ScalarTypeInt), database.IndexAlgorithmGin, VerdictWrongLogicalType},
		{"array ops on list", database.OperatorClassArrayOps, IndexFieldType{IsList: true}, database.IndexAlgorithmGin, VerdictOk},
		{"array ops on scalar", database.OperatorClassArrayOps, scalarField(database.ScalarTypeInt), database.IndexAlgorithmGin, VerdictNotAList},
		{"network ops on string", database.OperatorClassNetworkOps, scalarField(database.ScalarTypeString), database.IndexAlgorithmSpGist, VerdictOk},
		{"network ops on int", database.OperatorClassNetworkOps, scalarField(database.ScalarTypeInt), database.IndexAlgorithmSpGist, VerdictMissingNativeType},
		{"text ops on int", database.OperatorClassTextOps, scalarField(database.ScalarTypeInt), database.IndexAlgorithmSpGist, VerdictWrongLogicalType},
		{"text ops on enum", database.OperatorClassTextOps, IndexFieldType{}, database.IndexAlgorithmSpGist, VerdictWrongLogicalType},
		{"int4 minmax on integer", database.OperatorClassInt4MinMaxOps, nativeField(PostgresTypeInteger), database.IndexAlgorithmBrin, VerdictOk},
		{"int4 minmax on int", database.OperatorClassInt4MinMaxOps, scalarField(database.ScalarTypeInt), database.IndexAlgorithmBrin, VerdictOk},
		{"int4 minmax on string", database.OperatorClassInt4MinMaxOps, scalarField(database.ScalarTypeString), database.IndexAlgorithmBrin, VerdictWrongLogicalType},
		{"int2 minmax on int", database.OperatorClassInt2MinMaxOps, scalarField(database.ScalarTypeInt), database.IndexAlgorithmBrin, VerdictMissingNativeType},
		{"text bloom on varchar", database.OperatorClassTextBloomOps, nativeField(PostgresTypeVarChar), database.IndexAlgorithmBrin, VerdictOk},
		{"uuid minmax on text", database.OperatorClassUuidMinMaxOps, nativeField(PostgresTypeText), database.IndexAlgorithmBrin, VerdictWrongNativeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OperatorClassAccepts(classRef(tt.class), tt.field, tt.algo))
		})
	}
}

func TestDefaultOperatorClassAccepts(t *testing.T) {
	tests := []struct {
		name     string
		field    IndexFieldType
		algo     database.IndexAlgorithm
		expected Verdict
	}{
		{"btree takes anything", nativeField(PostgresTypeXml), database.IndexAlgorithmBTree, VerdictOk},
		{"hash takes anything", scalarField(database.ScalarTypeJson), database.IndexAlgorithmHash, VerdictOk},
		{"gist inet", nativeField(PostgresTypeInet), database.IndexAlgorithmGist, VerdictOk},
		{"gist text", nativeField(PostgresTypeText), database.IndexAlgorithmGist, VerdictNoDefaultOperatorClass},
		{"gist string", scalarField(database.ScalarTypeString), database.IndexAlgorithmGist, VerdictUnsupportedFieldType},
		{"gin list", IndexFieldType{IsList: true, Scalar: scalarField(database.ScalarTypeInt).Scalar}, database.IndexAlgorithmGin, VerdictOk},
		{"gin json", scalarField(database.ScalarTypeJson), database.IndexAlgorithmGin, VerdictOk},
		{"gin json native", nativeField(PostgresTypeJson), database.IndexAlgorithmGin, VerdictNoDefaultOperatorClass},
		{"spgist string", scalarField(database.ScalarTypeString), database.IndexAlgorithmSpGist, VerdictOk},
		{"spgist varchar", nativeField(PostgresTypeVarChar), database.IndexAlgorithmSpGist, VerdictNoDefaultOperatorClass},
		{"brin uuid", nativeField(PostgresTypeUuid), database.IndexAlgorithmBrin, VerdictOk},
		{"brin jsonb", nativeField(PostgresTypeJsonB), database.IndexAlgorithmBrin, VerdictNoDefaultOperatorClass},
		{"brin datetime", scalarField(database.ScalarTypeDateTime), database.IndexAlgorithmBrin, VerdictOk},
		{"brin boolean", scalarField(database.ScalarTypeBoolean), database.IndexAlgorithmBrin, VerdictUnsupportedFieldType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OperatorClassAccepts(nil, tt.field, tt.algo))
		})
	}
}

func TestBrinDefaultsCoverMinMaxNativeTypes(t *testing.T) {
	rule := PostgresDefaultOperatorClassRule(database.IndexAlgorithmBrin)
	assert.Contains(t, rule.NativeTypes, PostgresTypeInteger)
	assert.Contains(t, rule.NativeTypes, PostgresTypeTimestamptz)
	assert.Contains(t, rule.NativeTypes, PostgresTypeBit)
	assert.NotContains(t, rule.NativeTypes, PostgresTypeJsonB)
	assert.NotContains(t, rule.NativeTypes, PostgresTypeXml)
}

func TestVerdictErrorKind(t *testing.T) {
	assert.Equal(t, diagnostics.ErrorKindGeneric, VerdictOk.ErrorKind())
	assert.Equal(t, diagnostics.ErrorKindNativeTypeOperatorClassMismatch, VerdictWrongNativeType.ErrorKind())
	assert.Equal(t, diagnostics.ErrorKindLogicalTypeMismatch, VerdictNotAList.ErrorKind())
	assert.Equal(t, diagnostics.ErrorKindMissingNativeType, VerdictMissingNativeType.ErrorKind())
	assert.Equal(t, "UnsupportedFieldType", VerdictUnsupportedFieldType.String())
}

func TestOperatorClassWithoutRuleIsUnsupported(t *testing.T) {
	unknown := database.OperatorClass(len(database.OperatorClasses()) + 100)

	assert.False(t, AlgorithmAccepts(unknown, database.IndexAlgorithmGist))
	assert.Equal(t, VerdictUnsupportedFieldType, OperatorClassAccepts(classRef(unknown), nativeField(PostgresTypeInet), database.IndexAlgorithmGist))
	assert.Equal(t, VerdictUnsupportedFieldType, OperatorClassAccepts(classRef(unknown), IndexFieldType{}, database.IndexAlgorithmBrin))
}
