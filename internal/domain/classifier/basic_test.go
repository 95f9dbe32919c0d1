package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBasicJavaType(t *testing.T) {
	// Primitives, wrappers, String and void all qualify.
	for _, typ := range []string{
		"int", "long", "float", "double", "boolean", "char", "byte", "short",
		"void", "String", "Integer", "Long", "Float", "Double", "Boolean",
		"Character", "Byte", "Short",
	} {
		assert.True(t, IsBasicJavaType(typ), typ)
	}

	// Arrays of basic types qualify; the brackets are stripped.
	assert.True(t, IsBasicJavaType("int[]"))
	assert.True(t, IsBasicJavaType("byte[][]"))
	assert.True(t, IsBasicJavaType("String[]"))

	// User and library types do not.
	assert.False(t, IsBasicJavaType("Customer"))
	assert.False(t, IsBasicJavaType("java.lang.String"))
	assert.False(t, IsBasicJavaType("Object"))
	assert.False(t, IsBasicJavaType(""))
}

func TestIsBasicJavaType_GenericsRejected(t *testing.T) {
	// Any type carrying type arguments is non-basic, even over basic elements.
	assert.False(t, IsBasicJavaType("List<Integer>"))
	assert.False(t, IsBasicJavaType("Map<String, Integer>"))
	assert.False(t, IsBasicJavaType("Optional<String>"))
}

func TestIsBasicPythonType(t *testing.T) {
	for _, typ := range []string{
		"int", "float", "bool", "str", "bytes", "None",
		"list", "dict", "tuple", "set",
	} {
		assert.True(t, IsBasicPythonType(typ), typ)
	}

	assert.False(t, IsBasicPythonType("Path"))
	assert.False(t, IsBasicPythonType("np.ndarray"))
	assert.False(t, IsBasicPythonType(""))
}

func TestIsBasicPythonType_OneLevelGenerics(t *testing.T) {
	// Containers of basic elements pass at one level of nesting.
	assert.True(t, IsBasicPythonType("list[int]"))
	assert.True(t, IsBasicPythonType("dict[str, int]"))
	assert.True(t, IsBasicPythonType("tuple[int, float, str]"))
	assert.True(t, IsBasicPythonType("set[str]"))

	// Non-basic elements fail.
	assert.False(t, IsBasicPythonType("list[Path]"))
	assert.False(t, IsBasicPythonType("dict[str, Customer]"))

	// Nested containers fail regardless of their elements.
	assert.False(t, IsBasicPythonType("list[list[int]]"))
	assert.False(t, IsBasicPythonType("dict[str, list[int]]"))

	// Unknown containers fail even with basic elements.
	assert.False(t, IsBasicPythonType("Optional[int]"))
	assert.False(t, IsBasicPythonType("Sequence[int]"))
}

func TestIsDunderName(t *testing.T) {
	assert.True(t, IsDunderName("__init__"))
	assert.True(t, IsDunderName("__repr__"))
	assert.True(t, IsDunderName("__private"))
	assert.False(t, IsDunderName("_single"))
	assert.False(t, IsDunderName("regular"))
	assert.False(t, IsDunderName(""))
}
