package classifier

import "strings"

// basicJavaTypes is the catalog of Java types considered basic: primitives,
// their boxed forms, String, and void. Arrays of these are accepted;
// parameterized types are not.
var basicJavaTypes = map[string]bool{
	"int": true, "long": true, "float": true, "double": true,
	"boolean": true, "char": true, "String": true, "byte": true,
	"short": true, "void": true,
	"Integer": true, "Long": true, "Float": true, "Double": true,
	"Boolean": true, "Character": true, "Byte": true, "Short": true,
}

// basicPythonTypes is the catalog of Python type-hint names considered
// basic, including the bare container names and common builtin buffers.
var basicPythonTypes = map[string]bool{
	"int": true, "float": true, "bool": true, "str": true,
	"list": true, "dict": true, "tuple": true, "set": true,
	"None": true,
	"bytes": true, "bytearray": true, "memoryview": true, "range": true,
}

// pythonContainers are the container names allowed to carry one level of
// basic element types, e.g. list[int] or dict[str, int].
var pythonContainers = map[string]bool{
	"list": true, "dict": true, "tuple": true, "set": true,
}

// IsBasicJavaType reports whether a declared Java type text is in the basic
// catalog. Array suffixes are stripped and the element type checked;
// any generic type is rejected.
func IsBasicJavaType(typeText string) bool {
	t := strings.TrimSpace(typeText)
	for strings.HasSuffix(t, "[]") {
		t = strings.TrimSpace(strings.TrimSuffix(t, "[]"))
	}
	if strings.ContainsAny(t, "<>") {
		return false
	}
	return basicJavaTypes[t]
}

// IsBasicPythonType reports whether a Python type hint is basic. A bare
// name must be in the catalog. One level of generic container is accepted
// when the container is list/dict/tuple/set and every element type is
// basic; nested generics are rejected.
func IsBasicPythonType(typeText string) bool {
	t := strings.TrimSpace(typeText)
	open := strings.Index(t, "[")
	if open < 0 {
		return basicPythonTypes[t]
	}
	if !strings.HasSuffix(t, "]") {
		return false
	}
	container := strings.TrimSpace(t[:open])
	inner := t[open+1 : len(t)-1]
	if !pythonContainers[container] {
		return false
	}
	if strings.ContainsAny(inner, "[]") {
		return false // nested generic
	}
	elems := strings.Split(inner, ",")
	for _, e := range elems {
		e = strings.TrimSpace(e)
		if e == "" || !basicPythonTypes[e] {
			return false
		}
	}
	return true
}

// IsDunderName reports whether a Python name follows the double-underscore
// convention for interpreter-internal methods.
func IsDunderName(name string) bool {
	return strings.HasPrefix(name, "__")
}
