package treesitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_BuiltinLanguages(t *testing.T) {
	a := NewAdapter()
	defer a.Close()

	for _, name := range []string{"java", "python"} {
		lang, err := a.Language(name)
		require.NoError(t, err, name)
		assert.NotNil(t, lang)
	}
}

func TestAdapter_UnknownLanguage(t *testing.T) {
	a := NewAdapter()
	defer a.Close()

	_, err := a.Language("ruby")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ruby")
}

func TestAdapter_ParserCached(t *testing.T) {
	a := NewAdapter()
	defer a.Close()

	p1, err := a.Parser("java")
	require.NoError(t, err)
	p2, err := a.Parser("java")
	require.NoError(t, err)
	assert.Same(t, p1, p2)
}

func TestParser_ParseProducesTree(t *testing.T) {
	a := NewAdapter()
	defer a.Close()

	p, err := a.Parser("java")
	require.NoError(t, err)

	tree, err := p.Parse([]byte("class A {}"))
	require.NoError(t, err)
	defer tree.Close()
	assert.Equal(t, "program", tree.RootNode().Kind())
}

func TestNewAnalyzer_Registry(t *testing.T) {
	a := NewAdapter()
	defer a.Close()

	an, err := NewAnalyzer(a, "java")
	require.NoError(t, err)
	assert.Equal(t, "java", an.Language())
	assert.Equal(t, ".java", an.Extension())
	assert.Equal(t, "java_leaf", an.Artifact())
	assert.False(t, an.ProjectScoped())

	an, err = NewAnalyzer(a, "Python")
	require.NoError(t, err)
	assert.Equal(t, "python", an.Language())
	assert.Equal(t, ".py", an.Extension())
	assert.Equal(t, "python_leaf", an.Artifact())
	assert.True(t, an.ProjectScoped())
}

func TestNewAnalyzer_Unsupported(t *testing.T) {
	a := NewAdapter()
	defer a.Close()

	_, err := NewAnalyzer(a, "cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cobol")
	assert.Contains(t, err.Error(), "java, python")
}

func TestLanguages_Sorted(t *testing.T) {
	assert.Equal(t, []string{"java", "python"}, Languages())
}
