package treesitter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corey/leafsift/internal/ports"
)

// registry maps language identifiers to analyzer constructors. Selection
// is by identifier lookup, not type switching, so adding a language means
// adding one entry here plus its rule engine.
var registry = map[string]func(a *Adapter) (ports.Analyzer, error){
	"java":   func(a *Adapter) (ports.Analyzer, error) { return NewJavaAnalyzer(a) },
	"python": func(a *Adapter) (ports.Analyzer, error) { return NewPythonAnalyzer(a) },
}

// NewAnalyzer returns the analyzer for a language identifier, constructing
// its parser from the adapter. An unknown identifier is a configuration
// error: fatal for the run, surfaced immediately.
func NewAnalyzer(a *Adapter, language string) (ports.Analyzer, error) {
	ctor, ok := registry[strings.ToLower(language)]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q (supported: %s)",
			language, strings.Join(Languages(), ", "))
	}
	return ctor(a)
}

// Languages returns the registered language identifiers, sorted.
func Languages() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
