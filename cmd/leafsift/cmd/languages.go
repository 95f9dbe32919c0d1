package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/leafsift/internal/adapters/treesitter"
)

var languagesCmd = &cobra.Command{
	Use:   "languages [root]",
	Short: "List supported languages and installed grammars",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) error {
	root := datasetRoot(args)

	fmt.Println("classifiers:")
	adapter := treesitter.NewAdapter(treesitter.DefaultGrammarPaths(root)...)
	defer adapter.Close()
	for _, lang := range treesitter.Languages() {
		analyzer, err := treesitter.NewAnalyzer(adapter, lang)
		if err != nil {
			fmt.Printf("  %-8s (unavailable: %v)\n", lang, err)
			continue
		}
		fmt.Printf("  %-8s %s -> %s.json\n", lang, analyzer.Extension(), analyzer.Artifact())
	}

	if loader := adapter.Loader(); loader != nil {
		installed := loader.InstalledGrammars()
		if len(installed) > 0 {
			fmt.Println("dynamic grammars (parse only):")
			for _, name := range installed {
				fmt.Printf("  %-8s %s\n", name, loader.GrammarPath(name))
			}
		}
	}
	return nil
}
