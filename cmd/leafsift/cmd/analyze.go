package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/corey/leafsift/internal/adapters/bbolt"
	"github.com/corey/leafsift/internal/adapters/treesitter"
	"github.com/corey/leafsift/internal/app"
	"github.com/corey/leafsift/internal/ports"
)

var (
	languageFlag  string
	overwriteFlag bool
	workersFlag   int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [root]",
	Short: "Extract leaf candidates for every directory under root",
	Long: "Treats each immediate subdirectory of root as an independent project, " +
		"classifies its functions, and writes a <language>_leaf.json artifact per directory. " +
		"Directories whose artifact already exists are skipped unless --overwrite is set.",
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "language to analyze (java, python)")
	analyzeCmd.Flags().BoolVar(&overwriteFlag, "overwrite", false, "reprocess directories whose artifact already exists")
	analyzeCmd.Flags().IntVar(&workersFlag, "workers", 0, "concurrent directory workers (default: config or CPU count)")
	analyzeCmd.MarkFlagRequired("language")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root := datasetRoot(args)

	cfg, err := app.LoadConfigFromDir(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if workersFlag > 0 {
		cfg.Workers = workersFlag
	}

	runner, cleanup, err := newRunner(root, cfg, overwriteFlag)
	if err != nil {
		return err
	}
	defer cleanup()

	units, err := app.ListUnits(root)
	if err != nil {
		return fmt.Errorf("list work units: %w", err)
	}

	bar := progressbar.Default(int64(len(units)), "analyzing")
	runner.OnUnit = func(app.UnitResult) { bar.Add(1) }

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, runErr := runner.Run(ctx, root)

	var processed, skipped, failed, records int
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
		case res.Skipped:
			skipped++
		default:
			processed++
			records += res.Records
		}
	}
	fmt.Printf("leafsift: %d directories processed, %d skipped, %d failed, %d leaf records\n",
		processed, skipped, failed, records)

	if runErr != nil {
		fmt.Fprintln(os.Stderr, "run interrupted; re-run to resume, completed directories are skipped")
	}
	return nil
}

// newRunner wires the analyzer factory and the run ledger for a dataset
// root. The language is validated up front: an unavailable grammar or an
// unknown identifier aborts before any directory is touched.
func newRunner(root string, cfg *app.Config, overwrite bool) (*app.Runner, func(), error) {
	paths := app.NewPaths(root)

	grammarPaths := append([]string{}, cfg.GrammarPaths...)
	grammarPaths = append(grammarPaths, treesitter.DefaultGrammarPaths(root)...)

	factory := func() (ports.Analyzer, error) {
		adapter := treesitter.NewAdapter(grammarPaths...)
		analyzer, err := treesitter.NewAnalyzer(adapter, languageFlag)
		if err != nil {
			adapter.Close()
			return nil, err
		}
		return analyzer, nil
	}

	// Configuration check: construct one analyzer and throw it away.
	probe, err := factory()
	if err != nil {
		return nil, nil, err
	}
	probe.Close()

	cleanup := func() {}
	var store ports.Storage
	if err := paths.EnsureDirs(); err == nil {
		ledger, lerr := bbolt.NewLedger(paths.LedgerDB)
		if lerr != nil {
			fmt.Fprintf(os.Stderr, "warning: run ledger unavailable: %v\n", lerr)
		} else {
			store = ledger
			cleanup = func() { ledger.Close() }
		}
	} else {
		fmt.Fprintf(os.Stderr, "warning: cannot create %s: %v\n", paths.Root, err)
	}

	runner := &app.Runner{
		Config:      cfg,
		Overwrite:   overwrite,
		NewAnalyzer: factory,
		Store:       store,
	}
	return runner, cleanup, nil
}
