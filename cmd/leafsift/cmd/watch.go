package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/leafsift/internal/adapters/fsnotify"
	"github.com/corey/leafsift/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Re-analyze directories as their source files change",
	Long: "Runs a full analysis, then watches root and reprocesses the owning " +
		"directory whenever a source file of the selected language changes. " +
		"Stops on interrupt.",
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "language to analyze (java, python)")
	watchCmd.MarkFlagRequired("language")
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := datasetRoot(args)

	cfg, err := app.LoadConfigFromDir(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Watch mode always reprocesses changed directories.
	runner, cleanup, err := newRunner(root, cfg, true)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial pass so every unit has a current artifact.
	if _, err := runner.Run(ctx, root); err != nil {
		return nil // interrupted before watching began
	}

	probe, err := runner.NewAnalyzer()
	if err != nil {
		return err
	}
	ext := probe.Extension()
	probe.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Stop()

	// Changed units are reprocessed serially; the channel collapses event
	// bursts into at most one pending re-run per unit.
	pending := make(chan string, 64)
	err = watcher.Watch(root, func(path string) {
		if !strings.EqualFold(filepath.Ext(path), ext) {
			return
		}
		select {
		case pending <- app.OwningUnit(root, path):
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	fmt.Printf("leafsift: watching %s for %s changes (interrupt to stop)\n", root, ext)
	for {
		select {
		case <-ctx.Done():
			return nil
		case unit := <-pending:
			res := runner.ProcessUnit(unit)
			if res.Err != nil {
				fmt.Fprintf(os.Stderr, "warning: %s: %v\n", unit, res.Err)
				continue
			}
			fmt.Printf("reprocessed %s: %d files, %d leaf records\n", unit, res.Files, res.Records)
		}
	}
}
