package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/corey/leafsift/internal/adapters/bbolt"
	"github.com/corey/leafsift/internal/app"
)

var runsLanguageFlag string

var runsCmd = &cobra.Command{
	Use:   "runs [root]",
	Short: "Show the run ledger for a dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().StringVarP(&runsLanguageFlag, "language", "l", "", "filter by language")
}

func runRuns(cmd *cobra.Command, args []string) error {
	root := datasetRoot(args)
	paths := app.NewPaths(root)

	if _, err := os.Stat(paths.LedgerDB); err != nil {
		fmt.Println("no run ledger yet; run `leafsift analyze` first")
		return nil
	}

	ledger, err := bbolt.NewLedger(paths.LedgerDB)
	if err != nil {
		return fmt.Errorf("open run ledger: %w", err)
	}
	defer ledger.Close()

	stats, err := ledger.ListRuns(runsLanguageFlag)
	if err != nil {
		return fmt.Errorf("read run ledger: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("run ledger is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tLANG\tDIRECTORY\tFILES\tRECORDS\tSKIPPED FILES\tMS\tSTATUS")
	for _, s := range stats {
		status := "ok"
		if s.Skipped {
			status = "skipped"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			time.Unix(s.Timestamp, 0).Format("2006-01-02 15:04:05"),
			s.Language, s.Dir, s.Files, s.Records, s.SkippedFiles, s.DurationMs, status)
	}
	return w.Flush()
}
