package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/corey/leafsift/internal/domain/classifier"
	"github.com/corey/leafsift/internal/ports"
)

// AnalyzerFactory constructs a fresh analyzer. Each worker calls it once
// so every unit of work owns its own parser instance.
type AnalyzerFactory func() (ports.Analyzer, error)

// Runner fans directory units out across a bounded worker pool, applies
// skip-if-already-processed, and hands each unit's records to the report
// writer. Directories are independent; no mutable state is shared between
// workers.
type Runner struct {
	Config    *Config
	Overwrite bool

	// NewAnalyzer is called once per unit. Construction failures for the
	// requested language are configuration errors and should be ruled out
	// by the caller before Run; mid-run they mark the unit failed.
	NewAnalyzer AnalyzerFactory

	// Store records run history when non-nil. Ledger failures are logged,
	// never fatal.
	Store ports.Storage

	// OnUnit, when set, is invoked after each unit completes (progress
	// reporting). Called from worker goroutines.
	OnUnit func(UnitResult)
}

// UnitResult is the outcome for one directory unit.
type UnitResult struct {
	Dir          string
	Files        int
	Records      int
	SkippedFiles int
	Skipped      bool
	Duration     time.Duration
	Err          error
}

// Run processes every unit under root. Cancellation is coarse: the
// context is checked between units, never mid-file. Per-unit failures are
// logged and reported in the results; only an unreadable root is an error.
func (r *Runner) Run(ctx context.Context, root string) ([]UnitResult, error) {
	units, err := ListUnits(root)
	if err != nil {
		return nil, fmt.Errorf("list work units under %s: %w", root, err)
	}

	workers := 1
	if r.Config != nil && r.Config.Workers > 0 {
		workers = r.Config.Workers
	}

	results := make([]UnitResult, len(units))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, dir := range units {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, dir string) {
			defer wg.Done()
			defer func() { <-sem }()
			res := r.ProcessUnit(dir)
			if res.Err != nil {
				log.Printf("warning: unit %s failed: %v", dir, res.Err)
			}
			results[i] = res
			if r.OnUnit != nil {
				r.OnUnit(res)
			}
		}(i, dir)
	}
	wg.Wait()

	return results, ctx.Err()
}

// ProcessUnit analyzes one directory: discovery, symbol collection,
// classification, report. The unit is skipped entirely when its artifact
// already exists and overwrite is off.
func (r *Runner) ProcessUnit(dir string) UnitResult {
	start := time.Now()
	res := UnitResult{Dir: dir}

	analyzer, err := r.NewAnalyzer()
	if err != nil {
		res.Err = err
		return res
	}
	defer analyzer.Close()

	cfg := r.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	artifactPath := ReportPath(dir, cfg.ArtifactDir, analyzer.Artifact())
	if !r.Overwrite && ReportExists(dir, cfg.ArtifactDir, analyzer.Artifact()) {
		log.Printf("skipping %s: artifact %s already exists", dir, artifactPath)
		res.Skipped = true
		res.Duration = time.Since(start)
		r.recordRun(analyzer.Language(), res)
		return res
	}

	files, err := FindSourceFiles(dir, analyzer.Extension(), cfg.Excludes)
	if err != nil {
		res.Err = fmt.Errorf("discover %s files: %w", analyzer.Language(), err)
		return res
	}
	res.Files = len(files)

	failed := make(map[string]bool)

	// Project-wide symbol collection runs over every file before any
	// classification decision, so call targets defined anywhere in the
	// directory are visible.
	var symbols *classifier.SymbolSet
	if analyzer.ProjectScoped() {
		symbols = classifier.NewSymbolSet(false)
		for _, path := range files {
			source, err := ReadSourceFile(path)
			if err != nil {
				log.Printf("warning: skipping %s: %v", path, err)
				failed[path] = true
				continue
			}
			if err := analyzer.CollectSymbols(path, source, symbols); err != nil {
				log.Printf("warning: skipping %s: %v", path, err)
				failed[path] = true
			}
		}
	}

	var records []classifier.FunctionRecord
	for _, path := range files {
		if failed[path] {
			continue
		}
		source, err := ReadSourceFile(path)
		if err != nil {
			log.Printf("warning: skipping %s: %v", path, err)
			failed[path] = true
			continue
		}
		recs, err := analyzer.MatchLeafBlocks(path, source, symbols)
		if err != nil {
			log.Printf("warning: skipping %s: %v", path, err)
			failed[path] = true
			continue
		}
		records = append(records, recs...)
	}
	res.SkippedFiles = len(failed)
	res.Records = len(records)

	if err := WriteReport(artifactPath, records); err != nil {
		res.Err = err
		return res
	}
	log.Printf("%s: %d files, %d leaf records -> %s", dir, res.Files, res.Records, artifactPath)

	res.Duration = time.Since(start)
	r.recordRun(analyzer.Language(), res)
	return res
}

// recordRun appends the unit outcome to the ledger, best effort.
func (r *Runner) recordRun(language string, res UnitResult) {
	if r.Store == nil {
		return
	}
	stat := ports.RunStat{
		Dir:          res.Dir,
		Language:     language,
		Files:        res.Files,
		Records:      res.Records,
		SkippedFiles: res.SkippedFiles,
		Skipped:      res.Skipped,
		DurationMs:   res.Duration.Milliseconds(),
		Timestamp:    time.Now().Unix(),
	}
	if err := r.Store.RecordRun(stat); err != nil {
		log.Printf("warning: run ledger write failed for %s: %v", res.Dir, err)
	}
}
