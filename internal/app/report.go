package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/corey/leafsift/internal/domain/classifier"
)

// ReportPath returns the artifact path for one directory:
// <dir>/<artifactDir>/<artifact>.json.
func ReportPath(dir, artifactDir, artifact string) string {
	return filepath.Join(dir, artifactDir, artifact+".json")
}

// ReportExists reports whether the artifact is already present, which is
// the skip-if-processed signal for idempotent resume.
func ReportExists(dir, artifactDir, artifact string) bool {
	_, err := os.Stat(ReportPath(dir, artifactDir, artifact))
	return err == nil
}

// WriteReport serializes records to the artifact path. The write is
// all-or-nothing: the JSON is staged in a temp file in the destination
// directory and renamed into place, so a partially-produced list is never
// visible. An empty record list writes an empty JSON array.
func WriteReport(path string, records []classifier.FunctionRecord) error {
	if records == nil {
		records = []classifier.FunctionRecord{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("stage report: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close report: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publish report: %w", err)
	}
	return nil
}

// ReadReport loads an artifact back into records. Used by watch mode and
// tests; the pipeline itself never re-reads what it wrote.
func ReadReport(path string) ([]classifier.FunctionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []classifier.FunctionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}
	return records, nil
}
