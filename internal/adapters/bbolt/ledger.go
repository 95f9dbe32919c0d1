// Package bbolt implements the ports.Storage run ledger using bbolt
// (embedded B+ tree). Each language gets its own sub-bucket; entries are
// JSON-serialized and keyed by an insertion sequence number. Writes are
// transactional: a crash mid-write cannot corrupt committed history.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/leafsift/internal/ports"
)

var bucketRuns = []byte("runs")

// Ledger implements ports.Storage backed by bbolt.
type Ledger struct {
	db *bolt.DB
}

// NewLedger opens (or creates) the ledger database at the given path.
func NewLedger(path string) (*Ledger, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// RecordRun appends one entry under the run's language bucket.
func (l *Ledger) RecordRun(stat ports.RunStat) error {
	data, err := json.Marshal(stat)
	if err != nil {
		return fmt.Errorf("marshal run stat: %w", err)
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		runs, err := tx.CreateBucketIfNotExists(bucketRuns)
		if err != nil {
			return err
		}
		lang, err := runs.CreateBucketIfNotExists([]byte(stat.Language))
		if err != nil {
			return err
		}
		seq, err := lang.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return lang.Put(key, data)
	})
}

// ListRuns returns entries for a language in insertion order; an empty
// language returns every language's entries.
func (l *Ledger) ListRuns(language string) ([]ports.RunStat, error) {
	var stats []ports.RunStat
	err := l.db.View(func(tx *bolt.Tx) error {
		runs := tx.Bucket(bucketRuns)
		if runs == nil {
			return nil
		}
		collect := func(b *bolt.Bucket) error {
			return b.ForEach(func(_, v []byte) error {
				var stat ports.RunStat
				if err := json.Unmarshal(v, &stat); err != nil {
					return fmt.Errorf("decode run stat: %w", err)
				}
				stats = append(stats, stat)
				return nil
			})
		}
		if language != "" {
			lang := runs.Bucket([]byte(language))
			if lang == nil {
				return nil
			}
			return collect(lang)
		}
		return runs.ForEachBucket(func(name []byte) error {
			return collect(runs.Bucket(name))
		})
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
