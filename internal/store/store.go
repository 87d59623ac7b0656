package store

import (
	"crypto/sha1" //nolint:gosec // non-cryptographic key generation
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/Adda-Baaj/bazar-khobor/internal/domain"
)

var runsBucket = []byte("runs")

// RunRecord is one persisted search run.
type RunRecord struct {
	Query    string           `json:"query"`
	RanAt    time.Time        `json:"ran_at"`
	Articles []domain.Article `json:"articles"`
}

// Store keeps per-query run history in a local bbolt file so a later run can
// tell which articles are new. It is entirely opt-in; the tool works without
// one.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init history db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records the results of one search keyed by its built query.
func (s *Store) SaveRun(query string, articles []domain.Article) error {
	rec := RunRecord{
		Query:    query,
		RanAt:    time.Now().UTC(),
		Articles: articles,
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode run record: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put(queryKey(query), payload)
	})
}

// LastRun returns the most recent persisted run for the query, if any.
func (s *Store) LastRun(query string) (RunRecord, bool, error) {
	var rec RunRecord
	var found bool

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(runsBucket).Get(queryKey(query))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("decode run record: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return RunRecord{}, false, err
	}
	return rec, found, nil
}

// KnownURLs returns the URL set of the previous run for the query. A missing
// run yields an empty set.
func (s *Store) KnownURLs(query string) (map[string]struct{}, error) {
	rec, found, err := s.LastRun(query)
	if err != nil || !found {
		return map[string]struct{}{}, err
	}

	urls := make(map[string]struct{}, len(rec.Articles))
	for _, art := range rec.Articles {
		urls[art.URL] = struct{}{}
	}
	return urls, nil
}

func queryKey(query string) []byte {
	sum := sha1.Sum([]byte(query))
	return []byte(hex.EncodeToString(sum[:]))
}
