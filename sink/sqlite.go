package sink

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/teranos/cpdgen/dataset"
	"github.com/teranos/cpdgen/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS datasets (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL UNIQUE,
	run_id       TEXT NOT NULL,
	total_length INTEGER NOT NULL,
	changepoints TEXT NOT NULL,
	description  TEXT NOT NULL,
	sample       TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLite stores datasets in a single SQLite database file. Each saved
// dataset records the generation run id, the ground-truth change points as
// JSON, the AsciiDoc description, and the sample values as JSON.
type SQLite struct {
	db      *sql.DB
	runID   string
	replace bool
	log     *zap.SugaredLogger
}

// OpenSQLite opens (creating if needed) the dataset database at path.
// Every sink instance is one generation run and carries a fresh run id.
func OpenSQLite(path string, replace bool, log *zap.SugaredLogger) (*SQLite, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", path)
	}

	// WAL keeps reads cheap while a run is writing
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "enable WAL mode")
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "set busy timeout")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create schema")
	}

	runID := uuid.NewString()
	log.Debugw("Dataset database opened", "path", path, "run_id", runID)

	return &SQLite{db: db, runID: runID, replace: replace, log: log}, nil
}

// RunID returns the id assigned to this generation run.
func (s *SQLite) RunID() string { return s.runID }

// Close closes the underlying database.
func (s *SQLite) Close() error { return s.db.Close() }

// SaveSample implements pipeline.Sink.
func (s *SQLite) SaveSample(sample []float64, description *dataset.SampleDescription) error {
	name := description.Name()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM datasets WHERE name = ?)", name).Scan(&exists)
	if err != nil {
		return errors.Wrapf(err, "check dataset %q", name)
	}
	if exists {
		if !s.replace {
			s.log.Warnw("Dataset already exists, skipping", "name", name)
			return nil
		}
		if _, err := s.db.Exec("DELETE FROM datasets WHERE name = ?", name); err != nil {
			return errors.Wrapf(err, "replace dataset %q", name)
		}
	}

	changepoints, err := json.Marshal(description.Changepoints())
	if err != nil {
		return errors.Wrapf(err, "encode changepoints for %q", name)
	}
	values, err := json.Marshal(sample)
	if err != nil {
		return errors.Wrapf(err, "encode sample for %q", name)
	}

	_, err = s.db.Exec(
		"INSERT INTO datasets (name, run_id, total_length, changepoints, description, sample) VALUES (?, ?, ?, ?, ?, ?)",
		name, s.runID, description.TotalLength(), string(changepoints),
		description.AsciiDoc(), string(values),
	)
	if err != nil {
		return errors.Wrapf(err, "insert dataset %q", name)
	}

	s.log.Infow("Dataset stored",
		"name", name,
		"run_id", s.runID,
		"values", len(sample),
	)
	return nil
}
