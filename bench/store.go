// store.go
//
// Sqlite result sink.  Every sweep can persist its rows into a local
// database so repeated runs accumulate a queryable history instead of a
// pile of redirected logs.

package bench

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	impl            TEXT NOT NULL,
	mode            TEXT NOT NULL,
	mix             TEXT NOT NULL,
	dist            TEXT NOT NULL,
	threads         INTEGER NOT NULL,
	ops             INTEGER NOT NULL,
	bucket_count    INTEGER NOT NULL,
	read_ratio      REAL NOT NULL,
	p_hot           REAL NOT NULL,
	time_s          REAL NOT NULL,
	throughput_mops REAL NOT NULL,
	speedup         REAL NOT NULL,
	seq_baseline_s  REAL NOT NULL
);`

// Store wraps the results database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the results database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// SaveRows inserts all rows in one transaction; either the whole sweep
// lands or none of it does.
func (s *Store) SaveRows(rows []Row) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO results
		(impl, mode, mix, dist, threads, ops, bucket_count, read_ratio, p_hot,
		 time_s, throughput_mops, speedup, seq_baseline_s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, r := range rows {
		if _, err := stmt.Exec(r.Impl, r.Mode, r.Mix, r.Dist, r.Threads, r.Ops,
			r.Buckets, r.ReadRatio, r.PHot, r.TimeS, r.Throughput, r.Speedup,
			r.SeqBaselineS); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
