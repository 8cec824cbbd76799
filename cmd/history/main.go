// Command history runs one chasebench measurement and appends its detected
// cache boundaries to a local SQLite database, so a user can track cache
// capacity drift across machine reimages or kernel updates over time. It is
// a persistence shell around the core; it has no bearing on measurement
// semantics.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cachelab/chasebench"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	ran_at TEXT NOT NULL,
	pattern TEXT NOT NULL,
	node_stride INTEGER NOT NULL,
	level_label TEXT NOT NULL,
	approx_size_bytes INTEGER NOT NULL,
	ratio REAL NOT NULL
);
`

func main() {
	dbPath := flag.String("db", "chasebench_history.db", "path to the SQLite database file")
	pattern := flag.String("pattern", "random", "visitation pattern to measure")
	nodeStride := flag.Uint64("node-stride", chasebench.NodeStrideDefault, "byte distance between chase nodes")
	flag.Parse()

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		log.Fatalf("history: open %s: %v", *dbPath, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("history: create schema: %v", err)
	}

	cfg := chasebench.DefaultConfig()
	cfg.Pattern = chasebench.ParsePattern(*pattern)
	cfg.NodeStride = *nodeStride
	cfg.PrintTable = false

	report, err := chasebench.Run(cfg)
	if err != nil {
		log.Fatalf("history: run: %v", err)
	}

	if err := recordRun(db, report); err != nil {
		log.Fatalf("history: record run: %v", err)
	}

	fmt.Printf("recorded %d boundaries from a %q run into %s\n", len(report.Boundaries), *pattern, *dbPath)
}

func recordRun(db *sql.DB, report *chasebench.Report) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO runs (ran_at, pattern, node_stride, level_label, approx_size_bytes, ratio) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	ranAt := time.Now().UTC().Format(time.RFC3339)
	for i, b := range report.Boundaries {
		if _, err := stmt.Exec(ranAt, report.Config.Pattern.String(), report.Config.NodeStride, chasebench.LevelLabel(i), b.ApproxSizeBytes, b.Ratio); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
