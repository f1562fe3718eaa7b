// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aoc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS submissions (
	day          INTEGER NOT NULL,
	level        INTEGER NOT NULL,
	answer       INTEGER NOT NULL,
	verdict      INTEGER NOT NULL,
	submitted_at INTEGER NOT NULL,
	PRIMARY KEY (day, level, answer)
)`

// Ledger remembers the verdicts of submitted answers.
type Ledger struct {
	db  *sql.DB
	now func() time.Time
}

// OpenLedger opens or creates the submission database at path.
func OpenLedger(path string) (*Ledger, error) {
	if path == "" {
		return nil, errors.New("ledger path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(ledgerSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize ledger schema: %w", err)
	}
	return &Ledger{db: db, now: time.Now}, nil
}

// Record stores the verdict for an answer. Verdicts that are not
// [Verdict.Definitive] are ignored so the answer can be retried.
func (l *Ledger) Record(ctx context.Context, day, level, answer int, v Verdict) error {
	if !v.Definitive() {
		return nil
	}
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO submissions (day, level, answer, verdict, submitted_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (day, level, answer) DO UPDATE SET
			verdict = excluded.verdict,
			submitted_at = excluded.submitted_at`,
		day, level, answer, int(v), l.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record day %d level %d: %w", day, level, err)
	}
	return nil
}

// Lookup returns the stored verdict for an answer, if any.
func (l *Ledger) Lookup(ctx context.Context, day, level, answer int) (Verdict, bool, error) {
	var v int
	err := l.db.QueryRowContext(ctx,
		`SELECT verdict FROM submissions WHERE day = ? AND level = ? AND answer = ?`,
		day, level, answer).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return Unknown, false, nil
	}
	if err != nil {
		return Unknown, false, fmt.Errorf("failed to look up day %d level %d: %w", day, level, err)
	}
	return Verdict(v), true, nil
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}
