// Package logs records finished games in a sqlite database.
package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite

	"github.com/nelhage/mnk/mnk"
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

// Result summarizes one finished game. Winner is "first", "second" or
// "none" for a draw.
type Result struct {
	ID        int64     `db:"id"`
	Time      time.Time `db:"time"`
	Size      int       `db:"size"`
	K         int       `db:"k"`
	First     string    `db:"first"`
	Second    string    `db:"second"`
	Winner    string    `db:"winner"`
	Plies     int       `db:"plies"`
	ElapsedMS int64     `db:"elapsed_ms"`
}

// Record is a player's tally across every logged game.
type Record struct {
	Player string `db:"player"`
	Wins   int    `db:"wins"`
	Losses int    `db:"losses"`
	Draws  int    `db:"draws"`
}

// NewResult builds a result from a finished board.
func NewResult(b *mnk.Board, first, second string, plies int, elapsed time.Duration) *Result {
	return &Result{
		Time:      time.Now().UTC(),
		Size:      b.Size(),
		K:         b.K(),
		First:     first,
		Second:    second,
		Winner:    b.Outcome().Winner.String(),
		Plies:     plies,
		ElapsedMS: int64(elapsed / time.Millisecond),
	}
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(createResultTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create results table: %w", err)
	}
	if _, err = db.Exec(createPlayerView); err != nil {
		db.Close()
		return nil, fmt.Errorf("create player_results view: %w", err)
	}

	repo := &Repository{db: db}
	repo.insert, err = db.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertResult(res *Result) error {
	_, err := r.insert.Exec(res)
	return err
}

// InsertResults writes every result in one transaction.
func (r *Repository) InsertResults(rs []*Result) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, res := range rs {
		if _, e := stmt.Exec(res); e != nil {
			return e
		}
	}
	return txn.Commit()
}

// Results returns up to limit results, newest first.
func (r *Repository) Results(limit int) ([]Result, error) {
	var out []Result
	if err := r.db.Select(&out, selectResults, limit); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Summary() ([]Record, error) {
	var out []Record
	if err := r.db.Select(&out, selectSummary); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
