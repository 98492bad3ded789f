package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/minatgo/minatgo/internal/questions"
)

// QuestionRepo stores the question bank. It is the database-backed
// questions.Source.
type QuestionRepo struct {
	db *sql.DB
}

var _ questions.Source = (*QuestionRepo)(nil)

var questionColumns = []string{"id", "text", "optiona", "optionb", "type"}

// ListQuestions returns every row ordered by ID.
func (r *QuestionRepo) ListQuestions(ctx context.Context) ([]questions.Record, error) {
	query, args := sqlite.Select(questionColumns...).
		From(entsql.Table("questions")).
		OrderBy("id").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var out []questions.Record
	for rows.Next() {
		var rec questions.Record
		if err := rows.Scan(&rec.ID, &rec.Text, &rec.OptionA, &rec.OptionB, &rec.Type); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Get returns one question or ErrNotFound.
func (r *QuestionRepo) Get(ctx context.Context, id int64) (*questions.Record, error) {
	query, args := sqlite.Select(questionColumns...).
		From(entsql.Table("questions")).
		Where(entsql.EQ("id", id)).
		Query()

	var rec questions.Record
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&rec.ID, &rec.Text, &rec.OptionA, &rec.OptionB, &rec.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &rec, nil
}

// Create inserts rec and returns it with its assigned ID.
func (r *QuestionRepo) Create(ctx context.Context, rec questions.Record) (*questions.Record, error) {
	id, err := insertQuestion(ctx, r.db, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

// Update replaces the fields of question rec.ID.
func (r *QuestionRepo) Update(ctx context.Context, rec questions.Record) (*questions.Record, error) {
	query, args := sqlite.Update("questions").
		Set("text", rec.Text).
		Set("optiona", rec.OptionA).
		Set("optionb", rec.OptionB).
		Set("type", rec.Type).
		Set("updated_at", millis(time.Now())).
		Where(entsql.EQ("id", rec.ID)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update question %d: %w", rec.ID, err)
	}
	if err := expectOneRow(res, "question", rec.ID); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes question id.
func (r *QuestionRepo) Delete(ctx context.Context, id int64) error {
	query, args := sqlite.Delete("questions").
		Where(entsql.EQ("id", id)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return expectOneRow(res, "question", id)
}

// ReplaceAll swaps the whole bank for recs in one transaction. IDs in recs
// are ignored; rows are numbered in slice order.
func (r *QuestionRepo) ReplaceAll(ctx context.Context, recs []questions.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	query, args := sqlite.Delete("questions").Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear questions: %w", err)
	}
	for _, rec := range recs {
		if _, err := insertQuestion(ctx, tx, rec); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertQuestion(ctx context.Context, db execer, rec questions.Record) (int64, error) {
	now := millis(time.Now())
	query, args := sqlite.Insert("questions").
		Columns("text", "optiona", "optionb", "type", "created_at", "updated_at").
		Values(rec.Text, rec.OptionA, rec.OptionB, rec.Type, now, now).
		Query()

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert question id: %w", err)
	}
	return id, nil
}

func expectOneRow(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d rows affected: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
