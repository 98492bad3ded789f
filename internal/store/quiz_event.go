package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var quizEventColumns = []string{
	"id", "sequence", "timestamp", "attempt_id", "origin",
	"answered", "total", "counts", "dominant",
}

func (r *eventRepo) AppendQuizCompleted(ctx context.Context, data QuizEventData) (int64, error) {
	counts, err := json.Marshal(data.Counts)
	if err != nil {
		return 0, fmt.Errorf("marshal counts: %w", err)
	}
	dominant, err := json.Marshal(data.Dominant)
	if err != nil {
		return 0, fmt.Errorf("marshal dominant: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	query, args := sqlite.Insert("quiz_events").
		Columns(quizEventColumns[1:]...).
		Values(seqNum, millis(time.Now()), data.AttemptID, data.Origin,
			data.Answered, data.Total, string(counts), string(dominant)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("save quiz event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	sel := sqlite.Select(quizEventColumns...).
		From(entsql.Table("quiz_events")).
		OrderBy(entsql.Desc("sequence"))
	query, args := applyQueryOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}
	defer rows.Close()

	var out []QuizEventRecord
	for rows.Next() {
		var (
			rec              QuizEventRecord
			ts               int64
			counts, dominant string
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.AttemptID, &rec.Origin,
			&rec.Answered, &rec.Total, &counts, &dominant); err != nil {
			return nil, fmt.Errorf("scan quiz event: %w", err)
		}
		rec.Timestamp = fromMillis(ts)
		if err := json.Unmarshal([]byte(counts), &rec.Counts); err != nil {
			return nil, fmt.Errorf("decode counts of event %d: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(dominant), &rec.Dominant); err != nil {
			return nil, fmt.Errorf("decode dominant of event %d: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
