package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// ContactRepo stores contact form messages.
type ContactRepo struct {
	db *sql.DB
}

// Save appends msg and returns its ID.
func (r *ContactRepo) Save(ctx context.Context, msg ContactMessage) (int64, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	query, args := sqlite.Insert("contact_messages").
		Columns("name", "email", "message", "created_at").
		Values(msg.Name, msg.Email, msg.Message, millis(msg.CreatedAt)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("save contact message: %w", err)
	}
	return res.LastInsertId()
}

// List returns messages newest first, at most limit (0 = all).
func (r *ContactRepo) List(ctx context.Context, limit int) ([]ContactMessage, error) {
	sel := sqlite.Select("id", "name", "email", "message", "created_at").
		From(entsql.Table("contact_messages")).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var out []ContactMessage
	for rows.Next() {
		var (
			m  ContactMessage
			ts int64
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &ts); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		m.CreatedAt = fromMillis(ts)
		out = append(out, m)
	}
	return out, rows.Err()
}
