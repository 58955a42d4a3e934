package feedback

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/philiapseudo/jikoni-backoffice/internal/storage"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL feedback repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListFeedback(ctx context.Context) ([]Feedback, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, rating, message, comment, type, status, created_at
		FROM feedback
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", storage.Classify(err))
	}
	defer rows.Close()

	items := []Feedback{}
	for rows.Next() {
		var f Feedback
		var message, comment, ftype, status sql.NullString
		if err := rows.Scan(&f.ID, &f.Rating, &message, &comment, &ftype, &status, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", storage.Classify(err))
		}
		f.Message = message.String
		f.Comment = comment.String
		f.Type = FeedbackType(ftype.String)
		if status.Valid {
			s := FeedbackStatus(status.String)
			f.Status = &s
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", storage.Classify(err))
	}
	return items, nil
}

func (r *postgresRepo) Resolve(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE feedback SET status = $1 WHERE id = $2`, StatusResolved, id)
	if err != nil {
		return fmt.Errorf("resolve feedback: %w", storage.Classify(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("feedback %s not found", id)
	}
	return nil
}
