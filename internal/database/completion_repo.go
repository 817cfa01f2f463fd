package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

type completionRepo struct {
	db dbConn
}

func newCompletionRepo(db dbConn) contract.CompletionRepo {
	return &completionRepo{db: db}
}

func (r *completionRepo) Insert(ctx context.Context, completion entity.Completion) error {
	query := `
		INSERT INTO entry_completions (user_id, shift, entry_id, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		completion.UserID,
		string(completion.Shift),
		int(completion.EntryID),
		completion.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry completion: %w", err)
	}

	return nil
}

func (r *completionRepo) List(ctx context.Context) ([]entity.Completion, error) {
	query := `
		SELECT user_id, shift, entry_id, created_at
		FROM entry_completions
		ORDER BY user_id, shift, entry_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry completions: %w", err)
	}
	defer rows.Close()

	var completions []entity.Completion
	for rows.Next() {
		var (
			completion entity.Completion
			shift      string
			entryID    int
		)
		if err := rows.Scan(&completion.UserID, &shift, &entryID, &completion.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry completion: %w", err)
		}
		completion.Shift = entity.Shift(shift)
		completion.EntryID = entity.EntryID(entryID)
		completions = append(completions, completion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry completions: %w", err)
	}

	return completions, nil
}

func (r *completionRepo) DeleteAll(ctx context.Context) error {
	query := `DELETE FROM entry_completions`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to delete entry completions: %w", err)
	}

	return nil
}
