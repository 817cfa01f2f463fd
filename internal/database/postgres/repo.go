package postgres

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

type activationRepo struct {
	db pgConn
}

func (r *activationRepo) Insert(ctx context.Context, activation entity.Activation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO shift_activations (user_id, shift, created_at)
		VALUES ($1, $2, $3)
	`, activation.UserID, string(activation.Shift), activation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert shift activation: %w", err)
	}
	return nil
}

func (r *activationRepo) List(ctx context.Context) ([]entity.Activation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, shift, created_at
		FROM shift_activations
		ORDER BY user_id, shift
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift activations: %w", err)
	}
	defer rows.Close()

	var activations []entity.Activation
	for rows.Next() {
		var (
			activation entity.Activation
			shift      string
		)
		if err := rows.Scan(&activation.UserID, &shift, &activation.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift activation: %w", err)
		}
		activation.Shift = entity.Shift(shift)
		activations = append(activations, activation)
	}

	return activations, rows.Err()
}

func (r *activationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM shift_activations`); err != nil {
		return fmt.Errorf("failed to delete shift activations: %w", err)
	}
	return nil
}

type completionRepo struct {
	db pgConn
}

func (r *completionRepo) Insert(ctx context.Context, completion entity.Completion) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO entry_completions (user_id, shift, entry_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, completion.UserID, string(completion.Shift), int(completion.EntryID), completion.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert entry completion: %w", err)
	}
	return nil
}

func (r *completionRepo) List(ctx context.Context) ([]entity.Completion, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, shift, entry_id, created_at
		FROM entry_completions
		ORDER BY user_id, shift, entry_id
	`)
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

	return completions, rows.Err()
}

func (r *completionRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM entry_completions`); err != nil {
		return fmt.Errorf("failed to delete entry completions: %w", err)
	}
	return nil
}
