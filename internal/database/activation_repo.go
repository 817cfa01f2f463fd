package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

type activationRepo struct {
	db dbConn
}

func newActivationRepo(db dbConn) contract.ActivationRepo {
	return &activationRepo{db: db}
}

func (r *activationRepo) Insert(ctx context.Context, activation entity.Activation) error {
	query := `
		INSERT INTO shift_activations (user_id, shift, created_at)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		activation.UserID,
		string(activation.Shift),
		activation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shift activation: %w", err)
	}

	return nil
}

func (r *activationRepo) List(ctx context.Context) ([]entity.Activation, error) {
	query := `
		SELECT user_id, shift, created_at
		FROM shift_activations
		ORDER BY user_id, shift
	`

	rows, err := r.db.QueryContext(ctx, query)
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

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift activations: %w", err)
	}

	return activations, nil
}

func (r *activationRepo) DeleteAll(ctx context.Context) error {
	query := `DELETE FROM shift_activations`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to delete shift activations: %w", err)
	}

	return nil
}
