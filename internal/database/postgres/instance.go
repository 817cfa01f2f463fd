package postgres

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
)

type instance struct {
	db             *DB
	activationRepo contract.ActivationRepo
	completionRepo contract.CompletionRepo
}

// NewInstance creates a postgres backed DataManager
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:             db,
		activationRepo: &activationRepo{db: db.pool},
		completionRepo: &completionRepo{db: db.pool},
	}
}

func (i *instance) Activation() contract.ActivationRepo {
	return i.activationRepo
}

func (i *instance) Completion() contract.CompletionRepo {
	return i.completionRepo
}

func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := &instance{
		activationRepo: &activationRepo{db: tx},
		completionRepo: &completionRepo{db: tx},
	}

	if err := fn(txInstance); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit(ctx)
}
