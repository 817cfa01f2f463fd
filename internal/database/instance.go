package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	activationRepo contract.ActivationRepo
	completionRepo contract.CompletionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.activationRepo = newActivationRepo(i.db.conn)
	i.completionRepo = newCompletionRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		activationRepo: newActivationRepo(db),
		completionRepo: newCompletionRepo(db),
	}
}

// Activation returns the armed shift repository
func (i *instance) Activation() contract.ActivationRepo {
	return i.activationRepo
}

// Completion returns the completed entry repository
func (i *instance) Completion() contract.CompletionRepo {
	return i.completionRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
