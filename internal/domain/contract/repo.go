package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/mock_repo.go -package=mocks

import (
	"context"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Activation() ActivationRepo
	Completion() CompletionRepo
}

// ActivationRepo defines the contract for persisted armed shifts
type ActivationRepo interface {
	Insert(ctx context.Context, activation entity.Activation) error
	List(ctx context.Context) ([]entity.Activation, error)
	DeleteAll(ctx context.Context) error
}

// CompletionRepo defines the contract for persisted completed entries
type CompletionRepo interface {
	Insert(ctx context.Context, completion entity.Completion) error
	List(ctx context.Context) ([]entity.Completion, error)
	DeleteAll(ctx context.Context) error
}
