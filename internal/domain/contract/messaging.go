package contract

//go:generate mockgen -source=messaging.go -destination=../../../mocks/mock_messaging.go -package=mocks

import (
	"context"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

// Messenger is the outbound side of a chat platform
type Messenger interface {
	Send(ctx context.Context, userID string, reply entity.Reply) error
}
