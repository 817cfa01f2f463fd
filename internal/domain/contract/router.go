package contract

//go:generate mockgen -source=router.go -destination=../../../mocks/mock_router.go -package=mocks

import (
	"context"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

// ActionRouter turns inbound text and button payloads into replies
type ActionRouter interface {
	HandleText(ctx context.Context, userID, text string) entity.Reply
	HandleCallback(ctx context.Context, userID, data string) entity.Reply
}
